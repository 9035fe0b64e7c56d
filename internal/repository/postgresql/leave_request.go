package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// GetDetail implements leave.LeaveRequestRepository. It joins the leave
// request with the employee and leave type names the templates need.
func (r *leaveRequestRepository) GetDetail(ctx context.Context, requestID string) (leave.RequestDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, emp.full_name, lt.name,
			lr.start_date, lr.end_date, lr.total_days, lr.reason,
			lr.status, lr.approved_at, lr.rejection_reason
		FROM leave_requests lr
		JOIN employees emp ON emp.id = lr.employee_id
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.id = $1
	`

	var d leave.RequestDetail
	var status string
	err := q.QueryRow(ctx, query, requestID).Scan(
		&d.RequestID, &d.EmployeeID, &d.EmployeeName, &d.LeaveTypeName,
		&d.StartDate, &d.EndDate, &d.TotalDays, &d.Reason,
		&status, &d.ApprovedAt, &d.RejectionReason,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.RequestDetail{}, leave.ErrLeaveRequestNotFound
		}
		return leave.RequestDetail{}, fmt.Errorf("failed to get leave request detail: %w", err)
	}

	d.Status = leave.LeaveRequestStatus(status)
	return d, nil
}
