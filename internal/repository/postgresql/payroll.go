package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// GetRunSummary implements payroll.PayrollRepository.
func (r *payrollRepository) GetRunSummary(ctx context.Context, runID string) (payroll.RunSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.period_name, pr.approved_at,
			COUNT(pi.id) AS employee_count,
			COALESCE(SUM(pi.net_salary), 0) AS total_net
		FROM payroll_runs pr
		LEFT JOIN payroll_items pi ON pi.payroll_run_id = pr.id
		WHERE pr.id = $1
		GROUP BY pr.id, pr.period_name, pr.approved_at
	`

	var s payroll.RunSummary
	err := q.QueryRow(ctx, query, runID).Scan(
		&s.RunID, &s.PeriodName, &s.ApprovedAt,
		&s.EmployeeCount, &s.TotalNet,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.RunSummary{}, payroll.ErrPayrollRunNotFound
		}
		return payroll.RunSummary{}, fmt.Errorf("failed to get payroll run summary: %w", err)
	}

	return s, nil
}
