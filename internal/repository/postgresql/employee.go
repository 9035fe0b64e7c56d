package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetNotifyProfile implements employee.EmployeeRepository. It joins the
// employee with their department and manager chain, including the
// manager's linked user account, in one round trip.
func (e *employeeRepositoryImpl) GetNotifyProfile(ctx context.Context, employeeID string) (employee.NotifyProfile, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT emp.id, emp.user_id, emp.full_name, emp.email, emp.phone_number,
			dept.name AS department_name, pos.name AS position_name,
			emp.hire_date, emp.dob,
			mgr.id AS manager_id, mgr.user_id AS manager_user_id,
			mgr.full_name AS manager_name, mgr.email AS manager_email, mgr.phone_number AS manager_phone
		FROM employees emp
		LEFT JOIN departments dept ON dept.id = emp.department_id
		LEFT JOIN positions pos ON pos.id = emp.position_id
		LEFT JOIN employees mgr ON mgr.id = dept.manager_id AND mgr.deleted_at IS NULL
		WHERE emp.id = $1 AND emp.deleted_at IS NULL
	`

	var p employee.NotifyProfile
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&p.EmployeeID, &p.UserID, &p.FullName, &p.Email, &p.PhoneNumber,
		&p.DepartmentName, &p.PositionName,
		&p.HireDate, &p.DOB,
		&p.ManagerID, &p.ManagerUserID,
		&p.ManagerName, &p.ManagerEmail, &p.ManagerPhone,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.NotifyProfile{}, employee.ErrEmployeeNotFound
		}
		return employee.NotifyProfile{}, fmt.Errorf("failed to get notify profile: %w", err)
	}

	return p, nil
}

// GetActiveForScan implements employee.EmployeeRepository. It returns
// every active employee with the date columns the daily scheduler
// matches against.
func (e *employeeRepositoryImpl) GetActiveForScan(ctx context.Context) ([]employee.ScanCandidate, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, full_name, dob, hire_date, contract_end_date, probation_end_date
		FROM employees
		WHERE employment_status = $1 AND deleted_at IS NULL
	`

	rows, err := q.Query(ctx, query, employee.EmploymentStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan candidates: %w", err)
	}
	defer rows.Close()

	var candidates []employee.ScanCandidate
	for rows.Next() {
		var c employee.ScanCandidate
		if err := rows.Scan(
			&c.EmployeeID, &c.FullName, &c.DOB, &c.HireDate,
			&c.ContractEndDate, &c.ProbationEndDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scan candidates: %w", err)
	}

	return candidates, nil
}
