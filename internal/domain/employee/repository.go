package employee

import "context"

type EmployeeRepository interface {
	GetNotifyProfile(ctx context.Context, employeeID string) (NotifyProfile, error)
	GetActiveForScan(ctx context.Context) ([]ScanCandidate, error)
}
