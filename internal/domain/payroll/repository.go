package payroll

import "context"

type PayrollRepository interface {
	GetRunSummary(ctx context.Context, runID string) (RunSummary, error)
}
