package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunSummary is the payroll run read model used for run-approved
// notifications to the HR distribution list.
type RunSummary struct {
	RunID         string
	PeriodName    string
	EmployeeCount int
	TotalNet      decimal.Decimal
	ApprovedAt    *time.Time
}
