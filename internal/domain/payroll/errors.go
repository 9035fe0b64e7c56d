package payroll

import "errors"

var (
	ErrPayrollRunNotFound = errors.New("Payroll run not found")
)
