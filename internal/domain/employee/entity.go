package employee

import (
	"time"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// NotifyProfile is the denormalized read model the notification engine
// needs about one employee: their own contact endpoints plus the manager
// chain and department, joined in a single query.
type NotifyProfile struct {
	EmployeeID     string
	UserID         *string
	FullName       string
	Email          string
	PhoneNumber    string
	DepartmentName *string
	PositionName   *string
	HireDate       time.Time
	DOB            *time.Time

	ManagerID     *string
	ManagerUserID *string
	ManagerName   *string
	ManagerEmail  *string
	ManagerPhone  *string
}

// ScanCandidate is the slice of employee state the daily scheduler
// matches dates against.
type ScanCandidate struct {
	EmployeeID       string
	FullName         string
	DOB              *time.Time
	HireDate         time.Time
	ContractEndDate  *time.Time
	ProbationEndDate *time.Time
}
