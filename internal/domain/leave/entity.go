package leave

import (
	"time"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusWaitingApproval LeaveRequestStatus = "waiting_approval"
	LeaveRequestStatusApproved        LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected        LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled       LeaveRequestStatus = "cancelled"
)

// RequestDetail is the leave request joined with the names the
// notification templates need.
type RequestDetail struct {
	RequestID     string
	EmployeeID    string
	EmployeeName  string
	LeaveTypeName string

	StartDate       time.Time
	EndDate         time.Time
	TotalDays       float64
	Reason          string
	Status          LeaveRequestStatus
	ApprovedAt      *time.Time
	RejectionReason *string
}
