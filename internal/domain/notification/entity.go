package notification

import (
	"time"
)

// NotificationType tags a message with the event that produced it.
// Preference filters and the digest queue key off this tag.
type NotificationType string

const (
	TypeLeaveCreated     NotificationType = "leave_created"
	TypeLeaveApproved    NotificationType = "leave_approved"
	TypeLeaveRejected    NotificationType = "leave_rejected"
	TypeLeaveCancelled   NotificationType = "leave_cancelled"
	TypeLateArrival      NotificationType = "late_arrival"
	TypeEarlyLeave       NotificationType = "early_leave"
	TypeEmployeeCreated  NotificationType = "employee_created"
	TypeBirthday         NotificationType = "birthday"
	TypeAnniversary      NotificationType = "anniversary"
	TypeContractExpiring NotificationType = "contract_expiring"
	TypeProbationEnding  NotificationType = "probation_ending"
	TypePayrollApproved  NotificationType = "payroll_approved"
	TypePayslipReady     NotificationType = "payslip_ready"
)

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeLeaveCreated,
		TypeLeaveApproved,
		TypeLeaveRejected,
		TypeLeaveCancelled,
		TypeLateArrival,
		TypeEarlyLeave,
		TypeEmployeeCreated,
		TypeBirthday,
		TypeAnniversary,
		TypeContractExpiring,
		TypeProbationEnding,
		TypePayrollApproved,
		TypePayslipReady,
	}
}

// Request is the unit the dispatcher consumes: one recipient, rendered
// subject and body, and the routing metadata the filters need. A request
// with neither Email nor Phone is dropped silently.
type Request struct {
	Email   string
	Phone   string
	Subject string
	Body    string
	Type    NotificationType
	UserID  string // owning user account, empty when unknown
}

// HasDestination reports whether the request can reach any channel at all.
func (r Request) HasDestination() bool {
	return r.Email != "" || r.Phone != ""
}

// DigestEntry is one deferred notification waiting for the external
// digest batcher. Entries are append-only from this engine's side.
type DigestEntry struct {
	ID        string
	UserID    string
	Email     string
	Subject   string
	Body      string
	Type      NotificationType
	CreatedAt time.Time
}

// SubjectType identifies what kind of record an event is about.
type SubjectType string

const (
	SubjectEmployee     SubjectType = "employee"
	SubjectLeaveRequest SubjectType = "leave_request"
	SubjectPayrollRun   SubjectType = "payroll_run"
)

// Contact is one resolved delivery endpoint.
type Contact struct {
	UserID string
	Name   string
	Email  string
	Phone  string
}

// EventContext is the immutable per-invocation value object the resolver
// assembles: template variables (already display-formatted) plus the
// contact endpoints of the subject employee and their manager. It is
// created fresh per event and never persisted.
type EventContext struct {
	SubjectID   string
	SubjectType SubjectType
	Vars        map[string]string
	Employee    Contact
	Manager     Contact
}
