package http

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/event"
	"github.com/cmlabs-hris/hris-notify-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/validator"
)

// EventHandler accepts domain events from the business workflows and
// publishes them on the bus. Delivery happens synchronously behind the
// 202; failures only surface in logs, never to the emitter.
type EventHandler interface {
	LeaveCreated(w http.ResponseWriter, r *http.Request)
	LeaveStatusChanged(w http.ResponseWriter, r *http.Request)
	AttendanceLate(w http.ResponseWriter, r *http.Request)
	AttendanceEarlyLeave(w http.ResponseWriter, r *http.Request)
	EmployeeCreated(w http.ResponseWriter, r *http.Request)
	PayrollRunApproved(w http.ResponseWriter, r *http.Request)
	PayslipReady(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	bus *event.Bus
}

// NewEventHandler creates a new event intake handler
func NewEventHandler(bus *event.Bus) EventHandler {
	return &eventHandlerImpl{bus: bus}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

type leaveCreatedRequest struct {
	RequestID string `json:"request_id"`
}

func (h *eventHandlerImpl) LeaveCreated(w http.ResponseWriter, r *http.Request) {
	var req leaveCreatedRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if validator.IsEmpty(req.RequestID) {
		response.ValidationError(w, map[string]string{"request_id": "request_id is required"})
		return
	}

	h.bus.PublishLeaveCreated(r.Context(), event.LeaveCreated{RequestID: req.RequestID})
	response.Accepted(w, "Event accepted")
}

type leaveStatusChangedRequest struct {
	RequestID string `json:"request_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

func (h *eventHandlerImpl) LeaveStatusChanged(w http.ResponseWriter, r *http.Request) {
	var req leaveStatusChangedRequest
	if !decodeBody(w, r, &req) {
		return
	}

	details := make(map[string]string)
	if validator.IsEmpty(req.RequestID) {
		details["request_id"] = "request_id is required"
	}
	if validator.IsEmpty(req.NewStatus) {
		details["new_status"] = "new_status is required"
	}
	if len(details) > 0 {
		response.ValidationError(w, details)
		return
	}

	h.bus.PublishLeaveStatusChanged(r.Context(), event.LeaveStatusChanged{
		RequestID: req.RequestID,
		OldStatus: req.OldStatus,
		NewStatus: req.NewStatus,
	})
	response.Accepted(w, "Event accepted")
}

type attendanceLateRequest struct {
	EmployeeID   string `json:"employee_id"`
	MinutesLate  int    `json:"minutes_late"`
	ExpectedTime string `json:"expected_time"`
	ActualTime   string `json:"actual_time"`
}

func (h *eventHandlerImpl) AttendanceLate(w http.ResponseWriter, r *http.Request) {
	var req attendanceLateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if validator.IsEmpty(req.EmployeeID) {
		response.ValidationError(w, map[string]string{"employee_id": "employee_id is required"})
		return
	}

	h.bus.PublishLateArrival(r.Context(), event.LateArrival{
		EmployeeID:   req.EmployeeID,
		MinutesLate:  req.MinutesLate,
		ExpectedTime: req.ExpectedTime,
		ActualTime:   req.ActualTime,
	})
	response.Accepted(w, "Event accepted")
}

type attendanceEarlyLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

func (h *eventHandlerImpl) AttendanceEarlyLeave(w http.ResponseWriter, r *http.Request) {
	var req attendanceEarlyLeaveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if validator.IsEmpty(req.EmployeeID) {
		response.ValidationError(w, map[string]string{"employee_id": "employee_id is required"})
		return
	}

	h.bus.PublishEarlyLeave(r.Context(), event.EarlyLeave{
		EmployeeID: req.EmployeeID,
		Reason:     req.Reason,
	})
	response.Accepted(w, "Event accepted")
}

type employeeCreatedRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (h *eventHandlerImpl) EmployeeCreated(w http.ResponseWriter, r *http.Request) {
	var req employeeCreatedRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if validator.IsEmpty(req.EmployeeID) {
		response.ValidationError(w, map[string]string{"employee_id": "employee_id is required"})
		return
	}

	h.bus.PublishEmployeeCreated(r.Context(), event.EmployeeCreated{EmployeeID: req.EmployeeID})
	response.Accepted(w, "Event accepted")
}

type payrollRunApprovedRequest struct {
	RunID         string          `json:"run_id"`
	EmployeeCount int             `json:"employee_count"`
	TotalNet      decimal.Decimal `json:"total_net"`
}

func (h *eventHandlerImpl) PayrollRunApproved(w http.ResponseWriter, r *http.Request) {
	var req payrollRunApprovedRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if validator.IsEmpty(req.RunID) {
		response.ValidationError(w, map[string]string{"run_id": "run_id is required"})
		return
	}

	h.bus.PublishPayrollRunApproved(r.Context(), event.PayrollRunApproved{
		RunID:         req.RunID,
		EmployeeCount: req.EmployeeCount,
		TotalNet:      req.TotalNet,
	})
	response.Accepted(w, "Event accepted")
}

type payslipReadyRequest struct {
	EmployeeID string          `json:"employee_id"`
	PeriodName string          `json:"period_name"`
	NetSalary  decimal.Decimal `json:"net_salary"`
}

func (h *eventHandlerImpl) PayslipReady(w http.ResponseWriter, r *http.Request) {
	var req payslipReadyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if validator.IsEmpty(req.EmployeeID) {
		response.ValidationError(w, map[string]string{"employee_id": "employee_id is required"})
		return
	}

	h.bus.PublishPayslipReady(r.Context(), event.PayslipReady{
		EmployeeID: req.EmployeeID,
		PeriodName: req.PeriodName,
		NetSalary:  req.NetSalary,
	})
	response.Accepted(w, "Event accepted")
}
