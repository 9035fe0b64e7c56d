package template

// A block is one subject/body pair. Bodies are lightweight HTML for the
// mail channel; the SMS path strips markup before sending.
type block struct {
	Subject string
	Body    string
}

// Template names, one per event/recipient-role combination.
const (
	LeaveCreatedManager    = "leave_created_manager"
	LeaveCreatedHR         = "leave_created_hr"
	LeaveApprovedEmployee  = "leave_approved_employee"
	LeaveApprovedManager   = "leave_approved_manager"
	LeaveRejectedEmployee  = "leave_rejected_employee"
	LeaveCancelledManager  = "leave_cancelled_manager"
	LateArrivalManager     = "late_arrival_manager"
	EarlyLeaveManager      = "early_leave_manager"
	EmployeeCreatedWelcome = "employee_created_welcome"
	EmployeeCreatedManager = "employee_created_manager"
	EmployeeCreatedHR      = "employee_created_hr"
	BirthdayEmployee       = "birthday_employee"
	AnniversaryEmployee    = "anniversary_employee"
	ContractExpiringStaff  = "contract_expiring_employee"
	ContractExpiringHR     = "contract_expiring_hr"
	ProbationEndingManager = "probation_ending_manager"
	ProbationEndingHR      = "probation_ending_hr"
	PayrollApprovedHR      = "payroll_approved_hr"
	PayslipReadyEmployee   = "payslip_ready_employee"
)

var catalog = map[string]block{
	LeaveCreatedManager: {
		Subject: "Leave request from {employee_name}",
		Body: "<p>Hi {manager_name},</p>" +
			"<p>{employee_name} submitted a {leave_type} request for {start_date} to {end_date} ({total_days} day(s)).</p>" +
			"<p>Reason: {reason}</p>" +
			"<p>Please review the request in the HRIS.</p>",
	},
	LeaveCreatedHR: {
		Subject: "New leave request: {employee_name}",
		Body: "<p>A new {leave_type} request was submitted by {employee_name} " +
			"({start_date} to {end_date}, {total_days} day(s)).</p>",
	},
	LeaveApprovedEmployee: {
		Subject: "Your leave request has been approved",
		Body: "<p>Hi {employee_name},</p>" +
			"<p>Your {leave_type} request for {start_date} to {end_date} has been approved.</p>" +
			"<p>Enjoy your time off!</p>",
	},
	LeaveApprovedManager: {
		Subject: "Leave approved: {employee_name}",
		Body: "<p>The {leave_type} request of {employee_name} ({start_date} to {end_date}) " +
			"has been approved.</p>",
	},
	LeaveRejectedEmployee: {
		Subject: "Your leave request has been rejected",
		Body: "<p>Hi {employee_name},</p>" +
			"<p>Your {leave_type} request for {start_date} to {end_date} has been rejected.</p>" +
			"<p>Reason: {rejection_reason}</p>",
	},
	LeaveCancelledManager: {
		Subject: "Leave cancelled: {employee_name}",
		Body: "<p>The {leave_type} request of {employee_name} ({start_date} to {end_date}) " +
			"has been cancelled.</p>",
	},
	LateArrivalManager: {
		Subject: "Late arrival: {employee_name}",
		Body: "<p>Hi {manager_name},</p>" +
			"<p>{employee_name} clocked in {minutes_late} minute(s) late today " +
			"(expected {expected_time}, actual {actual_time}).</p>",
	},
	EarlyLeaveManager: {
		Subject: "Early leave request: {employee_name}",
		Body: "<p>Hi {manager_name},</p>" +
			"<p>{employee_name} requested to leave early today.</p>" +
			"<p>Reason: {reason}</p>",
	},
	EmployeeCreatedWelcome: {
		Subject: "Welcome aboard, {employee_name}!",
		Body: "<p>Hi {employee_name},</p>" +
			"<p>Welcome to the team! Your employee record is active as of {hire_date}.</p>" +
			"<p>Your department: {department}. Your manager: {manager_name}.</p>",
	},
	EmployeeCreatedManager: {
		Subject: "New team member: {employee_name}",
		Body: "<p>Hi {manager_name},</p>" +
			"<p>{employee_name} joined your team as {position} starting {hire_date}.</p>",
	},
	EmployeeCreatedHR: {
		Subject: "New employee: {employee_name}",
		Body: "<p>{employee_name} was added as {position} in {department}, " +
			"starting {hire_date}.</p>",
	},
	BirthdayEmployee: {
		Subject: "Happy birthday, {employee_name}!",
		Body: "<p>Dear {employee_name},</p>" +
			"<p>Wishing you a wonderful birthday and a great year ahead. " +
			"Best wishes from all of us!</p>",
	},
	AnniversaryEmployee: {
		Subject: "Congratulations on {years} year(s) with us!",
		Body: "<p>Dear {employee_name},</p>" +
			"<p>Today marks {years} year(s) since you joined us on {hire_date}. " +
			"Thank you for everything you do!</p>",
	},
	ContractExpiringStaff: {
		Subject: "Your contract expires in {days_until} day(s)",
		Body: "<p>Hi {employee_name},</p>" +
			"<p>Your employment contract ends on {contract_end_date}, " +
			"{days_until} day(s) from now. Please reach out to HR about next steps.</p>",
	},
	ContractExpiringHR: {
		Subject: "Contract expiring: {employee_name}",
		Body: "<p>The contract of {employee_name} ({department}) ends on " +
			"{contract_end_date}, {days_until} day(s) from now.</p>",
	},
	ProbationEndingManager: {
		Subject: "Probation ending: {employee_name}",
		Body: "<p>Hi {manager_name},</p>" +
			"<p>The probation period of {employee_name} ends on {probation_end_date}, " +
			"{days_until} day(s) from now. Please prepare the evaluation.</p>",
	},
	ProbationEndingHR: {
		Subject: "Probation ending: {employee_name}",
		Body: "<p>The probation period of {employee_name} ({department}) ends on " +
			"{probation_end_date}, {days_until} day(s) from now.</p>",
	},
	PayrollApprovedHR: {
		Subject: "Payroll run {period} approved",
		Body: "<p>The payroll run for {period} has been approved: " +
			"{employee_count} employee(s), total net {total_net}.</p>",
	},
	PayslipReadyEmployee: {
		Subject: "Your payslip for {period} is ready",
		Body: "<p>Hi {employee_name},</p>" +
			"<p>Your payslip for {period} is now available in the HRIS. " +
			"Net salary: {net_salary}.</p>",
	},
}
