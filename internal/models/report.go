package models

// ReportDay is one calendar date of a monthly report. CheckIn/CheckOut hold
// "15:04:05" wall-clock strings and are null when the matching event is
// missing for that day.
type ReportDay struct {
	Date     string  `json:"date"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Hours    float64 `json:"hours"`
}

// Report is the GET /api/report response: per-day hours for one employee and
// one calendar month, plus the derived totals.
type Report struct {
	EmployeeID   int64       `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	HourlyRate   float64     `json:"hourly_rate"`
	Month        string      `json:"month"` // "YYYY-MM"
	TotalHours   float64     `json:"total_hours"`
	TotalPay     float64     `json:"total_pay"`
	Days         []ReportDay `json:"days"`
}
