package models

// Employee is a payroll-relevant worker record. Employees are seeded on first
// initialization and are immutable afterwards.
type Employee struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
}

// EmployeeSummary is one element of the GET /api/employees response.
// The hourly rate is intentionally not exposed on the list endpoint.
type EmployeeSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
