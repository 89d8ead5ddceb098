package models

import "time"

// Attendance actions accepted by the recorder. Anything else is rejected
// with 400 before it reaches storage.
const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
)

// AttendanceEvent is one recorded clock action. Events are append-only and
// never updated or deleted.
type AttendanceEvent struct {
	ID         int64
	EmployeeID int64
	Action     string
	Timestamp  time.Time
}

// AttendanceRequest is the POST /api/attendance payload.
type AttendanceRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Action     string `json:"action"`
}

// AttendanceResponse acknowledges a recorded event.
type AttendanceResponse struct {
	Status string `json:"status"`
}

// ValidAction reports whether s is one of the two known clock actions.
func ValidAction(s string) bool {
	return s == ActionCheckIn || s == ActionCheckOut
}
