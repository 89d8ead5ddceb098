package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shiftwise/timeclock/internal/models"
	"github.com/shiftwise/timeclock/internal/store"
)

// AttendanceStore is the slice of the store the recorder endpoint needs.
type AttendanceStore interface {
	GetEmployee(ctx context.Context, id int64) (models.Employee, error)
	InsertEvent(ctx context.Context, employeeID int64, action string, ts time.Time) (int64, error)
}

// RegisterAttendanceRoutes registers the clock-action endpoint.
//
// POST /attendance
// - Body: {employee_id, action} with action one of check_in/check_out
// - Timestamp is the server clock at write time, second precision
// - Unknown employees are rejected before anything is persisted
func RegisterAttendanceRoutes(r gin.IRoutes, st AttendanceStore) {
	r.POST("/attendance", func(c *gin.Context) {
		var req models.AttendanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		if req.EmployeeID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id required"})
			return
		}
		if !models.ValidAction(req.Action) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "action must be check_in or check_out"})
			return
		}

		if _, err := st.GetEmployee(c.Request.Context(), req.EmployeeID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}

		ts := time.Now().Truncate(time.Second)
		if _, err := st.InsertEvent(c.Request.Context(), req.EmployeeID, req.Action, ts); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
			return
		}

		c.JSON(http.StatusOK, models.AttendanceResponse{Status: "success"})
	})
}
