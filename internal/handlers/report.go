package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shiftwise/timeclock/internal/report"
	"github.com/shiftwise/timeclock/internal/store"
)

// RegisterReportRoutes registers the computed monthly-report endpoint.
//
// GET /report/:employee_id/:year/:month
// - 404 when the employee does not exist
// - 400 for non-numeric path segments or a month outside 1..12
func RegisterReportRoutes(r gin.IRoutes, b *report.Builder) {
	r.GET("/report/:employee_id/:year/:month", func(c *gin.Context) {
		employeeID, err := strconv.ParseInt(c.Param("employee_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id must be an integer"})
			return
		}
		year, err := strconv.Atoi(c.Param("year"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
			return
		}
		month, err := strconv.Atoi(c.Param("month"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer"})
			return
		}

		rep, err := b.Build(c.Request.Context(), employeeID, year, month)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			case errors.Is(err, report.ErrBadPeriod):
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year/month"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			}
			return
		}

		c.JSON(http.StatusOK, rep)
	})
}
