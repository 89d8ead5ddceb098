package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiftwise/timeclock/internal/models"
)

// EmployeeLister is the slice of the store the employees endpoint needs.
type EmployeeLister interface {
	ListEmployees(ctx context.Context) ([]models.EmployeeSummary, error)
}

// RegisterEmployeeRoutes registers the roster endpoint.
//
// GET /employees
// - Returns every employee as {id, name}, ordered by id.
func RegisterEmployeeRoutes(r gin.IRoutes, st EmployeeLister) {
	r.GET("/employees", func(c *gin.Context) {
		employees, err := st.ListEmployees(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}
		c.JSON(http.StatusOK, employees)
	})
}
