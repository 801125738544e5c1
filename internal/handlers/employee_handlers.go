package handlers

import (
	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/services"
)

type EmployeeHandlers struct {
	employeeService services.EmployeeService
}

func NewEmployeeHandlers(employeeService services.EmployeeService) *EmployeeHandlers {
	return &EmployeeHandlers{employeeService: employeeService}
}

// List handles GET /employees. Only the session branch's staff is visible.
func (h *EmployeeHandlers) List(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	employees, err := h.employeeService.ListByBranch(c.Request().Context(), rif)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, employees)
}

// Add handles POST /employees.
func (h *EmployeeHandlers) Add(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	var employee models.Employee
	if err := c.Bind(&employee); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	employee.BranchRIF = rif
	if err := h.employeeService.Add(c.Request().Context(), &employee); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "employee created")
}

// Edit handles PUT /employees/:ci.
func (h *EmployeeHandlers) Edit(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	var employee models.Employee
	if err := c.Bind(&employee); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	employee.CI = c.Param("ci")
	employee.BranchRIF = rif
	if err := h.employeeService.Edit(c.Request().Context(), &employee); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "employee updated")
}

// Remove handles DELETE /employees/:ci.
func (h *EmployeeHandlers) Remove(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	if err := h.employeeService.Remove(c.Request().Context(), c.Param("ci"), rif); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "employee deleted")
}
