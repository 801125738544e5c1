package handlers

import (
	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/services"
)

type BranchHandlers struct {
	branchService services.BranchService
}

func NewBranchHandlers(branchService services.BranchService) *BranchHandlers {
	return &BranchHandlers{branchService: branchService}
}

// ListRefs handles GET /branches. It backs the branch selector and is the
// one read that works without a session.
func (h *BranchHandlers) ListRefs(c echo.Context) error {
	refs, err := h.branchService.ListRefs(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, refs)
}

// GetCurrent handles GET /branches/current.
func (h *BranchHandlers) GetCurrent(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	branch, err := h.branchService.Get(c.Request().Context(), rif)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, branch)
}

// Add handles POST /branches.
func (h *BranchHandlers) Add(c echo.Context) error {
	var branch models.Branch
	if err := c.Bind(&branch); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	if err := h.branchService.Add(c.Request().Context(), &branch); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "branch created")
}

// AssignManager handles PUT /branches/current/manager.
func (h *BranchHandlers) AssignManager(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	var req struct {
		EmployeeCI string `json:"employee_ci"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	if err := h.branchService.AssignManager(c.Request().Context(), rif, req.EmployeeCI); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "manager assigned")
}
