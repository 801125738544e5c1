package handlers

import (
	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
)

// requireBranch extracts the branch RIF resolved by the session middleware.
// Requests without an active branch session get a validation error.
func requireBranch(c echo.Context) (string, error) {
	rif, ok := common.GetBranchRIF(c.Request().Context())
	if !ok {
		return "", common.NewValidationError("branch", "no branch selected")
	}
	return rif, nil
}
