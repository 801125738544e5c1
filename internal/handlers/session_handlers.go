package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/middleware"
	"tallerix/internal/sessions"
)

// SessionHandlers implements branch selection. Picking a branch creates a
// server-side session and hands the client an opaque cookie token.
type SessionHandlers struct {
	store sessions.Store
	ttl   time.Duration
}

func NewSessionHandlers(store sessions.Store, ttl time.Duration) *SessionHandlers {
	return &SessionHandlers{store: store, ttl: ttl}
}

// SelectBranch handles POST /session.
func (h *SessionHandlers) SelectBranch(c echo.Context) error {
	var req struct {
		BranchRIF string `json:"branch_rif"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	token, err := h.store.Create(c.Request().Context(), req.BranchRIF)
	if err != nil {
		return common.SendError(c, err)
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.ttl.Seconds()),
	})
	return common.SendMessage(c, "branch selected")
}

// CurrentBranch handles GET /session.
func (h *SessionHandlers) CurrentBranch(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, map[string]string{"branch_rif": rif})
}

// Logout handles DELETE /session.
func (h *SessionHandlers) Logout(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookie)
	if err == nil && cookie.Value != "" {
		if err := h.store.Destroy(c.Request().Context(), cookie.Value); err != nil {
			return common.SendError(c, err)
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return common.SendMessage(c, "session closed")
}
