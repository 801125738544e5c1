package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/sessions"
)

// SessionCookie is the cookie carrying the branch-session token.
const SessionCookie = "tallerix_session"

// BranchContext resolves the session cookie into the current branch RIF and
// stores it on the request context. Handlers that need a branch fail with a
// validation error when none was resolved; everything else passes through.
func BranchContext(store sessions.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			ctx := c.Request().Context()
			rif, err := store.Get(ctx, cookie.Value)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					// Expired or unknown token: proceed without a branch.
					return next(c)
				}
				return common.SendError(c, &common.StorageConnectionError{Err: err})
			}
			c.SetRequest(c.Request().WithContext(common.WithBranchRIF(ctx, rif)))
			return next(c)
		}
	}
}
