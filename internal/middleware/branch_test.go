package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tallerix/internal/common"
	"tallerix/internal/sessions"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequest(t *testing.T, store sessions.Store, cookie *http.Cookie) (string, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var rif string
	var ok bool
	handler := BranchContext(store)(func(c echo.Context) error {
		rif, ok = common.GetBranchRIF(c.Request().Context())
		return nil
	})
	require.NoError(t, handler(c))
	return rif, ok
}

func TestBranchContext_ResolvesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	store := sessions.NewRedisStore(mr.Addr(), "", 0, time.Hour)

	token, err := store.Create(context.Background(), "J-301234567")
	require.NoError(t, err)

	rif, ok := runRequest(t, store, &http.Cookie{Name: SessionCookie, Value: token})
	assert.True(t, ok)
	assert.Equal(t, "J-301234567", rif)
}

func TestBranchContext_NoCookie(t *testing.T) {
	mr := miniredis.RunT(t)
	store := sessions.NewRedisStore(mr.Addr(), "", 0, time.Hour)

	_, ok := runRequest(t, store, nil)
	assert.False(t, ok)
}

func TestBranchContext_UnknownToken(t *testing.T) {
	mr := miniredis.RunT(t)
	store := sessions.NewRedisStore(mr.Addr(), "", 0, time.Hour)

	_, ok := runRequest(t, store, &http.Cookie{Name: SessionCookie, Value: "stale"})
	assert.False(t, ok)
}

// A session store outage must not be mistaken for an expired token. The
// request fails with 503 instead of silently running without a branch.
func TestBranchContext_StoreUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	store := sessions.NewRedisStore(mr.Addr(), "", 0, time.Hour)

	token, err := store.Create(context.Background(), "J-301234567")
	require.NoError(t, err)
	mr.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := BranchContext(store)(func(c echo.Context) error {
		nextCalled = true
		return nil
	})

	require.NoError(t, handler(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
