package common

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Response is the uniform envelope every operation returns. The UI layer
// branches only on Type.
type Response struct {
	Type    string      `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// SendData sends a success response carrying rows.
func SendData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{Type: "success", Data: data})
}

// SendMessage sends a success response for a completed mutation.
func SendMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response{Type: "success", Message: message})
}

// SendError maps an error from the taxonomy onto a status code and the
// uniform error envelope. Nothing below the handler layer writes responses.
func SendError(c echo.Context, err error) error {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusBadRequest, Response{
			Type:    "error",
			Code:    "VALIDATION_ERROR",
			Message: vErr.Error(),
		})
	}
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, Response{
			Type:    "error",
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	}
	var reqErr *StorageRequestError
	if errors.As(err, &reqErr) {
		log.Error().Err(err).Msg("storage request error")
		return c.JSON(http.StatusBadRequest, Response{
			Type:    "error",
			Code:    reqErr.Code,
			Message: reqErr.Error(),
		})
	}
	var connErr *StorageConnectionError
	if errors.As(err, &connErr) {
		log.Error().Err(err).Msg("storage connection error")
		return c.JSON(http.StatusServiceUnavailable, Response{
			Type:    "error",
			Code:    "STORAGE_UNAVAILABLE",
			Message: "could not reach the database",
		})
	}
	log.Error().Err(err).Msg("unexpected error")
	return c.JSON(http.StatusInternalServerError, Response{
		Type:    "error",
		Message: "an unexpected error occurred",
	})
}
