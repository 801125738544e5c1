package handlers

import (
	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/services"
)

type ReservationHandlers struct {
	reservationService services.ReservationService
}

func NewReservationHandlers(reservationService services.ReservationService) *ReservationHandlers {
	return &ReservationHandlers{reservationService: reservationService}
}

// List handles GET /reservations for the session branch.
func (h *ReservationHandlers) List(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	reservations, err := h.reservationService.ListByBranch(c.Request().Context(), rif)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, reservations)
}

// Add handles POST /reservations.
func (h *ReservationHandlers) Add(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	var reservation models.Reservation
	if err := c.Bind(&reservation); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	reservation.BranchRIF = rif
	if err := h.reservationService.Add(c.Request().Context(), &reservation); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "reservation created")
}
