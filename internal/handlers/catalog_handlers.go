package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/services"
)

// CatalogHandlers covers workshop services, their activities, and which
// branch offers what.
type CatalogHandlers struct {
	catalogService services.CatalogService
}

func NewCatalogHandlers(catalogService services.CatalogService) *CatalogHandlers {
	return &CatalogHandlers{catalogService: catalogService}
}

// List handles GET /catalog/services: the session branch's offering with
// activities nested under each service.
func (h *CatalogHandlers) List(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	catalog, err := h.catalogService.ListByBranch(c.Request().Context(), rif)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, catalog)
}

// ListRefs handles GET /catalog/services/refs, for reservation forms.
func (h *CatalogHandlers) ListRefs(c echo.Context) error {
	refs, err := h.catalogService.ListRefs(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, refs)
}

// Add handles POST /catalog/services. A new service is created and offered
// by the session branch in one request.
func (h *CatalogHandlers) Add(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	var req struct {
		models.Service
		Capacity      int `json:"capacity"`
		BookingWindow int `json:"booking_window"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	offering := &models.BranchService{
		BranchRIF:     rif,
		Capacity:      req.Capacity,
		BookingWindow: req.BookingWindow,
	}
	if err := h.catalogService.Add(c.Request().Context(), &req.Service, offering); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "service created")
}

// Edit handles PUT /catalog/services/:code.
func (h *CatalogHandlers) Edit(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	var service models.Service
	if err := c.Bind(&service); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	service.Code = code
	if err := h.catalogService.Edit(c.Request().Context(), &service); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "service updated")
}

// Remove handles DELETE /catalog/services/:code.
func (h *CatalogHandlers) Remove(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	if err := h.catalogService.Remove(c.Request().Context(), code); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "service deleted")
}

// Offer handles POST /catalog/services/:code/offer: the session branch
// starts offering an existing service.
func (h *CatalogHandlers) Offer(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	var offering models.BranchService
	if err := c.Bind(&offering); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	offering.BranchRIF = rif
	offering.ServiceCode = code
	if err := h.catalogService.Offer(c.Request().Context(), &offering); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "service offered")
}

// AddActivity handles POST /catalog/services/:code/activities.
func (h *CatalogHandlers) AddActivity(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	var activity models.Activity
	if err := c.Bind(&activity); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	activity.ServiceCode = code
	if err := h.catalogService.AddActivity(c.Request().Context(), &activity); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "activity created")
}

// EditActivity handles PUT /catalog/services/:code/activities/:activity.
func (h *CatalogHandlers) EditActivity(c echo.Context) error {
	serviceCode, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	activityCode, err := strconv.Atoi(c.Param("activity"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("activity", "must be an integer"))
	}
	var activity models.Activity
	if err := c.Bind(&activity); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	activity.ServiceCode = serviceCode
	activity.Code = activityCode
	if err := h.catalogService.EditActivity(c.Request().Context(), &activity); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "activity updated")
}

// RemoveActivity handles DELETE /catalog/services/:code/activities/:activity.
func (h *CatalogHandlers) RemoveActivity(c echo.Context) error {
	serviceCode, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	activityCode, err := strconv.Atoi(c.Param("activity"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("activity", "must be an integer"))
	}
	if err := h.catalogService.RemoveActivity(c.Request().Context(), serviceCode, activityCode); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "activity deleted")
}
