package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/services"
)

// VehicleHandlers covers registered vehicles and the catalog behind them:
// vehicle types, brands and models.
type VehicleHandlers struct {
	vehicleService services.VehicleService
}

func NewVehicleHandlers(vehicleService services.VehicleService) *VehicleHandlers {
	return &VehicleHandlers{vehicleService: vehicleService}
}

// List handles GET /vehicles.
func (h *VehicleHandlers) List(c echo.Context) error {
	vehicles, err := h.vehicleService.List(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, vehicles)
}

// ListForIntake handles GET /vehicles/intake: only vehicles whose type the
// session branch attends, for the work-order form.
func (h *VehicleHandlers) ListForIntake(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	refs, err := h.vehicleService.ListForIntake(c.Request().Context(), rif)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, refs)
}

// Add handles POST /vehicles.
func (h *VehicleHandlers) Add(c echo.Context) error {
	var vehicle models.Vehicle
	if err := c.Bind(&vehicle); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	if err := h.vehicleService.Add(c.Request().Context(), &vehicle); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "vehicle registered")
}

// Edit handles PUT /vehicles/:code.
func (h *VehicleHandlers) Edit(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	var vehicle models.Vehicle
	if err := c.Bind(&vehicle); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	vehicle.Code = code
	if err := h.vehicleService.Edit(c.Request().Context(), &vehicle); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "vehicle updated")
}

// Remove handles DELETE /vehicles/:code.
func (h *VehicleHandlers) Remove(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	if err := h.vehicleService.Remove(c.Request().Context(), code); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "vehicle deleted")
}

// ListTypes handles GET /vehicle-types.
func (h *VehicleHandlers) ListTypes(c echo.Context) error {
	types, err := h.vehicleService.ListTypes(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, types)
}

// AddType handles POST /vehicle-types.
func (h *VehicleHandlers) AddType(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	if err := h.vehicleService.AddType(c.Request().Context(), req.Name); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "vehicle type created")
}

// ListBrands handles GET /brands. Rows come back flattened with their
// models, one row per brand-model pair.
func (h *VehicleHandlers) ListBrands(c echo.Context) error {
	brands, err := h.vehicleService.ListBrands(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, brands)
}

// AddBrand handles POST /brands.
func (h *VehicleHandlers) AddBrand(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	if err := h.vehicleService.AddBrand(c.Request().Context(), req.Name); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "brand created")
}

// GetModel handles GET /brands/:brand/models/:model.
func (h *VehicleHandlers) GetModel(c echo.Context) error {
	brandCode, err := strconv.Atoi(c.Param("brand"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("brand", "must be an integer"))
	}
	modelCode, err := strconv.Atoi(c.Param("model"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("model", "must be an integer"))
	}
	detail, err := h.vehicleService.GetModel(c.Request().Context(), brandCode, modelCode)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, detail)
}

// AddModel handles POST /brands/:brand/models.
func (h *VehicleHandlers) AddModel(c echo.Context) error {
	brandCode, err := strconv.Atoi(c.Param("brand"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("brand", "must be an integer"))
	}
	var model models.Model
	if err := c.Bind(&model); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	model.BrandCode = brandCode
	if err := h.vehicleService.AddModel(c.Request().Context(), &model); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "model created")
}
