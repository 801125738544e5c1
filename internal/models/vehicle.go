package models

import "time"

type VehicleType struct {
	Code int    `json:"code" db:"code"`
	Name string `json:"name" db:"name" validate:"required,max=20"`
}

type Brand struct {
	Code int    `json:"code" db:"code"`
	Name string `json:"name" db:"name" validate:"required,max=20"`
}

// BrandModelRow is one row of the brand listing, which left-joins models.
type BrandModelRow struct {
	BrandCode        int     `json:"brand_code" db:"brand_code"`
	BrandName        string  `json:"brand_name" db:"brand_name" validate:"required,max=20"`
	ModelCode        *int    `json:"model_code" db:"model_code"`
	ModelDescription *string `json:"model_description" db:"model_description" validate:"omitempty,max=20"`
}

type Model struct {
	BrandCode   int    `json:"brand_code" db:"brand_code" validate:"required"`
	Code        int    `json:"code" db:"code"`
	Description string `json:"description" db:"description" validate:"required,max=20"`
	Seats       int    `json:"seats" db:"seats" validate:"required,min=1"`
	Weight      int    `json:"weight" db:"weight" validate:"required,min=1"`
	EngineOil   string `json:"engine_oil" db:"engine_oil" validate:"required,max=12"`
	GearboxOil  string `json:"gearbox_oil" db:"gearbox_oil" validate:"required,max=12"`
	Octane      int    `json:"octane" db:"octane" validate:"min=87,max=91"`
	Coolant     string `json:"coolant" db:"coolant" validate:"required,max=12"`
	TypeCode    int    `json:"type_code" db:"type_code" validate:"required"`
}

// ModelDetail is the model view joined with its vehicle type name.
type ModelDetail struct {
	Description string `json:"description" db:"description" validate:"required,max=20"`
	Seats       int    `json:"seats" db:"seats" validate:"required,min=1"`
	Weight      int    `json:"weight" db:"weight" validate:"required,min=1"`
	EngineOil   string `json:"engine_oil" db:"engine_oil" validate:"required,max=12"`
	GearboxOil  string `json:"gearbox_oil" db:"gearbox_oil" validate:"required,max=12"`
	Octane      int    `json:"octane" db:"octane" validate:"min=87,max=91"`
	Coolant     string `json:"coolant" db:"coolant" validate:"required,max=12"`
	TypeName    string `json:"type_name" db:"type_name" validate:"required,max=20"`
}

type Vehicle struct {
	Code       int       `json:"code" db:"code"`
	Plate      string    `json:"plate" db:"plate" validate:"required,max=8"`
	AcquiredAt time.Time `json:"acquired_at" db:"acquired_at"`
	OilType    string    `json:"oil_type" db:"oil_type" validate:"required,max=15"`
	BrandCode  int       `json:"brand_code" db:"brand_code" validate:"required"`
	ModelCode  int       `json:"model_code" db:"model_code" validate:"required"`
	OwnerCI    string    `json:"owner_ci" db:"owner_ci" validate:"required,max=10"`
}

// VehicleRow is the vehicle listing joined with brand, model and owner names.
type VehicleRow struct {
	Vehicle
	BrandName        string `json:"brand_name" db:"brand_name" validate:"required,max=20"`
	ModelDescription string `json:"model_description" db:"model_description" validate:"required,max=20"`
	OwnerName        string `json:"owner_name" db:"owner_name" validate:"required,max=30"`
}

// VehicleRef is the reduced shape used by work-order intake.
type VehicleRef struct {
	Code  int    `json:"code" db:"code"`
	Plate string `json:"plate" db:"plate" validate:"required,max=8"`
}
