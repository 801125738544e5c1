package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SupplyLine struct {
	Code int    `json:"code" db:"code"`
	Name string `json:"name" db:"name" validate:"required,max=30"`
}

type Supply struct {
	Code        int             `json:"code" db:"code"`
	Name        string          `json:"name" db:"name" validate:"required,max=15"`
	Description string          `json:"description" db:"description" validate:"required,max=30"`
	Maker       string          `json:"maker" db:"maker" validate:"required,max=30"`
	Eco         bool            `json:"eco" db:"eco"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Stock       int             `json:"stock" db:"stock" validate:"min=0"`
	MinStock    int             `json:"min_stock" db:"min_stock" validate:"min=0"`
	MaxStock    int             `json:"max_stock" db:"max_stock" validate:"min=0"`
	Unit        string          `json:"unit" db:"unit" validate:"required,max=10"`
	LineCode    int             `json:"line_code" db:"line_code" validate:"required"`
}

// PhysicalCount is one physical inventory snapshot of a supply.
type PhysicalCount struct {
	ID         int       `json:"id" db:"id"`
	CountedAt  time.Time `json:"counted_at" db:"counted_at"`
	SupplyCode int       `json:"supply_code" db:"supply_code" validate:"required"`
	Quantity   int       `json:"quantity" db:"quantity" validate:"min=0"`
}
