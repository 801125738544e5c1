package models

import "github.com/shopspring/decimal"

type Employee struct {
	CI        string          `json:"ci" db:"ci" validate:"required,max=10"`
	Name      string          `json:"name" db:"name" validate:"required,max=30"`
	Address   string          `json:"address" db:"address" validate:"required,max=30"`
	Phone     string          `json:"phone" db:"phone" validate:"required,max=12"`
	Salary    decimal.Decimal `json:"salary" db:"salary"`
	BranchRIF string          `json:"branch_rif" db:"branch_rif" validate:"required,max=12"`
}
