package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoreItem is a retail article sold over the counter at one branch. Its
// price is editable, which is why invoice lines snapshot it instead of
// referencing it.
type StoreItem struct {
	Code      int             `json:"code" db:"code"`
	Name      string          `json:"name" db:"name" validate:"required,max=30"`
	Price     decimal.Decimal `json:"price" db:"price"`
	BranchRIF string          `json:"branch_rif" db:"branch_rif" validate:"required,max=12"`
}

// StoreInvoice is one store checkout. Created exactly once, never updated,
// never deleted through the application.
type StoreInvoice struct {
	Code       int             `json:"code" db:"code"`
	IssuedAt   time.Time       `json:"issued_at" db:"issued_at"`
	Total      decimal.Decimal `json:"total" db:"total"`
	CustomerCI string          `json:"customer_ci" db:"customer_ci" validate:"required,max=10"`
	BranchRIF  string          `json:"branch_rif" db:"branch_rif" validate:"required,max=12"`
}

// StoreInvoiceItem is one line of an invoice. Price is the value copied from
// the item at checkout time; later price edits never touch it.
type StoreInvoiceItem struct {
	InvoiceCode int             `json:"invoice_code" db:"invoice_code"`
	ItemCode    int             `json:"item_code" db:"item_code" validate:"required"`
	Quantity    int             `json:"quantity" db:"quantity" validate:"required,min=1"`
	Price       decimal.Decimal `json:"price" db:"price"`
}

// CartLine is what checkout receives per item: a reference and a quantity.
// The price is resolved inside the transaction, never trusted from the form.
type CartLine struct {
	ItemCode int `json:"item_code" validate:"required"`
	Quantity int `json:"quantity"`
}
