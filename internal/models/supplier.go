package models

type Supplier struct {
	RIF     string `json:"rif" db:"rif" validate:"required,max=12"`
	Name    string `json:"name" db:"name" validate:"required,max=30"`
	Address string `json:"address" db:"address" validate:"required,max=30"`
	Phone   string `json:"phone" db:"phone" validate:"required,max=12"`
	Contact string `json:"contact" db:"contact" validate:"required,max=30"`
}
