package models

type Customer struct {
	CI     string `json:"ci" db:"ci" validate:"required,max=10"`
	Name   string `json:"name" db:"name" validate:"required,max=30"`
	Phone1 string `json:"phone1" db:"phone1" validate:"required,max=15"`
	Phone2 string `json:"phone2" db:"phone2" validate:"required,max=15"`
	Email  string `json:"email" db:"email" validate:"required,email,max=50"`
}
