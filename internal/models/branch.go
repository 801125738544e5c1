package models

import "time"

type Branch struct {
	RIF          string     `json:"rif" db:"rif" validate:"required,max=12"`
	Name         string     `json:"name" db:"name" validate:"required,max=20"`
	City         string     `json:"city" db:"city" validate:"required,max=30"`
	ManagerCI    *string    `json:"manager_ci" db:"manager_ci" validate:"omitempty,max=10"`
	ManagerSince *time.Time `json:"manager_since" db:"manager_since"`
}

// BranchRef is the reduced shape the branch selector loads.
type BranchRef struct {
	RIF  string `json:"rif" db:"rif" validate:"required,max=12"`
	Name string `json:"name" db:"name" validate:"required,max=20"`
}
