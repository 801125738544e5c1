package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks v against its validate tags. Used inbound on every
// write payload and outbound on every row read back from storage, so schema
// drift surfaces as a ValidationError rather than corrupt view data.
func ValidateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return NewValidationError(fe.Field(), "failed on '"+fe.Tag()+"' constraint")
	}
	return NewValidationError("", err.Error())
}

// ValidateBranchRIF checks the branch identifier format shared by every
// branch-scoped operation.
func ValidateBranchRIF(rif string) error {
	if rif == "" {
		return NewValidationError("branch_rif", "is required")
	}
	if len(rif) > 12 {
		return NewValidationError("branch_rif", "must be at most 12 characters")
	}
	return nil
}

// ValidateCustomerCI checks the customer identifier format used by invoices.
func ValidateCustomerCI(ci string) error {
	if ci == "" {
		return NewValidationError("customer_ci", "is required")
	}
	if len(ci) > 10 {
		return NewValidationError("customer_ci", "must be at most 10 characters")
	}
	return nil
}
