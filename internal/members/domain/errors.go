package domain

import "go-shop/pkg/errors"

// Domain-specific errors
var (
	ErrNameRequired = errors.NewValidation("name is required", nil)
	ErrNameLength   = errors.NewValidation("name must be at most 100 characters", nil)
)

// NewMemberNotFound creates a not found error with the member ID
func NewMemberNotFound(id uint) error {
	return errors.NewNotFound("member", id)
}

// NewDuplicateName creates a duplicate member error for the given name
func NewDuplicateName(name string) error {
	return errors.NewDuplicateMember(name)
}
