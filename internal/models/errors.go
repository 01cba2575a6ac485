package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Invariant violations for records
var (
	ErrAmountNotPositive    = errors.New("amounts must be larger than zero")
	ErrAmountNotWhole       = errors.New("amounts must be whole numbers")
	ErrTimestampsOutOfOrder = errors.New("the update time must not be before the creation time")
	ErrNameEmpty            = errors.New("the name must not be empty")
	ErrCategoryEmpty        = errors.New("the category must not be empty")
	ErrDueDateMissing       = errors.New("the due date must be set")
	ErrDateMissing          = errors.New("the date must be set")
)
