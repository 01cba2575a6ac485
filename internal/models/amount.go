package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateAmount checks that an amount is a positive whole number.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w, got %s", ErrAmountNotPositive, amount)
	}

	if !amount.IsInteger() {
		return fmt.Errorf("%w, got %s", ErrAmountNotWhole, amount)
	}

	return nil
}
