package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

const levelsMessage = "Min value should be less than Inventory. Inventory should be between Min and Max values."

// CheckLevels enforces min <= stock <= max. Both bounds are reported together.
func CheckLevels(stock, min, max int) error {
	if min > stock || stock > max {
		return NewValidationError(FieldLevels, levelsMessage)
	}
	return nil
}

func checkCommon(name string, price decimal.Decimal, stock, min, max int) error {
	if price.IsNegative() {
		return NewValidationError(FieldPrice, "price cannot be negative, got %s", price)
	}
	if strings.TrimSpace(name) == "" {
		return NewValidationError(FieldName, "Name cannot be blank.")
	}
	return CheckLevels(stock, min, max)
}
