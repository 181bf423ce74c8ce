package domain

import (
	"fmt"
	"strings"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
)

// CurrencyCode is a validated 3-letter uppercase ISO currency identifier.
// The zero value is invalid; construct via NewCurrencyCode.
type CurrencyCode struct {
	value string
}

// PLN is the pivot currency for every conversion path.
var PLN = CurrencyCode{value: "PLN"}

// NewCurrencyCode validates and constructs a CurrencyCode.
func NewCurrencyCode(value string) (CurrencyCode, error) {
	if value == "" {
		return CurrencyCode{}, fmt.Errorf("%w: currency code cannot be empty", apperrors.ErrValidation)
	}
	if len(value) != 3 {
		return CurrencyCode{}, fmt.Errorf("%w: currency code must be exactly 3 characters long", apperrors.ErrValidation)
	}
	for _, r := range value {
		if r < 'A' || r > 'Z' {
			if r >= 'a' && r <= 'z' {
				return CurrencyCode{}, fmt.Errorf("%w: currency code must be uppercase", apperrors.ErrValidation)
			}
			return CurrencyCode{}, fmt.Errorf("%w: currency code must contain only letters", apperrors.ErrValidation)
		}
	}
	return CurrencyCode{value: value}, nil
}

// ParseCurrencyCode uppercases the input before validating, for caller-facing
// surfaces that accept mixed-case codes.
func ParseCurrencyCode(value string) (CurrencyCode, error) {
	return NewCurrencyCode(strings.ToUpper(value))
}

func (c CurrencyCode) String() string {
	return c.value
}

func (c CurrencyCode) Equals(other CurrencyCode) bool {
	return c.value == other.value
}

// IsPLN reports whether this is the domestic pivot currency.
func (c CurrencyCode) IsPLN() bool {
	return c.value == PLN.value
}
