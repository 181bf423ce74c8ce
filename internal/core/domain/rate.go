package domain

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
)

// rateEpsilon absorbs floating-point noise in rate comparisons.
const rateEpsilon = 1e-8

// Rate is a positive, finite exchange rate expressed as PLN per one unit of
// foreign currency. Immutable; AddSpread and MultiplyBy return new instances.
type Rate struct {
	value float64
}

// NewRate validates and constructs a Rate.
func NewRate(value float64) (Rate, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Rate{}, fmt.Errorf("%w: rate must be a finite number", apperrors.ErrValidation)
	}
	if value <= 0 {
		return Rate{}, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}
	return Rate{value: value}, nil
}

func (r Rate) Value() float64 {
	return r.value
}

// AddSpread applies a signed additive offset to the rate. The result must
// still be a valid (positive, finite) rate.
func (r Rate) AddSpread(spread float64) (Rate, error) {
	if math.IsNaN(spread) || math.IsInf(spread, 0) {
		return Rate{}, fmt.Errorf("%w: spread must be a finite number", apperrors.ErrValidation)
	}
	return NewRate(r.value + spread)
}

// MultiplyBy scales the rate by a positive finite multiplier.
func (r Rate) MultiplyBy(multiplier float64) (Rate, error) {
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return Rate{}, fmt.Errorf("%w: multiplier must be a finite number", apperrors.ErrValidation)
	}
	if multiplier <= 0 {
		return Rate{}, fmt.Errorf("%w: multiplier must be positive", apperrors.ErrValidation)
	}
	return NewRate(r.value * multiplier)
}

func (r Rate) Equals(other Rate) bool {
	return math.Abs(r.value-other.value) < rateEpsilon
}

func (r Rate) GreaterThan(other Rate) bool {
	return r.value-other.value > rateEpsilon
}

func (r Rate) LessThan(other Rate) bool {
	return other.value-r.value > rateEpsilon
}

func (r Rate) String() string {
	return strconv.FormatFloat(r.value, 'f', -1, 64)
}
