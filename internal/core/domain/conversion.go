package domain

import (
	"fmt"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
)

// Operation is the client-perspective pricing mode of a conversion.
// "buy" means the client acquires foreign currency, "sell" means the client
// disposes of it; "mid" prices at the unbiased reference rate.
type Operation string

const (
	OperationMid  Operation = "mid"
	OperationBuy  Operation = "buy"
	OperationSell Operation = "sell"
)

// ParseOperation validates a caller-supplied operation string. An empty string
// defaults to mid.
func ParseOperation(value string) (Operation, error) {
	switch Operation(value) {
	case OperationMid, OperationBuy, OperationSell:
		return Operation(value), nil
	case "":
		return OperationMid, nil
	default:
		return "", fmt.Errorf("%w: operation must be one of mid, buy, sell", apperrors.ErrValidation)
	}
}

// Conversion is the outcome of one currency conversion: the rounded result,
// the rate that produced it, and an echo of the inputs.
type Conversion struct {
	Result    float64
	Amount    float64
	From      CurrencyCode
	To        CurrencyCode
	Rate      float64
	Operation Operation
}
