package dto

import "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"

// ConvertRequest defines the data needed for one conversion.
type ConvertRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	FromCurrency  string  `json:"fromCurrency" binding:"required,len=3"`
	ToCurrency    string  `json:"toCurrency" binding:"required,len=3"`
	OperationType string  `json:"operationType" binding:"omitempty,oneof=mid buy sell"`
}

// ConvertResponse echoes the inputs alongside the rounded result and the rate
// that produced it.
type ConvertResponse struct {
	Result        float64 `json:"result"`
	FromCurrency  string  `json:"fromCurrency"`
	ToCurrency    string  `json:"toCurrency"`
	Amount        float64 `json:"amount"`
	Rate          float64 `json:"rate"`
	OperationType string  `json:"operationType"`
}

// ToConvertResponse converts a domain Conversion to its response DTO.
func ToConvertResponse(conv domain.Conversion) ConvertResponse {
	return ConvertResponse{
		Result:        conv.Result,
		FromCurrency:  conv.From.String(),
		ToCurrency:    conv.To.String(),
		Amount:        conv.Amount,
		Rate:          conv.Rate,
		OperationType: string(conv.Operation),
	}
}
