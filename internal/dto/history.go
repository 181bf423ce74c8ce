package dto

import "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"

// HistoryPointResponse is one observation in a currency's rate history.
type HistoryPointResponse struct {
	No            string  `json:"no"`
	EffectiveDate string  `json:"effectiveDate"`
	Mid           float64 `json:"mid"`
}

// HistoryResponse defines the history-window payload: up to 14 observations,
// newest first.
type HistoryResponse struct {
	Table    string                 `json:"table"`
	Currency string                 `json:"currency"`
	Code     string                 `json:"code"`
	Rates    []HistoryPointResponse `json:"rates"`
}

// ToHistoryResponse converts a domain CurrencyHistory to its response DTO.
func ToHistoryResponse(history domain.CurrencyHistory) HistoryResponse {
	rates := make([]HistoryPointResponse, len(history.Rates))
	for i, point := range history.Rates {
		rates[i] = HistoryPointResponse{
			No:            point.No,
			EffectiveDate: point.EffectiveDate.String(),
			Mid:           point.Mid.Value(),
		}
	}
	return HistoryResponse{
		Table:    history.Table,
		Currency: history.Currency,
		Code:     history.Code.String(),
		Rates:    rates,
	}
}
