package dto

import (
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/models"
)

// RateResponse defines one stored rate entry as returned to clients.
type RateResponse struct {
	CodeISO       string  `json:"codeIso"`
	Name          string  `json:"name"`
	CurrentMid    float64 `json:"currentMid"`
	PreviousMid   float64 `json:"previousMid"`
	EffectiveDate string  `json:"effectiveDate"`
	UpdatedAt     string  `json:"updatedAt"`
}

// RateWithSpreadsResponse is a RateResponse extended with derived buy/sell
// rates; either is null when the spread side is not configured.
type RateWithSpreadsResponse struct {
	CodeISO       string   `json:"codeIso"`
	Name          string   `json:"name"`
	CurrentMid    float64  `json:"currentMid"`
	BuyRate       *float64 `json:"buyRate"`
	SellRate      *float64 `json:"sellRate"`
	PreviousMid   float64  `json:"previousMid"`
	EffectiveDate string   `json:"effectiveDate"`
	UpdatedAt     string   `json:"updatedAt"`
}

// ToRateResponse converts a domain RateEntry to its response DTO.
func ToRateResponse(entry domain.RateEntry) RateResponse {
	return RateResponse{
		CodeISO:       entry.Code.String(),
		Name:          entry.Name,
		CurrentMid:    entry.CurrentMid.Value(),
		PreviousMid:   entry.PreviousMid.Value(),
		EffectiveDate: entry.EffectiveDate.String(),
		UpdatedAt:     entry.UpdatedAt.Format(models.UpdatedAtLayout),
	}
}

// ToListRateResponse converts a slice of RateEntry to response DTOs.
func ToListRateResponse(entries []domain.RateEntry) []RateResponse {
	res := make([]RateResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToRateResponse(entry)
	}
	return res
}

// ToRateWithSpreadsResponse converts a derived entry to its response DTO.
func ToRateWithSpreadsResponse(entry domain.RateEntryWithSpreads) RateWithSpreadsResponse {
	res := RateWithSpreadsResponse{
		CodeISO:       entry.Code.String(),
		Name:          entry.Name,
		CurrentMid:    entry.CurrentMid.Value(),
		PreviousMid:   entry.PreviousMid.Value(),
		EffectiveDate: entry.EffectiveDate.String(),
		UpdatedAt:     entry.UpdatedAt.Format(models.UpdatedAtLayout),
	}
	if entry.BuyRate != nil {
		v := entry.BuyRate.Value()
		res.BuyRate = &v
	}
	if entry.SellRate != nil {
		v := entry.SellRate.Value()
		res.SellRate = &v
	}
	return res
}

// ToListRateWithSpreadsResponse converts a slice of derived entries.
func ToListRateWithSpreadsResponse(entries []domain.RateEntryWithSpreads) []RateWithSpreadsResponse {
	res := make([]RateWithSpreadsResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToRateWithSpreadsResponse(entry)
	}
	return res
}
