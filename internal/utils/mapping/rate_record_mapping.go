package mapping

import (
	"fmt"
	"time"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/models"
)

// FieldsToRateRecord decodes a record-store field map into a RateRecord.
// Numeric fields arrive as float64 from JSON decoding.
func FieldsToRateRecord(fields map[string]any) (models.RateRecord, error) {
	rec := models.RateRecord{}

	var ok bool
	if rec.CodeISO, ok = fields["code_iso"].(string); !ok {
		return rec, fmt.Errorf("%w: record missing code_iso field", apperrors.ErrUpstream)
	}
	if rec.CurrentMid, ok = toFloat(fields["current_mid"]); !ok {
		return rec, fmt.Errorf("%w: record %s missing current_mid field", apperrors.ErrUpstream, rec.CodeISO)
	}
	if rec.EffectiveDate, ok = fields["effective_date"].(string); !ok {
		return rec, fmt.Errorf("%w: record %s missing effective_date field", apperrors.ErrUpstream, rec.CodeISO)
	}
	rec.Name, _ = fields["name"].(string)
	rec.UpdatedAt, _ = fields["updated_at"].(string)
	// A missing previous mid falls back to the current value so trend
	// comparisons degrade to "unchanged" instead of failing.
	if rec.PreviousMid, ok = toFloat(fields["previous_mid"]); !ok {
		rec.PreviousMid = rec.CurrentMid
	}

	return rec, nil
}

// RateRecordToFields encodes a RateRecord into the store's field map layout.
func RateRecordToFields(rec models.RateRecord) map[string]any {
	return map[string]any{
		"code_iso":       rec.CodeISO,
		"current_mid":    rec.CurrentMid,
		"previous_mid":   rec.PreviousMid,
		"effective_date": rec.EffectiveDate,
		"name":           rec.Name,
		"updated_at":     rec.UpdatedAt,
	}
}

// RateRecordToDomain converts a wire record into a validated domain RateEntry.
func RateRecordToDomain(rec models.RateRecord) (domain.RateEntry, error) {
	code, err := domain.NewCurrencyCode(rec.CodeISO)
	if err != nil {
		return domain.RateEntry{}, err
	}
	currentMid, err := domain.NewRate(rec.CurrentMid)
	if err != nil {
		return domain.RateEntry{}, err
	}
	previousMid, err := domain.NewRate(rec.PreviousMid)
	if err != nil {
		return domain.RateEntry{}, err
	}
	effectiveDate, err := domain.ParseExchangeDate(rec.EffectiveDate)
	if err != nil {
		return domain.RateEntry{}, err
	}

	updatedAt := time.Time{}
	if rec.UpdatedAt != "" {
		updatedAt, err = time.Parse(models.UpdatedAtLayout, rec.UpdatedAt)
		if err != nil {
			return domain.RateEntry{}, fmt.Errorf("%w: invalid updated_at %q", apperrors.ErrUpstream, rec.UpdatedAt)
		}
	}

	return domain.RateEntry{
		Code:          code,
		Name:          rec.Name,
		CurrentMid:    currentMid,
		PreviousMid:   previousMid,
		EffectiveDate: effectiveDate,
		UpdatedAt:     updatedAt,
	}, nil
}

// DomainToRateRecord converts a RateEntry into its wire record form.
func DomainToRateRecord(entry domain.RateEntry) models.RateRecord {
	return models.RateRecord{
		CodeISO:       entry.Code.String(),
		Name:          entry.Name,
		CurrentMid:    entry.CurrentMid.Value(),
		PreviousMid:   entry.PreviousMid.Value(),
		EffectiveDate: entry.EffectiveDate.String(),
		UpdatedAt:     entry.UpdatedAt.Format(models.UpdatedAtLayout),
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
