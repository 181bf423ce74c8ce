package models

// RateRecord mirrors the field layout of one row in the last_rates table of
// the remote record store. Wire-facing: dates and timestamps stay as strings.
type RateRecord struct {
	CodeISO       string
	Name          string
	CurrentMid    float64
	PreviousMid   float64
	EffectiveDate string
	UpdatedAt     string
}

// UpdatedAtLayout is the timestamp format stored in the updated_at field.
const UpdatedAtLayout = "2006-01-02 15:04:05"
