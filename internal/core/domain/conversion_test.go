package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.Operation
		wantErr bool
	}{
		{input: "mid", want: domain.OperationMid},
		{input: "buy", want: domain.OperationBuy},
		{input: "sell", want: domain.OperationSell},
		{input: "", want: domain.OperationMid},
		{input: "swap", wantErr: true},
		{input: "BUY", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			op, err := domain.ParseOperation(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}
}
