package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
	portsrepo "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/repositories"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/services"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/platform/config"
)

type RateSyncServiceTestSuite struct {
	suite.Suite
	mockSource *MockRateSource
	mockStore  *MockRateStore
	service    *services.RateSyncService
}

func (suite *RateSyncServiceTestSuite) SetupTest() {
	spreads := config.NewSpreadsConfig(map[string]config.SpreadEntry{
		"USD": {Buy: fptr(-0.10), Sell: fptr(0.11)},
		"EUR": {Buy: fptr(-0.12), Sell: fptr(0.12)},
		"NOK": {Buy: fptr(-0.02), Sell: fptr(0.02)},
	})
	suite.mockSource = new(MockRateSource)
	suite.mockStore = new(MockRateStore)
	suite.service = services.NewRateSyncService(suite.mockSource, suite.mockStore, spreads, "A", "last_rates")
}

func twoTables() []portsrepo.ExchangeTable {
	return []portsrepo.ExchangeTable{
		{
			Table: "A", No: "090/A/NBP/2023", EffectiveDate: "2023-05-10",
			Rates: []portsrepo.TableRate{
				{Currency: "dolar amerykański", Code: "USD", Mid: 4.15},
				{Currency: "euro", Code: "EUR", Mid: 4.52},
			},
		},
		{
			Table: "A", No: "091/A/NBP/2023", EffectiveDate: "2023-05-11",
			Rates: []portsrepo.TableRate{
				{Currency: "dolar amerykański", Code: "USD", Mid: 4.18},
				{Currency: "euro", Code: "EUR", Mid: 4.55},
				{Currency: "jen japoński", Code: "JPY", Mid: 0.031},
				{Currency: "korona norweska", Code: "NOK", Mid: 0.39},
				{Currency: "bogus", Code: "X1", Mid: 1.0},
			},
		},
	}
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_Success() {
	ctx := context.Background()
	suite.mockSource.On("LastTables", ctx, "A", 2).Return(twoTables(), nil).Once()

	var replaced []map[string]any
	suite.mockStore.On("ReplaceAll", ctx, "last_rates", mock.Anything).
		Run(func(args mock.Arguments) {
			replaced = args.Get(2).([]map[string]any)
		}).
		Return([]portsrepo.Record{}, nil).Once()

	entries, err := suite.service.SyncRates(ctx)

	suite.Require().NoError(err)
	// JPY has no spread entry, X1 is not a valid code, and NOK is missing from
	// the previous table; only USD and EUR survive.
	suite.Require().Len(entries, 2)

	suite.Equal("USD", entries[0].Code.String())
	suite.Equal(4.18, entries[0].CurrentMid.Value())
	suite.Equal(4.15, entries[0].PreviousMid.Value())
	suite.Equal("2023-05-11", entries[0].EffectiveDate.String())

	suite.Equal("EUR", entries[1].Code.String())
	suite.Equal(4.52, entries[1].PreviousMid.Value())

	// One timestamp per run.
	suite.Equal(entries[0].UpdatedAt, entries[1].UpdatedAt)

	suite.Require().Len(replaced, 2)
	suite.Equal("USD", replaced[0]["code_iso"])
	suite.Equal(4.18, replaced[0]["current_mid"])
	suite.Equal("2023-05-11", replaced[0]["effective_date"])
	suite.NotEmpty(replaced[0]["updated_at"])

	suite.mockSource.AssertExpectations(suite.T())
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_InsufficientTables() {
	ctx := context.Background()
	oneTable := twoTables()[:1]
	suite.mockSource.On("LastTables", ctx, "A", 2).Return(oneTable, nil).Once()

	_, err := suite.service.SyncRates(ctx)

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientTables)
	suite.mockStore.AssertNotCalled(suite.T(), "ReplaceAll", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_SourceErrorPropagates() {
	ctx := context.Background()
	suite.mockSource.On("LastTables", ctx, "A", 2).
		Return(nil, fmt.Errorf("%w: GET returned status 503", apperrors.ErrUpstream)).Once()

	_, err := suite.service.SyncRates(ctx)

	suite.Require().ErrorIs(err, apperrors.ErrUpstream)
	suite.mockStore.AssertNotCalled(suite.T(), "ReplaceAll", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_StoreErrorPropagates() {
	ctx := context.Background()
	suite.mockSource.On("LastTables", ctx, "A", 2).Return(twoTables(), nil).Once()
	suite.mockStore.On("ReplaceAll", ctx, "last_rates", mock.Anything).
		Return(nil, fmt.Errorf("%w: POST", apperrors.ErrMaxRetries)).Once()

	_, err := suite.service.SyncRates(ctx)

	suite.Require().ErrorIs(err, apperrors.ErrMaxRetries)
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_InvalidEffectiveDate() {
	ctx := context.Background()
	tables := twoTables()
	tables[1].EffectiveDate = "11.05.2023"
	suite.mockSource.On("LastTables", ctx, "A", 2).Return(tables, nil).Once()

	_, err := suite.service.SyncRates(ctx)

	suite.Require().ErrorIs(err, apperrors.ErrUpstream)
}

func TestRateSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateSyncServiceTestSuite))
}
