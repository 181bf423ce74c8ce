package services_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/services"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/platform/config"
)

type ConversionServiceTestSuite struct {
	suite.Suite
	mockRates *MockRatesReader
	service   *services.ConversionService
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	spreads := config.NewSpreadsConfig(map[string]config.SpreadEntry{
		"USD": {Buy: fptr(-0.10), Sell: fptr(0.11)},
		"EUR": {Buy: fptr(-0.12), Sell: fptr(0.12)},
		// Sell-only: the office never buys CZK back.
		"CZK": {Sell: fptr(0.01)},
	})
	suite.mockRates = new(MockRatesReader)
	suite.service = services.NewConversionService(suite.mockRates, services.NewSpreadCalculator(spreads), spreads)
}

func (suite *ConversionServiceTestSuite) snapshot(entries ...domain.RateEntry) {
	suite.mockRates.On("CurrentRates", mock.Anything).Return(entries, nil).Once()
}

func (suite *ConversionServiceTestSuite) TestConvert_ForeignToPLN_Mid() {
	suite.snapshot(testEntry("USD", 4.0))

	conv, err := suite.service.Convert(context.Background(), 100, "USD", "PLN", domain.OperationMid)

	suite.Require().NoError(err)
	suite.Equal(400.0, conv.Result)
	suite.Equal(4.0, conv.Rate)
	suite.Equal("USD", conv.From.String())
	suite.Equal("PLN", conv.To.String())
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvert_PLNToForeign_BuyUsesSellRateAndFloors() {
	suite.snapshot(testEntry("USD", 4.0))

	// Client buys USD, so the office's sell rate 4.11 applies.
	// 100 / 4.11 = 24.3309..., floored in the house's favor.
	conv, err := suite.service.Convert(context.Background(), 100, "PLN", "USD", domain.OperationBuy)

	suite.Require().NoError(err)
	suite.Equal(24.33, conv.Result)
	suite.Equal(4.11, conv.Rate)
}

func (suite *ConversionServiceTestSuite) TestConvert_ForeignToPLN_SellUsesBuyRateAndCeils() {
	suite.snapshot(testEntry("USD", 4.0))

	// Client sells USD, so the office's buy rate 3.90 applies.
	// 33.33 * 3.90 = 129.987, ceiled on payout.
	conv, err := suite.service.Convert(context.Background(), 33.33, "USD", "PLN", domain.OperationSell)

	suite.Require().NoError(err)
	suite.Equal(129.99, conv.Result)
	suite.Equal(3.90, conv.Rate)
}

func (suite *ConversionServiceTestSuite) TestConvert_CrossPair_PivotsThroughPLN() {
	suite.snapshot(testEntry("USD", 4.0), testEntry("EUR", 4.5))

	// 100 USD -> PLN -> EUR at mid: 100 * 4.0 / 4.5 = 88.888..., half-up.
	conv, err := suite.service.Convert(context.Background(), 100, "USD", "EUR", domain.OperationMid)

	suite.Require().NoError(err)
	suite.Equal(88.89, conv.Result)
	suite.InDelta(4.0/4.5, conv.Rate, 1e-12)
}

func (suite *ConversionServiceTestSuite) TestConvert_PLNToPLN_IdentityWithoutRounding() {
	conv, err := suite.service.Convert(context.Background(), 123.456, "PLN", "PLN", domain.OperationBuy)

	suite.Require().NoError(err)
	suite.Equal(123.456, conv.Result, "identity conversion must not round")
	suite.Equal(1.0, conv.Rate)
	suite.mockRates.AssertNotCalled(suite.T(), "CurrentRates", mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvert_MissingSpreadSide_OperationUnavailable() {
	// CZK has no buy spread configured, so a client buy is rejected before the
	// snapshot is even consulted.
	_, err := suite.service.Convert(context.Background(), 100, "PLN", "CZK", domain.OperationBuy)

	suite.Require().ErrorIs(err, apperrors.ErrOperationUnavailable)
	suite.Contains(err.Error(), "CZK")
	suite.mockRates.AssertNotCalled(suite.T(), "CurrentRates", mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvert_SellOnlyCurrency_SellWorks() {
	suite.snapshot(testEntry("CZK", 0.19))

	// Client sells CZK; only the sell spread exists, and the pricing falls back
	// to mid because no buy spread can be derived.
	conv, err := suite.service.Convert(context.Background(), 100, "CZK", "PLN", domain.OperationSell)

	suite.Require().NoError(err)
	suite.Equal(19.0, conv.Result)
	suite.Equal(0.19, conv.Rate)
}

func (suite *ConversionServiceTestSuite) TestConvert_CurrencyMissingFromSnapshot() {
	suite.snapshot(testEntry("USD", 4.0))

	_, err := suite.service.Convert(context.Background(), 100, "PLN", "CZK", domain.OperationMid)

	suite.Require().ErrorIs(err, apperrors.ErrCurrencyUnavailable)
	suite.Contains(err.Error(), "CZK")
}

func (suite *ConversionServiceTestSuite) TestConvert_CrossPair_ChecksBothLegs() {
	// Buy operation needs a buy spread on both legs; CZK has none.
	_, err := suite.service.Convert(context.Background(), 100, "USD", "CZK", domain.OperationBuy)

	suite.Require().ErrorIs(err, apperrors.ErrOperationUnavailable)
}

func (suite *ConversionServiceTestSuite) TestConvert_InvalidAmounts() {
	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := suite.service.Convert(context.Background(), amount, "USD", "PLN", domain.OperationMid)
		suite.ErrorIs(err, apperrors.ErrValidation, "amount %v", amount)
	}
	suite.mockRates.AssertNotCalled(suite.T(), "CurrentRates", mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvert_InvalidCurrencyAndOperation() {
	_, err := suite.service.Convert(context.Background(), 100, "DOLLARS", "PLN", domain.OperationMid)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Convert(context.Background(), 100, "USD", "PLN", domain.Operation("swap"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ConversionServiceTestSuite) TestConvert_LowercaseCodesAccepted() {
	suite.snapshot(testEntry("USD", 4.0))

	conv, err := suite.service.Convert(context.Background(), 100, "usd", "pln", domain.OperationMid)

	suite.Require().NoError(err)
	suite.Equal("USD", conv.From.String())
	suite.Equal(400.0, conv.Result)
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
