package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zbpay/payroll_processing_app/internal/apperrors"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/core/services"
	"github.com/zbpay/payroll_processing_app/internal/dto"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	mockRateRepo     *MockExchangeRateRepository
	mockSplitRepo    *MockCurrencySplitRepository
	mockCenterRepo   *MockCostCenterRepository
	currencySvc      portssvc.CurrencySvcFacade
	rateSvc          portssvc.ExchangeRateSvcFacade
	splitSvc         portssvc.CurrencySplitSvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockSplitRepo = new(MockCurrencySplitRepository)
	suite.mockCenterRepo = new(MockCostCenterRepository)
	suite.currencySvc = services.NewCurrencyService(suite.mockCurrencyRepo)
	suite.rateSvc = services.NewExchangeRateService(suite.mockRateRepo, suite.currencySvc)
	suite.splitSvc = services.NewCurrencySplitService(suite.mockSplitRepo, suite.mockCenterRepo)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_UppercasesCode() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "usd", Symbol: "$", Name: "US Dollar"}

	suite.mockCurrencyRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()

	currency, err := suite.currencySvc.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("USD", currency.CurrencyCode)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_RejectsBadLength() {
	ctx := context.Background()
	currency, err := suite.currencySvc.GetCurrencyByCode(ctx, "US")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyServiceTestSuite) TestCreateExchangeRate_RejectsSamePair() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "USD",
		Rate:             decimal.NewFromInt(1),
		DateEffective:    time.Now(),
	}

	rate, err := suite.rateSvc.CreateExchangeRate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyServiceTestSuite) TestCreateExchangeRate_RejectsNonPositiveRate() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "ZWL",
		Rate:             decimal.Zero,
		DateEffective:    time.Now(),
	}

	rate, err := suite.rateSvc.CreateExchangeRate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "must be positive")
}

func (suite *CurrencyServiceTestSuite) TestConvert_SameCurrencyIsIdentity() {
	ctx := context.Background()
	amount := decimal.NewFromInt(250)

	converted, err := suite.rateSvc.Convert(ctx, amount, "USD", "USD")

	suite.Require().NoError(err)
	suite.True(converted.Equal(amount))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindExchangeRate")
}

func (suite *CurrencyServiceTestSuite) TestConvert_AppliesRate() {
	ctx := context.Background()
	rate := &domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "ZWL",
		Rate:             decimal.NewFromInt(30),
	}

	suite.mockRateRepo.On("FindExchangeRate", ctx, "USD", "ZWL").Return(rate, nil).Once()

	converted, err := suite.rateSvc.Convert(ctx, decimal.NewFromInt(100), "USD", "ZWL")

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromInt(3000)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestConvert_MissingRateFails() {
	ctx := context.Background()
	noRate := apperrors.NewAppError(404, "no rate found for pair USD/ZWL", apperrors.ErrNoExchangeRate)

	suite.mockRateRepo.On("FindExchangeRate", ctx, "USD", "ZWL").Return(nil, noRate).Once()

	converted, err := suite.rateSvc.Convert(ctx, decimal.NewFromInt(100), "USD", "ZWL")

	suite.Require().Error(err)
	suite.True(converted.IsZero())
	suite.ErrorIs(err, apperrors.ErrNoExchangeRate)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrencySplit_Success() {
	ctx := context.Background()
	centerID := uuid.NewString()
	req := dto.CreateCurrencySplitRequest{
		ZWLPercent:    decimal.NewFromInt(60),
		USDPercent:    decimal.NewFromInt(40),
		DateEffective: time.Now(),
	}

	suite.mockCenterRepo.On("FindCenterByID", ctx, centerID).Return(&domain.CostCenter{CenterID: centerID}, nil).Once()
	suite.mockSplitRepo.On("SaveCurrencySplit", ctx, mock.AnythingOfType("domain.CurrencySplit")).Return(nil).Once()

	split, err := suite.splitSvc.CreateCurrencySplit(ctx, centerID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(centerID, split.CenterID)
	suite.mockSplitRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrencySplit_RejectsBadSum() {
	ctx := context.Background()
	req := dto.CreateCurrencySplitRequest{
		ZWLPercent:    decimal.NewFromInt(60),
		USDPercent:    decimal.NewFromInt(50),
		DateEffective: time.Now(),
	}

	split, err := suite.splitSvc.CreateCurrencySplit(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(split)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "sum to 100")
	suite.mockSplitRepo.AssertNotCalled(suite.T(), "SaveCurrencySplit")
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrencySplit_AcceptsWithinTolerance() {
	ctx := context.Background()
	centerID := uuid.NewString()
	req := dto.CreateCurrencySplitRequest{
		ZWLPercent:    decimal.NewFromFloat(33.335),
		USDPercent:    decimal.NewFromFloat(66.665),
		DateEffective: time.Now(),
	}

	suite.mockCenterRepo.On("FindCenterByID", ctx, centerID).Return(&domain.CostCenter{CenterID: centerID}, nil).Once()
	suite.mockSplitRepo.On("SaveCurrencySplit", ctx, mock.AnythingOfType("domain.CurrencySplit")).Return(nil).Once()

	split, err := suite.splitSvc.CreateCurrencySplit(ctx, centerID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotNil(split)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrentSplit_FallsBackToEvenSplit() {
	ctx := context.Background()
	centerID := uuid.NewString()

	suite.mockSplitRepo.On("FindCurrentSplit", ctx, centerID).
		Return(nil, apperrors.NewNotFoundError("no split")).Once()

	split, err := suite.splitSvc.GetCurrentSplit(ctx, centerID)

	suite.Require().NoError(err)
	suite.True(split.ZWLPercent.Equal(decimal.NewFromInt(50)))
	suite.True(split.USDPercent.Equal(decimal.NewFromInt(50)))
	suite.Equal(centerID, split.CenterID)
}

func (suite *CurrencyServiceTestSuite) TestSplitSalary_Apportions() {
	split := domain.CurrencySplit{
		ZWLPercent: decimal.NewFromInt(70),
		USDPercent: decimal.NewFromInt(30),
	}

	zwl, usd := suite.splitSvc.SplitSalary(decimal.NewFromInt(1000), split)

	suite.True(zwl.Equal(decimal.NewFromInt(700)), "got %s", zwl)
	suite.True(usd.Equal(decimal.NewFromInt(300)), "got %s", usd)
}

func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
