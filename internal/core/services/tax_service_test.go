package services_test

import (
	"context"
	"testing"

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

type TaxServiceTestSuite struct {
	suite.Suite
	mockBandRepo   *MockTaxBandRepository
	mockCreditRepo *MockTaxCreditRepository
	mockRateSvc    *MockExchangeRateService
	service        portssvc.TaxSvcFacade
}

func (suite *TaxServiceTestSuite) SetupTest() {
	suite.mockBandRepo = new(MockTaxBandRepository)
	suite.mockCreditRepo = new(MockTaxCreditRepository)
	suite.mockRateSvc = new(MockExchangeRateService)
	suite.service = services.NewTaxService(suite.mockBandRepo, suite.mockCreditRepo, suite.mockRateSvc)
}

func monthlyUSDBand(min, max, rate float64) domain.TaxBand {
	maxSalary := decimal.NewFromFloat(max)
	return domain.TaxBand{
		BandID:      uuid.NewString(),
		Currency:    domain.CurrencyUSD,
		Granularity: domain.GranularityMonthly,
		MinSalary:   decimal.NewFromFloat(min),
		MaxSalary:   &maxSalary,
		Rate:        decimal.NewFromFloat(rate),
		FixedAmount: decimal.Zero,
	}
}

func (suite *TaxServiceTestSuite) TestCreateTaxBand_Success() {
	ctx := context.Background()
	req := dto.CreateTaxBandRequest{
		Currency:    domain.CurrencyUSD,
		Granularity: "MONTHLY",
		MinSalary:   decimal.NewFromInt(0),
		Rate:        decimal.NewFromFloat(0.2),
	}

	suite.mockBandRepo.On("ListTaxBands", ctx, domain.BandTableKey{Currency: domain.CurrencyUSD, Granularity: domain.GranularityMonthly}).
		Return([]domain.TaxBand{}, nil).Once()
	suite.mockBandRepo.On("SaveTaxBand", ctx, mock.AnythingOfType("domain.TaxBand")).Return(nil).Once()

	band, err := suite.service.CreateTaxBand(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(band)
	suite.NotEmpty(band.BandID)
	suite.Nil(band.MaxSalary)
	suite.mockBandRepo.AssertExpectations(suite.T())
}

func (suite *TaxServiceTestSuite) TestCreateTaxBand_RejectsOverlap() {
	ctx := context.Background()
	existing := monthlyUSDBand(0, 3000, 0.2)
	max := decimal.NewFromInt(5000)
	req := dto.CreateTaxBandRequest{
		Currency:    domain.CurrencyUSD,
		Granularity: "MONTHLY",
		MinSalary:   decimal.NewFromInt(2000), // overlaps [0, 3000)
		MaxSalary:   &max,
		Rate:        decimal.NewFromFloat(0.25),
	}

	suite.mockBandRepo.On("ListTaxBands", ctx, mock.Anything).Return([]domain.TaxBand{existing}, nil).Once()

	band, err := suite.service.CreateTaxBand(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(band)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "overlaps")
	suite.mockBandRepo.AssertNotCalled(suite.T(), "SaveTaxBand")
}

func (suite *TaxServiceTestSuite) TestCreateTaxBand_RejectsInvertedRange() {
	ctx := context.Background()
	max := decimal.NewFromInt(100)
	req := dto.CreateTaxBandRequest{
		Currency:    domain.CurrencyZWL,
		Granularity: "MONTHLY",
		MinSalary:   decimal.NewFromInt(500),
		MaxSalary:   &max,
		Rate:        decimal.NewFromFloat(0.2),
	}

	band, err := suite.service.CreateTaxBand(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(band)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TaxServiceTestSuite) TestCreateTaxBand_RejectsRateAboveOne() {
	ctx := context.Background()
	req := dto.CreateTaxBandRequest{
		Currency:    domain.CurrencyUSD,
		Granularity: "ANNUAL",
		MinSalary:   decimal.Zero,
		Rate:        decimal.NewFromFloat(1.5),
	}

	band, err := suite.service.CreateTaxBand(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(band)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "between 0 and 1")
}

func (suite *TaxServiceTestSuite) TestUpdateTaxBand_SkipsSelfInOverlapCheck() {
	ctx := context.Background()
	existing := monthlyUSDBand(0, 3000, 0.2)
	max := decimal.NewFromInt(2500)
	req := dto.UpdateTaxBandRequest{
		MinSalary:   decimal.Zero,
		MaxSalary:   &max,
		Rate:        decimal.NewFromFloat(0.22),
		FixedAmount: decimal.Zero,
	}

	suite.mockBandRepo.On("FindTaxBandByID", ctx, existing.BandID).Return(&existing, nil).Once()
	// The sibling list still contains the old version of the band being updated.
	suite.mockBandRepo.On("ListTaxBands", ctx, mock.Anything).Return([]domain.TaxBand{existing}, nil).Once()
	suite.mockBandRepo.On("UpdateTaxBand", ctx, mock.AnythingOfType("domain.TaxBand")).Return(nil).Once()

	band, err := suite.service.UpdateTaxBand(ctx, existing.BandID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(band)
	suite.True(band.Rate.Equal(decimal.NewFromFloat(0.22)))
	suite.mockBandRepo.AssertExpectations(suite.T())
}

func (suite *TaxServiceTestSuite) TestListTaxBands_RejectsUnknownTable() {
	ctx := context.Background()
	key := domain.BandTableKey{Currency: "EUR", Granularity: domain.GranularityMonthly}

	bands, err := suite.service.ListTaxBands(ctx, key)

	suite.Require().Error(err)
	suite.Nil(bands)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TaxServiceTestSuite) TestCalculateTax_ZeroGross() {
	ctx := context.Background()
	employee := domain.Employee{EmployeeID: uuid.NewString()}

	suite.mockCreditRepo.On("ListActiveTaxCredits", ctx, domain.GranularityMonthly).Return([]domain.TaxCredit{}, nil).Once()
	suite.mockBandRepo.On("ListTaxBands", ctx, mock.Anything).Return([]domain.TaxBand{monthlyUSDBand(0, 3000, 0.2)}, nil).Once()

	comp, err := suite.service.CalculateTax(ctx, employee, decimal.Zero, domain.CurrencyUSD, domain.GranularityMonthly)

	suite.Require().NoError(err)
	suite.True(comp.Tax.IsZero())
	suite.True(comp.EffectiveRate.IsZero())
	suite.True(comp.TaxableIncome.IsZero())
}

func (suite *TaxServiceTestSuite) TestCalculateTax_ProgressiveBands() {
	ctx := context.Background()
	employee := domain.Employee{EmployeeID: uuid.NewString()}
	bands := []domain.TaxBand{
		monthlyUSDBand(0, 3000, 0.2),
		monthlyUSDBand(3000, 10000, 0.25),
	}

	suite.mockCreditRepo.On("ListActiveTaxCredits", ctx, domain.GranularityMonthly).Return([]domain.TaxCredit{}, nil).Once()
	suite.mockBandRepo.On("ListTaxBands", ctx, mock.Anything).Return(bands, nil).Once()

	comp, err := suite.service.CalculateTax(ctx, employee, decimal.NewFromInt(5000), domain.CurrencyUSD, domain.GranularityMonthly)

	suite.Require().NoError(err)
	// 3000 * 0.20 + 2000 * 0.25 = 1100
	suite.True(comp.Tax.Equal(decimal.NewFromInt(1100)), "got %s", comp.Tax)
	suite.True(comp.EffectiveRate.Equal(decimal.NewFromFloat(0.22)), "got %s", comp.EffectiveRate)
}

func (suite *TaxServiceTestSuite) TestCalculateTax_BelowLowestBandUntaxed() {
	ctx := context.Background()
	employee := domain.Employee{EmployeeID: uuid.NewString()}
	bands := []domain.TaxBand{monthlyUSDBand(1000, 5000, 0.2)}

	suite.mockCreditRepo.On("ListActiveTaxCredits", ctx, domain.GranularityMonthly).Return([]domain.TaxCredit{}, nil).Once()
	suite.mockBandRepo.On("ListTaxBands", ctx, mock.Anything).Return(bands, nil).Once()

	comp, err := suite.service.CalculateTax(ctx, employee, decimal.NewFromInt(800), domain.CurrencyUSD, domain.GranularityMonthly)

	suite.Require().NoError(err)
	suite.True(comp.Tax.IsZero())
}

func (suite *TaxServiceTestSuite) TestCalculateTax_OpenEndedTopBand() {
	ctx := context.Background()
	employee := domain.Employee{EmployeeID: uuid.NewString()}
	top := domain.TaxBand{
		BandID:      uuid.NewString(),
		Currency:    domain.CurrencyUSD,
		Granularity: domain.GranularityMonthly,
		MinSalary:   decimal.NewFromInt(10000),
		MaxSalary:   nil,
		Rate:        decimal.NewFromFloat(0.4),
		FixedAmount: decimal.NewFromInt(50),
	}
	bands := []domain.TaxBand{monthlyUSDBand(0, 10000, 0.2), top}

	suite.mockCreditRepo.On("ListActiveTaxCredits", ctx, domain.GranularityMonthly).Return([]domain.TaxCredit{}, nil).Once()
	suite.mockBandRepo.On("ListTaxBands", ctx, mock.Anything).Return(bands, nil).Once()

	comp, err := suite.service.CalculateTax(ctx, employee, decimal.NewFromInt(15000), domain.CurrencyUSD, domain.GranularityMonthly)

	suite.Require().NoError(err)
	// 10000*0.20 + 5000*0.40 + 50 fixed = 4050
	suite.True(comp.Tax.Equal(decimal.NewFromInt(4050)), "got %s", comp.Tax)
}

func (suite *TaxServiceTestSuite) TestCalculateTax_CreditsReduceTaxable() {
	ctx := context.Background()
	employee := domain.Employee{EmployeeID: uuid.NewString(), Dependents: 2, HasDisability: true}
	credits := []domain.TaxCredit{
		{Name: domain.CreditPersonal, Amount: decimal.NewFromInt(100), CurrencyCode: domain.CurrencyUSD, Granularity: domain.GranularityMonthly, IsActive: true},
		{Name: domain.CreditChild, Amount: decimal.NewFromInt(50), CurrencyCode: domain.CurrencyUSD, Granularity: domain.GranularityMonthly, IsActive: true},
		{Name: domain.CreditDisability, Amount: decimal.NewFromInt(75), CurrencyCode: domain.CurrencyUSD, Granularity: domain.GranularityMonthly, IsActive: true},
	}

	suite.mockCreditRepo.On("ListActiveTaxCredits", ctx, domain.GranularityMonthly).Return(credits, nil).Once()
	suite.mockRateSvc.On("Convert", ctx, decimal.NewFromInt(100), domain.CurrencyUSD, domain.CurrencyUSD).Return(decimal.NewFromInt(100), nil).Once()
	suite.mockRateSvc.On("Convert", ctx, decimal.NewFromInt(50), domain.CurrencyUSD, domain.CurrencyUSD).Return(decimal.NewFromInt(50), nil).Once()
	suite.mockRateSvc.On("Convert", ctx, decimal.NewFromInt(75), domain.CurrencyUSD, domain.CurrencyUSD).Return(decimal.NewFromInt(75), nil).Once()
	suite.mockBandRepo.On("ListTaxBands", ctx, mock.Anything).Return([]domain.TaxBand{monthlyUSDBand(0, 10000, 0.2)}, nil).Once()

	comp, err := suite.service.CalculateTax(ctx, employee, decimal.NewFromInt(1000), domain.CurrencyUSD, domain.GranularityMonthly)

	suite.Require().NoError(err)
	// credits: 100 + 2*50 + 75 = 275; taxable 725; tax 145
	suite.True(comp.TotalCredits.Equal(decimal.NewFromInt(275)), "got %s", comp.TotalCredits)
	suite.True(comp.TaxableIncome.Equal(decimal.NewFromInt(725)))
	suite.True(comp.Tax.Equal(decimal.NewFromInt(145)), "got %s", comp.Tax)
	suite.Len(comp.CreditsApplied, 3)
}

func (suite *TaxServiceTestSuite) TestCalculateTax_CreditsExceedGross() {
	ctx := context.Background()
	employee := domain.Employee{EmployeeID: uuid.NewString()}
	credits := []domain.TaxCredit{
		{Name: domain.CreditPersonal, Amount: decimal.NewFromInt(500), CurrencyCode: domain.CurrencyUSD, Granularity: domain.GranularityMonthly, IsActive: true},
	}

	suite.mockCreditRepo.On("ListActiveTaxCredits", ctx, domain.GranularityMonthly).Return(credits, nil).Once()
	suite.mockRateSvc.On("Convert", ctx, decimal.NewFromInt(500), domain.CurrencyUSD, domain.CurrencyUSD).Return(decimal.NewFromInt(500), nil).Once()
	suite.mockBandRepo.On("ListTaxBands", ctx, mock.Anything).Return([]domain.TaxBand{monthlyUSDBand(0, 10000, 0.2)}, nil).Once()

	comp, err := suite.service.CalculateTax(ctx, employee, decimal.NewFromInt(300), domain.CurrencyUSD, domain.GranularityMonthly)

	suite.Require().NoError(err)
	suite.True(comp.TaxableIncome.IsZero())
	suite.True(comp.Tax.IsZero())
}

func (suite *TaxServiceTestSuite) TestCalculateTax_RejectsNegativeGross() {
	ctx := context.Background()
	comp, err := suite.service.CalculateTax(ctx, domain.Employee{}, decimal.NewFromInt(-1), domain.CurrencyUSD, domain.GranularityMonthly)

	suite.Require().Error(err)
	suite.Nil(comp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TaxServiceTestSuite) TestCreateTaxCredit_RejectsNegativeAmount() {
	ctx := context.Background()
	req := dto.CreateTaxCreditRequest{
		Name:         domain.CreditPersonal,
		Amount:       decimal.NewFromInt(-10),
		CurrencyCode: domain.CurrencyUSD,
		Granularity:  "MONTHLY",
	}

	credit, err := suite.service.CreateTaxCredit(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(credit)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestTaxService(t *testing.T) {
	suite.Run(t, new(TaxServiceTestSuite))
}
