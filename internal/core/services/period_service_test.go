package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zbpay/payroll_processing_app/internal/apperrors"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/core/services"
	"github.com/zbpay/payroll_processing_app/internal/dto"
)

type PeriodServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo  *MockPeriodRepository
	mockStatusRepo  *MockStatusRepository
	mockCurrencySvc *MockCurrencyService
	service         portssvc.PeriodSvcFacade
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockStatusRepo = new(MockStatusRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewPeriodService(suite.mockPeriodRepo, suite.mockStatusRepo, suite.mockCurrencySvc)
}

func (suite *PeriodServiceTestSuite) TestCreatePayroll_Success() {
	ctx := context.Background()
	req := dto.CreatePayrollRequest{Name: "Head Office Payroll", BaseCurrency: "USD"}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").
		Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockPeriodRepo.On("SavePayroll", ctx, mock.AnythingOfType("domain.Payroll")).Return(nil).Once()

	payroll, err := suite.service.CreatePayroll(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("USD", payroll.BaseCurrency)
	suite.NotEmpty(payroll.PayrollID)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePayroll_UnknownBaseCurrency() {
	ctx := context.Background()
	req := dto.CreatePayrollRequest{Name: "Head Office Payroll", BaseCurrency: "EUR"}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").
		Return(nil, apperrors.NewNotFoundError("currency not found")).Once()

	payroll, err := suite.service.CreatePayroll(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payroll)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePayroll")
}

func (suite *PeriodServiceTestSuite) TestGeneratePeriods_TwelveMonths() {
	ctx := context.Background()
	payrollID := uuid.NewString()
	req := dto.GeneratePeriodsRequest{Year: 2026}

	suite.mockPeriodRepo.On("FindPayrollByID", ctx, payrollID).
		Return(&domain.Payroll{PayrollID: payrollID}, nil).Once()
	suite.mockPeriodRepo.On("SavePeriods", ctx, mock.AnythingOfType("[]domain.AccountingPeriod")).Return(nil).Once()

	periods, err := suite.service.GeneratePeriods(ctx, payrollID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().Len(periods, 12)
	suite.Equal("January", periods[0].MonthName)
	suite.Equal("December", periods[11].MonthName)

	jan := periods[0]
	suite.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), jan.StartDate)
	suite.Equal(time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC), jan.EndDate)

	feb := periods[1]
	suite.Equal(time.Date(2026, time.February, 28, 23, 59, 59, 0, time.UTC), feb.EndDate)

	for _, p := range periods {
		suite.Equal(payrollID, p.PayrollID)
		suite.Equal(2026, p.Year)
		suite.True(p.EndDate.After(p.StartDate))
	}
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestGeneratePeriods_UnknownPayroll() {
	ctx := context.Background()
	payrollID := uuid.NewString()

	suite.mockPeriodRepo.On("FindPayrollByID", ctx, payrollID).
		Return(nil, apperrors.NewNotFoundError("payroll not found")).Once()

	periods, err := suite.service.GeneratePeriods(ctx, payrollID, dto.GeneratePeriodsRequest{Year: 2026}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(periods)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePeriods")
}

func (suite *PeriodServiceTestSuite) TestGeneratePeriods_DuplicateYearAbortsAll() {
	ctx := context.Background()
	payrollID := uuid.NewString()

	suite.mockPeriodRepo.On("FindPayrollByID", ctx, payrollID).
		Return(&domain.Payroll{PayrollID: payrollID}, nil).Once()
	suite.mockPeriodRepo.On("SavePeriods", ctx, mock.AnythingOfType("[]domain.AccountingPeriod")).
		Return(apperrors.NewAppError(409, "period already exists", apperrors.ErrDuplicate)).Once()

	periods, err := suite.service.GeneratePeriods(ctx, payrollID, dto.GeneratePeriodsRequest{Year: 2026}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(periods)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *PeriodServiceTestSuite) TestGetStatus_NeverRunIsPending() {
	ctx := context.Background()
	periodID := uuid.NewString()
	centerID := uuid.NewString()

	suite.mockStatusRepo.On("FindStatus", ctx, periodID, centerID).
		Return(nil, apperrors.NewNotFoundError("status not found")).Once()

	status, err := suite.service.GetStatus(ctx, periodID, centerID)

	suite.Require().NoError(err)
	suite.Nil(status)
}

func (suite *PeriodServiceTestSuite) TestGetStatus_ReturnsExistingRow() {
	ctx := context.Background()
	periodID := uuid.NewString()
	centerID := uuid.NewString()
	runAt := time.Now()
	existing := &domain.CenterPeriodStatus{
		StatusID:      uuid.NewString(),
		PeriodID:      periodID,
		CenterID:      centerID,
		CurrencyMode:  domain.ModeDefault,
		PeriodRunDate: &runAt,
	}

	suite.mockStatusRepo.On("FindStatus", ctx, periodID, centerID).Return(existing, nil).Once()

	status, err := suite.service.GetStatus(ctx, periodID, centerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(status)
	suite.Equal(domain.ProcessingProcessed, status.State())
}

func TestPeriodService(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}
