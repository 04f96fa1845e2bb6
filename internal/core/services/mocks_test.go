package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	"github.com/zbpay/payroll_processing_app/internal/dto"
)

// --- Repository mocks ---

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context, fromCode, toCode string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

type MockCurrencySplitRepository struct {
	mock.Mock
}

func (m *MockCurrencySplitRepository) SaveCurrencySplit(ctx context.Context, split domain.CurrencySplit) error {
	args := m.Called(ctx, split)
	return args.Error(0)
}

func (m *MockCurrencySplitRepository) FindCurrentSplit(ctx context.Context, centerID string) (*domain.CurrencySplit, error) {
	args := m.Called(ctx, centerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencySplit), args.Error(1)
}

func (m *MockCurrencySplitRepository) ListSplitsByCenter(ctx context.Context, centerID string) ([]domain.CurrencySplit, error) {
	args := m.Called(ctx, centerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencySplit), args.Error(1)
}

type MockCostCenterRepository struct {
	mock.Mock
}

func (m *MockCostCenterRepository) FindCenterByID(ctx context.Context, centerID string) (*domain.CostCenter, error) {
	args := m.Called(ctx, centerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterRepository) ListCenters(ctx context.Context) ([]domain.CostCenter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCenter), args.Error(1)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListActiveEmployeesByCenter(ctx context.Context, centerID string) ([]domain.Employee, error) {
	args := m.Called(ctx, centerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

type MockPeriodRepository struct {
	mock.Mock
}

func (m *MockPeriodRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	args := m.Called(ctx, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}

func (m *MockPeriodRepository) SavePayroll(ctx context.Context, payroll domain.Payroll) error {
	args := m.Called(ctx, payroll)
	return args.Error(0)
}

func (m *MockPeriodRepository) SavePeriods(ctx context.Context, periods []domain.AccountingPeriod) error {
	args := m.Called(ctx, periods)
	return args.Error(0)
}

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriodsByPayroll(ctx context.Context, payrollID string) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) FindStatus(ctx context.Context, periodID, centerID string) (*domain.CenterPeriodStatus, error) {
	args := m.Called(ctx, periodID, centerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CenterPeriodStatus), args.Error(1)
}

func (m *MockStatusRepository) ReopenStatus(ctx context.Context, periodID, centerID string, actorID string, at time.Time) error {
	args := m.Called(ctx, periodID, centerID, actorID, at)
	return args.Error(0)
}

func (m *MockStatusRepository) UnconfirmStatus(ctx context.Context, periodID, centerID string, actorID string, at time.Time) error {
	args := m.Called(ctx, periodID, centerID, actorID, at)
	return args.Error(0)
}

type MockProcessingRepository struct {
	mock.Mock
}

func (m *MockProcessingRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockProcessingRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockProcessingRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockProcessingRepository) SaveRun(ctx context.Context, status domain.CenterPeriodStatus, payslips []domain.Payslip, runAt time.Time) error {
	args := m.Called(ctx, status, payslips, runAt)
	return args.Error(0)
}

func (m *MockProcessingRepository) SaveRefresh(ctx context.Context, periodID, centerID string, mode domain.CurrencyMode, payslips []domain.Payslip, runAt time.Time, actorID string) error {
	args := m.Called(ctx, periodID, centerID, mode, payslips, runAt, actorID)
	return args.Error(0)
}

func (m *MockProcessingRepository) CloseRun(ctx context.Context, periodID, centerID string, closedAt time.Time, actorID string) (int, error) {
	args := m.Called(ctx, periodID, centerID, closedAt, actorID)
	return args.Int(0), args.Error(1)
}

type MockPayslipRepository struct {
	mock.Mock
}

func (m *MockPayslipRepository) FindPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error) {
	args := m.Called(ctx, payslipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payslip), args.Error(1)
}

func (m *MockPayslipRepository) FindTransactionsByPayslipID(ctx context.Context, payslipID string) ([]domain.PayslipTransaction, error) {
	args := m.Called(ctx, payslipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayslipTransaction), args.Error(1)
}

func (m *MockPayslipRepository) ListPayslipsByPeriodCenter(ctx context.Context, periodID, centerID string) ([]domain.Payslip, error) {
	args := m.Called(ctx, periodID, centerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payslip), args.Error(1)
}

func (m *MockPayslipRepository) UpdatePayslipStatus(ctx context.Context, payslipID string, from, to domain.PayslipStatus, updatedBy string, at time.Time) error {
	args := m.Called(ctx, payslipID, from, to, updatedBy, at)
	return args.Error(0)
}

func (m *MockPayslipRepository) DeletePayslip(ctx context.Context, payslipID string) error {
	args := m.Called(ctx, payslipID)
	return args.Error(0)
}

func (m *MockPayslipRepository) SumFinalizedForYear(ctx context.Context, employeeID, payrollID string, year int) (domain.YTDTotals, error) {
	args := m.Called(ctx, employeeID, payrollID, year)
	return args.Get(0).(domain.YTDTotals), args.Error(1)
}

type MockTaxBandRepository struct {
	mock.Mock
}

func (m *MockTaxBandRepository) SaveTaxBand(ctx context.Context, band domain.TaxBand) error {
	args := m.Called(ctx, band)
	return args.Error(0)
}

func (m *MockTaxBandRepository) UpdateTaxBand(ctx context.Context, band domain.TaxBand) error {
	args := m.Called(ctx, band)
	return args.Error(0)
}

func (m *MockTaxBandRepository) DeleteTaxBand(ctx context.Context, bandID string) error {
	args := m.Called(ctx, bandID)
	return args.Error(0)
}

func (m *MockTaxBandRepository) FindTaxBandByID(ctx context.Context, bandID string) (*domain.TaxBand, error) {
	args := m.Called(ctx, bandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxBand), args.Error(1)
}

func (m *MockTaxBandRepository) ListTaxBands(ctx context.Context, key domain.BandTableKey) ([]domain.TaxBand, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxBand), args.Error(1)
}

type MockTaxCreditRepository struct {
	mock.Mock
}

func (m *MockTaxCreditRepository) SaveTaxCredit(ctx context.Context, credit domain.TaxCredit) error {
	args := m.Called(ctx, credit)
	return args.Error(0)
}

func (m *MockTaxCreditRepository) ListTaxCredits(ctx context.Context) ([]domain.TaxCredit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxCredit), args.Error(1)
}

func (m *MockTaxCreditRepository) ListActiveTaxCredits(ctx context.Context, granularity domain.TaxGranularity) ([]domain.TaxCredit, error) {
	args := m.Called(ctx, granularity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxCredit), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) SaveEvent(ctx context.Context, event domain.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditRepository) ListRecentEvents(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEvent), args.Error(1)
}

// --- Service mocks ---

type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, fromCode, toCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

type MockCurrencySplitService struct {
	mock.Mock
}

func (m *MockCurrencySplitService) CreateCurrencySplit(ctx context.Context, centerID string, req dto.CreateCurrencySplitRequest, creatorUserID string) (*domain.CurrencySplit, error) {
	args := m.Called(ctx, centerID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencySplit), args.Error(1)
}

func (m *MockCurrencySplitService) GetCurrentSplit(ctx context.Context, centerID string) (domain.CurrencySplit, error) {
	args := m.Called(ctx, centerID)
	return args.Get(0).(domain.CurrencySplit), args.Error(1)
}

func (m *MockCurrencySplitService) ListSplitsByCenter(ctx context.Context, centerID string) ([]domain.CurrencySplit, error) {
	args := m.Called(ctx, centerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencySplit), args.Error(1)
}

func (m *MockCurrencySplitService) SplitSalary(total decimal.Decimal, split domain.CurrencySplit) (decimal.Decimal, decimal.Decimal) {
	args := m.Called(total, split)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal)
}

type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) GetCenterByID(ctx context.Context, centerID string) (*domain.CostCenter, error) {
	args := m.Called(ctx, centerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}

func (m *MockEmployeeService) ListCenters(ctx context.Context) ([]domain.CostCenter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCenter), args.Error(1)
}

func (m *MockEmployeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) ListActiveEmployeesByCenter(ctx context.Context, centerID string) ([]domain.Employee, error) {
	args := m.Called(ctx, centerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthorizeProcessing(ctx context.Context, actorID, centerID string) error {
	args := m.Called(ctx, actorID, centerID)
	return args.Error(0)
}

type MockTaxService struct {
	mock.Mock
}

func (m *MockTaxService) ListTaxBands(ctx context.Context, key domain.BandTableKey) ([]domain.TaxBand, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxBand), args.Error(1)
}

func (m *MockTaxService) CreateTaxBand(ctx context.Context, req dto.CreateTaxBandRequest, creatorUserID string) (*domain.TaxBand, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxBand), args.Error(1)
}

func (m *MockTaxService) UpdateTaxBand(ctx context.Context, bandID string, req dto.UpdateTaxBandRequest, updaterUserID string) (*domain.TaxBand, error) {
	args := m.Called(ctx, bandID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxBand), args.Error(1)
}

func (m *MockTaxService) DeleteTaxBand(ctx context.Context, bandID string) error {
	args := m.Called(ctx, bandID)
	return args.Error(0)
}

func (m *MockTaxService) CreateTaxCredit(ctx context.Context, req dto.CreateTaxCreditRequest, creatorUserID string) (*domain.TaxCredit, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxCredit), args.Error(1)
}

func (m *MockTaxService) ListTaxCredits(ctx context.Context) ([]domain.TaxCredit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxCredit), args.Error(1)
}

func (m *MockTaxService) CalculateTax(ctx context.Context, employee domain.Employee, gross decimal.Decimal, currency string, granularity domain.TaxGranularity) (*domain.TaxComputation, error) {
	args := m.Called(ctx, employee, gross, currency, granularity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxComputation), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) RecordTransition(ctx context.Context, event domain.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditService) ListRecentEvents(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEvent), args.Error(1)
}
