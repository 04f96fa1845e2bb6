package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/zbpay/payroll_processing_app/internal/core/ports/repositories"
)

// NewRepositoryProvider constructs every pgsql repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:      NewPgxCurrencyRepository(dbPool),
		ExchangeRateRepo:  NewPgxExchangeRateRepository(dbPool),
		CurrencySplitRepo: NewPgxCurrencySplitRepository(dbPool),
		CenterRepo:        NewPgxCostCenterRepository(dbPool),
		EmployeeRepo:      NewPgxEmployeeRepository(dbPool),
		PeriodRepo:        NewPgxPeriodRepository(dbPool),
		StatusRepo:        NewPgxStatusRepository(dbPool),
		ProcessingRepo:    NewPgxProcessingRepository(dbPool),
		PayslipRepo:       NewPgxPayslipRepository(dbPool),
		TaxBandRepo:       NewPgxTaxBandRepository(dbPool),
		TaxCreditRepo:     NewPgxTaxCreditRepository(dbPool),
		UserRepo:          NewPgxUserRepository(dbPool),
		AuditRepo:         NewPgxAuditRepository(dbPool),
	}
}
