package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CurrencyRepo      CurrencyRepositoryFacade
	ExchangeRateRepo  ExchangeRateRepositoryFacade
	CurrencySplitRepo CurrencySplitRepositoryFacade
	CenterRepo        CostCenterRepositoryFacade
	EmployeeRepo      EmployeeRepositoryFacade
	PeriodRepo        PeriodRepositoryFacade
	StatusRepo        StatusRepositoryFacade
	ProcessingRepo    ProcessingRepositoryFacade
	PayslipRepo       PayslipRepositoryFacade
	TaxBandRepo       TaxBandRepositoryFacade
	TaxCreditRepo     TaxCreditRepositoryFacade
	UserRepo          UserRepositoryFacade
	AuditRepo         AuditRepositoryFacade
}
