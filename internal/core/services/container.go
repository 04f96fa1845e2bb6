package services

import (
	portsrepo "github.com/zbpay/payroll_processing_app/internal/core/ports/repositories"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
// Construction order follows the dependency chain: currency and exchange rates
// first, then tax and splits, then the processing orchestrator on top.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	currencySvc := NewCurrencyService(repos.CurrencyRepo)
	rateSvc := NewExchangeRateService(repos.ExchangeRateRepo, currencySvc)
	splitSvc := NewCurrencySplitService(repos.CurrencySplitRepo, repos.CenterRepo)
	taxSvc := NewTaxService(repos.TaxBandRepo, repos.TaxCreditRepo, rateSvc)
	employeeSvc := NewEmployeeService(repos.CenterRepo, repos.EmployeeRepo)
	userSvc := NewUserService(repos.UserRepo, repos.CenterRepo)
	auditSvc := NewAuditService(repos.AuditRepo)
	periodSvc := NewPeriodService(repos.PeriodRepo, repos.StatusRepo, currencySvc)
	payslipSvc := NewPayslipService(repos.PayslipRepo)
	processingSvc := NewProcessingService(
		repos.ProcessingRepo,
		repos.PayslipRepo,
		repos.PeriodRepo,
		repos.StatusRepo,
		employeeSvc,
		userSvc,
		splitSvc,
		taxSvc,
		rateSvc,
		auditSvc,
	)

	return &portssvc.ServiceContainer{
		Currency:      currencySvc,
		ExchangeRate:  rateSvc,
		CurrencySplit: splitSvc,
		Tax:           taxSvc,
		Period:        periodSvc,
		Processing:    processingSvc,
		Payslip:       payslipSvc,
		Employee:      employeeSvc,
		User:          userSvc,
		Audit:         auditSvc,
	}
}
