package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	"github.com/zbpay/payroll_processing_app/internal/dto"
)

// TaxBandReaderSvc defines read operations for tax bands.
type TaxBandReaderSvc interface {
	// ListTaxBands retrieves the bands of one logical table, ascending by minimum.
	ListTaxBands(ctx context.Context, key domain.BandTableKey) ([]domain.TaxBand, error)
}

// TaxBandWriterSvc defines validated write operations for tax bands.
// Every write is checked against sibling rows: overlapping ranges are rejected
// before persistence, so an invalid table is never stored.
type TaxBandWriterSvc interface {
	// CreateTaxBand validates and inserts a new band.
	CreateTaxBand(ctx context.Context, req dto.CreateTaxBandRequest, creatorUserID string) (*domain.TaxBand, error)

	// UpdateTaxBand validates and rewrites an existing band.
	UpdateTaxBand(ctx context.Context, bandID string, req dto.UpdateTaxBandRequest, updaterUserID string) (*domain.TaxBand, error)

	// DeleteTaxBand removes a band.
	DeleteTaxBand(ctx context.Context, bandID string) error
}

// TaxCreditSvc defines operations on tax credits.
type TaxCreditSvc interface {
	// CreateTaxCredit persists a new credit.
	CreateTaxCredit(ctx context.Context, req dto.CreateTaxCreditRequest, creatorUserID string) (*domain.TaxCredit, error)

	// ListTaxCredits retrieves all credits.
	ListTaxCredits(ctx context.Context) ([]domain.TaxCredit, error)
}

// TaxCalculatorSvc computes progressive tax for one employee and gross income.
type TaxCalculatorSvc interface {
	// CalculateTax applies the employee's credits then walks the matching band
	// table. Zero gross yields zero tax and zero effective rate.
	CalculateTax(ctx context.Context, employee domain.Employee, gross decimal.Decimal, currency string, granularity domain.TaxGranularity) (*domain.TaxComputation, error)
}

// TaxSvcFacade combines all tax-related service interfaces.
type TaxSvcFacade interface {
	TaxBandReaderSvc
	TaxBandWriterSvc
	TaxCreditSvc
	TaxCalculatorSvc
}
