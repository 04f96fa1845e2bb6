package repositories

import (
	"context"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// TaxBandRepositoryFacade defines persistence operations for tax bands.
// Overlap validation happens in the service against the sibling rows returned
// by ListTaxBands before any write.
type TaxBandRepositoryFacade interface {
	// SaveTaxBand inserts a new band row.
	SaveTaxBand(ctx context.Context, band domain.TaxBand) error

	// UpdateTaxBand rewrites an existing band row.
	UpdateTaxBand(ctx context.Context, band domain.TaxBand) error

	// DeleteTaxBand removes a band row.
	DeleteTaxBand(ctx context.Context, bandID string) error

	// FindTaxBandByID retrieves a band by ID.
	FindTaxBandByID(ctx context.Context, bandID string) (*domain.TaxBand, error)

	// ListTaxBands retrieves all bands of one logical table, ascending by
	// minimum salary.
	ListTaxBands(ctx context.Context, key domain.BandTableKey) ([]domain.TaxBand, error)
}

// TaxCreditRepositoryFacade defines persistence operations for tax credits.
type TaxCreditRepositoryFacade interface {
	// SaveTaxCredit inserts a new credit row.
	SaveTaxCredit(ctx context.Context, credit domain.TaxCredit) error

	// ListTaxCredits retrieves all credit rows.
	ListTaxCredits(ctx context.Context) ([]domain.TaxCredit, error)

	// ListActiveTaxCredits retrieves active credits for a granularity.
	ListActiveTaxCredits(ctx context.Context, granularity domain.TaxGranularity) ([]domain.TaxCredit, error)
}
