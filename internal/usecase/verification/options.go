package verification

import (
	"time"

	"authentithief/internal/domain/product"
	"authentithief/internal/pkg/config"
	"authentithief/internal/pkg/errs"
)

const DefaultBatchSize = 20

type Options struct {
	BatchSize         int
	UseBrand          bool
	RequireExpiration bool
	KeyScheme         product.KeyScheme
	// ScanBudget bounds the whole ledger lookup. Zero disables the bound.
	ScanBudget   time.Duration
	BatchRetries int
	RetryBackoff time.Duration
}

func DefaultOptions() Options {
	return Options{
		BatchSize:         DefaultBatchSize,
		RequireExpiration: true,
		KeyScheme:         product.KeySchemeCompound,
		ScanBudget:        5 * time.Second,
		BatchRetries:      1,
		RetryBackoff:      100 * time.Millisecond,
	}
}

func OptionsFromConfig(cfg config.VerificationConfig) (Options, error) {
	scheme, err := product.ParseKeyScheme(cfg.KeyScheme)
	if err != nil {
		return Options{}, err
	}
	opts := Options{
		BatchSize:         cfg.BatchSize,
		UseBrand:          cfg.UseBrand,
		RequireExpiration: cfg.RequireExpiration,
		KeyScheme:         scheme,
		ScanBudget:        cfg.ScanBudget,
		BatchRetries:      cfg.BatchRetries,
		RetryBackoff:      cfg.RetryBackoff,
	}
	return opts.normalize()
}

func (o Options) normalize() (Options, error) {
	if o.BatchSize <= 0 {
		return Options{}, errs.Newf("batch size must be positive, got %d", o.BatchSize)
	}
	if o.BatchRetries < 0 {
		return Options{}, errs.Newf("batch retries must not be negative, got %d", o.BatchRetries)
	}
	if o.KeyScheme == "" {
		o.KeyScheme = product.KeySchemeCompound
	}
	// a brand-keyed identity is only sound when the lookup also compares brand
	if o.KeyScheme == product.KeySchemeNameBrand {
		o.UseBrand = true
	}
	return o, nil
}
