package queries

import (
	"context"

	"authentithief/internal/domain/product"
	"authentithief/internal/domain/qrpayload"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

//go:generate mockgen -source=products.go -destination=../../../tests/mock/queries/products_mock.go -package=queriesmock

// ProductView is one ledger entry as the registry browser shows it.
type ProductView struct {
	Name                  string `json:"name"`
	Brand                 string `json:"brand,omitempty"`
	Description           string `json:"description,omitempty"`
	ExpirationTimestamp   *int64 `json:"expiration_timestamp,omitempty"`
	Owner                 string `json:"owner"`
	RegistrationTimestamp int64  `json:"registration_timestamp"`
	RegisteredDate        string `json:"registered_date"`
	TransactionRef        string `json:"transaction_ref,omitempty"`
}

type ProductPage struct {
	Items []ProductView `json:"items"`
	Page
}

type ProductQueries interface {
	ListProducts(ctx context.Context, start, count int) (*ProductPage, error)
}

type productQueriesImpl struct {
	ledger shared.Ledger
}

func NewProductQueries(ledger shared.Ledger) ProductQueries {
	return &productQueriesImpl{ledger: ledger}
}

// ListProducts reads one window of the ledger in registration order.
func (q *productQueriesImpl) ListProducts(ctx context.Context, start, count int) (*ProductPage, error) {
	if start < 0 {
		return nil, ErrInvalidStart
	}
	count = ValidateLimit(count)

	total, err := q.ledger.TotalCount(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "count ledger products")
	}

	records := []product.LedgerRecord{}
	if start < total {
		records, err = q.ledger.Paginate(ctx, start, count)
		if err != nil {
			return nil, errs.Wrap(err, "read ledger page")
		}
	}

	items, err := toProductViews(records)
	if err != nil {
		return nil, err
	}
	return &ProductPage{Items: items, Page: newPage(start, len(items), total)}, nil
}

func toProductViews(records []product.LedgerRecord) ([]ProductView, error) {
	items := make([]ProductView, 0, len(records))
	if err := copier.CopyWithOption(&items, &records, copier.Option{DeepCopy: true}); err != nil {
		return nil, errs.Wrap(err, "map ledger records")
	}
	for i := range items {
		items[i].RegisteredDate = qrpayload.FormatRegisteredDate(records[i].RegistrationTimestamp)
	}
	return items, nil
}
