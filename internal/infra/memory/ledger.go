// Package memory holds in-process ledger and scan store implementations for
// local runs and tests.
package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"authentithief/internal/domain/product"
	"authentithief/internal/pkg/clock"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/pkg/keccak"
	"authentithief/internal/usecase/shared"
)

// Ledger is an append-only registry with per-owner balances. Owners that were
// never funded start at the default balance.
type Ledger struct {
	mu             sync.RWMutex
	records        []product.LedgerRecord
	balances       map[string]int64
	defaultBalance int64
	clock          clock.Clock
}

var _ shared.Ledger = (*Ledger)(nil)

func NewLedger(clk clock.Clock, defaultBalance int64) *Ledger {
	return &Ledger{
		balances:       make(map[string]int64),
		defaultBalance: defaultBalance,
		clock:          clk,
	}
}

func (l *Ledger) Register(ctx context.Context, req shared.RegisterRequest) (product.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return product.Receipt{}, errs.Mark(errs.Wrap(err, "registration aborted"), errs.ErrLedgerRejected)
	}
	rec, owner, err := req.Normalize()
	if err != nil {
		return product.Receipt{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balanceLocked(owner)
	if req.Fee > balance {
		return product.Receipt{}, errs.Wrapf(errs.ErrInsufficientFunds, "balance %d, fee %d", balance, req.Fee)
	}
	l.balances[owner] = balance - req.Fee

	ts := l.clock.Now().Unix()
	receipt := product.Receipt{
		Owner:                 owner,
		RegistrationTimestamp: ts,
		TransactionRef: keccak.Hex(
			"register",
			owner,
			strconv.Itoa(len(l.records)),
			strconv.FormatInt(ts, 10),
			rec.Name,
		),
	}
	l.records = append(l.records, product.LedgerRecord{Record: rec, Receipt: receipt})
	return receipt, nil
}

func (l *Ledger) Paginate(ctx context.Context, start, count int) ([]product.LedgerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.Mark(err, errs.ErrLedgerNetwork)
	}
	if start < 0 || count <= 0 {
		return nil, errs.Mark(errs.Newf("invalid page start=%d count=%d", start, count), errs.ErrValidation)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if start >= len(l.records) {
		return []product.LedgerRecord{}, nil
	}
	end := min(start+count, len(l.records))
	out := make([]product.LedgerRecord, end-start)
	copy(out, l.records[start:end])
	return out, nil
}

func (l *Ledger) TotalCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errs.Mark(err, errs.ErrLedgerNetwork)
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records), nil
}

func (l *Ledger) Balance(owner string) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balanceLocked(strings.ToLower(strings.TrimSpace(owner)))
}

// SetBalance overrides an owner's balance.
func (l *Ledger) SetBalance(owner string, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[strings.ToLower(strings.TrimSpace(owner))] = amount
}

func (l *Ledger) balanceLocked(owner string) int64 {
	if b, ok := l.balances[owner]; ok {
		return b
	}
	return l.defaultBalance
}
