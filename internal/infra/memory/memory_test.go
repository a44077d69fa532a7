//go:build unit

package memory_test

import (
	"context"
	"sync"
	"testing"

	"authentithief/internal/domain/product"
	"authentithief/internal/domain/scan"
	"authentithief/internal/infra/memory"
	"authentithief/internal/pkg/clock"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/usecase/shared"
	"authentithief/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger(t *testing.T) {
	ctx := context.Background()

	newLedger := func(n int) *memory.Ledger {
		l := memory.NewLedger(clock.NewMockClockUnix(builder.DefaultRegisteredAt), 10_000)
		for i := range n {
			_, err := l.Register(ctx, shared.RegisterRequest{
				Record: builder.NewProductBuilder().WithName("product-" + string(rune('a'+i))).BuildRecord(),
				Owner:  builder.DefaultOwner,
			})
			require.NoError(t, err)
		}
		return l
	}

	t.Run("register returns a receipt and debits the fee", func(t *testing.T) {
		l := newLedger(0)
		receipt, err := l.Register(ctx, shared.RegisterRequest{
			Record: builder.NewProductBuilder().BuildRecord(),
			Owner:  "0xA918AD6F552D4D91D44FEED9BE4D03A439FA04B1",
			Fee:    1_000,
		})
		require.NoError(t, err)
		assert.Equal(t, builder.DefaultOwner, receipt.Owner)
		assert.Equal(t, builder.DefaultRegisteredAt, receipt.RegistrationTimestamp)
		assert.Len(t, receipt.TransactionRef, 66)
		assert.Equal(t, int64(9_000), l.Balance(builder.DefaultOwner))
	})

	t.Run("fee above balance is insufficient funds", func(t *testing.T) {
		l := newLedger(0)
		l.SetBalance(builder.DefaultOwner, 10)
		_, err := l.Register(ctx, shared.RegisterRequest{Record: builder.NewProductBuilder().BuildRecord(), Owner: builder.DefaultOwner, Fee: 11})
		require.ErrorIs(t, err, errs.ErrInsufficientFunds)

		total, err := l.TotalCount(ctx)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Equal(t, int64(10), l.Balance(builder.DefaultOwner))
	})

	t.Run("aborted registration is rejected", func(t *testing.T) {
		l := newLedger(0)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := l.Register(cctx, shared.RegisterRequest{Record: builder.NewProductBuilder().BuildRecord(), Owner: builder.DefaultOwner})
		assert.True(t, errs.Is(err, errs.ErrLedgerRejected))
	})

	t.Run("invalid record never reaches the ledger", func(t *testing.T) {
		l := newLedger(0)
		_, err := l.Register(ctx, shared.RegisterRequest{Record: builder.NewProductBuilder().WithName("").BuildRecord(), Owner: builder.DefaultOwner})
		require.ErrorIs(t, err, product.ErrEmptyName)
	})

	t.Run("paginate windows", func(t *testing.T) {
		l := newLedger(5)

		page, err := l.Paginate(ctx, 0, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "product-a", page[0].Name)

		tail, err := l.Paginate(ctx, 4, 20)
		require.NoError(t, err)
		require.Len(t, tail, 1)
		assert.Equal(t, "product-e", tail[0].Name)

		empty, err := l.Paginate(ctx, 99, 20)
		require.NoError(t, err)
		assert.Empty(t, empty)

		_, err = l.Paginate(ctx, -1, 20)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		_, err = l.Paginate(ctx, 0, 0)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("paginate returns copies", func(t *testing.T) {
		l := newLedger(1)
		page, err := l.Paginate(ctx, 0, 1)
		require.NoError(t, err)
		page[0].Name = "tampered"

		again, err := l.Paginate(ctx, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, "product-a", again[0].Name)
	})
}

func TestScanStore(t *testing.T) {
	ctx := context.Background()
	obs := scan.NewObservation("0xkey", builder.NewProductBuilder().BuildLedgerRecord(), 100)

	t.Run("get on an unknown key", func(t *testing.T) {
		_, err := memory.NewScanStore().GetScan(ctx, "0xmissing")
		require.ErrorIs(t, err, errs.ErrScanNotFound)
	})

	t.Run("insert then update", func(t *testing.T) {
		s := memory.NewScanStore()
		first, err := s.UpsertScan(ctx, obs)
		require.NoError(t, err)
		assert.True(t, first.Created)
		assert.Equal(t, int64(1), first.Record.TotalScans)

		later := obs
		later.Now = 200
		second, err := s.UpsertScan(ctx, later)
		require.NoError(t, err)
		assert.False(t, second.Created)
		assert.Equal(t, int64(2), second.Record.TotalScans)
		assert.Equal(t, int64(100), second.Record.FirstScanTimestamp)
		assert.Equal(t, int64(200), second.Record.LastScanTimestamp)

		got, err := s.GetScan(ctx, obs.Key)
		require.NoError(t, err)
		assert.Equal(t, second.Record, *got)
	})

	t.Run("concurrent upserts", func(t *testing.T) {
		s := memory.NewScanStore()
		var wg sync.WaitGroup
		for range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.UpsertScan(ctx, obs)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := s.GetScan(ctx, obs.Key)
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.TotalScans)
	})
}
