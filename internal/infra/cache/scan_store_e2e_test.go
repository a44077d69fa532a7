//go:build e2e

package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"authentithief/internal/domain/scan"
	"authentithief/internal/infra/cache"
	"authentithief/internal/pkg/errs"
	"authentithief/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestScanStore_Redis(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	client, err := cache.Connect(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := cache.NewScanStore(client, "test:scan:")
	obs := scan.NewObservation("0xkey", builder.NewProductBuilder().BuildLedgerRecord(), 1_700_000_100)

	_, err = store.GetScan(ctx, obs.Key)
	require.ErrorIs(t, err, errs.ErrScanNotFound)

	first, err := store.UpsertScan(ctx, obs)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, obs.Insert(), first.Record)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			later := obs
			later.Now = 1_700_000_200
			res, err := store.UpsertScan(ctx, later)
			assert.NoError(t, err)
			assert.False(t, res.Created)
		}()
	}
	wg.Wait()

	got, err := store.GetScan(ctx, obs.Key)
	require.NoError(t, err)
	assert.Equal(t, int64(51), got.TotalScans)
	assert.Equal(t, int64(1_700_000_100), got.FirstScanTimestamp)
	assert.Equal(t, int64(1_700_000_200), got.LastScanTimestamp)
	assert.Equal(t, obs.OriginalExpirationTimestamp, got.OriginalExpirationTimestamp)
}
