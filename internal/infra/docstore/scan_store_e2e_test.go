//go:build e2e

package docstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"authentithief/internal/domain/scan"
	"authentithief/internal/infra/docstore"
	"authentithief/internal/pkg/errs"
	"authentithief/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
)

func TestScanStore_Mongo(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcmongo.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	client, err := docstore.Connect(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	store, err := docstore.NewScanStore(ctx, client.Database("scan_e2e"))
	require.NoError(t, err)

	obs := scan.NewObservation("0xkey", builder.NewProductBuilder().BuildLedgerRecord(), 1_700_000_100)

	_, err = store.GetScan(ctx, obs.Key)
	require.ErrorIs(t, err, errs.ErrScanNotFound)

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := store.UpsertScan(ctx, obs)
			if assert.NoError(t, err) && res.Created {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	got, err := store.GetScan(ctx, obs.Key)
	require.NoError(t, err)
	assert.Equal(t, int64(20), got.TotalScans)
	assert.Equal(t, obs.OriginalExpirationTimestamp, got.OriginalExpirationTimestamp)
}
