//go:build unit

package docstore

import (
	"testing"

	"authentithief/internal/domain/scan"
	"authentithief/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUpsertUpdate(t *testing.T) {
	t.Run("expiring product", func(t *testing.T) {
		obs := scan.NewObservation("0xkey", builder.NewProductBuilder().BuildLedgerRecord(), 1_700_000_100)
		update := upsertUpdate(obs)

		require.Len(t, update, 3)
		assert.Equal(t, "$setOnInsert", update[0].Key)
		onInsert := update[0].Value.(bson.D).Map()
		assert.Equal(t, int64(1_700_000_100), onInsert["first_scan_timestamp"])
		assert.Equal(t, *obs.OriginalExpirationTimestamp, onInsert["original_expiration_timestamp"])

		assert.Equal(t, bson.D{{Key: "last_scan_timestamp", Value: int64(1_700_000_100)}}, update[1].Value)
		assert.Equal(t, bson.D{{Key: "total_scans", Value: int64(1)}}, update[2].Value)
	})

	t.Run("non-expiring product omits the expiration", func(t *testing.T) {
		obs := scan.NewObservation("0xkey", builder.NewProductBuilder().NonExpiring().BuildLedgerRecord(), 1)
		onInsert := upsertUpdate(obs)[0].Value.(bson.D).Map()
		assert.NotContains(t, onInsert, "original_expiration_timestamp")
	})
}

func TestScanDocument_ToRecord(t *testing.T) {
	exp := int64(99)
	doc := scanDocument{
		IdentityKey:                 "0xkey",
		ProductName:                 "Widget",
		FirstScanTimestamp:          1,
		LastScanTimestamp:           2,
		TotalScans:                  2,
		OriginalExpirationTimestamp: &exp,
	}
	rec := doc.toRecord()
	assert.Equal(t, "0xkey", rec.Key.String())
	assert.Equal(t, int64(2), rec.TotalScans)
	assert.Equal(t, &exp, rec.OriginalExpirationTimestamp)
}
