//go:build unit

package cache

import (
	"testing"

	"authentithief/internal/domain/scan"
	"authentithief/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFromHash(t *testing.T) {
	exp := int64(1_702_592_000)

	tests := []struct {
		name    string
		data    map[string]string
		want    scan.Record
		wantErr bool
	}{
		{
			name: "expiring product",
			data: map[string]string{
				fieldProductName:    "Widget",
				fieldOwner:          "0xabc",
				fieldRegisteredAt:   "1700000000",
				fieldFirstScan:      "1700000100",
				fieldLastScan:       "1700000200",
				fieldTotalScans:     "3",
				fieldOrigExpiration: "1702592000",
			},
			want: scan.Record{
				Key:                         "0xkey",
				ProductName:                 "Widget",
				Owner:                       "0xabc",
				RegistrationTimestamp:       1_700_000_000,
				FirstScanTimestamp:          1_700_000_100,
				LastScanTimestamp:           1_700_000_200,
				TotalScans:                  3,
				OriginalExpirationTimestamp: &exp,
			},
		},
		{
			name: "non-expiring product",
			data: map[string]string{
				fieldProductName:  "Widget",
				fieldRegisteredAt: "1",
				fieldFirstScan:    "2",
				fieldLastScan:     "2",
				fieldTotalScans:   "1",
			},
			want: scan.Record{
				Key:                   "0xkey",
				ProductName:           "Widget",
				RegistrationTimestamp: 1,
				FirstScanTimestamp:    2,
				LastScanTimestamp:     2,
				TotalScans:            1,
			},
		},
		{
			name: "corrupt counter",
			data: map[string]string{
				fieldRegisteredAt: "1",
				fieldFirstScan:    "2",
				fieldLastScan:     "2",
				fieldTotalScans:   "many",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := recordFromHash("0xkey", tt.data)
			if tt.wantErr {
				assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPairsToMap(t *testing.T) {
	got, err := pairsToMap([]string{"a", "1", fieldCreated, "1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", fieldCreated: "1"}, got)

	_, err = pairsToMap([]string{"dangling"})
	assert.Error(t, err)
}
