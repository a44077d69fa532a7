//go:build unit

package repository

import (
	"context"
	"testing"

	"authentithief/internal/domain/product"
	"authentithief/internal/domain/scan"
	"authentithief/internal/infra"
	sqlc "authentithief/internal/infra/sqlc/generated"
	"authentithief/internal/pkg/errs"
	"authentithief/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScanRepository_UpsertScan(t *testing.T) {
	ledgerRec := builder.NewProductBuilder().BuildLedgerRecord()
	obs := scan.NewObservation("0xkey", ledgerRec, 1_700_000_500)

	wantParams := sqlc.UpsertScanRecordParams{
		IdentityKey:                 "0xkey",
		ProductName:                 ledgerRec.Name,
		Owner:                       ledgerRec.Owner,
		RegistrationTimestamp:       ledgerRec.RegistrationTimestamp,
		ScannedAt:                   1_700_000_500,
		OriginalExpirationTimestamp: pgtype.Int8{Int64: *ledgerRec.ExpirationTimestamp, Valid: true},
	}

	tests := []struct {
		name        string
		row         sqlc.UpsertScanRecordRow
		mockError   error
		wantCreated bool
		wantTotal   int64
		wantError   bool
	}{
		{
			name: "first scan inserts",
			row: sqlc.UpsertScanRecordRow{
				IdentityKey:                 "0xkey",
				ProductName:                 ledgerRec.Name,
				Owner:                       ledgerRec.Owner,
				RegistrationTimestamp:       ledgerRec.RegistrationTimestamp,
				FirstScanTimestamp:          1_700_000_500,
				LastScanTimestamp:           1_700_000_500,
				TotalScans:                  1,
				OriginalExpirationTimestamp: wantParams.OriginalExpirationTimestamp,
				Inserted:                    true,
			},
			wantCreated: true,
			wantTotal:   1,
		},
		{
			name: "rescan updates",
			row: sqlc.UpsertScanRecordRow{
				IdentityKey:        "0xkey",
				FirstScanTimestamp: 1_700_000_100,
				LastScanTimestamp:  1_700_000_500,
				TotalScans:         4,
			},
			wantTotal: 4,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockQueries)
			mockQueries.On("UpsertScanRecord", mock.Anything, mock.Anything, wantParams).Return(tt.row, tt.mockError)

			repo := NewScanRepository(mockQueries, &fakeUoW{db: mockQueries})
			res, err := repo.UpsertScan(context.Background(), obs)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCreated, res.Created)
				assert.Equal(t, tt.wantTotal, res.Record.TotalScans)
				assert.Equal(t, product.IdentityKey("0xkey"), res.Record.Key)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestScanRepository_GetScan(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("GetScanRecord", mock.Anything, mock.Anything, "0xkey").Return(sqlc.ScanRecords{
			IdentityKey:        "0xkey",
			ProductName:        "Widget",
			FirstScanTimestamp: 10,
			LastScanTimestamp:  20,
			TotalScans:         3,
		}, nil)

		got, err := NewScanRepository(mockQueries, &fakeUoW{db: mockQueries}).GetScan(context.Background(), "0xkey")

		require.NoError(t, err)
		assert.Equal(t, "Widget", got.ProductName)
		assert.Equal(t, int64(3), got.TotalScans)
		assert.Nil(t, got.OriginalExpirationTimestamp)
	})

	t.Run("missing key", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("GetScanRecord", mock.Anything, mock.Anything, "0xmissing").Return(sqlc.ScanRecords{}, pgx.ErrNoRows)

		_, err := NewScanRepository(mockQueries, &fakeUoW{db: mockQueries}).GetScan(context.Background(), "0xmissing")

		assert.True(t, errs.Is(err, errs.ErrScanNotFound))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
