package cache

import (
	"context"
	"strconv"

	"authentithief/internal/domain/product"
	"authentithief/internal/domain/scan"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const (
	fieldProductName    = "product_name"
	fieldOwner          = "owner"
	fieldRegisteredAt   = "registration_timestamp"
	fieldFirstScan      = "first_scan_timestamp"
	fieldLastScan       = "last_scan_timestamp"
	fieldTotalScans     = "total_scans"
	fieldOrigExpiration = "original_expiration_timestamp"

	// fieldCreated is appended to the script reply only; it is never stored.
	fieldCreated = "_created"
)

// upsertScript applies one observation to the scan hash. Redis runs scripts
// atomically, so concurrent scans of one key never lose an increment.
//
// KEYS[1] scan hash
// ARGV    product name, owner, registration ts, now, original expiration ("" for none)
var upsertScript = redis.NewScript(`
local created = 0
if redis.call('EXISTS', KEYS[1]) == 0 then
  redis.call('HSET', KEYS[1],
    'product_name', ARGV[1],
    'owner', ARGV[2],
    'registration_timestamp', ARGV[3],
    'first_scan_timestamp', ARGV[4],
    'last_scan_timestamp', ARGV[4],
    'total_scans', 1)
  if ARGV[5] ~= '' then
    redis.call('HSET', KEYS[1], 'original_expiration_timestamp', ARGV[5])
  end
  created = 1
else
  redis.call('HSET', KEYS[1], 'last_scan_timestamp', ARGV[4])
  redis.call('HINCRBY', KEYS[1], 'total_scans', 1)
end
local fields = redis.call('HGETALL', KEYS[1])
table.insert(fields, '_created')
table.insert(fields, tostring(created))
return fields
`)

// ScanStore keeps one Redis hash per identity key.
type ScanStore struct {
	client *redis.Client
	prefix string
}

var _ shared.ScanStore = (*ScanStore)(nil)

func NewScanStore(client *redis.Client, prefix string) *ScanStore {
	return &ScanStore{client: client, prefix: prefix}
}

func (s *ScanStore) GetScan(ctx context.Context, key product.IdentityKey) (*scan.Record, error) {
	data, err := s.client.HGetAll(ctx, s.redisKey(key)).Result()
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "redis hgetall"), errs.ErrDatabaseOperationFailed)
	}
	if len(data) == 0 {
		return nil, errs.Wrapf(errs.ErrScanNotFound, "key %s", key)
	}
	rec, err := recordFromHash(key, data)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *ScanStore) UpsertScan(ctx context.Context, obs scan.Observation) (scan.UpsertResult, error) {
	expiration := ""
	if obs.OriginalExpirationTimestamp != nil {
		expiration = strconv.FormatInt(*obs.OriginalExpirationTimestamp, 10)
	}

	reply, err := upsertScript.Run(ctx, s.client, []string{s.redisKey(obs.Key)},
		obs.ProductName,
		obs.Owner,
		obs.RegistrationTimestamp,
		obs.Now,
		expiration,
	).StringSlice()
	if err != nil {
		return scan.UpsertResult{}, errs.Mark(errs.Wrap(err, "redis upsert script"), errs.ErrDatabaseOperationFailed)
	}

	data, err := pairsToMap(reply)
	if err != nil {
		return scan.UpsertResult{}, err
	}
	created := data[fieldCreated] == "1"
	delete(data, fieldCreated)

	rec, err := recordFromHash(obs.Key, data)
	if err != nil {
		return scan.UpsertResult{}, err
	}
	return scan.UpsertResult{Record: rec, Created: created}, nil
}

func (s *ScanStore) redisKey(key product.IdentityKey) string {
	return s.prefix + key.String()
}

func pairsToMap(pairs []string) (map[string]string, error) {
	if len(pairs)%2 != 0 {
		return nil, errs.Mark(errs.Newf("odd hash reply length %d", len(pairs)), errs.ErrDatabaseOperationFailed)
	}
	out := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out[pairs[i]] = pairs[i+1]
	}
	return out, nil
}

func recordFromHash(key product.IdentityKey, data map[string]string) (scan.Record, error) {
	rec := scan.Record{
		Key:         key,
		ProductName: data[fieldProductName],
		Owner:       data[fieldOwner],
	}

	ints := []struct {
		field string
		dst   *int64
	}{
		{fieldRegisteredAt, &rec.RegistrationTimestamp},
		{fieldFirstScan, &rec.FirstScanTimestamp},
		{fieldLastScan, &rec.LastScanTimestamp},
		{fieldTotalScans, &rec.TotalScans},
	}
	for _, f := range ints {
		v, err := strconv.ParseInt(data[f.field], 10, 64)
		if err != nil {
			return scan.Record{}, errs.Mark(errs.Wrapf(err, "scan hash %s field %s", key, f.field), errs.ErrDatabaseOperationFailed)
		}
		*f.dst = v
	}

	if raw, ok := data[fieldOrigExpiration]; ok && raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return scan.Record{}, errs.Mark(errs.Wrapf(err, "scan hash %s field %s", key, fieldOrigExpiration), errs.ErrDatabaseOperationFailed)
		}
		rec.OriginalExpirationTimestamp = &v
	}
	return rec, nil
}
