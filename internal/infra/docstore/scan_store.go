package docstore

import (
	"context"
	"errors"

	"authentithief/internal/domain/product"
	"authentithief/internal/domain/scan"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ScanCollection = "scan_records"

type scanDocument struct {
	IdentityKey                 string `bson:"identity_key"`
	ProductName                 string `bson:"product_name"`
	Owner                       string `bson:"owner"`
	RegistrationTimestamp       int64  `bson:"registration_timestamp"`
	FirstScanTimestamp          int64  `bson:"first_scan_timestamp"`
	LastScanTimestamp           int64  `bson:"last_scan_timestamp"`
	TotalScans                  int64  `bson:"total_scans"`
	OriginalExpirationTimestamp *int64 `bson:"original_expiration_timestamp,omitempty"`
}

func (d scanDocument) toRecord() scan.Record {
	return scan.Record{
		Key:                         product.IdentityKey(d.IdentityKey),
		ProductName:                 d.ProductName,
		Owner:                       d.Owner,
		RegistrationTimestamp:       d.RegistrationTimestamp,
		FirstScanTimestamp:          d.FirstScanTimestamp,
		LastScanTimestamp:           d.LastScanTimestamp,
		TotalScans:                  d.TotalScans,
		OriginalExpirationTimestamp: d.OriginalExpirationTimestamp,
	}
}

// ScanStore keeps one document per identity key. Upserts are a single
// findAndModify, which MongoDB applies atomically per document.
type ScanStore struct {
	coll *mongo.Collection
}

var _ shared.ScanStore = (*ScanStore)(nil)

// NewScanStore ensures the unique identity_key index the upsert relies on.
func NewScanStore(ctx context.Context, db *mongo.Database) (*ScanStore, error) {
	coll := db.Collection(ScanCollection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "identity_key", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("identity_key_unique"),
	})
	if err != nil {
		return nil, errs.Wrap(err, "create scan index")
	}
	return &ScanStore{coll: coll}, nil
}

func (s *ScanStore) GetScan(ctx context.Context, key product.IdentityKey) (*scan.Record, error) {
	var doc scanDocument
	err := s.coll.FindOne(ctx, bson.D{{Key: "identity_key", Value: key.String()}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.Wrapf(errs.ErrScanNotFound, "key %s", key)
		}
		return nil, errs.Mark(errs.Wrap(err, "find scan record"), errs.ErrDatabaseOperationFailed)
	}
	rec := doc.toRecord()
	return &rec, nil
}

func (s *ScanStore) UpsertScan(ctx context.Context, obs scan.Observation) (scan.UpsertResult, error) {
	filter := bson.D{{Key: "identity_key", Value: obs.Key.String()}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc scanDocument
	var err error
	// Two concurrent upserts of a new key can both try to insert; the loser
	// hits the unique index and succeeds as an update on retry.
	for attempt := 0; attempt < 2; attempt++ {
		err = s.coll.FindOneAndUpdate(ctx, filter, upsertUpdate(obs), opts).Decode(&doc)
		if !mongo.IsDuplicateKeyError(err) {
			break
		}
	}
	if err != nil {
		return scan.UpsertResult{}, errs.Mark(errs.Wrap(err, "upsert scan record"), errs.ErrDatabaseOperationFailed)
	}

	return scan.UpsertResult{Record: doc.toRecord(), Created: doc.TotalScans == 1}, nil
}

func upsertUpdate(obs scan.Observation) bson.D {
	onInsert := bson.D{
		{Key: "product_name", Value: obs.ProductName},
		{Key: "owner", Value: obs.Owner},
		{Key: "registration_timestamp", Value: obs.RegistrationTimestamp},
		{Key: "first_scan_timestamp", Value: obs.Now},
	}
	if obs.OriginalExpirationTimestamp != nil {
		onInsert = append(onInsert, bson.E{Key: "original_expiration_timestamp", Value: *obs.OriginalExpirationTimestamp})
	}
	return bson.D{
		{Key: "$setOnInsert", Value: onInsert},
		{Key: "$set", Value: bson.D{{Key: "last_scan_timestamp", Value: obs.Now}}},
		{Key: "$inc", Value: bson.D{{Key: "total_scans", Value: int64(1)}}},
	}
}
