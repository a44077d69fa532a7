package verification

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"authentithief/internal/domain/product"
	"authentithief/internal/domain/qrpayload"
	"authentithief/internal/domain/scan"
	"authentithief/internal/pkg/clock"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=engine.go -destination=../../../tests/mock/verification/engine_mock.go -package=verificationmock

const instrumentationName = "authentithief/internal/usecase/verification"

type Verifier interface {
	Verify(ctx context.Context, p qrpayload.Payload) (scan.Result, error)
	VerifyRaw(ctx context.Context, data []byte) (scan.Result, error)
}

// Engine resolves decoded payloads against the ledger and records the scan.
// The returned error is reserved for scan store failures; every ledger
// outcome is folded into a Result.
type Engine struct {
	ledger shared.Ledger
	scans  shared.ScanStore
	clock  clock.Clock
	opts   Options
	logger *slog.Logger

	lookups singleflight.Group
	tracer  trace.Tracer
	results metric.Int64Counter
}

func NewEngine(ledger shared.Ledger, scans shared.ScanStore, clk clock.Clock, opts Options, logger *slog.Logger) (*Engine, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	var results metric.Int64Counter
	results, err = otel.Meter(instrumentationName).Int64Counter(
		"verification.results",
		metric.WithDescription("verification outcomes by status"),
	)
	if err != nil {
		logger.Warn("falling back to noop verification counter", "error", err)
		results = metricnoop.Int64Counter{}
	}

	return &Engine{
		ledger:  ledger,
		scans:   scans,
		clock:   clk,
		opts:    opts,
		logger:  logger,
		tracer:  otel.Tracer(instrumentationName),
		results: results,
	}, nil
}

// VerifyRaw parses decoded QR bytes and verifies them. Parse failures become
// a Malformed result.
func (e *Engine) VerifyRaw(ctx context.Context, data []byte) (scan.Result, error) {
	p, err := qrpayload.Parse(data)
	if err != nil {
		res := scan.Malformed{Reason: err.Error()}
		e.record(ctx, res)
		return res, nil
	}
	return e.Verify(ctx, p)
}

func (e *Engine) Verify(ctx context.Context, p qrpayload.Payload) (scan.Result, error) {
	ctx, span := e.tracer.Start(ctx, "verification.Verify")
	defer span.End()

	res, err := e.verify(ctx, p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "scan store failure")
		return nil, err
	}
	span.SetAttributes(attribute.String("verification.status", string(res.Status())))
	e.record(ctx, res)
	return res, nil
}

func (e *Engine) verify(ctx context.Context, p qrpayload.Payload) (scan.Result, error) {
	if reason := e.missingField(p); reason != "" {
		return scan.Malformed{Reason: reason}, nil
	}

	rec, found, err := e.lookup(ctx, p)
	if err != nil {
		e.logger.WarnContext(ctx, "ledger scan degraded", "name", p.Name, "error", err)
		return scan.NotFound{Reason: fmt.Sprintf("ledger unavailable: %v", err), Degraded: true}, nil
	}
	if !found {
		return scan.NotFound{Reason: scan.ReasonNotInRegistry}, nil
	}

	now := e.clock.Now().Unix()
	key := e.opts.KeyScheme.Key(rec)
	up, err := e.scans.UpsertScan(ctx, scan.NewObservation(key, rec, now))
	if err != nil {
		return nil, errs.Wrapf(err, "upsert scan record %s", key)
	}

	e.logger.DebugContext(ctx, "scan recorded",
		"key", key.String(),
		"first_scan", up.Created,
		"total_scans", up.Record.TotalScans,
	)
	return scan.Classify(up.Record, up.Created, now), nil
}

func (e *Engine) missingField(p qrpayload.Payload) string {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return "missing name"
	case e.opts.UseBrand && strings.TrimSpace(p.Brand) == "":
		return "missing brand"
	case e.opts.RequireExpiration && p.ExpirationTimestamp == nil:
		return "missing expirationTimestamp"
	default:
		return ""
	}
}

type lookupResult struct {
	rec   product.LedgerRecord
	found bool
}

// lookup walks the ledger in fixed-size batches under the scan budget.
// Identical concurrent lookups share one walk. The walk is detached from any
// single caller, so a caller that gives up only stops its own wait.
func (e *Engine) lookup(ctx context.Context, p qrpayload.Payload) (product.LedgerRecord, bool, error) {
	ch := e.lookups.DoChan(e.lookupKey(p), func() (any, error) {
		scanCtx := context.WithoutCancel(ctx)
		if e.opts.ScanBudget > 0 {
			var cancel context.CancelFunc
			scanCtx, cancel = context.WithTimeout(scanCtx, e.opts.ScanBudget)
			defer cancel()
		}
		rec, found, err := e.walk(scanCtx, p)
		return lookupResult{rec: rec, found: found}, err
	})

	select {
	case <-ctx.Done():
		return product.LedgerRecord{}, false, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return product.LedgerRecord{}, false, r.Err
		}
		lr := r.Val.(lookupResult)
		return lr.rec, lr.found, nil
	}
}

func (e *Engine) walk(ctx context.Context, p qrpayload.Payload) (product.LedgerRecord, bool, error) {
	total, err := withRetry(ctx, e.logger, e.opts.BatchRetries, e.opts.RetryBackoff, e.ledger.TotalCount)
	if err != nil {
		return product.LedgerRecord{}, false, errs.Wrap(err, "read ledger total")
	}

	for start := 0; start < total; start += e.opts.BatchSize {
		batch, err := e.readBatch(ctx, start)
		if err != nil {
			return product.LedgerRecord{}, false, errs.Wrapf(err, "read ledger batch at %d", start)
		}
		for _, rec := range batch {
			if e.matches(p, rec) {
				return rec, true, nil
			}
		}
		if len(batch) == 0 {
			break
		}
	}
	return product.LedgerRecord{}, false, nil
}

func (e *Engine) readBatch(ctx context.Context, start int) ([]product.LedgerRecord, error) {
	ctx, span := e.tracer.Start(ctx, "verification.readBatch",
		trace.WithAttributes(attribute.Int("ledger.start", start), attribute.Int("ledger.count", e.opts.BatchSize)))
	defer span.End()

	batch, err := withRetry(ctx, e.logger, e.opts.BatchRetries, e.opts.RetryBackoff, func(ctx context.Context) ([]product.LedgerRecord, error) {
		return e.ledger.Paginate(ctx, start, e.opts.BatchSize)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch read failed")
	}
	return batch, err
}

// matches compares case-insensitively. Under the compound scheme owner and
// registration timestamp are cross-checked when the payload carries them.
func (e *Engine) matches(p qrpayload.Payload, rec product.LedgerRecord) bool {
	if !strings.EqualFold(strings.TrimSpace(rec.Name), strings.TrimSpace(p.Name)) {
		return false
	}
	if e.opts.UseBrand && !strings.EqualFold(strings.TrimSpace(rec.Brand), strings.TrimSpace(p.Brand)) {
		return false
	}
	if e.opts.KeyScheme == product.KeySchemeCompound {
		if p.Owner != "" && !strings.EqualFold(rec.Owner, p.Owner) {
			return false
		}
		if p.RegistrationTimestamp != 0 && rec.RegistrationTimestamp != p.RegistrationTimestamp {
			return false
		}
	}
	return true
}

func (e *Engine) lookupKey(p qrpayload.Payload) string {
	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(p.Name)),
		strings.ToLower(strings.TrimSpace(p.Brand)),
		strings.ToLower(p.Owner),
		strconv.FormatInt(p.RegistrationTimestamp, 10),
	}, "\x00")
}

func (e *Engine) record(ctx context.Context, res scan.Result) {
	attrs := []attribute.KeyValue{attribute.String("status", string(res.Status()))}
	if nf, ok := res.(scan.NotFound); ok {
		attrs = append(attrs, attribute.Bool("degraded", nf.Degraded))
	}
	e.results.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// withRetry runs fn once plus up to retries more times, waiting backoff
// between attempts. It stops early when ctx is done.
func withRetry[T any](ctx context.Context, logger *slog.Logger, retries int, backoff time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if attempt == retries {
			break
		}

		logger.DebugContext(ctx, "retrying ledger read", "attempt", attempt+1, "error", err)
		if backoff <= 0 {
			if ctx.Err() != nil {
				return zero, errs.Wrap(ctx.Err(), lastErr.Error())
			}
			continue
		}
		select {
		case <-ctx.Done():
			return zero, errs.Wrap(ctx.Err(), lastErr.Error())
		case <-time.After(backoff):
		}
	}
	return zero, lastErr
}
