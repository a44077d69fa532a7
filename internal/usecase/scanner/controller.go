package scanner

import (
	"context"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"authentithief/internal/domain/qrpayload"
	"authentithief/internal/domain/scan"
	"authentithief/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoFrame   = errs.New("no frame available")
	ErrCanceled  = errs.New("scan canceled")
	ErrNotIdle   = errs.New("scan session already started")
	ErrNoCamera  = errs.Mark(errs.New("no camera configured"), errs.ErrCameraUnavailable)
	ErrEmptyCode = errs.Mark(errs.New("decoded code is empty"), errs.ErrNoCode)
)

const DefaultPollInterval = 500 * time.Millisecond

// Camera grants a capture stream, or fails when permission is denied or no
// video track exists.
type Camera interface {
	Acquire(ctx context.Context) (Stream, error)
}

// Stream is one acquired capture session. Frame returns ErrNoFrame when no
// frame is ready yet. Release may be called while Frame is blocked and must
// make it return.
type Stream interface {
	Frame(ctx context.Context) (image.Image, error)
	Release()
}

type Decoder interface {
	Decode(img image.Image) ([]byte, error)
}

type Verifier interface {
	Verify(ctx context.Context, p qrpayload.Payload) (scan.Result, error)
}

type Options struct {
	PollInterval time.Duration
	Logger       *slog.Logger
	// Notify receives transient notices such as an unreadable live frame.
	Notify func(Notice)
	// Redirect receives the definitive result. It is not called when the
	// session was canceled while verifying.
	Redirect func(scan.Result)
	// OnTransition observes every state change. It runs with the controller
	// lock held and must not call back into the controller.
	OnTransition func(from, to State)
}

// Controller runs one scan session. It is single-use: after Redirecting or
// Error a new controller is needed.
type Controller struct {
	camera   Camera
	decoder  Decoder
	verifier Verifier
	opts     Options
	logger   *slog.Logger

	mu          sync.Mutex
	state       State
	started     bool
	canceled    bool
	err         error
	stream      Stream
	releaseOnce sync.Once
	cancel      context.CancelFunc

	processing atomic.Bool
}

// New builds a controller. camera may be nil for upload-only sessions.
func New(camera Camera, decoder Decoder, verifier Verifier, opts Options) *Controller {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		camera:   camera,
		decoder:  decoder,
		verifier: verifier,
		opts:     opts,
		logger:   logger.With("scan_session", uuid.NewString()),
		state:    StateIdle,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err is the failure that moved the controller to Error, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Start acquires the camera and polls frames until a result is handed off,
// the session fails, or it is canceled.
func (c *Controller) Start(ctx context.Context) (scan.Result, error) {
	ctx, err := c.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer c.stop()

	if c.camera == nil {
		return nil, c.fail(ErrNoCamera)
	}
	stream, err := c.camera.Acquire(ctx)
	if err != nil {
		if ctx.Err() != nil {
			c.Cancel()
			return nil, ErrCanceled
		}
		return nil, c.fail(errs.Mark(errs.Wrap(err, "acquire camera"), errs.ErrCameraUnavailable))
	}

	c.mu.Lock()
	c.stream = stream
	if c.canceled {
		c.releaseLocked()
		c.mu.Unlock()
		return nil, ErrCanceled
	}
	c.transitionLocked(StateCapturing)
	c.mu.Unlock()

	ticker := time.NewTicker(c.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.Cancel()
			return nil, ErrCanceled
		case <-ticker.C:
			res, done, err := c.pollFrame(ctx, stream)
			if done {
				return res, err
			}
		}
	}
}

// ScanImage runs the single-shot upload path. Missing or malformed codes end
// the session with an error instead of a notice.
func (c *Controller) ScanImage(ctx context.Context, img image.Image) (scan.Result, error) {
	ctx, err := c.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer c.stop()

	if !c.processing.CompareAndSwap(false, true) {
		return nil, ErrNotIdle
	}
	defer c.processing.Store(false)

	if !c.advance(StateIdle, StateCapturing) || !c.advance(StateCapturing, StateDecoding) {
		return nil, ErrCanceled
	}
	data, err := c.decode(img)
	if err != nil {
		return nil, c.fail(err)
	}
	p, err := qrpayload.Parse(data)
	if err != nil {
		return nil, c.fail(err)
	}
	return c.verify(ctx, p)
}

// Cancel stops the session. While capturing or decoding the stream is
// released before Cancel returns. While verifying the verification finishes
// but its result is discarded.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.canceled || c.state.Terminal() {
		return
	}
	c.canceled = true

	switch c.state {
	case StateCapturing, StateDecoding:
		c.releaseLocked()
		c.transitionLocked(StateIdle)
	}
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *Controller) begin(ctx context.Context) (context.Context, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return nil, ErrNotIdle
	}
	c.started = true
	if c.canceled {
		return nil, ErrCanceled
	}
	ctx, c.cancel = context.WithCancel(ctx)
	return ctx, nil
}

func (c *Controller) stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// pollFrame is one Capturing→Decoding attempt. done reports that the session
// reached a result, an error, or cancellation.
func (c *Controller) pollFrame(ctx context.Context, stream Stream) (scan.Result, bool, error) {
	if !c.processing.CompareAndSwap(false, true) {
		return nil, false, nil
	}
	defer c.processing.Store(false)

	if !c.advance(StateCapturing, StateDecoding) {
		return nil, true, ErrCanceled
	}

	frame, err := stream.Frame(ctx)
	if err != nil {
		switch {
		case c.isCanceled() || ctx.Err() != nil:
			c.Cancel()
			return nil, true, ErrCanceled
		case errs.Is(err, ErrNoFrame):
			return c.resume()
		default:
			return nil, true, c.fail(errs.Mark(errs.Wrap(err, "read frame"), errs.ErrStreamLost))
		}
	}

	data, err := c.decode(frame)
	if err != nil {
		if !errs.Is(err, errs.ErrNoCode) {
			c.logger.DebugContext(ctx, "frame decode failed", "error", err)
		}
		return c.resume()
	}

	p, err := qrpayload.Parse(data)
	if err != nil {
		c.logger.InfoContext(ctx, "unreadable payload in live frame", "error", err)
		c.notify(Notice{Kind: NoticeMalformed, Message: err.Error()})
		return c.resume()
	}

	res, err := c.verify(ctx, p)
	return res, true, err
}

func (c *Controller) decode(img image.Image) ([]byte, error) {
	data, err := c.decoder.Decode(img)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyCode
	}
	return data, nil
}

// resume returns Decoding→Capturing without raising anything.
func (c *Controller) resume() (scan.Result, bool, error) {
	if !c.advance(StateDecoding, StateCapturing) {
		return nil, true, ErrCanceled
	}
	return nil, false, nil
}

// verify releases the stream, runs verification detached from cancellation
// and hands off the result unless the session was canceled meanwhile.
func (c *Controller) verify(ctx context.Context, p qrpayload.Payload) (scan.Result, error) {
	c.mu.Lock()
	if c.canceled || c.state != StateDecoding {
		c.mu.Unlock()
		return nil, ErrCanceled
	}
	c.releaseLocked()
	c.transitionLocked(StateVerifying)
	c.mu.Unlock()

	res, err := c.verifier.Verify(context.WithoutCancel(ctx), p)

	c.mu.Lock()
	if c.canceled {
		c.transitionLocked(StateIdle)
		c.mu.Unlock()
		c.logger.InfoContext(ctx, "discarding verification result of canceled scan")
		return nil, ErrCanceled
	}
	c.mu.Unlock()

	if err != nil {
		return nil, c.fail(errs.Wrap(err, "verify payload"))
	}
	if nf, ok := res.(scan.NotFound); ok && nf.Degraded {
		return res, c.fail(errs.Wrap(errs.ErrLedgerUnavailable, nf.Reason))
	}

	c.mu.Lock()
	c.transitionLocked(StateRedirecting)
	c.mu.Unlock()

	if c.opts.Redirect != nil {
		c.opts.Redirect(res)
	}
	return res, nil
}

// advance moves from→to unless the session was canceled or left from.
func (c *Controller) advance(from, to State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.canceled || c.state != from {
		return false
	}
	c.transitionLocked(to)
	return true
}

func (c *Controller) fail(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releaseLocked()
	c.err = err
	c.transitionLocked(StateError)
	c.logger.Warn("scan session failed", "error", err)
	return err
}

func (c *Controller) isCanceled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canceled
}

func (c *Controller) releaseLocked() {
	if c.stream == nil {
		return
	}
	stream := c.stream
	c.releaseOnce.Do(stream.Release)
}

func (c *Controller) transitionLocked(to State) {
	from := c.state
	if from == to {
		return
	}
	c.state = to
	c.logger.Debug("scan state transition", "from", from.String(), "to", to.String())
	if c.opts.OnTransition != nil {
		c.opts.OnTransition(from, to)
	}
}

func (c *Controller) notify(n Notice) {
	if c.opts.Notify != nil {
		c.opts.Notify(n)
	}
}
