package chunk

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-siggen/dsp/process"
	"github.com/cwbudde/algo-siggen/dsp/signal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Request describes one job. Exactly one of Descriptor and Buffer is used;
// Descriptor wins when both are set.
type Request struct {
	// Descriptor is synthesized chunk by chunk.
	Descriptor *signal.Descriptor
	// Step overrides the descriptor's sample spacing. Zero uses
	// Descriptor.Step().
	Step float64

	// Buffer is an existing signal to process. It is not modified.
	Buffer []float64
	// SampleRate applies to Buffer. For descriptors zero means
	// Descriptor.SampleRate().
	SampleRate float64

	// Config is the processing to apply; nil processes nothing.
	Config process.Config
}

// Result is the output of a completed job.
type Result struct {
	Samples    []float64 // generated or input samples
	Processed  []float64 // Samples after Config
	SampleRate float64
	Chunks     int
}

// Option configures a Driver.
type Option func(*Driver)

// WithChunkSize sets the number of samples per chunk. Non-positive values
// are ignored.
func WithChunkSize(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.chunkSize = n
		}
	}
}

// WithProcessorOptions applies the shared processor settings. BlockSize
// becomes the chunk size.
func WithProcessorOptions(opts ...core.ProcessorOption) Option {
	return WithChunkSize(core.ApplyProcessorOptions(opts...).BlockSize)
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithObserver registers an observer for every job started by the driver.
func WithObserver(o Observer) Option {
	return func(d *Driver) {
		if o != nil {
			d.observer = o
		}
	}
}

// Driver runs chunked jobs. A Driver holds only configuration and may start
// any number of jobs.
type Driver struct {
	chunkSize int
	logger    *zap.Logger
	observer  Observer
}

// New returns a Driver with chunk size core.DefaultChunkSize, a no-op
// logger and no observer, modified by opts.
func New(opts ...Option) *Driver {
	d := &Driver{
		chunkSize: core.DefaultChunkSize,
		logger:    zap.NewNop(),
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// ChunkSize returns the configured chunk size.
func (d *Driver) ChunkSize() int { return d.chunkSize }

// Job is a running or finished request.
type Job struct {
	status atomic.Int32
	g      errgroup.Group
	done   chan struct{}
	result Result
}

// Status returns the current state; safe to call from any goroutine.
func (j *Job) Status() Status { return Status(j.status.Load()) }

// Done is closed once the job reaches a terminal state.
func (j *Job) Done() <-chan struct{} { return j.done }

// Wait blocks until the job ends and returns its result. A cancelled job
// returns an error matching core.ErrCancelled and the context error; a
// failed job returns the chunk error. No partial result is returned.
func (j *Job) Wait() (Result, error) {
	if err := j.g.Wait(); err != nil {
		return Result{}, err
	}
	return j.result, nil
}

// Start runs req on a new goroutine and returns immediately.
func (d *Driver) Start(ctx context.Context, req Request) *Job {
	if ctx == nil {
		ctx = context.Background()
	}

	j := &Job{done: make(chan struct{})}
	j.g.Go(func() error {
		defer close(j.done)
		return d.run(ctx, j, req)
	})
	return j
}

// Run is Start followed by Wait.
func (d *Driver) Run(ctx context.Context, req Request) (Result, error) {
	return d.Start(ctx, req).Wait()
}

func (d *Driver) run(ctx context.Context, j *Job, req Request) error {
	j.status.Store(int32(Running))
	started := time.Now()

	res, status, err := d.process(ctx, req)

	log := d.logger.With(
		zap.String("config", process.KindOf(req.Config).String()),
		zap.Stringer("status", status),
		zap.Int("chunks", res.Chunks),
		zap.Duration("elapsed", time.Since(started)),
	)
	switch status {
	case Completed:
		j.result = res
		log.Debug("chunked job completed", zap.Int("samples", len(res.Samples)))
	case Cancelled:
		log.Info("chunked job cancelled", zap.Error(err))
	default:
		log.Warn("chunked job failed", zap.Error(err))
	}

	j.status.Store(int32(status))
	d.observer.Done(status, err)
	return err
}

type source func(offset, n int) ([]float64, error)

func (d *Driver) prepare(req Request) (src source, total int, sampleRate float64, err error) {
	kind := process.KindOf(req.Config)

	if req.Descriptor != nil {
		desc := *req.Descriptor
		if err := desc.Validate(); err != nil {
			return nil, 0, 0, err
		}

		dt := req.Step
		if dt == 0 {
			dt = desc.Step()
		}

		sampleRate = req.SampleRate
		if sampleRate == 0 {
			sr, srErr := desc.SampleRate()
			if srErr != nil && kind.FrequencyAware() {
				return nil, 0, 0, srErr
			}
			sampleRate = sr
		}

		return func(offset, n int) ([]float64, error) {
			return signal.GenerateRange(&desc, dt, offset, n)
		}, desc.Samples, sampleRate, nil
	}

	if req.Buffer == nil {
		return nil, 0, 0, fmt.Errorf("chunk: request has neither descriptor nor buffer: %w", core.ErrInvalidArgument)
	}

	buf := req.Buffer
	return func(offset, n int) ([]float64, error) {
		return core.Copy(buf[offset : offset+n]), nil
	}, len(buf), req.SampleRate, nil
}

func (d *Driver) process(ctx context.Context, req Request) (Result, Status, error) {
	src, total, sampleRate, err := d.prepare(req)
	if err != nil {
		return Result{}, Failed, err
	}

	cfg := req.Config
	kind := process.KindOf(cfg)
	chunkCfg := cfg
	if !kind.Causal() {
		chunkCfg = nil
	}

	d.logger.Info("chunked job started",
		zap.String("config", kind.String()),
		zap.Int("samples", total),
		zap.Int("chunk_size", d.chunkSize),
		zap.Float64("sample_rate", sampleRate),
	)

	res := Result{
		Samples:    make([]float64, 0, total),
		Processed:  make([]float64, 0, total),
		SampleRate: sampleRate,
	}

	var (
		st      process.State
		lastPct = -1
	)
	for offset := 0; offset < total; offset += d.chunkSize {
		if err := ctx.Err(); err != nil {
			return Result{Chunks: res.Chunks}, Cancelled, fmt.Errorf("chunk: stopped at sample %d: %w: %w", offset, core.ErrCancelled, err)
		}

		n := min(d.chunkSize, total-offset)
		raw, err := src(offset, n)
		if err != nil {
			return Result{Chunks: res.Chunks}, Failed, fmt.Errorf("chunk %d: %w", res.Chunks, err)
		}

		out, next, err := process.ApplyChunk(raw, chunkCfg, sampleRate, st)
		if err != nil {
			return Result{Chunks: res.Chunks}, Failed, fmt.Errorf("chunk %d: %w", res.Chunks, err)
		}
		st = next

		res.Samples = append(res.Samples, raw...)
		res.Processed = append(res.Processed, out...)
		res.Chunks++

		d.logger.Debug("chunk done", zap.Int("index", res.Chunks-1), zap.Int("offset", offset), zap.Int("len", n))

		if pct := (offset + n) * 100 / total; pct != lastPct {
			lastPct = pct
			d.observer.Progress(pct)
		}
	}

	if !kind.Causal() {
		full, err := process.Apply(res.Samples, cfg, sampleRate)
		if err != nil {
			return Result{Chunks: res.Chunks}, Failed, fmt.Errorf("chunk: final %s pass: %w", kind, err)
		}
		res.Processed = full
	}

	return res, Completed, nil
}
