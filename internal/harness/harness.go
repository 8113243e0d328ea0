package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/roach88/patternlab/internal/catalog"
)

// Harness executes catalog entries safely and uniformly.
//
// The harness never raises: its contract is "report outcomes". Every
// fault — lookup miss, returned error, panic, wall-clock overrun — is
// converted into a failed RunResult at the harness boundary.
type Harness struct {
	cat     *catalog.Catalog
	tokens  TokenGenerator
	clock   Clock
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithTokens overrides the run identifier generator (for testing).
func WithTokens(g TokenGenerator) Option {
	return func(h *Harness) { h.tokens = g }
}

// WithClock overrides the run sequence clock (for testing).
func WithClock(c Clock) Option {
	return func(h *Harness) { h.clock = c }
}

// WithTimeout enforces a wall-clock bound per invocation.
//
// An overrun is reported as a failed result, not an escape. Zero disables
// the bound (the default): demonstrations are expected to be finite, so
// this is a hardening for untrusted content, not a core contract.
func WithTimeout(d time.Duration) Option {
	return func(h *Harness) { h.timeout = d }
}

// WithLogger overrides the logger. The default discards everything so
// harness diagnostics never leak into a caller's output.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// New creates a harness over a catalog.
//
// The catalog should be sealed before the harness runs anything; the
// harness only reads it.
func New(cat *catalog.Catalog, opts ...Option) *Harness {
	h := &Harness{
		cat:    cat,
		tokens: UUIDv7Generator{},
		clock:  &seqClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes the demonstration registered under key.
//
// Execution flow:
//  1. Resolve the key through the catalog. A miss becomes a failed result
//     with error "pattern not found"; the raw lookup error never reaches
//     the caller.
//  2. Invoke the entry's run callable with a fresh Output sink, isolating
//     panics at this boundary.
//  3. Report StatusOK with the captured lines, or StatusFailed with the
//     fault description and the lines captured before the fault.
func (h *Harness) Run(ctx context.Context, key catalog.Key) RunResult {
	result := RunResult{
		Key:    key,
		RunID:  h.tokens.Generate(),
		Seq:    h.clock.Next(),
		Output: []string{},
	}

	entry, err := h.cat.Resolve(key)
	if err != nil {
		h.logger.Info("resolution failed", "key", key.String(), "error", err)
		result.Status = StatusFailed
		result.Error = "pattern not found"
		return result
	}

	out := NewOutput()
	faultErr := h.invoke(ctx, entry, out)

	result.Output = out.Lines()
	if faultErr != nil {
		result.Status = StatusFailed
		result.Error = faultErr.Error()
		h.logger.Info("run faulted",
			"key", key.String(),
			"run_id", result.RunID,
			"error", faultErr,
			"lines_captured", len(result.Output),
		)
		return result
	}

	result.Status = StatusOK
	h.logger.Info("run completed",
		"key", key.String(),
		"run_id", result.RunID,
		"lines", len(result.Output),
	)
	return result
}

// RunAll executes every catalog entry matching the filter, in List order.
//
// One entry's fault never aborts the batch: the policy is collect and
// report all. N matching entries always produce exactly N results.
func (h *Harness) RunAll(ctx context.Context, f catalog.Filter) []RunResult {
	keys := h.cat.List(f)
	results := make([]RunResult, 0, len(keys))
	for _, key := range keys {
		results = append(results, h.Run(ctx, key))
	}
	return results
}

// invoke calls the entry's run func with panic isolation and, when
// configured, a wall-clock bound.
func (h *Harness) invoke(ctx context.Context, entry catalog.Entry, out *Output) error {
	if h.timeout <= 0 {
		return safeInvoke(ctx, entry.Run, out)
	}

	runCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- safeInvoke(runCtx, entry.Run, out)
	}()

	select {
	case err := <-done:
		return err
	case <-runCtx.Done():
		// The callable is abandoned; demonstrations are side-effect-free
		// by convention, so leaking the goroutine is acceptable here.
		return fmt.Errorf("timed out after %s", h.timeout)
	}
}

// safeInvoke runs the callable and converts panics into errors.
func safeInvoke(ctx context.Context, run catalog.RunFunc, out *Output) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return run(ctx, out)
}
