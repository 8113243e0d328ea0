package harness

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/patternlab/internal/catalog"
	"github.com/roach88/patternlab/internal/testutil"
)

// demoCatalog builds a small sealed catalog covering the interesting
// outcomes: clean completion, returned error, and panic.
func demoCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()

	entries := []catalog.Entry{
		{
			Key: catalog.Key{Category: catalog.CategoryCreational, Name: "singleton", Variant: catalog.VariantBase},
			Run: func(ctx context.Context, out catalog.Printer) error {
				out.Println("constructed fresh instance")
				out.Println("constructed second instance")
				return nil
			},
		},
		{
			Key: catalog.Key{Category: catalog.CategoryCreational, Name: "singleton", Variant: catalog.VariantImproved},
			Run: func(ctx context.Context, out catalog.Printer) error {
				out.Println("instance created")
				out.Println("instance reused")
				return nil
			},
		},
		{
			Key: catalog.Key{Category: catalog.CategoryBehavioral, Name: "observer", Variant: catalog.VariantBase},
			Run: func(ctx context.Context, out catalog.Printer) error {
				out.Println("price updated")
				panic("display not notified")
			},
		},
		{
			Key: catalog.Key{Category: catalog.CategoryBehavioral, Name: "observer", Variant: catalog.VariantImproved},
			Run: func(ctx context.Context, out catalog.Printer) error {
				out.Println("subject notified 2 observers")
				out.Println("display refreshed")
				return nil
			},
		},
		{
			Key: catalog.Key{Category: catalog.CategoryStructural, Name: "adapter", Variant: catalog.VariantBase},
			Run: func(ctx context.Context, out catalog.Printer) error {
				out.Println("calling legacy interface")
				return errors.New("incompatible interface")
			},
		},
		{
			Key: catalog.Key{Category: catalog.CategoryStructural, Name: "adapter", Variant: catalog.VariantImproved},
			Run: func(ctx context.Context, out catalog.Printer) error {
				out.Println("legacy payload adapted")
				return nil
			},
		},
	}
	for _, e := range entries {
		require.NoError(t, cat.Register(e))
	}
	cat.Seal()
	return cat
}

// newDeterministicHarness wires fixed tokens and a deterministic clock so
// assertions can pin RunID and Seq values.
func newDeterministicHarness(t *testing.T, cat *catalog.Catalog, tokens ...string) *Harness {
	t.Helper()
	return New(cat,
		WithTokens(NewFixedGenerator(tokens...)),
		WithClock(testutil.NewDeterministicClock()),
	)
}

func TestRun_Success(t *testing.T) {
	h := newDeterministicHarness(t, demoCatalog(t), "run-1")

	res := h.Run(context.Background(), catalog.Key{
		Category: catalog.CategoryCreational,
		Name:     "singleton",
		Variant:  catalog.VariantImproved,
	})

	assert.Equal(t, StatusOK, res.Status)
	assert.True(t, res.OK())
	assert.Equal(t, []string{"instance created", "instance reused"}, res.Output)
	assert.Empty(t, res.Error)
	assert.Equal(t, "run-1", res.RunID)
	assert.Equal(t, int64(1), res.Seq)
}

func TestRun_NotFound(t *testing.T) {
	h := New(demoCatalog(t))

	res := h.Run(context.Background(), catalog.Key{
		Category: catalog.CategoryBehavioral,
		Name:     "nonexistent",
		Variant:  catalog.VariantBase,
	})

	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, "pattern not found", res.Error)
	assert.Empty(t, res.Output)
	assert.NotNil(t, res.Output, "output is empty, not absent")
}

func TestRun_MissingVariantIsNotFound(t *testing.T) {
	cat := catalog.New()
	require.NoError(t, cat.Register(catalog.Entry{
		Key: catalog.Key{Category: catalog.CategoryCreational, Name: "prototype", Variant: catalog.VariantBase},
		Run: func(ctx context.Context, out catalog.Printer) error { return nil },
	}))
	cat.Seal()

	h := New(cat)
	res := h.Run(context.Background(), catalog.Key{
		Category: catalog.CategoryCreational,
		Name:     "prototype",
		Variant:  catalog.VariantImproved,
	})

	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, "pattern not found", res.Error)
}

func TestRun_PanicIsolation(t *testing.T) {
	h := New(demoCatalog(t))

	var res RunResult
	require.NotPanics(t, func() {
		res = h.Run(context.Background(), catalog.Key{
			Category: catalog.CategoryBehavioral,
			Name:     "observer",
			Variant:  catalog.VariantBase,
		})
	})

	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, []string{"price updated"}, res.Output, "partial output is preserved")
	assert.Contains(t, res.Error, "display not notified")
}

func TestRun_ReturnedError(t *testing.T) {
	h := New(demoCatalog(t))

	res := h.Run(context.Background(), catalog.Key{
		Category: catalog.CategoryStructural,
		Name:     "adapter",
		Variant:  catalog.VariantBase,
	})

	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, []string{"calling legacy interface"}, res.Output)
	assert.Equal(t, "incompatible interface", res.Error)
}

func TestRun_Timeout(t *testing.T) {
	cat := catalog.New()
	require.NoError(t, cat.Register(catalog.Entry{
		Key: catalog.Key{Category: catalog.CategoryAdditional, Name: "spinner", Variant: catalog.VariantBase},
		Run: func(ctx context.Context, out catalog.Printer) error {
			out.Println("entering loop")
			<-make(chan struct{}) // never returns; the harness abandons it
			return nil
		},
	}))
	cat.Seal()

	h := New(cat, WithTimeout(20*time.Millisecond))
	res := h.Run(context.Background(), catalog.Key{
		Category: catalog.CategoryAdditional,
		Name:     "spinner",
		Variant:  catalog.VariantBase,
	})

	assert.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.Error, "timed out")
	assert.Equal(t, []string{"entering loop"}, res.Output, "lines before the overrun are kept")
}

func TestRunAll_CollectAndReport(t *testing.T) {
	h := New(demoCatalog(t))

	results := h.RunAll(context.Background(), catalog.Filter{})

	// All six entries ran despite two faults.
	require.Len(t, results, 6)

	var failed int
	for _, res := range results {
		if !res.OK() {
			failed++
		}
	}
	assert.Equal(t, 2, failed, "observer/base panics and adapter/base errors")

	// Listed order: behavioral < creational < structural.
	assert.Equal(t, catalog.CategoryBehavioral, results[0].Key.Category)
	assert.Equal(t, catalog.CategoryStructural, results[5].Key.Category)
}

func TestRunAll_SingleFaultAmongN(t *testing.T) {
	h := New(demoCatalog(t))

	results := h.RunAll(context.Background(), catalog.Filter{Category: catalog.CategoryBehavioral})

	require.Len(t, results, 2)
	assert.Equal(t, StatusFailed, results[0].Status, "observer/base faults")
	assert.Equal(t, StatusOK, results[1].Status, "observer/improved still ran")
}

func TestRunAll_FilterByName(t *testing.T) {
	h := New(demoCatalog(t))

	results := h.RunAll(context.Background(), catalog.Filter{Name: "Singleton"})
	require.Len(t, results, 2, "name filter normalizes raw input")
	for _, res := range results {
		assert.Equal(t, "singleton", res.Key.Name)
	}
}

func TestRunAll_SequenceIncreasesInListedOrder(t *testing.T) {
	h := newDeterministicHarness(t, demoCatalog(t), "r1", "r2", "r3", "r4", "r5", "r6")

	results := h.RunAll(context.Background(), catalog.Filter{})
	for i, res := range results {
		assert.Equal(t, int64(i+1), res.Seq)
	}
}

func TestRun_IndependentOutputBuffers(t *testing.T) {
	// Concurrent runs must not interleave captured output.
	h := New(demoCatalog(t))
	key := catalog.Key{Category: catalog.CategoryCreational, Name: "singleton", Variant: catalog.VariantImproved}

	const workers = 8
	resultCh := make(chan RunResult, workers)
	for i := 0; i < workers; i++ {
		go func() {
			resultCh <- h.Run(context.Background(), key)
		}()
	}

	for i := 0; i < workers; i++ {
		res := <-resultCh
		assert.Equal(t, []string{"instance created", "instance reused"}, res.Output)
	}
}
