package patterns

import (
	"context"
	"fmt"
	"sync"

	"github.com/roach88/patternlab/internal/catalog"
)

func creationalEntries() []catalog.Entry {
	var entries []catalog.Entry
	entries = append(entries, pair(catalog.CategoryCreational, "singleton",
		"Singleton — every caller allocates its own store",
		"Singleton — one lazily created shared store",
		singletonBase, singletonImproved)...)
	entries = append(entries, pair(catalog.CategoryCreational, "builder",
		"Builder — telescoping constructor",
		"Builder — fluent step-by-step construction",
		builderBase, builderImproved)...)
	return entries
}

// configStore stands in for an expensive shared resource.
type configStore struct {
	id int
}

// singletonBase constructs the "shared" store twice. The two callers end
// up with diverging copies, which is the defect singleton fixes.
func singletonBase(ctx context.Context, out catalog.Printer) error {
	allocations := 0
	newStore := func() *configStore {
		allocations++
		return &configStore{id: allocations}
	}

	first := newStore()
	second := newStore()

	out.Printf("caller A allocated store #%d", first.id)
	out.Printf("caller B allocated store #%d", second.id)
	out.Printf("stores are distinct: %t", first != second)
	return nil
}

// singletonImproved guards construction with sync.Once so every caller
// sees the same instance.
func singletonImproved(ctx context.Context, out catalog.Printer) error {
	var (
		once     sync.Once
		instance *configStore
	)
	getStore := func() *configStore {
		once.Do(func() {
			instance = &configStore{id: 1}
			out.Println("instance created")
		})
		return instance
	}

	first := getStore()
	second := getStore()
	out.Println("instance reused")
	out.Printf("callers share one store: %t", first == second)
	return nil
}

// report is the product both builder variants assemble.
type report struct {
	title    string
	format   string
	compress bool
	pages    int
}

func (r report) String() string {
	return fmt.Sprintf("%s (%s, %d pages, compress=%t)", r.title, r.format, r.pages, r.compress)
}

// builderBase shows the telescoping-constructor problem: every optional
// field forces another positional parameter, and call sites stop being
// readable.
func builderBase(ctx context.Context, out catalog.Printer) error {
	newReport := func(title, format string, compress bool, pages int) report {
		return report{title: title, format: format, compress: compress, pages: pages}
	}

	// Which bool is which? The call site can't say.
	r := newReport("Quarterly Summary", "pdf", true, 12)
	out.Println("constructed via 4-argument constructor")
	out.Printf("built %s", r)
	return nil
}

// reportBuilder assembles a report one named step at a time.
type reportBuilder struct {
	r report
}

func newReportBuilder(title string) *reportBuilder {
	return &reportBuilder{r: report{title: title, format: "text", pages: 1}}
}

func (b *reportBuilder) Format(format string) *reportBuilder {
	b.r.format = format
	return b
}

func (b *reportBuilder) Compressed() *reportBuilder {
	b.r.compress = true
	return b
}

func (b *reportBuilder) Pages(n int) *reportBuilder {
	b.r.pages = n
	return b
}

func (b *reportBuilder) Build() report { return b.r }

func builderImproved(ctx context.Context, out catalog.Printer) error {
	r := newReportBuilder("Quarterly Summary").
		Format("pdf").
		Compressed().
		Pages(12).
		Build()

	out.Println("constructed via named builder steps")
	out.Printf("built %s", r)
	return nil
}
