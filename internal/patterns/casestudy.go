package patterns

import (
	"context"

	"github.com/roach88/patternlab/internal/catalog"
)

func caseStudyEntries() []catalog.Entry {
	return pair(catalog.CategoryCaseStudy, "checkout",
		"Checkout — one function owns construction, pricing, and reporting",
		"Checkout — builder assembles the order, strategy prices it, observers report it",
		checkoutBase, checkoutImproved)
}

// checkoutBase crams order construction, discount selection, and receipt
// printing into a single function. Each concern is welded to the others.
func checkoutBase(ctx context.Context, out catalog.Printer) error {
	// Construction, pricing, and reporting in one place.
	items := 3
	amount := 120.0
	customer := "member"

	total := amount
	if customer == "member" {
		total = amount * 0.9
	}

	out.Printf("order: %d item(s), %.2f gross", items, amount)
	out.Printf("total: %.2f", total)
	out.Println("receipt printed inline")
	out.Println("changing any concern means reopening this function")
	return nil
}

// order is the product of the checkout builder.
type order struct {
	items  int
	amount float64
}

type orderBuilder struct {
	o order
}

func newOrder() *orderBuilder { return &orderBuilder{} }

func (b *orderBuilder) Items(n int) *orderBuilder {
	b.o.items = n
	return b
}

func (b *orderBuilder) Amount(a float64) *orderBuilder {
	b.o.amount = a
	return b
}

func (b *orderBuilder) Build() order { return b.o }

// receiptObserver is notified once a total is known.
type receiptObserver interface {
	TotalReady(o order, total float64)
}

type printedReceipt struct {
	out catalog.Printer
}

func (r printedReceipt) TotalReady(o order, total float64) {
	r.out.Printf("receipt: %d item(s), total %.2f", o.items, total)
}

// checkoutImproved composes the three patterns: a builder assembles the
// order, a pricer (strategy) computes the total, and observers consume it.
func checkoutImproved(ctx context.Context, out catalog.Printer) error {
	o := newOrder().Items(3).Amount(120).Build()
	out.Printf("order built: %d item(s), %.2f gross", o.items, o.amount)

	var p pricer = memberPricing{}
	total := p.Price(o.amount)
	out.Printf("member pricing applied: %.2f", total)

	observers := []receiptObserver{printedReceipt{out: out}}
	for _, obs := range observers {
		obs.TotalReady(o, total)
	}

	out.Println("each concern swaps independently")
	return nil
}
