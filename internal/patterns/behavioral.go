package patterns

import (
	"context"

	"github.com/roach88/patternlab/internal/catalog"
)

func behavioralEntries() []catalog.Entry {
	var entries []catalog.Entry
	entries = append(entries, pair(catalog.CategoryBehavioral, "observer",
		"Observer — subject updates each display by hand",
		"Observer — displays subscribe to the subject",
		observerBase, observerImproved)...)
	entries = append(entries, pair(catalog.CategoryBehavioral, "strategy",
		"Strategy — pricing branches on a mode string",
		"Strategy — pricing behind an interchangeable interface",
		strategyBase, strategyImproved)...)
	return entries
}

// observerBase hard-wires the subject to every display it must update.
// Adding a display means editing the subject.
func observerBase(ctx context.Context, out catalog.Printer) error {
	price := 42.0

	updateDashboard := func(p float64) { out.Printf("dashboard shows %.2f", p) }
	updateTicker := func(p float64) { out.Printf("ticker shows %.2f", p) }

	// The subject knows each consumer by name.
	price = 43.5
	out.Printf("price changed to %.2f", price)
	updateDashboard(price)
	updateTicker(price)
	out.Println("new displays require editing the subject")
	return nil
}

// priceObserver receives price updates.
type priceObserver interface {
	Update(price float64)
}

// priceSubject notifies registered observers in registration order.
type priceSubject struct {
	observers []priceObserver
	price     float64
}

func (s *priceSubject) Attach(o priceObserver) {
	s.observers = append(s.observers, o)
}

func (s *priceSubject) SetPrice(p float64) {
	s.price = p
	for _, o := range s.observers {
		o.Update(p)
	}
}

type namedDisplay struct {
	name string
	out  catalog.Printer
}

func (d namedDisplay) Update(price float64) {
	d.out.Printf("%s shows %.2f", d.name, price)
}

func observerImproved(ctx context.Context, out catalog.Printer) error {
	subject := &priceSubject{}
	subject.Attach(namedDisplay{name: "dashboard", out: out})
	subject.Attach(namedDisplay{name: "ticker", out: out})

	out.Println("2 displays subscribed")
	subject.SetPrice(43.5)
	out.Println("new displays subscribe without touching the subject")
	return nil
}

// strategyBase selects the pricing rule with a switch on a mode string.
// Every new rule grows the switch, and unknown modes fail at run time.
func strategyBase(ctx context.Context, out catalog.Printer) error {
	price := func(mode string, amount float64) float64 {
		switch mode {
		case "regular":
			return amount
		case "member":
			return amount * 0.9
		case "clearance":
			return amount * 0.5
		default:
			return amount
		}
	}

	out.Printf("regular: %.2f", price("regular", 100))
	out.Printf("member: %.2f", price("member", 100))
	out.Println("pricing rules trapped inside one switch")
	return nil
}

// pricer computes a final price for an amount.
type pricer interface {
	Price(amount float64) float64
}

type regularPricing struct{}

func (regularPricing) Price(amount float64) float64 { return amount }

type memberPricing struct{}

func (memberPricing) Price(amount float64) float64 { return amount * 0.9 }

func strategyImproved(ctx context.Context, out catalog.Printer) error {
	checkout := func(p pricer, amount float64) float64 {
		return p.Price(amount)
	}

	out.Printf("regular: %.2f", checkout(regularPricing{}, 100))
	out.Printf("member: %.2f", checkout(memberPricing{}, 100))
	out.Println("new rules are new types, checkout never changes")
	return nil
}
