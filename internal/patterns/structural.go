package patterns

import (
	"context"

	"github.com/roach88/patternlab/internal/catalog"
)

func structuralEntries() []catalog.Entry {
	var entries []catalog.Entry
	entries = append(entries, pair(catalog.CategoryStructural, "adapter",
		"Adapter — client rewritten around the legacy interface",
		"Adapter — legacy sensor wrapped behind the expected interface",
		adapterBase, adapterImproved)...)
	entries = append(entries, pair(catalog.CategoryStructural, "decorator",
		"Decorator — feature flags hard-coded into one struct",
		"Decorator — features stacked as independent wrappers",
		decoratorBase, decoratorImproved)...)
	return entries
}

// thermometer is the interface the monitoring client expects: celsius.
type thermometer interface {
	Celsius() float64
}

// legacySensor reports fahrenheit and cannot be changed.
type legacySensor struct{}

func (legacySensor) Fahrenheit() float64 { return 98.6 }

// adapterBase gives up on the thermometer interface and converts inline at
// the call site, duplicating the conversion wherever a legacy sensor shows up.
func adapterBase(ctx context.Context, out catalog.Printer) error {
	sensor := legacySensor{}

	f := sensor.Fahrenheit()
	c := (f - 32) * 5 / 9
	out.Println("client converts fahrenheit inline")
	out.Printf("reading: %.1f°C", c)
	out.Println("every other call site repeats the conversion")
	return nil
}

// sensorAdapter makes a legacySensor satisfy thermometer.
type sensorAdapter struct {
	legacy legacySensor
}

func (a sensorAdapter) Celsius() float64 {
	return (a.legacy.Fahrenheit() - 32) * 5 / 9
}

func adapterImproved(ctx context.Context, out catalog.Printer) error {
	var t thermometer = sensorAdapter{legacy: legacySensor{}}

	out.Println("client sees the thermometer interface only")
	out.Printf("reading: %.1f°C", t.Celsius())
	out.Println("conversion lives in one adapter")
	return nil
}

// notifier delivers a message; decorators add behavior around it.
type notifier interface {
	Send(msg string) string
}

type plainNotifier struct{}

func (plainNotifier) Send(msg string) string { return msg }

// decoratorBase bakes every optional feature into one struct with flags.
// Adding a feature means touching this type and every flag combination.
func decoratorBase(ctx context.Context, out catalog.Printer) error {
	type flaggedNotifier struct {
		timestamp bool
		signature bool
	}
	send := func(n flaggedNotifier, msg string) string {
		if n.timestamp {
			msg = "[t0] " + msg
		}
		if n.signature {
			msg = msg + " -- ops"
		}
		return msg
	}

	n := flaggedNotifier{timestamp: true, signature: true}
	out.Println("features selected by boolean flags")
	out.Printf("sent: %q", send(n, "deploy finished"))
	out.Println("each new feature multiplies the flag combinations")
	return nil
}

type timestampNotifier struct {
	next notifier
}

func (d timestampNotifier) Send(msg string) string {
	return d.next.Send("[t0] " + msg)
}

type signatureNotifier struct {
	next notifier
}

func (d signatureNotifier) Send(msg string) string {
	return d.next.Send(msg + " -- ops")
}

func decoratorImproved(ctx context.Context, out catalog.Printer) error {
	var n notifier = plainNotifier{}
	n = signatureNotifier{next: n}
	n = timestampNotifier{next: n}

	out.Println("features stacked as wrappers")
	out.Printf("sent: %q", n.Send("deploy finished"))
	out.Println("adding a feature means adding a wrapper, nothing else changes")
	return nil
}
