// Package harness executes registered pattern demonstrations uniformly.
//
// Given a (category, name, variant) key, the harness resolves the entry
// through a catalog, invokes its run callable with a per-invocation output
// sink, and reports a structured RunResult. The harness never returns an
// error and never lets a fault escape: lookup misses, returned errors,
// panics, and optional wall-clock overruns all become failed results with
// whatever output was captured before the fault.
//
// # Single run
//
// A run moves through Pending → Resolving → Executing and terminates in
// Completed (StatusOK) or Faulted (StatusFailed). There are no retries.
//
//	h := harness.New(cat)
//	res := h.Run(ctx, catalog.Key{
//	    Category: catalog.CategoryBehavioral,
//	    Name:     "observer",
//	    Variant:  catalog.VariantImproved,
//	})
//
// # Batches
//
// RunAll executes the filtered, ordered key list from the catalog and
// continues past individual failures; N selected entries always produce
// exactly N results.
//
// # Suites
//
// Suites are YAML files naming a batch of selections with optional
// expected-status and expected-output clauses:
//
//	name: smoke
//	description: "Creational demos produce their documented output"
//	runs:
//	  - category: creational
//	    name: singleton
//	    variant: improved
//	    expect:
//	      status: ok
//	      output:
//	        - "instance created"
//	        - "instance reused"
//
// Suite execution is collect-and-report: every run is attempted and every
// expectation mismatch recorded.
//
// # Deterministic testing
//
// Results carry a RunID from a TokenGenerator (UUIDv7 in production) and a
// sequence number from a Clock. Injecting a FixedGenerator and a
// testutil.DeterministicClock makes transcripts byte-identical across
// runs, which the golden-file helpers rely on.
package harness
