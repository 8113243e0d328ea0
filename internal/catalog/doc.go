// Package catalog owns the registry of runnable pattern demonstrations.
//
// Every demonstration is identified by a (category, name, variant) key.
// The category places the pattern in the classic taxonomy (creational,
// structural, behavioral) or one of the supplementary buckets (casestudy,
// additional). The variant distinguishes the naive "base" form of an
// example from its "improved" form that applies the pattern properly.
//
// # Lifecycle
//
// A catalog is built once during an initialization phase and read-only
// afterwards:
//
//	cat := catalog.New()
//	err := cat.Register(catalog.Entry{...})
//	cat.Seal()
//
// Register rejects duplicate keys and registration after Seal with
// structured errors. Registration is not safe for concurrent use; once
// sealed, a catalog may be read from any goroutine.
//
// # Pairing convention
//
// The content this catalog is populated with follows a base/improved
// pairing convention: every (category, name) that has a base variant also
// has an improved one. The catalog documents the convention but does not
// enforce it — a missing variant is an ordinary not-found at resolve time.
// UnpairedKeys reports violations for diagnostics.
package catalog
