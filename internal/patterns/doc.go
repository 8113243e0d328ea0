// Package patterns bundles the built-in design-pattern demonstrations.
//
// Every pattern ships as a base/improved pair: the base variant shows the
// naive form of a problem, the improved variant applies the pattern
// properly. Both emit a short, deterministic sequence of lines describing
// what happened, so the two transcripts can be compared side by side.
//
// Demonstrations are self-contained: each one builds its own little object
// graph, exercises it once, and writes to the Printer it was given. They
// never touch process stdout, shared state, or the clock.
//
// Builtin assembles all of them into a sealed catalog:
//
//	cat, err := patterns.Builtin()
package patterns
