package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Transcript captures an ordered batch of run results for golden
// comparison. Results must come from a harness with a deterministic clock
// and token generator, otherwise the serialized form differs between runs.
type Transcript struct {
	Name    string      `json:"name"`
	Results []RunResult `json:"results"`
}

// AssertGolden compares a transcript against a golden file under
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, results []RunResult) {
	t.Helper()

	transcript := Transcript{Name: name, Results: results}
	data, err := json.MarshalIndent(transcript, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal transcript: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
