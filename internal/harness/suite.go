package harness

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/patternlab/internal/catalog"
)

// Suite is a named batch of demonstration selections with optional
// expectations, defined in a YAML file.
type Suite struct {
	// Name uniquely identifies this suite.
	Name string `yaml:"name"`

	// Description explains what this suite demonstrates.
	Description string `yaml:"description"`

	// Runs lists the selections to execute, in order.
	Runs []SuiteRun `yaml:"runs"`
}

// SuiteRun selects one demonstration and optionally constrains its outcome.
type SuiteRun struct {
	// Category, Name, Variant are the selection tokens. They are
	// canonicalized during execution, so raw user input is acceptable.
	Category string `yaml:"category"`
	Name     string `yaml:"name"`
	Variant  string `yaml:"variant"`

	// Expect constrains the run's outcome. If nil, any ok result passes.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of one run.
type ExpectClause struct {
	// Status is the expected result status ("ok" or "failed").
	// Empty defaults to "ok".
	Status string `yaml:"status,omitempty"`

	// Output, when present, must equal the captured lines exactly.
	Output []string `yaml:"output,omitempty"`

	// Contains lists lines that must each appear somewhere in the output.
	// Useful when only part of the output is stable.
	Contains []string `yaml:"contains,omitempty"`
}

// LoadSuite reads and parses a suite YAML file.
//
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	// Strict field validation catches typos like "run:" vs "runs:".
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	return &suite, nil
}

// validateSuite checks that required fields are present and valid.
func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Runs) == 0 {
		return fmt.Errorf("runs list is required and must be non-empty")
	}

	for i, run := range s.Runs {
		if run.Category == "" {
			return fmt.Errorf("runs[%d]: category is required", i)
		}
		if run.Name == "" {
			return fmt.Errorf("runs[%d]: name is required", i)
		}
		if run.Variant == "" {
			return fmt.Errorf("runs[%d]: variant is required", i)
		}
		if run.Expect != nil && run.Expect.Status != "" {
			if run.Expect.Status != string(StatusOK) && run.Expect.Status != string(StatusFailed) {
				return fmt.Errorf("runs[%d].expect: status must be %q or %q", i, StatusOK, StatusFailed)
			}
		}
	}
	return nil
}

// SuiteRunResult is the outcome of one suite entry: the underlying run
// result plus expectation evaluation.
type SuiteRunResult struct {
	// Key is the canonical selection, or the raw tokens if they did not
	// form a valid key.
	Key string `json:"key"`

	// Pass is true when the run met its expectations.
	Pass bool `json:"pass"`

	// Result is the underlying harness result. Zero-valued when the
	// selection tokens were malformed.
	Result RunResult `json:"result"`

	// Errors lists expectation mismatches.
	Errors []string `json:"errors,omitempty"`
}

// SuiteResult aggregates a whole suite execution.
type SuiteResult struct {
	Suite  string           `json:"suite"`
	Runs   []SuiteRunResult `json:"runs"`
	Passed int              `json:"passed"`
	Failed int              `json:"failed"`
	Total  int              `json:"total"`
}

// OK reports whether every suite entry passed.
func (r *SuiteResult) OK() bool {
	return r.Failed == 0
}

// RunSuite executes every selection in the suite, in order, evaluating
// expectations. Aggregation is collect-and-report: a failing or even
// malformed entry never aborts the rest of the suite.
func (h *Harness) RunSuite(ctx context.Context, suite *Suite) *SuiteResult {
	result := &SuiteResult{
		Suite: suite.Name,
		Runs:  make([]SuiteRunResult, 0, len(suite.Runs)),
		Total: len(suite.Runs),
	}

	for _, sel := range suite.Runs {
		runResult := h.runSelection(ctx, sel)
		result.Runs = append(result.Runs, runResult)
		if runResult.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	return result
}

// runSelection executes one suite entry and evaluates its expect clause.
func (h *Harness) runSelection(ctx context.Context, sel SuiteRun) SuiteRunResult {
	key, err := catalog.NewKey(sel.Category, sel.Name, sel.Variant)
	if err != nil {
		return SuiteRunResult{
			Key:    fmt.Sprintf("%s/%s/%s", sel.Category, sel.Name, sel.Variant),
			Pass:   false,
			Errors: []string{fmt.Sprintf("invalid selection: %v", err)},
		}
	}

	res := h.Run(ctx, key)
	srr := SuiteRunResult{
		Key:    key.String(),
		Result: res,
	}

	wantStatus := StatusOK
	if sel.Expect != nil && sel.Expect.Status != "" {
		wantStatus = Status(sel.Expect.Status)
	}
	if res.Status != wantStatus {
		msg := fmt.Sprintf("expected status %q, got %q", wantStatus, res.Status)
		if res.Error != "" {
			msg += fmt.Sprintf(" (%s)", res.Error)
		}
		srr.Errors = append(srr.Errors, msg)
	}

	if sel.Expect != nil {
		if sel.Expect.Output != nil && !slices.Equal(sel.Expect.Output, res.Output) {
			srr.Errors = append(srr.Errors, fmt.Sprintf(
				"output mismatch: expected %d line(s) %v, got %d line(s) %v",
				len(sel.Expect.Output), sel.Expect.Output, len(res.Output), res.Output,
			))
		}
		for _, line := range sel.Expect.Contains {
			if !slices.Contains(res.Output, line) {
				srr.Errors = append(srr.Errors, fmt.Sprintf("output missing expected line %q", line))
			}
		}
	}

	srr.Pass = len(srr.Errors) == 0
	return srr
}
