package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck_AllPass(t *testing.T) {
	path := writeSuite(t, `
name: smoke
description: "builtin demos emit their documented lines"
runs:
  - category: creational
    name: singleton
    variant: improved
    expect:
      status: ok
      contains:
        - "instance created"
        - "instance reused"
  - category: behavioral
    name: strategy
    variant: base
`)

	out, err := execute(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ creational/singleton/improved")
	assert.Contains(t, out, "2 passed, 0 failed, 2 total")
	assert.Contains(t, out, "All suite runs passed")
}

func TestCheck_FailuresCollected(t *testing.T) {
	path := writeSuite(t, `
name: mixed
description: "one failing run must not hide the passing one"
runs:
  - category: behavioral
    name: nonexistent
    variant: base
  - category: structural
    name: adapter
    variant: improved
`)

	out, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ behavioral/nonexistent/base")
	assert.Contains(t, out, "✓ structural/adapter/improved")
	assert.Contains(t, out, "1 passed, 1 failed, 2 total")
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := execute(t, "check", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheck_MalformedSuite(t *testing.T) {
	path := writeSuite(t, "name: broken\n")

	_, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheck_JSONFormat(t *testing.T) {
	path := writeSuite(t, `
name: json-suite
description: "JSON envelope for suite results"
runs:
  - category: casestudy
    name: checkout
    variant: improved
`)

	out, err := execute(t, "--format", "json", "check", path)
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Suite  string `json:"suite"`
			Passed int    `json:"passed"`
			Total  int    `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "json-suite", resp.Data.Suite)
	assert.Equal(t, 1, resp.Data.Passed)
	assert.Equal(t, 1, resp.Data.Total)
}
