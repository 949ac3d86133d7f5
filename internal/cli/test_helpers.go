package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"pmplan/internal/config"
	"pmplan/internal/store"
)

// testBacklogYAML scores S-1 at 48, S-2 at 2 and S-3 at 1. S-3 carries
// every data-quality warning.
const testBacklogYAML = `stories:
  - id: S-1
    title: Export invoices as PDF
    priority: must
    status: unassigned
    linked_need_id: N-1
    stakeholders: [alice, bob]
  - id: S-2
    title: Dark mode
    priority: could
    status: planned
    sprint_id: SP-1
    linked_need_id: N-2
    stakeholders: [carol]
  - id: S-3
    title: Tidy up
sprints:
  - id: SP-1
    name: Sprint 1
    story_ids: [S-2]
needs:
  - id: N-1
    title: Invoicing
    importance: critical
    contact_id: C-1
  - id: N-2
    title: Theming
    importance: low
contacts:
  - id: C-1
    name: Acme
    type: external
`

// createBacklogFile writes content to a backlog file in tmpDir and returns
// its path.
func createBacklogFile(t *testing.T, tmpDir string, content string) string {
	t.Helper()

	path := filepath.Join(tmpDir, "backlog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write backlog file: %v", err)
	}
	return path
}

// cliResult captures one CLI run.
type cliResult struct {
	ExecuteResult
	Stdout string
	Stderr string
}

// runCLI runs the CLI against the backlog at path with default config.
func runCLI(t *testing.T, path string, args ...string) cliResult {
	t.Helper()
	t.Setenv(store.PathEnv, "")

	var out, errOut bytes.Buffer
	full := append(append([]string{}, args...), "--backlog", path)
	res := RunWithConfig(config.DefaultConfig(), full, &out, &errOut)
	return cliResult{ExecuteResult: res, Stdout: out.String(), Stderr: errOut.String()}
}
