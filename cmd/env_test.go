package cmd

import (
	"bytes"
	"strings"
	"testing"
)

// testEnv runs the command tree in process against a fresh data directory.
type testEnv struct {
	t       *testing.T
	dataDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{t: t, dataDir: t.TempDir()}
}

func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	root, a := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--data-dir", e.dataDir, "--log-level", "error"}, args...))

	err := root.Execute()
	if closeErr := a.close(); closeErr != nil {
		e.t.Fatalf("close: %v", closeErr)
	}
	return out.String(), err
}

func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("quillpad %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}
