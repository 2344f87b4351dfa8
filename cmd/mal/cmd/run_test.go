package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), runErr
}

func TestRunScriptFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.mal")
	if err := os.WriteFile(path, []byte(`(prn (+ 1 2))`), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	oldEvalExpr := evalExpr
	defer func() { evalExpr = oldEvalExpr }()
	evalExpr = ""

	output, err := captureStdout(t, func() error {
		return runScript(runCmd, []string{path})
	})
	if err != nil {
		t.Fatalf("runScript failed: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "3") {
		t.Errorf("expected output to contain 3, got %q", output)
	}
}

func TestRunScriptInlineExpressionPrintsResult(t *testing.T) {
	oldEvalExpr := evalExpr
	defer func() { evalExpr = oldEvalExpr }()
	evalExpr = "(+ 1 2)"

	output, err := captureStdout(t, func() error {
		return runScript(runCmd, nil)
	})
	if err != nil {
		t.Fatalf("runScript failed: %v", err)
	}
	if strings.TrimSpace(output) != "3" {
		t.Errorf("got output %q, want 3", output)
	}
}

func TestRunScriptRequiresFileOrExpression(t *testing.T) {
	oldEvalExpr := evalExpr
	defer func() { evalExpr = oldEvalExpr }()
	evalExpr = ""

	if err := runScript(runCmd, nil); err == nil {
		t.Error("expected an error when neither a file nor -e is given")
	}
}

func TestRunScriptReportsEvalErrors(t *testing.T) {
	oldEvalExpr := evalExpr
	defer func() { evalExpr = oldEvalExpr }()
	evalExpr = "(undefined-symbol)"

	_, err := captureStdout(t, func() error {
		return runScript(runCmd, nil)
	})
	if err == nil {
		t.Error("expected an error evaluating an undefined symbol")
	}
}
