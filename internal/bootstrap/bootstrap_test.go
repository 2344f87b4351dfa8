package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmcomets/mal/internal/eval"
	"github.com/jmcomets/mal/internal/reader"
	"github.com/jmcomets/mal/internal/runtime"
)

func evalStr(t *testing.T, env *runtime.Environment, src string) runtime.Value {
	t.Helper()
	form, err := reader.ReadStr(src)
	if err != nil {
		t.Fatalf("read %q failed: %v", src, err)
	}
	v, err := eval.Eval(form, env)
	if err != nil {
		t.Fatalf("eval %q failed: %v", src, err)
	}
	return v
}

func TestNewRootEnvironmentInstallsBuiltins(t *testing.T) {
	root, err := NewRootEnvironment()
	if err != nil {
		t.Fatalf("NewRootEnvironment failed: %v", err)
	}
	for _, name := range []string{"+", "-", "list", "atom", "eval", "load-file"} {
		if _, ok := root.Get(runtime.Symbol(name)); !ok {
			t.Errorf("expected %q to be bound in the root environment", name)
		}
	}
}

func TestEvalIgnoresCallerScope(t *testing.T) {
	root, err := NewRootEnvironment()
	if err != nil {
		t.Fatalf("NewRootEnvironment failed: %v", err)
	}
	evalStr(t, root, "(def! x 1)")
	got := evalStr(t, root, `(let* (x 2) (eval (read-string "x")))`)
	if got != runtime.Int(1) {
		t.Errorf("got %#v, want Int(1): eval must resolve against the root, not the let* scope", got)
	}
}

func TestLoadFile(t *testing.T) {
	root, err := NewRootEnvironment()
	if err != nil {
		t.Fatalf("NewRootEnvironment failed: %v", err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.mal")
	if err := os.WriteFile(path, []byte("(def! answer 42)"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	evalStr(t, root, `(load-file "`+path+`")`)
	if got := evalStr(t, root, "answer"); got != runtime.Int(42) {
		t.Errorf("got %#v, want Int(42)", got)
	}
}

func TestReadStringRoundTrip(t *testing.T) {
	root, err := NewRootEnvironment()
	if err != nil {
		t.Fatalf("NewRootEnvironment failed: %v", err)
	}
	got := evalStr(t, root, `(eval (read-string "(+ 1 2)"))`)
	if got != runtime.Int(3) {
		t.Errorf("got %#v, want Int(3)", got)
	}
}
