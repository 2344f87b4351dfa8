package builtins

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmcomets/mal/internal/runtime"
)

func TestPrStrBuiltin(t *testing.T) {
	env := newRootEnv()
	got := call(t, env, "pr-str", runtime.Str("a"), runtime.Int(1))
	if got != runtime.Str(`"a" 1`) {
		t.Errorf(`got %#v, want "a" 1`, got)
	}
}

func TestStrBuiltin(t *testing.T) {
	env := newRootEnv()
	got := call(t, env, "str", runtime.Str("a"), runtime.Int(1))
	if got != runtime.Str("a1") {
		t.Errorf("got %#v, want a1", got)
	}
}

func TestReadStringBuiltin(t *testing.T) {
	env := newRootEnv()
	got := call(t, env, "read-string", runtime.Str("(+ 1 2)"))
	list, ok := got.(runtime.List)
	if !ok || list.Len() != 3 {
		t.Fatalf("got %#v, want a 3-element list", got)
	}
}

func TestSlurp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	env := newRootEnv()
	got := call(t, env, "slurp", runtime.Str(path))
	if got != runtime.Str("hello") {
		t.Errorf("got %#v, want hello", got)
	}
}

func TestSlurpMissingFile(t *testing.T) {
	env := newRootEnv()
	v, _ := env.Get("slurp")
	fn := v.(runtime.Native)
	_, err := fn.Fn([]runtime.Value{runtime.Str(filepath.Join(t.TempDir(), "missing.txt"))})
	if err == nil {
		t.Fatal("expected an error reading a missing file")
	}
	if _, ok := err.(*IOError); !ok {
		t.Errorf("got %#v, want *IOError", err)
	}
}
