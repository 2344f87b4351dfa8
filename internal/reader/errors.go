package reader

import (
	"fmt"

	"github.com/jmcomets/mal/internal/token"
)

// UnbalancedStringError is raised for a string literal with no closing
// quote.
type UnbalancedStringError struct {
	Pos token.Position
}

func (e *UnbalancedStringError) Error() string            { return "unbalanced string (reader)" }
func (e *UnbalancedStringError) Position() token.Position { return e.Pos }

// MismatchedDelimitersError is raised when a close delimiter doesn't
// match the innermost open frame. Pos is the location of the open
// delimiter that never got the close it expected.
type MismatchedDelimitersError struct {
	Open          byte
	ExpectedClose byte
	GotClose      byte
	Pos           token.Position
}

func (e *MismatchedDelimitersError) Error() string {
	return fmt.Sprintf("unclosed '%c' (reader)", e.Open)
}
func (e *MismatchedDelimitersError) Position() token.Position { return e.Pos }

// UnmatchedDelimiterError is raised when a close delimiter appears with
// no open frame at all. Pos is the location of that stray delimiter.
type UnmatchedDelimiterError struct {
	Close byte
	Pos   token.Position
}

func (e *UnmatchedDelimiterError) Error() string {
	return fmt.Sprintf("unexpected '%c' (reader)", e.Close)
}
func (e *UnmatchedDelimiterError) Position() token.Position { return e.Pos }

// OddMapEntriesError is raised when a `{...}` form has an odd number of
// elements. Pos is the location of the opening `{`.
type OddMapEntriesError struct {
	Pos token.Position
}

func (e *OddMapEntriesError) Error() string            { return "odd number of map entries (reader)" }
func (e *OddMapEntriesError) Position() token.Position { return e.Pos }

// NotHashableError is raised when a map key is not Hashable. Pos is the
// location of the opening `{` of the offending map.
type NotHashableError struct {
	Repr string
	Pos  token.Position
}

func (e *NotHashableError) Error() string {
	return fmt.Sprintf("not hashable as map key: %s (reader)", e.Repr)
}
func (e *NotHashableError) Position() token.Position { return e.Pos }

// DuplicateKeyError is raised when a `{...}` form repeats a key. Pos is
// the location of the opening `{` of the offending map.
type DuplicateKeyError struct {
	Repr string
	Pos  token.Position
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate map key: %s (reader)", e.Repr)
}
func (e *DuplicateKeyError) Position() token.Position { return e.Pos }

// MissingFormForAliasError is raised when a reader-macro prefix has no
// following form: either a close delimiter arrives right after the
// prefix, or input ends after it in one-shot (non-incremental) parsing.
// Pos is the location of the prefix itself.
type MissingFormForAliasError struct {
	Prefix string
	Pos    token.Position
}

func (e *MissingFormForAliasError) Error() string {
	return fmt.Sprintf("expected a form after '%s' (reader)", e.Prefix)
}
func (e *MissingFormForAliasError) Position() token.Position { return e.Pos }
