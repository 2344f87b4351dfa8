// Package reader assembles token.Token streams into runtime.Value
// forms. It is the incremental half of parsing: Push feeds a fragment
// of source, Pop drains whatever complete forms that fragment
// finished, and HasUnclosed reports whether an aggregate or a reader
// macro is still waiting for its close delimiter or its one form — the
// signal a REPL front end uses to switch to a continuation prompt
// instead of reporting an error.
package reader

import (
	"strconv"
	"strings"

	"github.com/jmcomets/mal/internal/lexer"
	"github.com/jmcomets/mal/internal/printer"
	"github.com/jmcomets/mal/internal/runtime"
	"github.com/jmcomets/mal/internal/token"
)

type frameKind int

const (
	frameList frameKind = iota
	frameVector
	frameDict
	frameMacro
)

// frame is an open, not-yet-closed construct on the reader's stack: an
// aggregate collecting elements, or a reader-macro prefix waiting for
// the single form it wraps. pos is where the frame's opening token
// (the delimiter or the macro prefix) was found, carried so an error
// raised while the frame is still open can point back at it.
type frame struct {
	kind       frameKind
	open       byte
	close      byte
	pos        token.Position
	elems      []runtime.Value
	macroName  string
	macroToken string
}

// completedForm is a finished value paired with the position of the
// token that started it, so callers that need to report an error
// evaluating it can point back at the source.
type completedForm struct {
	value runtime.Value
	pos   token.Position
}

// Reader holds the state of an in-progress parse: tokens not yet
// consumed, the stack of open frames, and forms that have completed
// but not yet been Popped.
type Reader struct {
	lex       *lexer.Lexer
	tokens    []token.Token
	frames    []*frame
	completed []completedForm
}

// New creates an empty Reader.
func New() *Reader {
	return &Reader{lex: lexer.New()}
}

// Push tokenizes fragment and assembles as many complete forms as the
// accumulated input allows. It returns an error the first time a
// malformed construct is found (unbalanced string, mismatched or
// unmatched delimiter, bad map literal); once an error is returned the
// reader's open-frame stack is reset so later input is not parsed as
// though still nested inside the failed construct. Forms that
// completed before the error remain available via Pop.
func (r *Reader) Push(fragment string) error {
	r.tokens = append(r.tokens, r.lex.Tokenize(fragment)...)
	for len(r.tokens) > 0 {
		tok := r.tokens[0]
		r.tokens = r.tokens[1:]
		if err := r.feed(tok); err != nil {
			r.frames = nil
			r.tokens = nil
			return err
		}
	}
	return nil
}

// Pop removes and returns the oldest completed form, if any.
func (r *Reader) Pop() (runtime.Value, bool) {
	v, _, ok := r.PopWithPos()
	return v, ok
}

// PopWithPos is Pop, additionally returning the position of the token
// that started the form — the anchor an evaluator can attach to any
// error it raises while evaluating the form.
func (r *Reader) PopWithPos() (runtime.Value, token.Position, bool) {
	if len(r.completed) == 0 {
		return nil, token.Position{}, false
	}
	f := r.completed[0]
	r.completed = r.completed[1:]
	return f.value, f.pos, true
}

// HasUnclosed reports whether an aggregate or reader-macro prefix is
// still open, awaiting more input.
func (r *Reader) HasUnclosed() bool {
	return len(r.frames) > 0
}

// ReadStr parses s as a single, complete form — the one-shot mode used
// by the `read-string` built-in. Empty or whitespace/comment-only
// input yields Nil. A reader-macro prefix or aggregate left open when
// s is exhausted is an error: one-shot mode has no continuation prompt
// to fall back on.
func ReadStr(s string) (runtime.Value, error) {
	v, _, err := ReadStrWithPos(s)
	return v, err
}

// ReadStrWithPos is ReadStr, additionally returning the position of
// the parsed form's first token.
func ReadStrWithPos(s string) (runtime.Value, token.Position, error) {
	r := New()
	if err := r.Push(s); err != nil {
		return nil, token.Position{}, err
	}
	if len(r.frames) > 0 {
		top := r.frames[len(r.frames)-1]
		if top.kind == frameMacro {
			return nil, token.Position{}, &MissingFormForAliasError{Prefix: top.macroToken, Pos: top.pos}
		}
		return nil, token.Position{}, &MismatchedDelimitersError{Open: top.open, ExpectedClose: top.close, Pos: top.pos}
	}
	v, pos, ok := r.PopWithPos()
	if !ok {
		return runtime.NilValue, token.Position{}, nil
	}
	return v, pos, nil
}

func (r *Reader) feed(tok token.Token) error {
	switch tok.Type {
	case token.LParen:
		r.frames = append(r.frames, &frame{kind: frameList, open: '(', close: ')', pos: tok.Pos()})
		return nil
	case token.LBrack:
		r.frames = append(r.frames, &frame{kind: frameVector, open: '[', close: ']', pos: tok.Pos()})
		return nil
	case token.LBrace:
		r.frames = append(r.frames, &frame{kind: frameDict, open: '{', close: '}', pos: tok.Pos()})
		return nil
	case token.RParen:
		return r.closeFrame(tok)
	case token.RBrack:
		return r.closeFrame(tok)
	case token.RBrace:
		return r.closeFrame(tok)
	case token.SpliceUnquote:
		r.frames = append(r.frames, &frame{kind: frameMacro, macroName: "splice-unquote", macroToken: "~@", pos: tok.Pos()})
		return nil
	case token.ReaderMacro:
		name, _ := token.MacroSymbol(tok.Literal)
		r.frames = append(r.frames, &frame{kind: frameMacro, macroName: name, macroToken: tok.Literal, pos: tok.Pos()})
		return nil
	case token.UnterminatedStr:
		return &UnbalancedStringError{Pos: tok.Pos()}
	case token.Str:
		s, err := unescapeString(tok.Literal, tok.Pos())
		if err != nil {
			return err
		}
		return r.complete(runtime.Str(s), tok.Pos())
	case token.Int:
		n, _ := strconv.ParseInt(tok.Literal, 10, 64)
		return r.complete(runtime.Int(n), tok.Pos())
	case token.Float:
		f, _ := strconv.ParseFloat(tok.Literal, 64)
		return r.complete(runtime.Float(f), tok.Pos())
	case token.Bool:
		return r.complete(runtime.Bool(tok.Literal == "true"), tok.Pos())
	case token.Nil:
		return r.complete(runtime.NilValue, tok.Pos())
	case token.Symbol:
		return r.complete(runtime.Symbol(tok.Literal), tok.Pos())
	default:
		return nil
	}
}

// closeFrame handles a close-delimiter token: it must match the
// innermost aggregate frame exactly, and a reader-macro frame sitting
// on top of an aggregate it closes is an error (the macro never got
// its form).
func (r *Reader) closeFrame(tok token.Token) error {
	got := tok.Literal[0]
	if len(r.frames) == 0 {
		return &UnmatchedDelimiterError{Close: got, Pos: tok.Pos()}
	}
	top := r.frames[len(r.frames)-1]
	if top.kind == frameMacro {
		return &MissingFormForAliasError{Prefix: top.macroToken, Pos: top.pos}
	}
	if top.close != got {
		return &MismatchedDelimitersError{Open: top.open, ExpectedClose: top.close, GotClose: got, Pos: top.pos}
	}

	r.frames = r.frames[:len(r.frames)-1]

	var value runtime.Value
	switch top.kind {
	case frameList:
		value = runtime.NewList(top.elems...)
	case frameVector:
		value = runtime.NewVector(top.elems...)
	case frameDict:
		v, err := buildDict(top.elems, top.pos)
		if err != nil {
			return err
		}
		value = v
	}
	return r.complete(value, top.pos)
}

// complete delivers a just-finished value v to whatever is waiting for
// it: the innermost aggregate (appended as its next element), the
// innermost reader-macro frame (wrapped into a two-element list and
// re-delivered, so chained prefixes like '@x collapse correctly), or —
// if nothing is open — the completed-forms queue. pos is the position
// v's own first token was found at; it is replaced by the macro
// frame's own position each time a prefix wraps v, since the wrapped
// form now starts at the prefix.
func (r *Reader) complete(v runtime.Value, pos token.Position) error {
	for {
		if len(r.frames) == 0 {
			r.completed = append(r.completed, completedForm{value: v, pos: pos})
			return nil
		}
		top := r.frames[len(r.frames)-1]
		if top.kind != frameMacro {
			top.elems = append(top.elems, v)
			return nil
		}
		r.frames = r.frames[:len(r.frames)-1]
		v = runtime.NewList(runtime.Symbol(top.macroName), v)
		pos = top.pos
	}
}

// buildDict validates and constructs a `{...}` literal: an even
// element count, every key Hashable, and no repeated key. pos is the
// position of the map's opening `{`.
func buildDict(elems []runtime.Value, pos token.Position) (runtime.Dict, error) {
	if len(elems)%2 != 0 {
		return runtime.Dict{}, &OddMapEntriesError{Pos: pos}
	}
	seen := make(map[runtime.HashKey]bool, len(elems)/2)
	for i := 0; i+1 < len(elems); i += 2 {
		key := elems[i]
		hk, err := runtime.ToHashKey(key)
		if err != nil {
			return runtime.Dict{}, &NotHashableError{Repr: printer.PrStr(key, true), Pos: pos}
		}
		if seen[hk] {
			return runtime.Dict{}, &DuplicateKeyError{Repr: printer.PrStr(key, true), Pos: pos}
		}
		seen[hk] = true
	}
	return runtime.NewDict(elems)
}

// unescapeString strips the surrounding quotes from a string token and
// resolves \n, \" and \\ escapes. pos is the string token's own
// position, used if the escape sequence itself turns out truncated.
func unescapeString(literal string, pos token.Position) (string, error) {
	if len(literal) < 2 {
		return "", &UnbalancedStringError{Pos: pos}
	}
	inner := literal[1 : len(literal)-1]

	var sb strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(inner) {
			return "", &UnbalancedStringError{Pos: pos}
		}
		switch inner[i] {
		case 'n':
			sb.WriteByte('\n')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(inner[i])
		}
	}
	return sb.String(), nil
}
