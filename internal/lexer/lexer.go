// Package lexer implements a regex-driven tokenizer, following the
// same single-regex technique as the reference mal implementations.
// It turns raw source fragments into a stream of token.Token values;
// it never looks at delimiter nesting — that is the reader's job.
package lexer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jmcomets/mal/internal/token"
)

// tokenPattern is the single regex that drives tokenization: an
// optional separator run, then one of a two-character splice-unquote,
// a single special character, a (possibly unterminated) string
// literal, a line comment, or a run of anything else.
const tokenPattern = `[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + "`" + `,;)]*)`

var tokenRE = regexp.MustCompile(tokenPattern)

// Lexer tokenizes source fragments fed to it incrementally, tracking
// line/column across calls so error positions stay accurate across a
// multi-line interactive session.
type Lexer struct {
	line   int
	column int
}

// New creates a Lexer starting at line 1, column 1.
func New() *Lexer {
	return &Lexer{line: 1, column: 1}
}

// Tokenize scans a source fragment and returns the tokens it contains,
// in order. Whitespace/commas are separators (never emitted); comments
// are recognized and discarded; an empty capture (consecutive
// separators, or end of input) is ignored. Position fields on the
// returned tokens reflect the lexer's running line/column, which this
// call advances.
func (l *Lexer) Tokenize(fragment string) []token.Token {
	var tokens []token.Token

	matches := tokenRE.FindAllStringSubmatchIndex(fragment, -1)
	for _, m := range matches {
		// m[0],m[1] is the whole match (including leading separators);
		// m[2],m[3] is the captured token text.
		sepStart, capStart, capEnd := m[0], m[2], m[3]

		// Advance position through the skipped separators so reported
		// positions for the captured token are accurate.
		l.advance(fragment[sepStart:capStart])

		text := fragment[capStart:capEnd]
		if text == "" {
			continue
		}

		startLine, startCol := l.line, l.column
		l.advance(text)

		if strings.HasPrefix(text, ";") {
			continue
		}

		tokens = append(tokens, classify(text, startLine, startCol))
	}

	return tokens
}

// advance moves the running line/column past s, which may contain
// newlines.
func (l *Lexer) advance(s string) {
	for _, r := range s {
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
}

func classify(text string, line, col int) token.Token {
	mk := func(t token.Type) token.Token {
		return token.Token{Type: t, Literal: text, Line: line, Column: col}
	}

	switch text {
	case "~@":
		return mk(token.SpliceUnquote)
	case "(":
		return mk(token.LParen)
	case ")":
		return mk(token.RParen)
	case "[":
		return mk(token.LBrack)
	case "]":
		return mk(token.RBrack)
	case "{":
		return mk(token.LBrace)
	case "}":
		return mk(token.RBrace)
	case "'", "`", "~", "@", "^":
		return mk(token.ReaderMacro)
	case "true", "false":
		return mk(token.Bool)
	case "nil":
		return mk(token.Nil)
	}

	if strings.HasPrefix(text, `"`) {
		if len(text) >= 2 && strings.HasSuffix(text, `"`) && !escapedClosingQuote(text) {
			return mk(token.Str)
		}
		return mk(token.UnterminatedStr)
	}

	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return mk(token.Int)
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return mk(token.Float)
	}

	return mk(token.Symbol)
}

// escapedClosingQuote reports whether the trailing `"` in text is
// itself escaped (i.e. text is really unterminated, e.g. `"a\"`).
func escapedClosingQuote(text string) bool {
	if len(text) < 2 {
		return false
	}
	// Count trailing backslashes immediately before the final quote.
	backslashes := 0
	for i := len(text) - 2; i >= 0 && text[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 1
}
