// Package errors formats interpreter failures with source position
// context: a line/column header, the offending source line, and a
// caret pointing at the column — the same shape a compiler error
// takes.
package errors

import (
	"fmt"
	"strings"

	"github.com/jmcomets/mal/internal/token"
)

// Positioned is implemented by error types that know where in the
// source they occurred.
type Positioned interface {
	Position() token.Position
}

// PositionSetter is implemented by error types constructed with no
// visibility into the source position — a built-in raises them deep
// inside a Go closure that only sees evaluated arguments — so the
// evaluator can attach the calling form's position after the fact.
type PositionSetter interface {
	SetPosition(token.Position)
}

// SourceError pairs a message with the source text it came from so
// Format can render the offending line and a caret under the column.
type SourceError struct {
	Pos     token.Position
	Message string
	Source  string
	File    string
}

// Wrap builds a SourceError from any error, pulling its position out
// via Positioned when the error implements it. source is the full
// text the error was found in; file is the path it came from, or ""
// for inline/REPL input.
func Wrap(err error, source, file string) *SourceError {
	var pos token.Position
	if p, ok := err.(Positioned); ok {
		pos = p.Position()
	}
	return &SourceError{Pos: pos, Message: err.Error(), Source: source, File: file}
}

func (e *SourceError) Error() string { return e.Format(false) }

// Format renders the error: a position header, the source line with a
// line-number gutter, a caret under the column, then the message. If
// color is true, the caret and message are wrapped in ANSI codes.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.Pos.Line > 0 {
		if e.File != "" {
			fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
		} else {
			fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
		}
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		gutter := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(gutter)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(gutter)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// sourceLine extracts the 1-indexed lineNum from source, or "" if
// source is empty or lineNum falls outside it.
func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
