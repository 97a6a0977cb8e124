package chainscript

import (
	"fmt"
	"strconv"
	"strings"
)

// LexError reports a character the lexer does not recognize.
type LexError struct {
	Char rune
	Pos  Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: unexpected character %q", e.Pos.Line, e.Pos.Column, e.Char)
}

// ParseError reports a token that does not match the expected grammar
// production. Parsing stops at the first mismatch.
type ParseError struct {
	Expected string
	Found    Token
}

func (e *ParseError) Error() string {
	found := string(e.Found.Type)
	if e.Found.Type == tokenIdent || e.Found.Type == tokenInt {
		found = e.Found.Literal
	}
	return fmt.Sprintf("parse error at %d:%d: expected %s, found %s", e.Found.Pos.Line, e.Found.Pos.Column, e.Expected, found)
}

// RuntimeErrorKind classifies runtime failures.
type RuntimeErrorKind string

const (
	ErrRuntime           RuntimeErrorKind = "RuntimeError"
	ErrUndefinedVariable RuntimeErrorKind = "UndefinedVariable"
	ErrUnknownFunction   RuntimeErrorKind = "UnknownFunction"
	ErrAssertionFailed   RuntimeErrorKind = "AssertionFailed"
)

// RuntimeError aborts evaluation. Side effects performed before the failing
// statement remain observed; nothing after it runs.
type RuntimeError struct {
	Kind      RuntimeErrorKind
	Name      string // offending variable or function name, when applicable
	Message   string
	Pos       Position
	CodeFrame string
}

func (e *RuntimeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.CodeFrame != "" {
		b.WriteString("\n")
		b.WriteString(e.CodeFrame)
	}
	return b.String()
}

func formatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	lineText := lines[pos.Line-1]
	lineRunes := []rune(lineText)

	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if column > len(lineRunes)+1 {
		column = len(lineRunes) + 1
	}

	lineLabel := strconv.Itoa(pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		pos.Line,
		column,
		lineLabel,
		lineText,
		gutterPad,
		caretPad,
	)
}
