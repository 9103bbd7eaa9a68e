// SPDX-License-Identifier: MIT

// Package ast assembles model-language syntax trees from token streams.
// Malformed input still yields a best-effort, localizable structure:
// detected failures become ParseError nodes carrying a message & the
// offending token span instead of aborting the parse.
package ast

import (
	"gitlab.com/fisherprime/modellex/lexer"
)

type (
	// Node is a parsed fragment of the model language, always traceable
	// back to its source token span.
	Node interface {
		// Tokens retrieves the exact token sublist the node derives from.
		Tokens() []lexer.Token
		// Span retrieves the node's byte interval in the original text.
		Span() (start, end int)
	}

	// source carries the token sublist backing a Node.
	source struct {
		toks []lexer.Token
	}

	// NumericLiteral is a number literal.
	NumericLiteral struct {
		source
		Value float64
	}

	// BoolLiteral is a true/false literal.
	BoolLiteral struct {
		source
		Value bool
	}

	// StringLiteral is a quoted literal with its escapes decoded.
	StringLiteral struct {
		source
		Value string
	}

	// Reference names a declared or yet-unresolved entity.
	Reference struct {
		source
		Name string
	}

	// FunctionCall applies a referenced function to argument expressions.
	FunctionCall struct {
		source
		Callee *Reference
		Args   []Node
	}

	// UnaryExpr applies a prefix operator.
	UnaryExpr struct {
		source
		Op      string
		Operand Node
	}

	// BinaryExpr applies a left-associative infix operator.
	BinaryExpr struct {
		source
		Op    string
		Left  Node
		Right Node
	}

	// ArrayLiteral is a bracketed expression list.
	ArrayLiteral struct {
		source
		Items []Node
	}

	// GuardedCase is one arm of a GuardedBlock; a nil Guard marks the
	// default arm.
	GuardedCase struct {
		source
		Guard Node
		Value Node
	}

	// GuardedBlock selects among guarded arms.
	GuardedBlock struct {
		source
		Cases []*GuardedCase
	}

	// List is the result of a generic delimited-list read.
	List struct {
		source
		Items []Node
	}

	// ParseError is a detected-but-recoverable syntax failure; errors are
	// data here, not control flow.
	ParseError struct {
		source
		Message string
	}
)

// Tokens retrieves the exact token sublist the node derives from.
func (s source) Tokens() []lexer.Token { return s.toks }

// Span retrieves the node's byte interval in the original text.
func (s source) Span() (start, end int) {
	if len(s.toks) < 1 {
		return
	}

	start = s.toks[0].Pos
	end = s.toks[len(s.toks)-1].End()

	return
}

// newSource slices the backing tokens for the half-open index interval
// [from, to).
func newSource(toks []lexer.Token, from, to int) source {
	if from > len(toks) {
		from = len(toks)
	}
	if to > len(toks) {
		to = len(toks)
	}
	if from > to {
		from = to
	}

	return source{toks: toks[from:to]}
}

// newParseError instantiates a ParseError spanning [from, to).
func newParseError(message string, toks []lexer.Token, from, to int) *ParseError {
	return &ParseError{source: newSource(toks, from, to), Message: message}
}
