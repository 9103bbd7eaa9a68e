// SPDX-License-Identifier: MIT
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/fisherprime/modellex/lexer"
)

type (
	// ReadFunc attempts to read one construct starting at index at. A nil
	// node means the construct does not begin there & the caller should
	// try another alternative; a ParseError node means the construct was
	// unambiguously started but malformed & must not be retried as
	// something else.
	ReadFunc func(toks []lexer.Token, at int) (node Node, next int)
)

// skipInsignificant advances past whitespace, newline & comment tokens.
func skipInsignificant(toks []lexer.Token, at int) int {
	for at < len(toks) && !toks[at].IsSignificant() {
		at++
	}

	return at
}

// recoveryPoint reports tokens that signal definite recovery for an
// unterminated construct: a new declaration or an annotation marker.
func recoveryPoint(tok lexer.Token) bool {
	return tok.IsDeclaration() || tok.Is(lexer.AnnotationName)
}

// ReadNumber reads a numeric literal.
func ReadNumber(toks []lexer.Token, at int) (node Node, next int) {
	next = at

	i := skipInsignificant(toks, at)
	if i >= len(toks) || !toks[i].Is(lexer.Number) {
		return
	}

	next = i + 1

	val, convErr := strconv.ParseFloat(toks[i].Val, 64)
	if convErr != nil {
		node = newParseError(fmt.Sprintf("invalid numeric literal %q", toks[i].Val), toks, i, next)
		return
	}

	node = &NumericLiteral{source: newSource(toks, i, next), Value: val}

	return
}

// ReadBool reads a boolean literal.
func ReadBool(toks []lexer.Token, at int) (node Node, next int) {
	next = at

	i := skipInsignificant(toks, at)
	if i >= len(toks) || !toks[i].Is(lexer.Boolean) {
		return
	}

	next = i + 1
	node = &BoolLiteral{source: newSource(toks, i, next), Value: toks[i].Val == "true"}

	return
}

// ReadReference reads an identifier-shaped reference.
func ReadReference(toks []lexer.Token, at int) (node Node, next int) {
	next = at

	i := skipInsignificant(toks, at)
	if i >= len(toks) || !toks[i].IsName() {
		return
	}

	next = i + 1
	node = &Reference{source: newSource(toks, i, next), Name: toks[i].Val}

	return
}

// ReadString reads a string literal starting at a quote token, decoding
// recognized escapes. Reaching a newline or the end of input first commits
// to a ParseError spanning from the opening quote to the truncation point.
func ReadString(toks []lexer.Token, at int) (node Node, next int) {
	next = at

	i := skipInsignificant(toks, at)
	if i >= len(toks) || !toks[i].Is(lexer.Quote) {
		return
	}

	var value strings.Builder
	for j := i + 1; ; j++ {
		if j >= len(toks) || toks[j].Is(lexer.Newline) {
			node, next = newParseError("unterminated string literal", toks, i, j), j
			return
		}

		switch {
		case toks[j].Is(lexer.Quote):
			next = j + 1
			node = &StringLiteral{source: newSource(toks, i, next), Value: value.String()}
			return
		case toks[j].Is(lexer.Escape):
			value.WriteString(decodeEscape(toks[j].Val))
		default:
			value.WriteString(toks[j].Val)
		}
	}
}

// decodeEscape maps a backslash pair to its decoded value; an unrecognized
// escape degrades to its literal second character.
func decodeEscape(val string) string {
	second := val[1:]

	switch second {
	case "t":
		return "\t"
	case "b":
		return "\b"
	case "n":
		return "\n"
	case "r":
		return "\r"
	default:
		return second
	}
}

// ReadDelimited reads a list bracketed by open & close rules with item
// nodes produced by item & separated by sep. Insignificant tokens are
// skipped between elements; an empty list is valid; a missing item becomes
// a ParseError placeholder; stray content between elements is collected
// into one ParseError item; a list with no close token before the end of
// input or a recovery point is reported whole as unterminated.
func ReadDelimited(toks []lexer.Token, at int, open, sep, close *lexer.Rule, item ReadFunc) (node Node, next int) {
	next = at

	i := skipInsignificant(toks, at)
	if i >= len(toks) || !toks[i].Is(open) {
		return
	}

	start := i
	items := []Node{}
	next = i + 1
	wantItem, sawAny := true, false

	for {
		j := skipInsignificant(toks, next)
		if j >= len(toks) || recoveryPoint(toks[j]) {
			node, next = newParseError("unterminated list", toks, start, j), j
			return
		}

		tok := toks[j]
		if tok.Is(close) {
			if wantItem && sawAny {
				items = append(items, newParseError("missing item", toks, j, j))
			}

			next = j + 1
			node = &List{source: newSource(toks, start, next), Items: items}
			return
		}

		if !wantItem {
			if tok.Is(sep) {
				next = j + 1
				wantItem = true
				continue
			}

			k := strayEnd(toks, j, sep, close)
			items = append(items, newParseError("unexpected tokens in list", toks, j, k))
			next = k
			continue
		}

		if tok.Is(sep) {
			items = append(items, newParseError("missing item", toks, j, j))
			sawAny = true
			next = j + 1
			continue
		}

		if read, n := item(toks, j); read != nil {
			if n <= j {
				n = j + 1
			}

			items = append(items, read)
			next = n
			wantItem, sawAny = false, true
			continue
		}

		k := strayEnd(toks, j, sep, close)
		items = append(items, newParseError("unexpected tokens in list", toks, j, k))
		next = k
		wantItem, sawAny = false, true
	}
}

// strayEnd locates the end of a stray token run within a delimited list.
func strayEnd(toks []lexer.Token, at int, sep, close *lexer.Rule) int {
	for at < len(toks) && !toks[at].Is(sep) && !toks[at].Is(close) && !recoveryPoint(toks[at]) {
		at++
	}

	return at
}

// ReadFunctionCall reads an identifier applied to a parenthesized,
// comma-separated expression list.
func ReadFunctionCall(toks []lexer.Token, at int) (node Node, next int) {
	next = at

	i := skipInsignificant(toks, at)
	if i >= len(toks) || !toks[i].IsName() {
		return
	}

	j := skipInsignificant(toks, i+1)
	if j >= len(toks) || !toks[j].Is(lexer.ParenOpen) {
		return
	}

	callee := &Reference{source: newSource(toks, i, i+1), Name: toks[i].Val}

	list, n := ReadDelimited(toks, j, lexer.ParenOpen, lexer.Comma, lexer.ParenClose, ReadExpression)

	var args []Node
	switch resl := list.(type) {
	case *List:
		args = resl.Items
	default:
		args = []Node{resl}
	}

	next = n
	node = &FunctionCall{source: newSource(toks, i, next), Callee: callee, Args: args}

	return
}
