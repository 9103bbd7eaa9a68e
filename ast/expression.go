// SPDX-License-Identifier: MIT
package ast

import (
	"fmt"

	"gitlab.com/fisherprime/modellex/lexer"
)

// binaryLevels orders the infix operators from loosest to tightest binding;
// all levels associate left.
var binaryLevels = [][]*lexer.Rule{
	{lexer.Or},
	{lexer.And},
	{lexer.Equal, lexer.NotEqual, lexer.GreaterEqual, lexer.LessEqual, lexer.Greater, lexer.Less},
	{lexer.Minus},
	{lexer.Plus},
	{lexer.Slash},
	{lexer.Star},
}

// ReadExpression reads one expression, honoring operator precedence.
func ReadExpression(toks []lexer.Token, at int) (node Node, next int) {
	return readBinary(toks, at, 0)
}

func readBinary(toks []lexer.Token, at, level int) (node Node, next int) {
	if level >= len(binaryLevels) {
		return readUnary(toks, at)
	}

	node, next = readBinary(toks, at, level+1)
	if node == nil {
		return
	}

	start := skipInsignificant(toks, at)

	for {
		j := skipInsignificant(toks, next)
		if j >= len(toks) {
			return
		}

		matched := false
		for _, rule := range binaryLevels[level] {
			if toks[j].Is(rule) {
				matched = true
				break
			}
		}
		if !matched {
			return
		}

		right, n := readBinary(toks, j+1, level+1)
		if right == nil {
			right = newParseError(fmt.Sprintf("missing operand after %q", toks[j].Val), toks, j, j+1)
			n = j + 1
		}

		next = n
		node = &BinaryExpr{
			source: newSource(toks, start, next),
			Op:     toks[j].Val,
			Left:   node,
			Right:  right,
		}
	}
}

func readUnary(toks []lexer.Token, at int) (node Node, next int) {
	next = at

	i := skipInsignificant(toks, at)
	if i >= len(toks) {
		return
	}

	if toks[i].Is(lexer.Not) || toks[i].Is(lexer.Plus) || toks[i].Is(lexer.Minus) {
		operand, n := readUnary(toks, i+1)
		if operand == nil {
			operand = newParseError(fmt.Sprintf("missing operand after %q", toks[i].Val), toks, i, i+1)
			n = i + 1
		}

		next = n
		node = &UnaryExpr{source: newSource(toks, i, next), Op: toks[i].Val, Operand: operand}

		return
	}

	return readPrimary(toks, i)
}

func readPrimary(toks []lexer.Token, at int) (node Node, next int) {
	next = at

	i := skipInsignificant(toks, at)
	if i >= len(toks) {
		return
	}

	if node, next = ReadNumber(toks, i); node != nil {
		return
	}
	if node, next = ReadBool(toks, i); node != nil {
		return
	}
	if node, next = ReadString(toks, i); node != nil {
		return
	}

	if toks[i].Is(lexer.ParenOpen) {
		return readParenthesized(toks, i)
	}

	if node, next = readArray(toks, i); node != nil {
		return
	}
	if node, next = readGuardedBlock(toks, i); node != nil {
		return
	}
	if node, next = ReadFunctionCall(toks, i); node != nil {
		return
	}

	return ReadReference(toks, i)
}

func readParenthesized(toks []lexer.Token, at int) (node Node, next int) {
	inner, n := ReadExpression(toks, at+1)
	if inner == nil {
		inner = newParseError("missing expression after '('", toks, at, at+1)
		n = at + 1
	}

	j := skipInsignificant(toks, n)
	if j >= len(toks) || !toks[j].Is(lexer.ParenClose) {
		node, next = newParseError("missing closing parenthesis", toks, at, n), n
		return
	}

	node, next = inner, j+1

	return
}

func readArray(toks []lexer.Token, at int) (node Node, next int) {
	list, n := ReadDelimited(toks, at, lexer.BracketOpen, lexer.Comma, lexer.BracketClose, ReadExpression)

	next = n

	switch resl := list.(type) {
	case nil:
		next = at
	case *List:
		node = &ArrayLiteral{source: resl.source, Items: resl.Items}
	default:
		node = list
	}

	return
}

func readGuardedBlock(toks []lexer.Token, at int) (node Node, next int) {
	list, n := ReadDelimited(toks, at, lexer.BraceOpen, lexer.Comma, lexer.BraceClose, readGuardedCase)

	next = n

	switch resl := list.(type) {
	case nil:
		next = at
	case *List:
		cases := make([]*GuardedCase, 0, len(resl.Items))
		for _, item := range resl.Items {
			if c, ok := item.(*GuardedCase); ok {
				cases = append(cases, c)
				continue
			}

			// Placeholder & stray errors become error-valued arms.
			cases = append(cases, &GuardedCase{source: source{toks: item.Tokens()}, Value: item})
		}

		node = &GuardedBlock{source: resl.source, Cases: cases}
	default:
		node = list
	}

	return
}

// readGuardedCase reads one `guard -> value` arm; an arm without the case
// indicator is the default arm.
func readGuardedCase(toks []lexer.Token, at int) (node Node, next int) {
	next = at

	guard, n := ReadExpression(toks, at)
	if guard == nil {
		return
	}

	start := skipInsignificant(toks, at)

	j := skipInsignificant(toks, n)
	if j < len(toks) && toks[j].Is(lexer.Arrow) {
		value, m := ReadExpression(toks, j+1)
		if value == nil {
			value = newParseError("missing case value after '->'", toks, j, j+1)
			m = j + 1
		}

		next = m
		node = &GuardedCase{source: newSource(toks, start, next), Guard: guard, Value: value}

		return
	}

	next = n
	node = &GuardedCase{source: newSource(toks, start, next), Value: guard}

	return
}
