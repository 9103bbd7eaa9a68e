// SPDX-License-Identifier: MIT
package ast

import (
	"fmt"
	"strings"
	"testing"
)

// render flattens an expression tree into a parenthesized prefix form for
// shape assertions.
func render(node Node) string {
	switch resl := node.(type) {
	case *NumericLiteral:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", resl.Value), "0"), ".")
	case *BoolLiteral:
		return fmt.Sprintf("%t", resl.Value)
	case *StringLiteral:
		return fmt.Sprintf("%q", resl.Value)
	case *Reference:
		return resl.Name
	case *UnaryExpr:
		return fmt.Sprintf("(%s %s)", resl.Op, render(resl.Operand))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", resl.Op, render(resl.Left), render(resl.Right))
	case *FunctionCall:
		parts := make([]string, 0, len(resl.Args)+1)
		parts = append(parts, resl.Callee.Name)
		for _, arg := range resl.Args {
			parts = append(parts, render(arg))
		}
		return "(call " + strings.Join(parts, " ") + ")"
	case *ArrayLiteral:
		parts := make([]string, 0, len(resl.Items))
		for _, item := range resl.Items {
			parts = append(parts, render(item))
		}
		return "[" + strings.Join(parts, " ") + "]"
	case *GuardedBlock:
		parts := make([]string, 0, len(resl.Cases))
		for _, c := range resl.Cases {
			parts = append(parts, render(c))
		}
		return "{" + strings.Join(parts, " ") + "}"
	case *GuardedCase:
		if resl.Guard == nil {
			return "(else " + render(resl.Value) + ")"
		}
		return "(case " + render(resl.Guard) + " " + render(resl.Value) + ")"
	case *ParseError:
		return "(error)"
	default:
		return fmt.Sprintf("(%T)", node)
	}
}

func TestReadExpression(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "multiplication binds tighter than addition",
			text: "1 + 2 * 3",
			want: "(+ 1 (* 2 3))",
		},
		{
			name: "division binds tighter than subtraction",
			text: "2 - 3 / 4",
			want: "(- 2 (/ 3 4))",
		},
		{
			name: "left associativity",
			text: "1 - 2 - 3",
			want: "(- (- 1 2) 3)",
		},
		{
			name: "logical precedence",
			text: "a || b && c",
			want: "(|| a (&& b c))",
		},
		{
			name: "comparisons chain left",
			text: "1 < 2 == true",
			want: "(== (< 1 2) true)",
		},
		{
			name: "unary binds tighter than binary",
			text: "-a + !b",
			want: "(+ (- a) (! b))",
		},
		{
			name: "nested unary",
			text: "- -x",
			want: "(- (- x))",
		},
		{
			name: "parenthesized grouping",
			text: "(1 + 2) * 3",
			want: "(* (+ 1 2) 3)",
		},
		{
			name: "call as operand",
			text: "min(a, b) + 1",
			want: "(+ (call min a b) 1)",
		},
		{
			name: "array literal",
			text: "[1, 2 + 3, x]",
			want: "[1 (+ 2 3) x]",
		},
		{
			name: "empty array literal",
			text: "[]",
			want: "[]",
		},
		{
			name: "guarded block",
			text: "{ x > 0 -> 1, x < 0 -> -1, 0 }",
			want: "{(case (> x 0) 1) (case (< x 0) (- 1)) (else 0)}",
		},
		{
			name: "string operand",
			text: `"on" == mode`,
			want: `(== "on" mode)`,
		},
		{
			name: "missing right operand commits to an error node",
			text: "1 +",
			want: "(+ 1 (error))",
		},
		{
			name: "missing closing parenthesis",
			text: "(1 + 2",
			want: "(error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, _ := ReadExpression(mustScan(t, tt.text), 0)
			if node == nil {
				t.Fatal("ReadExpression() = nil")
			}

			if got := render(node); got != tt.want {
				t.Errorf("ReadExpression() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestReadExpression_Declines(t *testing.T) {
	for _, text := range []string{"", ", x", "} y"} {
		if node, _ := ReadExpression(mustScan(t, text), 0); node != nil {
			t.Errorf("ReadExpression(%q) = %v, want nil", text, node)
		}
	}
}
