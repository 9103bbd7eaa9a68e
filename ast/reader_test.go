// SPDX-License-Identifier: MIT
package ast

import (
	"strings"
	"testing"

	"gitlab.com/fisherprime/modellex/lexer"
)

func mustScan(t *testing.T, text string) []lexer.Token {
	t.Helper()

	toks, err := lexer.ScanModel(text, nil)
	if err != nil {
		t.Fatalf("ScanModel() error = %v", err)
	}

	return toks
}

func TestReadString(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantValue string
		wantErr   string
	}{
		{
			name:      "plain",
			text:      `"abc"`,
			wantValue: "abc",
		},
		{
			name:      "empty",
			text:      `""`,
			wantValue: "",
		},
		{
			name: "recognized and degraded escapes",
			// Decodes to a<TAB>b"c: the quote escape's second character is
			// not a recognized control escape & degrades to the literal.
			text:      `"a\tb\"c"`,
			wantValue: "a\tb\"c",
		},
		{
			name:      "all control escapes",
			text:      `"\t\b\n\r\x"`,
			wantValue: "\t\b\n\rx",
		},
		{
			name:    "unterminated at end of input",
			text:    `"abc`,
			wantErr: "unterminated string literal",
		},
		{
			name:    "unterminated at newline",
			text:    "\"abc\nx",
			wantErr: "unterminated string literal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := mustScan(t, tt.text)

			node, next := ReadString(toks, 0)
			if node == nil {
				t.Fatal("ReadString() = nil")
			}

			if tt.wantErr != "" {
				resl, ok := node.(*ParseError)
				if !ok {
					t.Fatalf("ReadString() = %T, want *ParseError", node)
				}
				if resl.Message != tt.wantErr {
					t.Errorf("ReadString() message = %q, want %q", resl.Message, tt.wantErr)
				}
				if start, _ := resl.Span(); start != 0 {
					t.Errorf("ReadString() error span start = %d, want 0", start)
				}
				return
			}

			resl, ok := node.(*StringLiteral)
			if !ok {
				t.Fatalf("ReadString() = %T, want *StringLiteral", node)
			}
			if resl.Value != tt.wantValue {
				t.Errorf("ReadString() value = %q, want %q", resl.Value, tt.wantValue)
			}

			// The reader consumes through the closing quote.
			if next != len(toks) && !strings.HasPrefix(tt.text[toks[next].Pos:], "\n") {
				t.Errorf("ReadString() next = %d, want %d", next, len(toks))
			}
		})
	}
}

func TestReadString_Declines(t *testing.T) {
	toks := mustScan(t, "x + 1")

	if node, _ := ReadString(toks, 0); node != nil {
		t.Errorf("ReadString() = %v, want nil", node)
	}
}

func TestReadString_UnterminatedSpan(t *testing.T) {
	text := `const x = "abc`
	toks := mustScan(t, text)

	// Locate the opening quote token.
	at := 0
	for ; at < len(toks); at++ {
		if toks[at].Is(lexer.Quote) {
			break
		}
	}

	node, _ := ReadString(toks, at)
	resl, ok := node.(*ParseError)
	if !ok {
		t.Fatalf("ReadString() = %T, want *ParseError", node)
	}

	start, end := resl.Span()
	if start != strings.Index(text, `"`) || end != len(text) {
		t.Errorf("ReadString() span = [%d, %d), want [%d, %d)", start, end, strings.Index(text, `"`), len(text))
	}
}

func TestReadDelimited(t *testing.T) {
	read := func(t *testing.T, text string) (Node, int) {
		t.Helper()
		return ReadDelimited(mustScan(t, text), 0, lexer.ParenOpen, lexer.Comma, lexer.ParenClose, ReadExpression)
	}

	t.Run("empty list is valid", func(t *testing.T) {
		node, _ := read(t, "()")

		resl, ok := node.(*List)
		if !ok {
			t.Fatalf("ReadDelimited() = %T, want *List", node)
		}
		if len(resl.Items) != 0 {
			t.Errorf("ReadDelimited() items = %v, want none", resl.Items)
		}
	})

	t.Run("items across layout", func(t *testing.T) {
		node, _ := read(t, "( 1 ,\n 2 )")

		resl, ok := node.(*List)
		if !ok {
			t.Fatalf("ReadDelimited() = %T, want *List", node)
		}
		if len(resl.Items) != 2 {
			t.Fatalf("ReadDelimited() items = %d, want 2", len(resl.Items))
		}
	})

	t.Run("missing item placeholder", func(t *testing.T) {
		node, _ := read(t, "(1,,2)")

		resl := node.(*List)
		if len(resl.Items) != 3 {
			t.Fatalf("ReadDelimited() items = %d, want 3", len(resl.Items))
		}
		if _, ok := resl.Items[1].(*ParseError); !ok {
			t.Errorf("ReadDelimited() items[1] = %T, want *ParseError", resl.Items[1])
		}
	})

	t.Run("missing item before close", func(t *testing.T) {
		node, _ := read(t, "(1,)")

		resl := node.(*List)
		if len(resl.Items) != 2 {
			t.Fatalf("ReadDelimited() items = %d, want 2", len(resl.Items))
		}
		if _, ok := resl.Items[1].(*ParseError); !ok {
			t.Errorf("ReadDelimited() items[1] = %T, want *ParseError", resl.Items[1])
		}
	})

	t.Run("stray content between item and close", func(t *testing.T) {
		node, _ := read(t, "(1 2 3)")

		resl := node.(*List)
		if len(resl.Items) != 2 {
			t.Fatalf("ReadDelimited() items = %d, want 2", len(resl.Items))
		}
		if _, ok := resl.Items[1].(*ParseError); !ok {
			t.Errorf("ReadDelimited() items[1] = %T, want *ParseError", resl.Items[1])
		}
	})

	t.Run("unterminated at end of input", func(t *testing.T) {
		node, _ := read(t, "(1, 2")

		if _, ok := node.(*ParseError); !ok {
			t.Fatalf("ReadDelimited() = %T, want *ParseError", node)
		}
	})

	t.Run("declaration keyword stops runaway consumption", func(t *testing.T) {
		toks := mustScan(t, "(1, 2\nconst x = 1")

		node, next := ReadDelimited(toks, 0, lexer.ParenOpen, lexer.Comma, lexer.ParenClose, ReadExpression)
		if _, ok := node.(*ParseError); !ok {
			t.Fatalf("ReadDelimited() = %T, want *ParseError", node)
		}

		if next >= len(toks) || !toks[next].IsDeclaration() {
			t.Errorf("ReadDelimited() did not stop at the declaration keyword")
		}
	})

	t.Run("does not begin here", func(t *testing.T) {
		node, next := read(t, "1, 2)")
		if node != nil || next != 0 {
			t.Errorf("ReadDelimited() = (%v, %d), want (nil, 0)", node, next)
		}
	})
}

func TestReadFunctionCall(t *testing.T) {
	t.Run("call with arguments", func(t *testing.T) {
		toks := mustScan(t, "min(x, 2 + 3)")

		node, next := ReadFunctionCall(toks, 0)
		resl, ok := node.(*FunctionCall)
		if !ok {
			t.Fatalf("ReadFunctionCall() = %T, want *FunctionCall", node)
		}

		if resl.Callee.Name != "min" {
			t.Errorf("ReadFunctionCall() callee = %q, want %q", resl.Callee.Name, "min")
		}
		if len(resl.Args) != 2 {
			t.Errorf("ReadFunctionCall() args = %d, want 2", len(resl.Args))
		}
		if next != len(toks) {
			t.Errorf("ReadFunctionCall() next = %d, want %d", next, len(toks))
		}

		if _, ok = resl.Args[1].(*BinaryExpr); !ok {
			t.Errorf("ReadFunctionCall() args[1] = %T, want *BinaryExpr", resl.Args[1])
		}
	})

	t.Run("empty call", func(t *testing.T) {
		node, _ := ReadFunctionCall(mustScan(t, "now()"), 0)

		resl, ok := node.(*FunctionCall)
		if !ok {
			t.Fatalf("ReadFunctionCall() = %T, want *FunctionCall", node)
		}
		if len(resl.Args) != 0 {
			t.Errorf("ReadFunctionCall() args = %d, want 0", len(resl.Args))
		}
	})

	t.Run("plain reference declines", func(t *testing.T) {
		if node, _ := ReadFunctionCall(mustScan(t, "x + 1"), 0); node != nil {
			t.Errorf("ReadFunctionCall() = %v, want nil", node)
		}
	})
}

func TestNodeSpans(t *testing.T) {
	text := "min(x, 2)"
	toks := mustScan(t, text)

	node, _ := ReadFunctionCall(toks, 0)

	start, end := node.Span()
	if start != 0 || end != len(text) {
		t.Errorf("Span() = [%d, %d), want [0, %d)", start, end, len(text))
	}

	var buffer strings.Builder
	for _, tok := range node.Tokens() {
		buffer.WriteString(tok.Val)
	}
	if buffer.String() != text {
		t.Errorf("Tokens() reconstruction = %q, want %q", buffer.String(), text)
	}
}
