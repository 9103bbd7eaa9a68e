// SPDX-License-Identifier: MIT
package lexer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type (
	// ScanFunc attempts to match a token value anchored at pos, declining
	// with ok == false when the shape does not start there.
	ScanFunc func(text string, pos int) (val string, ok bool)

	// Rule is a named matcher recognizing one lexical token shape.
	//
	// A Rule's id is a stable, externally visible identifier; syntax
	// highlighting layers key their styles off it, so ids are never
	// repurposed once published. Rules without a ScanFunc are
	// classification-only: the scanner assigns them after the fact to
	// identifier-shaped tokens.
	Rule struct {
		id   string
		scan ScanFunc
	}
)

var registry = map[string]*Rule{}

// Layout & comment rules.
var (
	Whitespace = ScanWith("whitespace", scanWhitespace)
	Newline    = Exact("newline", "\n")

	BlockCommentOpen  = Exact("block-comment-open", "/*")
	BlockCommentClose = Exact("block-comment-close", "*/")
	LineComment       = Exact("line-comment", "//")
	HashComment       = Exact("hash-comment", "#")
	LineCommentText   = ScanWith("line-comment-text", scanLineCommentText)
	BlockCommentText  = ScanWith("block-comment-text", scanBlockCommentText)
)

// String literal rules.
var (
	Quote  = Exact("quote", `"`)
	Text   = ScanWith("text", scanText)
	Escape = ScanWith("escape", scanEscape)
)

// Operator & punctuation rules.
//
// Two-character spellings precede their one-character prefixes in the scan
// order below.
var (
	Range        = Exact("range", "..")
	Arrow        = Exact("arrow", "->")
	Or           = Exact("or", "||")
	And          = Exact("and", "&&")
	GreaterEqual = Exact("greater-equal", ">=")
	LessEqual    = Exact("less-equal", "<=")
	Equal        = Exact("equal", "==")
	NotEqual     = Exact("not-equal", "!=")

	Dot     = Exact("dot", ".")
	Comma   = Exact("comma", ",")
	Greater = Exact("greater", ">")
	Less    = Exact("less", "<")
	Not     = Exact("not", "!")
	Assign  = Exact("assign", "=")
	Plus    = Exact("plus", "+")
	Minus   = Exact("minus", "-")
	Star    = Exact("star", "*")
	Slash   = Exact("slash", "/")

	ParenOpen    = Exact("paren-open", "(")
	ParenClose   = Exact("paren-close", ")")
	BracketOpen  = Exact("bracket-open", "[")
	BracketClose = Exact("bracket-close", "]")
	BraceOpen    = Exact("brace-open", "{")
	BraceClose   = Exact("brace-close", "}")
)

// Literal & identifier rules.
var (
	// Number has no leading sign; unary minus is its own operator token.
	Number = Pattern("number", `\d+(\.\d+)?([eE]-?\d+)?`)

	// Identifier admits an optional leading '@' annotation marker.
	Identifier = Pattern("identifier", `@?[A-Za-z][A-Za-z0-9_]*`)
)

// Keyword rules, assigned by exact-spelling lookup once an identifier-shaped
// token is produced. Every keyword is a valid identifier spelling, which is
// why none of these participate in the scan order.
var (
	KeywordConst    = Classified("const")
	KeywordFun      = Classified("fun")
	KeywordEnum     = Classified("enum")
	KeywordParam    = Classified("param")
	KeywordVar      = Classified("var")
	KeywordEvent    = Classified("event")
	KeywordIn       = Classified("in")
	KeywordExternal = Classified("external")
	Boolean         = Classified("boolean")
)

// Contextual classification rules.
var (
	ConstantName         = Classified("constant-name")
	FunctionName         = Classified("function-name")
	VariableName         = Classified("variable-name")
	ParameterName        = Classified("parameter-name")
	EnumName             = Classified("enum-name")
	EnumValueName        = Classified("enum-value")
	AnnotationName       = Classified("annotation")
	ExternalConstantName = Classified("external-constant-name")
	ExternalFunctionName = Classified("external-function-name")
	UnknownName          = Classified("unknown-name")
	Argument             = Classified("argument")
)

// keywords maps reserved spellings to their classification rules.
var keywords = map[string]*Rule{
	"const":    KeywordConst,
	"fun":      KeywordFun,
	"enum":     KeywordEnum,
	"param":    KeywordParam,
	"var":      KeywordVar,
	"event":    KeywordEvent,
	"in":       KeywordIn,
	"external": KeywordExternal,
	"true":     Boolean,
	"false":    Boolean,
}

// declarations is the subset of keywords that reset the tokenizer context.
var declarations = map[*Rule]struct{}{
	KeywordConst: {},
	KeywordFun:   {},
	KeywordEnum:  {},
	KeywordParam: {},
	KeywordVar:   {},
	KeywordEvent: {},
}

// names is the set of rules an identifier-shaped token may carry after
// classification, keywords excluded.
var names = map[*Rule]struct{}{
	Identifier:           {},
	ConstantName:         {},
	FunctionName:         {},
	VariableName:         {},
	ParameterName:        {},
	EnumName:             {},
	EnumValueName:        {},
	AnnotationName:       {},
	ExternalConstantName: {},
	ExternalFunctionName: {},
	UnknownName:          {},
	Argument:             {},
}

// insignificant rules are skipped by the hinter & the AST readers.
var insignificant = map[*Rule]struct{}{
	Whitespace:        {},
	Newline:           {},
	LineComment:       {},
	HashComment:       {},
	LineCommentText:   {},
	BlockCommentOpen:  {},
	BlockCommentClose: {},
	BlockCommentText:  {},
}

// Exact instantiates a Rule matching a literal string prefix.
func Exact(id, literal string) *Rule {
	return newRule(id, func(text string, pos int) (val string, ok bool) {
		if ok = strings.HasPrefix(text[pos:], literal); ok {
			val = literal
		}

		return
	})
}

// Pattern instantiates a Rule matching a regular expression anchored at the
// scan position.
func Pattern(id, expr string) *Rule {
	re := regexp.MustCompile(`^(?:` + expr + `)`)

	return newRule(id, func(text string, pos int) (val string, ok bool) {
		if val = re.FindString(text[pos:]); val != "" {
			ok = true
		}

		return
	})
}

// ScanWith instantiates a Rule backed by a custom ScanFunc.
func ScanWith(id string, fn ScanFunc) *Rule { return newRule(id, fn) }

// Classified instantiates a classification-only Rule; TryScan always
// declines.
func Classified(id string) *Rule { return newRule(id, nil) }

func newRule(id string, fn ScanFunc) *Rule {
	r := &Rule{id: id, scan: fn}
	registry[id] = r

	return r
}

// Lookup retrieves a Rule by its published id.
func Lookup(id string) (r *Rule, ok bool) {
	r, ok = registry[id]
	return
}

// ID retrieves the Rule's published identifier.
func (r *Rule) ID() string { return r.id }

// String is the `fmt.Stringer` interface implementation for `Rule`.
func (r *Rule) String() string { return r.id }

// TryScan attempts to produce a Token anchored at pos.
func (r *Rule) TryScan(text string, pos int) (tok Token, ok bool) {
	if r.scan == nil {
		return
	}

	var val string
	if val, ok = r.scan(text, pos); ok {
		tok = Token{Rule: r, Val: val, Pos: pos}
	}

	return
}

// scanWhitespace consumes contiguous non-newline whitespace.
func scanWhitespace(text string, pos int) (val string, ok bool) {
	end := pos
	for end < len(text) && (text[end] == ' ' || text[end] == '\t' || text[end] == '\r') {
		end++
	}

	if end > pos {
		val, ok = text[pos:end], true
	}

	return
}

// scanLineCommentText consumes characters up to the terminating newline.
func scanLineCommentText(text string, pos int) (val string, ok bool) {
	end := pos
	for end < len(text) && text[end] != '\n' {
		end++
	}

	if end > pos {
		val, ok = text[pos:end], true
	}

	return
}

// scanBlockCommentText consumes characters up to a newline or a block
// comment marker, leaving the markers for their own rules so nesting is
// tracked token by token.
func scanBlockCommentText(text string, pos int) (val string, ok bool) {
	end := pos
	for end < len(text) && text[end] != '\n' &&
		!strings.HasPrefix(text[end:], "/*") && !strings.HasPrefix(text[end:], "*/") {
		end++
	}

	if end > pos {
		val, ok = text[pos:end], true
	}

	return
}

// scanText consumes string literal characters up to a quote, escape or
// newline.
func scanText(text string, pos int) (val string, ok bool) {
	end := pos
	for end < len(text) && text[end] != '"' && text[end] != '\\' && text[end] != '\n' {
		end++
	}

	if end > pos {
		val, ok = text[pos:end], true
	}

	return
}

// scanEscape consumes a backslash escape pair. Tokens never span a line
// break, so a backslash preceding a newline (or ending the input) declines.
func scanEscape(text string, pos int) (val string, ok bool) {
	if text[pos] != '\\' || pos+1 >= len(text) {
		return
	}

	r, width := utf8.DecodeRuneInString(text[pos+1:])
	if r == '\n' {
		return
	}

	val, ok = text[pos:pos+1+width], true

	return
}
