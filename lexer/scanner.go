// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

type (
	// Scanner tokenizes model text. Every scan call is a pure function of
	// its explicit inputs (text, position, state, hints); the Scanner
	// itself holds no mutable scan state, so one instance may serve
	// disjoint documents concurrently. Within one document, state
	// threading is strictly sequential.
	Scanner struct {
		cfg *Config
	}
)

// Scanning errors.
var (
	// ErrInvalidPosition reports a caller contract violation; it is the
	// only fatal scan condition.
	ErrInvalidPosition = errors.New("scan position out of range")
)

// Mode-dependent rule eligibility. Scan order is significant: longer
// spellings precede the shorter spellings they are prefixes of, &
// identifiers come last as the catch-all.
var (
	normalRules = []*Rule{
		Whitespace, Newline,
		BlockCommentOpen, BlockCommentClose,
		LineComment, HashComment,
		Range, Arrow, Or, And, GreaterEqual, LessEqual, Equal, NotEqual,
		Dot, Comma, Greater, Less, Not, Assign, Plus, Minus, Star, Slash,
		ParenOpen, ParenClose, BracketOpen, BracketClose, BraceOpen, BraceClose,
		Quote, Number, Identifier,
	}

	textRules = []*Rule{Newline, Quote, Escape, Text}

	lineCommentRules = []*Rule{Newline, LineCommentText}

	blockCommentRules = []*Rule{Newline, BlockCommentOpen, BlockCommentClose, BlockCommentText}
)

var defaultScanner = NewScanner()

// NewScanner instantiates a Scanner.
func NewScanner(options ...Option) *Scanner {
	s := &Scanner{cfg: DefaultConfig()}

	for _, opt := range options {
		opt(s)
	}
	s.cfg.Validate()

	return s
}

// Config retrieves the Scanner's Config.
func (s *Scanner) Config() *Config { return s.cfg }

// ScanModel tokenizes an entire document from a fresh State.
func ScanModel(text string, hints Hints) ([]Token, error) {
	return defaultScanner.ScanModel(text, hints)
}

// ScanLine tokenizes text up to & including the first newline token,
// threading state for incremental re-scans.
func ScanLine(text string, state State, hints Hints) ([]Token, State, error) {
	return defaultScanner.ScanLine(text, state, hints)
}

// ScanToken produces the single token anchored at pos.
func ScanToken(text string, pos int, state State, hints Hints) (Token, State, error) {
	return defaultScanner.ScanToken(text, pos, state, hints)
}

// ScanModel tokenizes an entire document from a fresh State.
func (s *Scanner) ScanModel(text string, hints Hints) (toks []Token, err error) {
	state := NewState()

	for pos := 0; pos < len(text); {
		var tok Token
		if tok, state, err = s.ScanToken(text, pos, state, hints); err != nil {
			return
		}

		toks = append(toks, tok)
		pos = tok.End()
	}

	return
}

// ScanLine tokenizes text until a newline token is produced or the input
// ends. When the input ends without an explicit newline the returned State
// reflects the transition a trailing newline would have caused, keeping it
// consistent with full-file scanning; no synthetic token is appended.
func (s *Scanner) ScanLine(text string, state State, hints Hints) (toks []Token, next State, err error) {
	next = state

	for pos := 0; pos < len(text); {
		var tok Token
		if tok, next, err = s.ScanToken(text, pos, next, hints); err != nil {
			return
		}

		toks = append(toks, tok)
		pos = tok.End()

		if tok.Is(Newline) {
			return
		}
	}

	next = transition(next, Token{Rule: Newline, Val: "\n", Pos: len(text)})

	return
}

// ScanToken produces exactly one non-empty token anchored at pos together
// with the updated State. An out-of-range pos is a caller error & the only
// fatal condition; unrecognized characters degrade to single-character
// tokens without a Rule.
func (s *Scanner) ScanToken(text string, pos int, state State, hints Hints) (tok Token, next State, err error) {
	if pos < 0 || pos >= len(text) {
		err = fmt.Errorf("%w: %d (input length %d)", ErrInvalidPosition, pos, len(text))
		return
	}

	found := false
	for _, rule := range rulesFor(state.Top().Kind) {
		if tok, found = rule.TryScan(text, pos); found {
			break
		}
	}
	if !found {
		_, width := utf8.DecodeRuneInString(text[pos:])
		tok = Token{Val: text[pos : pos+width], Pos: pos}
	}

	tok = classify(tok, state, hints)
	next = transition(state, tok)

	if s.cfg.Debug {
		s.cfg.Logger.Debugf("scanned %s, state: %s", tok, spew.Sprint(next.Stack))
	}

	return
}

// rulesFor retrieves the eligible rules for a scan position's context.
func rulesFor(kind ContextKind) []*Rule {
	switch kind {
	case InText:
		return textRules
	case InLineComment:
		return lineCommentRules
	case InBlockComment:
		return blockCommentRules
	default:
		return normalRules
	}
}

// classify resolves a raw identifier-shaped token, in strict order: keyword
// table, annotation marker, local enum-value context, bound function
// argument, then the externally supplied hint table. An unresolved spelling
// is legitimate & keeps the plain identifier rule, pending a later hinting
// pass.
func classify(tok Token, state State, hints Hints) Token {
	if !tok.Is(Identifier) {
		return tok
	}

	if kw, ok := keywords[tok.Val]; ok {
		tok.Rule = kw
		return tok
	}

	if strings.HasPrefix(tok.Val, "@") {
		tok.Rule = AnnotationName
		return tok
	}

	switch state.Top().Kind {
	case ScanningEnumValues, ExpectEnumValueAfterDot:
		tok.Rule = EnumValueName
		return tok
	}

	args := state.Arguments()
	if state.Top().Kind == ScanningArgList || args.Contains(tok.Val) {
		tok.Rule = Argument
		return tok
	}

	if cat, ok := hints[tok.Val]; ok {
		if rule, ok := categoryRules[cat]; ok {
			tok.Rule = rule
		}
	}

	return tok
}

// transition is the pure state-update function of (previous state,
// just-produced token). Aborted expectations pop & re-evaluate the same
// token against the uncovered context.
func transition(state State, tok Token) State {
	for {
		top := state.Top()

		switch top.Kind {
		case InText:
			if tok.Is(Quote) || tok.Is(Newline) {
				return state.pop()
			}
			return state
		case InLineComment:
			if tok.Is(Newline) {
				return state.pop()
			}
			return state
		case InBlockComment:
			// Block comments re-enter on nested opens & may span lines.
			switch {
			case tok.Is(BlockCommentOpen):
				return state.push(Context{Kind: InBlockComment})
			case tok.Is(BlockCommentClose):
				return state.pop()
			}
			return state
		}

		// A comment open pre-empts any in-progress expectation.
		switch {
		case tok.Is(BlockCommentOpen):
			return state.push(Context{Kind: InBlockComment})
		case tok.Is(LineComment), tok.Is(HashComment):
			return state.push(Context{Kind: InLineComment})
		}

		// An unmet expectation does not block string recognition.
		if tok.Is(Quote) {
			switch top.Kind {
			case Normal, ScanningArgList, ScanningEnumValues:
				return state.push(Context{Kind: InText})
			default:
				return state.pop().push(Context{Kind: InText})
			}
		}

		// Declarations cannot nest; seeing one terminates whatever came
		// before.
		if tok.IsDeclaration() {
			state = state.reset()

			switch tok.Rule {
			case KeywordFun:
				return state.push(Context{Kind: ExpectFunctionName})
			case KeywordEnum:
				return state.push(Context{Kind: ExpectEnumName})
			}

			return state
		}

		layout := tok.Is(Whitespace) || tok.Is(Newline)

		switch top.Kind {
		case ExpectFunctionName:
			if layout {
				return state
			}
			if tok.IsName() {
				return state.replaceTop(Context{Kind: ExpectArgListOpen})
			}
		case ExpectArgListOpen:
			if layout {
				return state
			}
			if tok.Is(ParenOpen) {
				return state.replaceTop(Context{Kind: ScanningArgList})
			}
		case ScanningArgList:
			if tok.IsName() {
				bound := top.Names.Clone()
				bound.UniqueAppend(tok.Val)
				return state.replaceTop(Context{Kind: ScanningArgList, Names: bound})
			}
			if tok.Is(ParenClose) {
				return state.pop().bindArguments(top.Names)
			}
			return state
		case ExpectEnumName:
			if layout {
				return state
			}
			if tok.IsName() {
				return state.replaceTop(Context{Kind: ExpectEnumBlockOpen})
			}
		case ExpectEnumBlockOpen:
			if layout {
				return state
			}
			if tok.Is(BraceOpen) {
				return state.replaceTop(Context{Kind: ScanningEnumValues})
			}
		case ScanningEnumValues:
			// Values are informational only; nothing is retained.
			if tok.Is(BraceClose) {
				return state.pop()
			}
			return state
		case ExpectEnumValueAfterDot:
			if layout {
				return state
			}
			state = state.pop()
			if tok.IsName() {
				return state
			}
			continue
		case ExpectDotAfterEnumRef:
			if layout {
				return state
			}
			if tok.Is(Dot) {
				return state.replaceTop(Context{Kind: ExpectEnumValueAfterDot})
			}
		default:
			// Normal: an enum-typed reference begins an enum value usage.
			if tok.Is(EnumName) {
				return state.push(Context{Kind: ExpectDotAfterEnumRef})
			}
			return state
		}

		// The expectation was not met; abandon it & re-evaluate the token
		// against the uncovered context.
		state = state.pop()
	}
}
