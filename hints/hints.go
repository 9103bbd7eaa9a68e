// SPDX-License-Identifier: MIT

// Package hints derives best-effort identifier categories from a token
// stream. The pass is global & looser than the scanner's local context
// tracking: function arguments & enum values are intentionally mis-tagged
// here, the scanner's declaration-scoped tracking overrides the table when
// applicable. Hosts run this at a coarser cadence than per-keystroke
// tokenization; eventual consistency of the two passes suffices.
package hints

import (
	"gitlab.com/fisherprime/modellex/lexer"
)

// declCategories maps declaration keyword rules to the category implied for
// the adjacent identifier. The event & external forms intentionally
// register nothing in this simplified pass.
var declCategories = map[*lexer.Rule]lexer.Category{
	lexer.KeywordConst: lexer.Constant,
	lexer.KeywordFun:   lexer.Function,
	lexer.KeywordEnum:  lexer.Enum,
	lexer.KeywordParam: lexer.Parameter,
	lexer.KeywordVar:   lexer.Variable,
}

// Extract builds a name to category table from a token stream. It is a
// pure function with no fatal path & completes on arbitrary, even
// structurally broken, streams.
func Extract(tokens []lexer.Token) (table lexer.Hints) {
	table = lexer.Hints{}

	significant := make([]lexer.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.IsSignificant() {
			significant = append(significant, tok)
		}
	}

	// Pass one: adjacent (declaration keyword, identifier) pairs.
	for index := 0; index+1 < len(significant); index++ {
		cat, ok := declCategories[significant[index].Rule]
		if !ok || !significant[index+1].IsName() {
			continue
		}

		table[significant[index+1].Val] = cat
	}

	// Pass two: spellings never assigned a category are Unknown.
	for _, tok := range significant {
		if !tok.IsName() {
			continue
		}

		if _, ok := table[tok.Val]; !ok {
			table[tok.Val] = lexer.Unknown
		}
	}

	return
}
