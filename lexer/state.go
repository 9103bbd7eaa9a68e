// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"

	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/modellex/types"
)

type (
	// ContextKind identifies one scanner context variant.
	ContextKind int

	// Context is one item of the scanner's context stack. Names carries
	// the locally bound argument spellings for Normal items & the
	// accumulation in progress for ScanningArgList items.
	Context struct {
		Kind  ContextKind       `json:"kind"`
		Names types.StringSlice `json:"names,omitempty"`
	}

	// State is the scanner's context stack. It is a storable value: an
	// incremental re-scan driver caches the State returned for a line &
	// compares it against later runs to decide how far to keep
	// re-scanning.
	//
	// Exactly one Normal item exists, always at the stack bottom; it is
	// never popped.
	State struct {
		Stack []Context `json:"stack"`
	}
)

const (
	Normal ContextKind = iota
	InText
	InLineComment
	InBlockComment
	ExpectFunctionName
	ExpectArgListOpen
	ScanningArgList
	ExpectEnumName
	ExpectEnumBlockOpen
	ScanningEnumValues
	ExpectDotAfterEnumRef
	ExpectEnumValueAfterDot
)

var contextKindNames = map[ContextKind]string{
	Normal:                  "normal",
	InText:                  "text",
	InLineComment:           "line comment",
	InBlockComment:          "block comment",
	ExpectFunctionName:      "expect function name",
	ExpectArgListOpen:       "expect argument list open",
	ScanningArgList:         "scanning argument list",
	ExpectEnumName:          "expect enum name",
	ExpectEnumBlockOpen:     "expect enum block open",
	ScanningEnumValues:      "scanning enum values",
	ExpectDotAfterEnumRef:   "expect dot after enum reference",
	ExpectEnumValueAfterDot: "expect enum value after dot",
}

// String is the `fmt.Stringer` interface implementation for `ContextKind`.
func (k ContextKind) String() (dst string) {
	dst, ok := contextKindNames[k]
	if !ok {
		dst = fmt.Sprintf("context(%d)", int(k))
	}

	return
}

// NewState instantiates a State holding the bottom Normal item.
func NewState() State {
	return State{Stack: []Context{{Kind: Normal}}}
}

// Equal compares two States structurally.
func (s State) Equal(other State) bool {
	return slices.EqualFunc(s.Stack, other.Stack, func(a, b Context) bool {
		return a.Kind == b.Kind && slices.Equal(a.Names, b.Names)
	})
}

// Top retrieves the active Context.
func (s State) Top() Context {
	return s.Stack[len(s.Stack)-1]
}

// Arguments retrieves the bottom Normal item's locally bound names.
func (s State) Arguments() types.StringSlice { return s.Stack[0].Names }

// clone copies the State so transitions stay pure functions of
// (previous state, token).
func (s State) clone() State {
	dst := State{Stack: make([]Context, len(s.Stack))}
	for index := range s.Stack {
		dst.Stack[index] = Context{
			Kind:  s.Stack[index].Kind,
			Names: s.Stack[index].Names.Clone(),
		}
	}

	return dst
}

func (s State) push(ctx Context) State {
	dst := s.clone()
	dst.Stack = append(dst.Stack, ctx)

	return dst
}

// pop discards the top item, refusing to remove the bottom Normal.
func (s State) pop() State {
	if len(s.Stack) < 2 {
		return s
	}

	dst := s.clone()
	dst.Stack = dst.Stack[:len(dst.Stack)-1]

	return dst
}

// replaceTop swaps the active Context.
func (s State) replaceTop(ctx Context) State {
	dst := s.clone()
	dst.Stack[len(dst.Stack)-1] = ctx

	return dst
}

// reset drops every item above the bottom Normal & blanks its bound names.
func (s State) reset() State {
	return State{Stack: []Context{{Kind: Normal}}}
}

// bindArguments produces a State whose bottom Normal holds names.
func (s State) bindArguments(names types.StringSlice) State {
	dst := s.clone()
	dst.Stack[0].Names = names.Clone()

	return dst
}
