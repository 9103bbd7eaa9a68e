// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// Token is the smallest unit of recognized, or explicitly
	// unrecognized, text. A nil Rule denotes a single unresolved
	// character; the scanner never fails outright on malformed input so
	// downstream consumers can still highlight it.
	Token struct {
		Rule *Rule
		Val  string
		Pos  int
	}

	// Category is the best-effort classification of an identifier
	// spelling, computed globally by the hinting pass & consulted by the
	// scanner when local context does not determine classification.
	Category int

	// Hints maps identifier spellings to their Category, acting as a
	// read-only snapshot supplied per scan call.
	Hints map[string]Category
)

const (
	Unspecified Category = iota
	Constant
	Function
	Variable
	Parameter
	Enum
	EnumValue
	Annotation
	ExternalConstant
	ExternalFunction
	Unknown
)

var categoryNames = map[Category]string{
	Unspecified:      "unspecified",
	Constant:         "constant",
	Function:         "function",
	Variable:         "variable",
	Parameter:        "parameter",
	Enum:             "enum",
	EnumValue:        "enum value",
	Annotation:       "annotation",
	ExternalConstant: "external constant",
	ExternalFunction: "external function",
	Unknown:          "unknown",
}

// categoryRules maps hint categories to the classification Rule the scanner
// assigns for them.
var categoryRules = map[Category]*Rule{
	Constant:         ConstantName,
	Function:         FunctionName,
	Variable:         VariableName,
	Parameter:        ParameterName,
	Enum:             EnumName,
	EnumValue:        EnumValueName,
	Annotation:       AnnotationName,
	ExternalConstant: ExternalConstantName,
	ExternalFunction: ExternalFunctionName,
	Unknown:          UnknownName,
}

// String is the `fmt.Stringer` interface implementation for `Category`.
func (c Category) String() (dst string) {
	dst, ok := categoryNames[c]
	if !ok {
		dst = fmt.Sprintf("category(%d)", int(c))
	}

	return
}

// End retrieves the byte offset just past the Token's value.
func (t Token) End() int { return t.Pos + len(t.Val) }

// ID retrieves the published id of the Token's Rule; empty for unresolved
// characters.
func (t Token) ID() (id string) {
	if t.Rule != nil {
		id = t.Rule.id
	}

	return
}

// Is compares the Token's Rule against r.
func (t Token) Is(r *Rule) bool { return t.Rule == r }

// IsName reports whether the Token is identifier shaped, keywords excluded.
func (t Token) IsName() (ok bool) {
	if t.Rule == nil {
		return
	}

	_, ok = names[t.Rule]

	return
}

// IsDeclaration reports whether the Token is a declaration keyword.
func (t Token) IsDeclaration() (ok bool) {
	if t.Rule == nil {
		return
	}

	_, ok = declarations[t.Rule]

	return
}

// IsSignificant reports whether the Token carries syntactic weight;
// whitespace, newlines & comment tokens do not.
func (t Token) IsSignificant() bool {
	if t.Rule == nil {
		return true
	}

	_, skip := insignificant[t.Rule]

	return !skip
}

// String is the `fmt.Stringer` interface implementation for `Token`,
// matching the demonstration driver's output contract.
func (t Token) String() string {
	id := t.ID()
	if id == "" {
		id = "?"
	}

	return fmt.Sprintf("Token(%s): '%s'", id, t.Val)
}
