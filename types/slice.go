// SPDX-License-Identifier: MIT
package types

import (
	"fmt"
	"sort"
	"strings"
)

type (
	// StringSlice for `string`.
	StringSlice []string
)

// Locate for `StringSlice`.
func (sl *StringSlice) Locate(val string) (resl int) {
	resl = -1

	for index := range *sl {
		if (*sl)[index] == val {
			resl = index
			return
		}
	}

	return
}

// Contains for `StringSlice`.
func (sl *StringSlice) Contains(val string) bool { return sl.Locate(val) > -1 }

// UniqueAppend to `StringSlice`.
func (sl *StringSlice) UniqueAppend(values ...string) {
	if len(values) < 1 {
		return
	}

	for index := range values {
		newValue := values[index]
		if sl.Locate(newValue) > -1 {
			continue
		}

		*sl = append(*sl, newValue)
	}
}

// Clone copies a `StringSlice`.
func (sl *StringSlice) Clone() (dst StringSlice) {
	if len(*sl) < 1 {
		return
	}

	dst = make(StringSlice, len(*sl))
	copy(dst, *sl)

	return
}

// Sort for `StringSlice`.
func (sl *StringSlice) Sort() {
	sort.Strings(*sl)
}

// String is the `fmt.Stringer` interface implementation for `StringSlice`.
func (sl *StringSlice) String() (dst string) {
	lenSl := len(*sl)
	if lenSl > 0 {
		buffer := strings.Builder{}
		fmt.Fprintf(&buffer, "[%s", (*sl)[0])
		for index := 1; index < lenSl; index++ {
			fmt.Fprintf(&buffer, ",%s", (*sl)[index])
		}
		buffer.WriteString("]")

		dst = buffer.String()
	}

	return
}
