// Package stringsx holds string helpers shared by the dispatcher and the store client.
package stringsx

import (
	"unicode"
	"unicode/utf8"
)

// LowerFirstChar returns s with its first rune lowered. It turns an exported Go
// method name into the operation name callers use, e.g. "GetNote" into "getNote".
func LowerFirstChar(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	lower := unicode.ToLower(r)
	if lower == r {
		return s
	}

	return string(lower) + s[size:]
}
