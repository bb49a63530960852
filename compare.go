package ordskiplist

import (
	"strings"

	"github.com/facette/natsort"
)

// NaturalStrings orders strings so that embedded numbers compare by value,
// e.g. "file2" < "file10". Strings that natsort does not tell apart, such as
// "a1" and "a01", are ordered bytewise, so the result is a total order
// suitable as the compare function of New.
func NaturalStrings(a, b string) int {
	lt, gt := natsort.Compare(a, b), natsort.Compare(b, a)
	switch {
	case lt && !gt:
		return -1
	case gt && !lt:
		return 1
	}
	return strings.Compare(a, b)
}

// Reverse returns a compare function giving the opposite order to compare.
func Reverse[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(b, a)
	}
}
