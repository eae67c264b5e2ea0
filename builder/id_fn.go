// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its ID. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal form of idx: 0 -> "0", 42 -> "42".
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// ExcelColumnIDFn returns spreadsheet column names: 0 -> "A", 25 -> "Z", 26 -> "AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// AlphanumericIDFn returns idx in base 36: 10 -> "a", 36 -> "10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be >= 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// PrefixIDFn returns prefix followed by the decimal index: "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithAlphanumericIDs selects AlphanumericIDFn.
func WithAlphanumericIDs() BuilderOption { return WithIDScheme(AlphanumericIDFn) }

// WithPrefixIDs selects PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
