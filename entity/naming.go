// Package entity provides the naming schemes used to derive distinct names
// for entities stamped out of one exemplar (see prototype.Registry.Spawn).
package entity

import (
	"fmt"
	"strconv"
)

// NameFn generates a name suffix from a zero-based index.
// It must be pure and deterministic: the same idx always yields the same suffix.
// Panics in implementations indicate programmer error.
type NameFn func(idx int) string

// DecimalNameFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) where d = number of digits in idx. Never panics.
func DecimalNameFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnNameFn returns the Excel-style column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx).
// Panics if idx < 0.
func ExcelColumnNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnNameFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	// letters were produced least-significant first
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexNameFn returns the lowercase hexadecimal form of idx, e.g. 255→"ff".
// Panics if idx < 0.
func HexNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexNameFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// AlphanumericNameFn returns a base-36 string for idx, e.g. 35→"z", 36→"10".
// Panics if idx < 0.
func AlphanumericNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericNameFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// Naming scheme identifiers accepted by NamingScheme.
const (
	SchemeDecimal      = "decimal"
	SchemeExcel        = "excel"
	SchemeHex          = "hex"
	SchemeAlphanumeric = "alphanumeric"
)

var namingSchemes = map[string]NameFn{
	SchemeDecimal:      DecimalNameFn,
	SchemeExcel:        ExcelColumnNameFn,
	SchemeHex:          HexNameFn,
	SchemeAlphanumeric: AlphanumericNameFn,
}

// NamingScheme resolves a scheme identifier (SchemeDecimal, ...) to its NameFn.
func NamingScheme(name string) (NameFn, bool) {
	fn, ok := namingSchemes[name]
	return fn, ok
}

// SuffixedName joins base and fn(idx) with a single dash: "Azog-3".
// A nil fn falls back to DecimalNameFn.
func SuffixedName(base string, idx int, fn NameFn) string {
	if fn == nil {
		fn = DecimalNameFn
	}

	return base + "-" + fn(idx)
}
