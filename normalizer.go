package enneabot

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ──────────────────────────────────────────────
// Answer Normalization — raw chat text to lookup keys
// ──────────────────────────────────────────────

// ToASCIIDigits folds full-width numerals (U+FF10–U+FF19) to their ASCII
// equivalents. All other characters pass through unchanged.
func ToASCIIDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '０' && r <= '９' {
			return '0' + (r - '０')
		}
		return r
	}, s)
}

// cleanInput folds full-width digits, strips a leading BOM and trims
// surrounding whitespace.
func cleanInput(s string) string {
	s = ToASCIIDigits(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	return strings.TrimSpace(s)
}

// NormalizeChoice13 extracts a single 1–3 answer from free text.
// The first digit in {1,2,3} wins even when later characters also match:
// the first expressed choice counts. Returns "" when no such digit exists.
func NormalizeChoice13(s string) string {
	for _, r := range cleanInput(s) {
		if r >= '1' && r <= '3' {
			return string(r)
		}
	}
	return ""
}

// extractDigits19 returns every digit 1–9 in s, in order, one string per
// digit. Zeros and everything else are skipped.
func extractDigits19(s string) []string {
	var digits []string
	for _, r := range s {
		if r >= '1' && r <= '9' {
			digits = append(digits, string(r))
		}
	}
	return digits
}

// NormalizeTriple canonicalizes a ranked three-option answer to "a-b-c".
//
// Bracketed input such as "[1, 5, 9]" or "['1','5','9']" is first parsed as a
// JSON array (single quotes are tolerated by rewriting them to double
// quotes); digits 1–9 are collected from the elements in order. Any parse
// problem, or fewer than three digits in the parsed elements, falls through
// silently to plain digit extraction over the cleaned text.
//
// Returns "" when fewer than three digits are found; otherwise the first
// three digits joined with "-", order preserved, duplicates kept.
func NormalizeTriple(s string) string {
	txt := cleanInput(s)
	if strings.HasPrefix(txt, "[") && strings.HasSuffix(txt, "]") {
		if triple, ok := tripleFromBracketList(txt); ok {
			return triple
		}
	}
	return joinTriple(extractDigits19(txt))
}

// tripleFromBracketList attempts the structured parse of a bracketed answer.
// ok is false whenever the generic extraction path should take over.
func tripleFromBracketList(txt string) (string, bool) {
	var elems []interface{}
	if err := json.Unmarshal([]byte(strings.ReplaceAll(txt, "'", `"`)), &elems); err != nil {
		return "", false
	}
	var digits []string
	for _, v := range elems {
		digits = append(digits, extractDigits19(ToASCIIDigits(fmt.Sprint(v)))...)
	}
	if len(digits) < 3 {
		return "", false
	}
	return strings.Join(digits[:3], "-"), true
}

func joinTriple(digits []string) string {
	if len(digits) < 3 {
		return ""
	}
	return strings.Join(digits[:3], "-")
}

// CompositeKey joins the four normalized answers into the classification
// lookup key. Valid fields are single digits or digit triples that never
// contain the separator on their own, so distinct tuples never collide.
func CompositeKey(q11, q12, q21, triple string) string {
	return q11 + "-" + q12 + "-" + q21 + "-" + triple
}
