package dataprocessing

import (
	"regexp"
	"strings"
)

var (
	// monthTokenRe matches month column labels like "June-25" or the
	// "June-25.1" variants pandas-style exports produce for duplicates.
	monthTokenRe = regexp.MustCompile(`^[A-Za-z]+-\d{2}(?:\.\d+)?$`)
	// percentTokenRe matches "%" and its duplicate variants "%.1", "%.2".
	percentTokenRe = regexp.MustCompile(`^%(?:\.\d+)?$`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// invisibleReplacer drops the no-break space and zero-width characters that
// leak out of merged-cell exports.
var invisibleReplacer = strings.NewReplacer(
	" ", " ", // no-break space
	"​", "", // zero-width space
	"‌", "", // zero-width non-joiner
	"‍", "", // zero-width joiner
)

// NormalizeCell canonicalizes cell text for comparison: invisible
// characters stripped, consecutive whitespace collapsed to one space,
// result trimmed. Equality under this normalization means "same logical
// label" everywhere in the pipeline.
func NormalizeCell(s string) string {
	s = invisibleReplacer.Replace(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeUpper is the uppercase variant used for case-insensitive
// matching.
func NormalizeUpper(s string) string {
	return strings.ToUpper(NormalizeCell(s))
}

// IsMonthToken reports whether the normalized cell matches the month
// column label pattern.
func IsMonthToken(s string) bool {
	return monthTokenRe.MatchString(NormalizeCell(s))
}

// IsPercentToken reports whether the normalized cell matches the percent
// column label pattern.
func IsPercentToken(s string) bool {
	return percentTokenRe.MatchString(NormalizeCell(s))
}
