package vin

import "strings"

// Normalize uppercases raw input and strips hyphens. Nothing else is
// filtered here: stray punctuation and invalid letters pass through and are
// rejected by validation, not by normalization.
func Normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "-", ""))
}
