package models

import "golang.org/x/text/cases"

// Fold returns the case-folded form of s. Every case-insensitive comparison
// on content (tag and category filters, search) goes through it.
func Fold(s string) string {
	return cases.Fold().String(s)
}
