// Package tokens provides an approximate token count for a serialized
// prompt document. The estimate is advisory output for the user and is
// never embedded in the document itself.
package tokens

import "strings"

// Estimate returns the number of whitespace-separated tokens in text.
// This is a deliberately crude stand-in for a model tokenizer: it runs
// in a single linear pass and never shrinks when non-empty content is
// appended, which is all the reporting use case needs.
func Estimate(text string) int {
	return len(strings.Fields(text))
}
