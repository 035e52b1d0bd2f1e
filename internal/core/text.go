package core

import "fmt"

// countWith formats a count with a pluralized noun: "1 column", "3 columns".
// Used in error and warning text so messages read naturally.
func countWith(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// literally marks text that stands in for data, so readers of a diagnostic
// cannot mistake it for an actual cell value.
func literally(s string) string {
	return "<" + s + ">"
}
