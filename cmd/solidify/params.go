package main

import (
	"fmt"
	"os"
	"unicode"
)

// runParams collects the validated inputs of one consolidation run.
type runParams struct {
	inputs        []string
	output        string
	delimiter     rune
	columns       []int
	single        bool
	multi         bool
	filler        string
	warnSimilar   float64
	warnUnmatched bool
}

// parseDelimiter accepts a single ASCII character; "\t" (the two-character
// escape) is allowed as a convenience, since a literal tab is awkward to
// pass through a shell.
func parseDelimiter(value string) (rune, error) {
	if value == `\t` {
		return '\t', nil
	}
	runes := []rune(value)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}
	if runes[0] > unicode.MaxASCII {
		return 0, fmt.Errorf("'%c' is not an ASCII character; only ASCII delimiters are currently supported", runes[0])
	}
	return runes[0], nil
}

// checkSimilarityLevel validates an explicitly requested similarity warn
// level against the number of key columns.
func checkSimilarityLevel(level float64, columns []int) error {
	if level <= 0 {
		return fmt.Errorf("similarity warn level must be positive, got %v", level)
	}
	if level >= float64(len(columns)) {
		return fmt.Errorf("similarity warn level must be less than the number of common columns, got %v >= %d",
			level, len(columns))
	}
	return nil
}

// checkInputs verifies every input exists, is a regular file, and is not
// also the output.
func checkInputs(inputs []string, output string) error {
	if len(inputs) < 2 {
		return fmt.Errorf("at least two input files are required, got %d", len(inputs))
	}
	if output == "" {
		return fmt.Errorf("an output path is required")
	}
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return fmt.Errorf("%s does not exist", input)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%s is not a file", input)
		}
		if input == output {
			return fmt.Errorf("%s is used both as an input and as the output", input)
		}
	}
	return nil
}
