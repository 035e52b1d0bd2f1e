// Package job loads declarative consolidation jobs from YAML files.
//
// A job file captures everything one run needs, so recurring
// consolidations can live in version control instead of shell history:
//
//	inputs:
//	  - billing/january.tsv
//	  - crm/january.tsv
//	output: merged/january.tsv
//	delimiter: "\t"
//	columns: [1, 2]
//	filler: "-"
//	warn_unmatched: true
//
// Flags on the command line override the corresponding file values.
package job

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Job describes one consolidation run.
type Job struct {
	Inputs            []string `yaml:"inputs"`
	Output            string   `yaml:"output"`
	Delimiter         string   `yaml:"delimiter"`
	Columns           []int    `yaml:"columns"`
	AllowSingleColumn bool     `yaml:"allow_single_column"`
	AllowMultiMerge   bool     `yaml:"allow_multi_merge"`
	Filler            string   `yaml:"filler"`
	WarnSimilar       float64  `yaml:"warn_similar"`
	WarnUnmatched     bool     `yaml:"warn_unmatched"`
}

// Load reads and decodes a job file. Unknown fields are rejected so typos
// in a job file fail loudly instead of silently running with defaults.
func Load(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open job file %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var j Job
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("could not parse job file %s: %w", path, err)
	}
	return &j, nil
}

// DelimiterRune returns the job's delimiter as a rune, defaulting to tab.
// Multi-character delimiters are rejected.
func (j *Job) DelimiterRune() (rune, error) {
	if j.Delimiter == "" {
		return '\t', nil
	}
	runes := []rune(j.Delimiter)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", j.Delimiter)
	}
	return runes[0], nil
}
