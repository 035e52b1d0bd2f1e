package core

import (
	"fmt"
	"io"
)

// DiagnosticSink receives advisory findings produced during consolidation.
// Implementations never fail and never abort the run; diagnostics are
// strictly distinct from errors.
type DiagnosticSink interface {
	// Warn delivers one finding as an ordered batch of text lines.
	Warn(lines ...string)
}

// diagDivider visually separates consecutive findings.
const diagDivider = "----------"

// WriterSink writes each finding to a writer, preceded by a divider line.
// This is how the command line tool surfaces warnings on stderr.
type WriterSink struct {
	W io.Writer
}

func (s *WriterSink) Warn(lines ...string) {
	fmt.Fprintln(s.W, diagDivider)
	for _, line := range lines {
		fmt.Fprintln(s.W, line)
	}
}

// BufferSink collects findings in memory. Used by tests and by the web
// front end, which folds warnings into the HTTP response.
type BufferSink struct {
	Findings [][]string
}

func (s *BufferSink) Warn(lines ...string) {
	batch := make([]string, len(lines))
	copy(batch, lines)
	s.Findings = append(s.Findings, batch)
}

// discardSink drops findings. Installed when the caller supplies no sink.
type discardSink struct{}

func (discardSink) Warn(...string) {}
