package core

import "fmt"

// Options control one consolidation run.
type Options struct {
	// Filler pads non-key cells of inputs lacking a matching record.
	Filler string

	// AllowMultiMerge permits groups where two or more inputs contribute
	// several rows each; rows are then paired positionally.
	AllowMultiMerge bool

	// AllowSingleColumn permits runs where no input has a row wider than
	// one column (usually a sign of a wrong delimiter).
	AllowSingleColumn bool

	// WarnUnmatched reports groups whose per-input row counts differ.
	WarnUnmatched bool

	// SimilarityWarnLevel, when positive, reports pairs of keys whose
	// summed edit distance is at or below this level. Zero disables the
	// comparison entirely.
	SimilarityWarnLevel float64

	// Diag receives advisory findings; nil discards them.
	Diag DiagnosticSink

	// MultiMergeFlag and SingleColumnFlag are the user-facing names of the
	// override flags, quoted in error messages so users know what to pass.
	MultiMergeFlag   string
	SingleColumnFlag string
}

func (o Options) multiMergeFlag() string {
	if o.MultiMergeFlag == "" {
		return "--multi"
	}
	return o.MultiMergeFlag
}

func (o Options) singleColumnFlag() string {
	if o.SingleColumnFlag == "" {
		return "--single"
	}
	return o.SingleColumnFlag
}

// group collects the rows sharing one key: per input, the indices of its
// matching rows, in file order. Lists may be empty or hold several rows.
type group struct {
	key  Key
	rows [][]int // indexed by source; row indices within that sheet
}

// Consolidate merges the sheets into one table. Groups appear in the order
// their key was first encountered (inputs in supply order, rows top to
// bottom); rows within a group in pairing order. The returned rows are
// ready for the writer collaborator.
func Consolidate(sheets []*Sheet, opts Options) ([][]string, error) {
	diag := opts.Diag
	if diag == nil {
		diag = discardSink{}
	}
	if err := checkMultiColumn(sheets, opts); err != nil {
		return nil, err
	}

	groups, order := groupRows(sheets)

	var merged [][]string
	for i, fp := range order {
		g := groups[fp]
		// remove from the pending set before diagnostics: a consumed group
		// is never compared again
		delete(groups, fp)
		if err := checkAmbiguity(g, opts); err != nil {
			return nil, err
		}
		merged = append(merged, mergeGroup(g, sheets, opts.Filler)...)
		if opts.WarnUnmatched {
			warnUnmatched(g, diag)
		}
		if opts.SimilarityWarnLevel > 0 {
			warnSimilar(g, groups, order[i+1:], opts.SimilarityWarnLevel, diag)
		}
	}
	return merged, nil
}

// checkMultiColumn fails when no input contains a record wider than one
// column, unless single-column mode was explicitly allowed.
func checkMultiColumn(sheets []*Sheet, opts Options) error {
	if opts.AllowSingleColumn {
		return nil
	}
	for _, sheet := range sheets {
		if sheet.columnCount > 1 && sheet.Len() > 0 {
			return nil
		}
	}
	return &DegenerateInputError{Flag: opts.singleColumnFlag()}
}

// groupRows scans every row of every sheet exactly once and partitions rows
// by key equality. Hash iteration order is not reproducible, so the order
// each key was first seen is tracked separately; it fixes the order groups
// are later consumed in.
func groupRows(sheets []*Sheet) (map[string]*group, []string) {
	groups := make(map[string]*group)
	var order []string
	for _, sheet := range sheets {
		for row := 0; row < sheet.Len(); row++ {
			key := sheet.key(row)
			fp := key.Fingerprint()
			g, ok := groups[fp]
			if !ok {
				g = &group{key: key, rows: make([][]int, len(sheets))}
				groups[fp] = g
				order = append(order, fp)
			}
			g.rows[sheet.source] = append(g.rows[sheet.source], row)
		}
	}
	return groups, order
}

// checkAmbiguity decides whether a group's merge is well-defined. It is
// when every input contributes at most one row, or when at most one input
// contributes any rows at all; anything else admits more than one pairing
// and requires the multi-merge override.
func checkAmbiguity(g *group, opts Options) error {
	if opts.AllowMultiMerge {
		return nil
	}
	allSingle := true
	nonEmpty := 0
	for _, rows := range g.rows {
		if len(rows) > 1 {
			allSingle = false
		}
		if len(rows) > 0 {
			nonEmpty++
		}
	}
	if allSingle || nonEmpty <= 1 {
		return nil
	}
	return &AmbiguousMergeError{Key: g.key, Flag: opts.multiMergeFlag()}
}

// mergeGroup projects one group into its output rows. With per-input row
// lists L_1..L_n, it produces max(len(L_i)) rows, pairing rows by index
// and substituting an all-filler row for inputs that run short.
func mergeGroup(g *group, sheets []*Sheet, filler string) [][]string {
	m := 0
	for _, rows := range g.rows {
		if len(rows) > m {
			m = len(rows)
		}
	}
	out := make([][]string, 0, m)
	for j := 0; j < m; j++ {
		out = append(out, mergeRow(g, sheets, j, filler))
	}
	return out
}

// splitRow pairs a split row with whether it came from a real record or
// from the filler substitute.
type splitRow struct {
	sections []rowSection
	real     bool
}

// mergeRow flattens the j-th pairing of a group into one output row. All
// inputs share the section shape (one per key position plus the non-key
// runs around them), so their section lists are walked in lockstep:
//
//   - a key section emits exactly one value, taken from the first input
//     holding a real row at this index; later inputs' copies are suppressed
//     so the identifying value is not repeated once per input
//   - a non-key section emits every input's cells, in input order
func mergeRow(g *group, sheets []*Sheet, j int, filler string) []string {
	splits := make([]splitRow, len(sheets))
	for i, sheet := range sheets {
		if j < len(g.rows[i]) {
			splits[i] = splitRow{sections: sheet.splitRow(g.rows[i][j]), real: true}
		} else {
			splits[i] = splitRow{sections: sheet.splitFiller(filler)}
		}
	}
	if len(splits) == 0 {
		return nil
	}
	var result []string
	for section := range splits[0].sections {
		seenReal := false
		for _, split := range splits {
			sec := split.sections[section]
			if sec.isKey {
				if split.real && !seenReal {
					seenReal = true
					result = append(result, sec.cells[0])
				}
				continue
			}
			result = append(result, sec.cells...)
		}
	}
	return result
}

// warnUnmatched reports a group whose inputs disagree on the number of
// matching rows, naming the extremes.
func warnUnmatched(g *group, diag DiagnosticSink) {
	uneven := false
	for _, rows := range g.rows {
		if len(rows) != len(g.rows[0]) {
			uneven = true
			break
		}
	}
	if !uneven {
		return
	}
	maxIndex, minIndex := 0, 0
	for i, rows := range g.rows {
		if len(rows) > len(g.rows[maxIndex]) {
			maxIndex = i
		}
		if len(rows) < len(g.rows[minIndex]) {
			minIndex = i
		}
	}
	maxCount := len(g.rows[maxIndex])
	minCount := len(g.rows[minIndex])
	diag.Warn(
		fmt.Sprintf("%s encountered (found %s in the input #%d, but %s in the input #%d):",
			countWith(maxCount-minCount, "unmatched record"),
			countWith(maxCount, "such record"), maxIndex+1,
			countWith(minCount, "such record"), minIndex+1,
		),
		g.key.String(),
	)
}
