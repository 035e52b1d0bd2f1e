package core

// Sheet wraps one input's rows together with its resolved key column
// layout. Rows are immutable after construction; the engine only ever
// reads them.
type Sheet struct {
	rows        [][]string
	columnCount int
	source      int
	layout      keyLayout
}

// NewSheet validates and wraps one input. All rows must share one column
// count (the engine has no notion of ragged data), and the key specs must
// resolve within that count. The source index is the input's 0-based
// position in the run; it feeds synthetic identities and diagnostics.
func NewSheet(rows [][]string, keySpecs []int, source int) (*Sheet, error) {
	count, err := checkRectangular(rows)
	if err != nil {
		return nil, err
	}
	layout, err := resolveColumns(keySpecs, count)
	if err != nil {
		return nil, err
	}
	return &Sheet{
		rows:        rows,
		columnCount: count,
		source:      source,
		layout:      layout,
	}, nil
}

func checkRectangular(rows [][]string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	first := len(rows[0])
	for i, row := range rows {
		if len(row) != first {
			return 0, &IrregularShapeError{
				Row:          i + 1,
				Columns:      len(row),
				FirstColumns: first,
			}
		}
	}
	return first, nil
}

// Len returns the number of rows.
func (s *Sheet) Len() int {
	return len(s.rows)
}

// ColumnCount returns the uniform column count.
func (s *Sheet) ColumnCount() int {
	return s.columnCount
}

// key derives the row's identity by visiting key positions in user order:
// a real position borrows that cell's text, a synthetic position takes the
// row's own RecordID.
func (s *Sheet) key(row int) Key {
	items := make([]KeyItem, len(s.layout.original))
	for i, pos := range s.layout.original {
		if pos == noColumn {
			items[i] = KeyItem{IsID: true, ID: RecordID{Source: s.source, Row: row}}
		} else {
			items[i] = KeyItem{Data: s.rows[row][pos]}
		}
	}
	return Key{items: items}
}

// splitRow cuts one row into key and non-key sections.
func (s *Sheet) splitRow(row int) []rowSection {
	return s.layout.split(s.rows[row])
}

// splitFiller cuts a synthetic all-filler row of this sheet's width. Used
// by the merge when this sheet has no row at a given pairing index: the
// result has the same section shape as a real row, with the filler wherever
// a cell would go.
func (s *Sheet) splitFiller(filler string) []rowSection {
	row := make([]string, s.columnCount)
	for i := range row {
		row[i] = filler
	}
	return s.layout.split(row)
}
