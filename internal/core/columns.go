package core

import "sort"

// noColumn marks a key position with no backing column: the user spec was 0
// and the row's own identity serves as the key value.
const noColumn = -1

// keyLayout holds a sheet's resolved key column positions in two views:
// user-specified order for key construction, and ascending order for
// splitting rows into alternating key and non-key sections.
type keyLayout struct {
	original []int // 0-based offsets in user order; noColumn for synthetic identity
	sorted   []int // real offsets only, ascending (duplicates preserved)
}

// resolveColumns converts signed 1-based key column specs into concrete
// 0-based offsets for a sheet of the given width. Spec 0 resolves to the
// synthetic identity; positive n to n-1; negative n to count+n. Resolution
// is per sheet, since sheets may differ in width.
func resolveColumns(specs []int, count int) (keyLayout, error) {
	original := make([]int, 0, len(specs))
	for _, spec := range specs {
		offset, err := resolveColumn(spec, count)
		if err != nil {
			return keyLayout{}, err
		}
		original = append(original, offset)
	}
	if err := checkSeparable(specs, count); err != nil {
		return keyLayout{}, err
	}
	sorted := make([]int, 0, len(original))
	for _, offset := range original {
		if offset != noColumn {
			sorted = append(sorted, offset)
		}
	}
	sort.Ints(sorted)
	return keyLayout{original: original, sorted: sorted}, nil
}

func resolveColumn(spec, count int) (int, error) {
	if spec == 0 {
		return noColumn, nil
	}
	offset := spec - 1
	if spec < 0 {
		offset = count + spec
	}
	if offset < 0 || offset >= count {
		return 0, &ColumnOutOfBoundsError{Spec: spec, Columns: count}
	}
	return offset, nil
}

// checkSeparable rejects spec combinations where a left-anchored column
// could cross or coincide with a right-anchored one: the combined span of
// the largest positive and smallest negative spec must fit the row width.
func checkSeparable(specs []int, count int) error {
	largestPositive, smallestNegative := 0, 0
	for _, spec := range specs {
		if spec > largestPositive {
			largestPositive = spec
		}
		if spec < smallestNegative {
			smallestNegative = spec
		}
	}
	if largestPositive == 0 || smallestNegative == 0 {
		return nil
	}
	if largestPositive-smallestNegative <= count {
		return nil
	}
	return &ColumnOrderingError{
		Positive:       largestPositive,
		Negative:       smallestNegative,
		NegativeOffset: count + smallestNegative,
		Columns:        count,
	}
}

// rowSection is one segment of a row split by the key layout: a key section
// carries exactly one cell, a non-key section the run of cells between two
// key columns (possibly empty).
type rowSection struct {
	isKey bool
	cells []string
}

// split cuts a row into sections, scanning left to right: a non-key run
// before the first key column, one key section per resolved key position,
// non-key runs in between, and a trailing non-key run after the last.
// Every sheet sharing the same specs produces the same section count, which
// is what lets the merge walk sheets of different widths in lockstep.
func (l keyLayout) split(row []string) []rowSection {
	sections := make([]rowSection, 0, 2*len(l.sorted)+1)
	prev := noColumn
	for _, pos := range l.sorted {
		start := prev + 1
		if start > pos {
			// duplicate key column; the run between is empty
			start = pos
		}
		sections = append(sections, rowSection{cells: row[start:pos]})
		sections = append(sections, rowSection{isKey: true, cells: row[pos : pos+1]})
		prev = pos
	}
	sections = append(sections, rowSection{cells: row[prev+1:]})
	return sections
}
