package tabio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadDelimited parses delimited rows from a reader. Quoting follows RFC
// 4180; rows may vary in width (the engine validates shape with better
// context than the parser could give).
func ReadDelimited(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(Sanitize(r))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for i := 0; ; i++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not process row #%d: %w", i+1, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// WriteDelimited writes rows to a writer with the given delimiter.
func WriteDelimited(w io.Writer, rows [][]string, delimiter rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("could not write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadInput loads one input file, picking the parser by extension: .xlsx
// opens as a workbook, anything else as delimited text.
func ReadInput(path string, delimiter rune) ([][]string, error) {
	if isWorkbook(path) {
		rows, err := ReadWorkbook(path)
		if err != nil {
			return nil, fmt.Errorf("could not process %s: %w", path, err)
		}
		return rows, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()
	rows, err := ReadDelimited(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("could not process %s: %w", path, err)
	}
	return rows, nil
}

// WriteOutput writes the consolidated table to a file, overwriting it.
func WriteOutput(path string, rows [][]string, delimiter rune) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %s for writing: %w", path, err)
	}
	if err := WriteDelimited(f, rows, delimiter); err != nil {
		f.Close()
		return fmt.Errorf("could not write data to %s: %w", path, err)
	}
	return f.Close()
}
