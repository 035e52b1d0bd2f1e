package tabio

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ============================================================================
// Delimited Read/Write Tests
// ============================================================================

func TestReadDelimited_Tabs(t *testing.T) {
	input := "a\tb\tc\nd\te\tf\n"
	rows, err := ReadDelimited(strings.NewReader(input), '\t')
	if err != nil {
		t.Fatalf("ReadDelimited error = %v", err)
	}
	want := [][]string{{"a", "b", "c"}, {"d", "e", "f"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestReadDelimited_RaggedRowsAccepted(t *testing.T) {
	// shape validation belongs to the engine, not the parser
	rows, err := ReadDelimited(strings.NewReader("a,b\nc\n"), ',')
	if err != nil {
		t.Fatalf("ReadDelimited error = %v", err)
	}
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 1 {
		t.Errorf("rows = %v, want ragged rows preserved", rows)
	}
}

func TestReadDelimited_SkipsBOM(t *testing.T) {
	input := "\xEF\xBB\xBFa,b\n"
	rows, err := ReadDelimited(strings.NewReader(input), ',')
	if err != nil {
		t.Fatalf("ReadDelimited error = %v", err)
	}
	if rows[0][0] != "a" {
		t.Errorf("first cell = %q, want %q (BOM must be skipped)", rows[0][0], "a")
	}
}

func TestReadDelimited_SanitizesInvalidUTF8(t *testing.T) {
	input := "a,b\xFFc\n"
	rows, err := ReadDelimited(strings.NewReader(input), ',')
	if err != nil {
		t.Fatalf("ReadDelimited error = %v", err)
	}
	if rows[0][1] != "b?c" {
		t.Errorf("cell = %q, want %q", rows[0][1], "b?c")
	}
}

func TestReadDelimited_PreservesMultibyte(t *testing.T) {
	rows, err := ReadDelimited(strings.NewReader("å,ß\n"), ',')
	if err != nil {
		t.Fatalf("ReadDelimited error = %v", err)
	}
	if rows[0][0] != "å" || rows[0][1] != "ß" {
		t.Errorf("rows = %v, valid multibyte text must pass through", rows)
	}
}

func TestWriteDelimited_Roundtrip(t *testing.T) {
	rows := [][]string{
		{"x", "has\ttab"},
		{"quoted \"y\"", ""},
	}
	var buf bytes.Buffer
	if err := WriteDelimited(&buf, rows, '\t'); err != nil {
		t.Fatalf("WriteDelimited error = %v", err)
	}
	back, err := ReadDelimited(bytes.NewReader(buf.Bytes()), '\t')
	if err != nil {
		t.Fatalf("ReadDelimited error = %v", err)
	}
	if !reflect.DeepEqual(back, rows) {
		t.Errorf("roundtrip = %v, want %v", back, rows)
	}
}

// ============================================================================
// File Dispatch Tests
// ============================================================================

func TestReadInput_Delimited(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.tsv")
	if err := os.WriteFile(path, []byte("a\tb\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := ReadInput(path, '\t')
	if err != nil {
		t.Fatalf("ReadInput error = %v", err)
	}
	if !reflect.DeepEqual(rows, [][]string{{"a", "b"}}) {
		t.Errorf("rows = %v", rows)
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "absent.csv"), ',')
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "could not open") {
		t.Errorf("error = %v, want open context", err)
	}
}

func TestReadInput_Workbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]string{
		{"id", "name", "amount"},
		{"1", "alpha", ""},
	}
	for r, row := range cells {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	rows, err := ReadInput(path, ',')
	if err != nil {
		t.Fatalf("ReadInput error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// the second row's trailing empty cell must be padded back
	if len(rows[1]) != len(rows[0]) {
		t.Errorf("row widths = %d vs %d, want equal", len(rows[1]), len(rows[0]))
	}
	if rows[1][1] != "alpha" {
		t.Errorf("cell = %q, want %q", rows[1][1], "alpha")
	}
}

func TestIsWorkbook(t *testing.T) {
	if !isWorkbook("data.XLSX") {
		t.Error("extension match must be case-insensitive")
	}
	if isWorkbook("data.csv") {
		t.Error("csv is not a workbook")
	}
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	rows := [][]string{{"a", "b"}, {"c", "d"}}
	if err := WriteOutput(path, rows, ','); err != nil {
		t.Fatalf("WriteOutput error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a,b\nc,d\n" {
		t.Errorf("file contents = %q", string(data))
	}
}
