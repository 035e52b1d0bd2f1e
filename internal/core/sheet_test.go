package core

import (
	"errors"
	"testing"
)

func TestNewSheet_Rectangular(t *testing.T) {
	sheet, err := NewSheet([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
	}, []int{1}, 0)
	if err != nil {
		t.Fatalf("NewSheet error = %v", err)
	}
	if sheet.ColumnCount() != 3 {
		t.Errorf("ColumnCount = %d, want 3", sheet.ColumnCount())
	}
	if sheet.Len() != 2 {
		t.Errorf("Len = %d, want 2", sheet.Len())
	}
}

func TestNewSheet_IrregularShape(t *testing.T) {
	_, err := NewSheet([][]string{
		{"a", "b", "c"},
		{"d", "e"},
	}, []int{1}, 0)
	if err == nil {
		t.Fatal("expected error for ragged rows, got nil")
	}
	var shape *IrregularShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("error = %v, want IrregularShapeError", err)
	}
	if shape.Row != 2 || shape.Columns != 2 || shape.FirstColumns != 3 {
		t.Errorf("error fields = %+v, want row 2, 2 vs 3 columns", shape)
	}
	want := "the first row has 3 columns, but row #2 has 2 columns"
	if shape.Error() != want {
		t.Errorf("Error() = %q, want %q", shape.Error(), want)
	}
}

func TestNewSheet_Empty(t *testing.T) {
	// an empty input resolves synthetic-only specs fine but rejects real ones
	if _, err := NewSheet(nil, []int{0}, 0); err != nil {
		t.Errorf("NewSheet(empty, [0]) error = %v", err)
	}
	if _, err := NewSheet(nil, []int{1}, 0); err == nil {
		t.Error("NewSheet(empty, [1]) expected out-of-bounds error")
	}
}

func TestSheetKey_UserSpecifiedOrder(t *testing.T) {
	sheet, err := NewSheet([][]string{{"a", "b", "c"}}, []int{3, 1}, 0)
	if err != nil {
		t.Fatalf("NewSheet error = %v", err)
	}
	key := sheet.key(0)
	items := key.Items()
	if len(items) != 2 || items[0].Data != "c" || items[1].Data != "a" {
		t.Errorf("key items = %v, want [c a]", items)
	}
}

func TestSheetKey_SyntheticIdentity(t *testing.T) {
	sheet, err := NewSheet([][]string{{"a"}, {"a"}}, []int{0}, 3)
	if err != nil {
		t.Fatalf("NewSheet error = %v", err)
	}
	first := sheet.key(0)
	second := sheet.key(1)
	if first.Fingerprint() == second.Fingerprint() {
		t.Error("rows with synthetic keys must never share a group")
	}
	item := first.Items()[0]
	if !item.IsID || item.ID.Source != 3 || item.ID.Row != 0 {
		t.Errorf("identity item = %+v, want source 3, row 0", item)
	}
}

func TestSplitFiller_SameShapeAsRealRow(t *testing.T) {
	sheet, err := NewSheet([][]string{{"a", "b", "c", "d"}}, []int{2}, 0)
	if err != nil {
		t.Fatalf("NewSheet error = %v", err)
	}
	real := sheet.splitRow(0)
	filled := sheet.splitFiller("-")
	if len(real) != len(filled) {
		t.Fatalf("filler split has %d sections, real has %d", len(filled), len(real))
	}
	for i := range real {
		if real[i].isKey != filled[i].isKey {
			t.Errorf("section %d kind mismatch", i)
		}
		if len(real[i].cells) != len(filled[i].cells) {
			t.Errorf("section %d width mismatch", i)
		}
	}
	if filled[1].cells[0] != "-" {
		t.Errorf("filler key cell = %q, want -", filled[1].cells[0])
	}
}
