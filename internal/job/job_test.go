package job

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeJob(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeJob(t, `
inputs:
  - a.tsv
  - b.tsv
output: out.tsv
columns: [1, -1]
filler: "-"
warn_similar: 1.5
warn_unmatched: true
`)
	j, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if !reflect.DeepEqual(j.Inputs, []string{"a.tsv", "b.tsv"}) {
		t.Errorf("Inputs = %v", j.Inputs)
	}
	if !reflect.DeepEqual(j.Columns, []int{1, -1}) {
		t.Errorf("Columns = %v", j.Columns)
	}
	if j.WarnSimilar != 1.5 {
		t.Errorf("WarnSimilar = %v, want 1.5", j.WarnSimilar)
	}
	if !j.WarnUnmatched {
		t.Error("WarnUnmatched = false, want true")
	}
	if j.AllowMultiMerge {
		t.Error("AllowMultiMerge = true, want default false")
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writeJob(t, "inputs: [a.tsv]\ncolums: [1]\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for misspelled field, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDelimiterRune(t *testing.T) {
	tests := []struct {
		name      string
		delimiter string
		want      rune
		wantErr   bool
	}{
		{"default tab", "", '\t', false},
		{"comma", ",", ',', false},
		{"semicolon", ";", ';', false},
		{"multi-character rejected", "::", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &Job{Delimiter: tt.delimiter}
			got, err := j.DelimiterRune()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("DelimiterRune error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DelimiterRune = %q, want %q", got, tt.want)
			}
		})
	}
}
