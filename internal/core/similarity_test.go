package core

import (
	"strings"
	"testing"
)

// ============================================================================
// Key Distance Tests
// ============================================================================

func TestKeyDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want int
	}{
		{
			"identical keys",
			NewKey([]KeyItem{{Data: "abc"}}),
			NewKey([]KeyItem{{Data: "abc"}}),
			0,
		},
		{
			"single edit",
			NewKey([]KeyItem{{Data: "abc"}}),
			NewKey([]KeyItem{{Data: "abd"}}),
			1,
		},
		{
			"summed across positions",
			NewKey([]KeyItem{{Data: "ab"}, {Data: "cd"}}),
			NewKey([]KeyItem{{Data: "ax"}, {Data: "cy"}}),
			2,
		},
		{
			"identity pairs are neutral",
			NewKey([]KeyItem{{IsID: true, ID: RecordID{0, 0}}, {Data: "ab"}}),
			NewKey([]KeyItem{{IsID: true, ID: RecordID{1, 5}}, {Data: "ac"}}),
			1,
		},
		{
			"identity against data is neutral",
			NewKey([]KeyItem{{IsID: true, ID: RecordID{0, 0}}}),
			NewKey([]KeyItem{{Data: "anything"}}),
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyDistance(tt.a, tt.b); got != tt.want {
				t.Errorf("keyDistance = %d, want %d", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Similarity Diagnostics Tests
// ============================================================================

func TestConsolidate_WarnSimilar(t *testing.T) {
	sheets := mustSheets(t, []int{1},
		[][]string{{"apple", "1"}},
		[][]string{{"appel", "2"}},
	)
	sink := &BufferSink{}
	_, err := Consolidate(sheets, Options{Filler: "-", SimilarityWarnLevel: 2, Diag: sink})
	if err != nil {
		t.Fatalf("Consolidate error = %v", err)
	}
	if len(sink.Findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(sink.Findings))
	}
	finding := sink.Findings[0]
	if len(finding) != 3 {
		t.Fatalf("finding has %d lines, want 3", len(finding))
	}
	if !strings.Contains(finding[0], "Similar records encountered") {
		t.Errorf("finding header = %q", finding[0])
	}
	if !strings.Contains(finding[0], "edit distance = 2") {
		t.Errorf("finding should report the distance: %q", finding[0])
	}
	if finding[1] != "apple" || finding[2] != "appel" {
		t.Errorf("finding keys = %q, %q", finding[1], finding[2])
	}
}

func TestConsolidate_SimilarityThresholdExclusive(t *testing.T) {
	sheets := mustSheets(t, []int{1},
		[][]string{{"apple", "1"}},
		[][]string{{"grape", "2"}},
	)
	sink := &BufferSink{}
	// distance apple->grape is 4; level 2 must stay quiet
	_, err := Consolidate(sheets, Options{Filler: "-", SimilarityWarnLevel: 2, Diag: sink})
	if err != nil {
		t.Fatalf("Consolidate error = %v", err)
	}
	if len(sink.Findings) != 0 {
		t.Errorf("got findings %v, want none", sink.Findings)
	}
}

func TestConsolidate_SimilarityDisabledByDefault(t *testing.T) {
	sheets := mustSheets(t, []int{1},
		[][]string{{"aa", "1"}},
		[][]string{{"ab", "2"}},
	)
	sink := &BufferSink{}
	if _, err := Consolidate(sheets, Options{Filler: "-", Diag: sink}); err != nil {
		t.Fatalf("Consolidate error = %v", err)
	}
	if len(sink.Findings) != 0 {
		t.Errorf("got findings %v, want none when level unset", sink.Findings)
	}
}

func TestConsolidate_SimilarityReportedOnce(t *testing.T) {
	// three pairwise-close keys: the pair (a,b) is reported when a is
	// consumed, (a,c) likewise; (b,c) when b is consumed. a is never
	// revisited as a comparison target.
	sheets := mustSheets(t, []int{1},
		[][]string{{"aa", "1"}, {"ab", "2"}, {"ac", "3"}},
	)
	sink := &BufferSink{}
	_, err := Consolidate(sheets, Options{Filler: "-", SimilarityWarnLevel: 1, Diag: sink})
	if err != nil {
		t.Fatalf("Consolidate error = %v", err)
	}
	if len(sink.Findings) != 3 {
		t.Fatalf("got %d findings, want 3", len(sink.Findings))
	}
	pairs := make(map[string]bool)
	for _, finding := range sink.Findings {
		pairs[finding[1]+"|"+finding[2]] = true
	}
	for _, want := range []string{"aa|ab", "aa|ac", "ab|ac"} {
		if !pairs[want] {
			t.Errorf("missing pair %q in %v", want, pairs)
		}
	}
	// the reverse attributions must not occur
	for _, forbidden := range []string{"ab|aa", "ac|aa", "ac|ab"} {
		if pairs[forbidden] {
			t.Errorf("pair %q attributed to the later group", forbidden)
		}
	}
}
