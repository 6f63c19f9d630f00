package journal

import (
	"testing"

	"socratic/domain/core"
	"socratic/domain/session"
)

func rec(id int64, fn func(r *session.Record)) session.Record {
	r := session.Record{ID: core.EntryID(id), Thought: "t"}
	if fn != nil {
		fn(&r)
	}
	return r
}

func sample() []session.Record {
	return []session.Record{
		rec(1, func(r *session.Record) {
			r.Type = session.Distortion
			r.SelectedErrors = []string{"mind_reading", "self_blame"}
			r.AIScores = &session.Scores{Intensity: 80, Efficacy: 70}
		}),
		rec(2, func(r *session.Record) {
			r.Type = session.Stressor
			r.AIScores = &session.Scores{Intensity: 30, Resilience: 40}
		}),
		rec(3, func(r *session.Record) {
			// legacy record: no type, counts as distortion
			r.SelectedErrors = []string{"mind_reading"}
		}),
		rec(4, func(r *session.Record) {
			r.Type = session.Worry
			r.WorryType = session.WorryHypothetical
		}),
	}
}

func ids(records []session.Record) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = int64(r.ID)
	}
	return out
}

func TestApply_ErrorMembership(t *testing.T) {
	got := Apply(sample(), Filter{Errors: []string{"mind_reading"}})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("filter by error id returned %v", ids(got))
	}
}

func TestApply_DimensionsAreConjunctive(t *testing.T) {
	got := Apply(sample(), Filter{
		Errors:    []string{"mind_reading"},
		Intensity: BandHigh,
	})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("conjunction returned %v", ids(got))
	}
}

func TestApply_IdsWithinDimensionAreDisjunctive(t *testing.T) {
	got := Apply(sample(), Filter{Errors: []string{"self_blame", "blowing_up"}})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("any-of membership returned %v", ids(got))
	}
}

func TestApply_TypeEqualityUsesEffectiveType(t *testing.T) {
	got := Apply(sample(), Filter{Type: session.Distortion})
	if len(got) != 2 {
		t.Fatalf("legacy untyped records must count as distortion, got %v", ids(got))
	}
}

func TestApply_OutcomeBandTreatsAbsentAsZero(t *testing.T) {
	got := Apply(sample(), Filter{Outcome: BandLow})
	// records 2 (resilience 40), 3 and 4 (no scores -> 0)
	if len(got) != 3 {
		t.Fatalf("low outcome band returned %v", ids(got))
	}
}

func TestApply_EmptyFilterKeepsEverything(t *testing.T) {
	if got := Apply(sample(), Filter{}); len(got) != 4 {
		t.Fatalf("empty filter returned %v", ids(got))
	}
}

func TestSorted(t *testing.T) {
	records := sample()

	tests := []struct {
		key  SortKey
		want []int64
	}{
		{SortDateDesc, []int64{4, 3, 2, 1}},
		{SortDateAsc, []int64{1, 2, 3, 4}},
		{SortIntensityDesc, []int64{1, 2, 3, 4}},
		{SortIntensityAsc, []int64{3, 4, 2, 1}},
		{SortOutcomeDesc, []int64{1, 2, 3, 4}},
		{SortKey("bogus"), []int64{4, 3, 2, 1}},
	}
	for _, tt := range tests {
		got := ids(Sorted(records, tt.key))
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Fatalf("Sorted(%s) = %v, want %v", tt.key, got, tt.want)
			}
		}
	}

	// input order untouched
	if records[0].ID != 1 {
		t.Fatal("Sorted must not mutate its input")
	}
}
