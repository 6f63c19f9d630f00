package journal

import (
	"testing"

	"socratic/domain/session"
)

func TestAggregate_EmptyCollection(t *testing.T) {
	s := Aggregate(nil)
	if s.TotalSessions != 0 || s.AvgIntensity != 0 || s.AvgEfficacy != 0 || s.AvgResilience != 0 {
		t.Fatalf("empty collection must aggregate to zeros: %+v", s)
	}
	if s.HasScores || len(s.Trend) != 0 || len(s.Keywords) != 0 {
		t.Fatalf("empty collection must yield empty derived views: %+v", s)
	}
	if s.TrendSlope != 0 {
		t.Fatalf("trend slope = %v, want 0", s.TrendSlope)
	}
}

func TestAggregate_MeansOverContributingRecordsOnly(t *testing.T) {
	records := []session.Record{
		rec(1, func(r *session.Record) { r.AIScores = &session.Scores{Intensity: 20, Efficacy: 90} }),
		rec(2, func(r *session.Record) { r.AIScores = &session.Scores{Intensity: 80} }),
		rec(3, nil), // no scores at all
	}
	s := Aggregate(records)

	if s.AvgIntensity != 50 {
		t.Fatalf("avgIntensity = %d, want 50 (mean of the two present values)", s.AvgIntensity)
	}
	if s.AvgEfficacy != 90 {
		t.Fatalf("avgEfficacy = %d, want 90 (single contributing record)", s.AvgEfficacy)
	}
	if s.AvgResilience != 0 || s.HasResilience {
		t.Fatalf("no resilience scores present, got avg %d", s.AvgResilience)
	}
	if !s.HasScores {
		t.Fatal("hasScores should be true")
	}
}

func TestAggregate_TypeCountsAndWorryBreakdown(t *testing.T) {
	records := []session.Record{
		rec(1, func(r *session.Record) { r.Type = session.Worry; r.WorryType = session.WorryHypothetical }),
		rec(2, func(r *session.Record) {
			r.Type = session.Worry
			r.WorryType = session.WorryCurrent
			r.WorryActionable = session.ActionableYes
		}),
		rec(3, func(r *session.Record) {
			r.Type = session.Worry
			r.WorryType = session.WorryCurrent
			r.WorryActionable = session.ActionableNo
		}),
		rec(4, func(r *session.Record) { r.Type = session.Stressor }),
		rec(5, func(r *session.Record) { r.Type = session.Mood }),
		rec(6, nil), // legacy distortion
	}
	s := Aggregate(records)

	if s.WorrySessions != 3 || s.StressorSessions != 1 || s.MoodSessions != 1 || s.DistortionSessions != 1 {
		t.Fatalf("type counts wrong: %+v", s)
	}
	want := WorryBreakdown{Hypothetical: 1, Actionable: 1, Acceptance: 1}
	if s.WorryBreakdown != want {
		t.Fatalf("worry breakdown = %+v, want %+v", s.WorryBreakdown, want)
	}
}

func TestAggregate_FrequencyTables(t *testing.T) {
	records := []session.Record{
		rec(1, func(r *session.Record) { r.SelectedErrors = []string{"mind_reading", "self_blame"} }),
		rec(2, func(r *session.Record) { r.SelectedErrors = []string{"mind_reading"} }),
		rec(3, func(r *session.Record) { r.SelectedDistortions = []string{"overgeneralization"} }),
	}
	s := Aggregate(records)

	if len(s.ErrorFrequency) != 2 {
		t.Fatalf("error frequency rows = %d, want 2", len(s.ErrorFrequency))
	}
	top := s.ErrorFrequency[0]
	if top.ID != "mind_reading" || top.Count != 2 || top.Percentage != 67 {
		t.Fatalf("top error row = %+v", top)
	}
	if top.Label != "Mind Reading" {
		t.Fatalf("label not resolved: %q", top.Label)
	}
	if len(s.DistortionFrequency) != 1 || s.DistortionFrequency[0].Percentage != 100 {
		t.Fatalf("distortion frequency = %+v", s.DistortionFrequency)
	}
}

func TestAggregate_TrendSeriesFilteredAndOrdered(t *testing.T) {
	records := []session.Record{
		rec(300, func(r *session.Record) { r.AIScores = &session.Scores{Intensity: 40, Resilience: 50} }),
		rec(100, func(r *session.Record) { r.AIScores = &session.Scores{Intensity: 90, Efficacy: 20} }),
		rec(200, nil), // no intensity, excluded
	}
	s := Aggregate(records)

	if len(s.Trend) != 2 {
		t.Fatalf("trend samples = %d, want 2", len(s.Trend))
	}
	if s.Trend[0].Timestamp != 100 || s.Trend[1].Timestamp != 300 {
		t.Fatalf("trend not time-ordered: %+v", s.Trend)
	}
	if s.TrendSlope >= 0 {
		t.Fatalf("intensity drops from 90 to 40, slope = %v should be negative", s.TrendSlope)
	}
}

func TestAggregate_KeywordsCaseFoldedAndTruncated(t *testing.T) {
	records := []session.Record{
		rec(1, func(r *session.Record) { r.AIKeywords = []string{"Work & Career", "deadlines"} }),
		rec(2, func(r *session.Record) { r.AIKeywords = []string{"work & career"} }),
	}
	s := Aggregate(records)

	if len(s.Keywords) != 2 {
		t.Fatalf("keyword rows = %d, want 2", len(s.Keywords))
	}
	if s.Keywords[0].Text != "work & career" || s.Keywords[0].Count != 2 {
		t.Fatalf("case folding broken: %+v", s.Keywords[0])
	}

	// truncation to top 40
	var many []session.Record
	for i := 0; i < 50; i++ {
		kw := string(rune('a'+i%26)) + string(rune('a'+i/26))
		many = append(many, rec(int64(i+1), func(r *session.Record) { r.AIKeywords = []string{kw} }))
	}
	if got := Aggregate(many); len(got.Keywords) != maxKeywords {
		t.Fatalf("keyword table = %d rows, want %d", len(got.Keywords), maxKeywords)
	}
}
