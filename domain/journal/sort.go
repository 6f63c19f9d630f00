package journal

import (
	"sort"

	"socratic/domain/session"
)

// SortKey selects the ordering of a journal view. Score keys treat absent
// scores as 0.
type SortKey string

const (
	SortDateDesc      SortKey = "dateDesc"
	SortDateAsc       SortKey = "dateAsc"
	SortIntensityDesc SortKey = "intensityDesc"
	SortIntensityAsc  SortKey = "intensityAsc"
	SortOutcomeDesc   SortKey = "outcomeDesc"
	SortOutcomeAsc    SortKey = "outcomeAsc"
)

// Sorted returns a sorted copy of the records. Unknown keys fall back to
// newest-first, the journal's default.
func Sorted(records []session.Record, key SortKey) []session.Record {
	out := make([]session.Record, len(records))
	copy(out, records)

	var less func(a, b session.Record) bool
	switch key {
	case SortDateAsc:
		less = func(a, b session.Record) bool { return a.ID < b.ID }
	case SortIntensityDesc:
		less = func(a, b session.Record) bool { return a.Intensity() > b.Intensity() }
	case SortIntensityAsc:
		less = func(a, b session.Record) bool { return a.Intensity() < b.Intensity() }
	case SortOutcomeDesc:
		less = func(a, b session.Record) bool { return a.OutcomeScore() > b.OutcomeScore() }
	case SortOutcomeAsc:
		less = func(a, b session.Record) bool { return a.OutcomeScore() < b.OutcomeScore() }
	default:
		less = func(a, b session.Record) bool { return a.ID > b.ID }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
