// Package journal derives filtered, sorted, and aggregated views over the
// persisted collection of session records. Every operation is a pure,
// read-only derivation recomputed per call; no view ever mutates the
// collection it was handed.
package journal

import "socratic/domain/session"

// ScoreBand is a coarse threshold filter over a 1-100 score.
type ScoreBand string

const (
	BandAny  ScoreBand = "all"
	BandHigh ScoreBand = "high" // score >= 50
	BandLow  ScoreBand = "low"  // score < 50
)

func (b ScoreBand) matches(score int) bool {
	switch b {
	case BandHigh:
		return score >= 50
	case BandLow:
		return score < 50
	default:
		return true
	}
}

// Filter is a predicate conjunction over the collection: dimensions combine
// with AND, ids within a dimension with OR (any selected id present). Zero
// values leave a dimension inactive.
type Filter struct {
	Type        session.WorkflowType `json:"type,omitempty"`
	Errors      []string             `json:"errors,omitempty"`
	Distortions []string             `json:"distortions,omitempty"`
	Intensity   ScoreBand            `json:"intensity,omitempty"`
	Outcome     ScoreBand            `json:"outcome,omitempty"` // efficacy-or-resilience
}

// Apply returns the records matching the filter, preserving input order.
func Apply(records []session.Record, f Filter) []session.Record {
	out := make([]session.Record, 0, len(records))
	for _, rec := range records {
		if f.Type != "" && rec.EffectiveType() != f.Type {
			continue
		}
		if len(f.Errors) > 0 && !anyMember(rec.HasError, f.Errors) {
			continue
		}
		if len(f.Distortions) > 0 && !anyMember(rec.HasDistortion, f.Distortions) {
			continue
		}
		if !f.Intensity.matches(rec.Intensity()) {
			continue
		}
		if !f.Outcome.matches(rec.OutcomeScore()) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func anyMember(has func(string) bool, ids []string) bool {
	for _, id := range ids {
		if has(id) {
			return true
		}
	}
	return false
}
