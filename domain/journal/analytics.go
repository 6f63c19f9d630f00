package journal

import (
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"socratic/domain/session"
	"socratic/domain/vocab"
)

// maxKeywords caps the keyword frequency table for the topic cloud.
const maxKeywords = 40

// TagCount is one row of a vocabulary frequency table.
type TagCount struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"` // of total tagged occurrences
}

// WordCount is one entry of the keyword frequency table.
type WordCount struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// TrendPoint is one sample of the time-ordered score series. Only records
// with an intensity score contribute; efficacy/resilience are 0 when absent.
type TrendPoint struct {
	Timestamp  int64 `json:"timestamp"`
	Intensity  int   `json:"intensity"`
	Efficacy   int   `json:"efficacy,omitempty"`
	Resilience int   `json:"resilience,omitempty"`
}

// WorryBreakdown splits worry sessions three ways by tree outcome.
type WorryBreakdown struct {
	Hypothetical int `json:"hypothetical"`
	Actionable   int `json:"actionable"`
	Acceptance   int `json:"acceptance"`
}

// Summary is the full analytics aggregate over a collection. Every field
// degrades to zero or empty on an empty collection.
type Summary struct {
	TotalSessions      int `json:"totalSessions"`
	DistortionSessions int `json:"distortionSessions"`
	StressorSessions   int `json:"stressorSessions"`
	WorrySessions      int `json:"worrySessions"`
	MoodSessions       int `json:"moodSessions"`

	WorryBreakdown WorryBreakdown `json:"worryBreakdown"`

	ErrorFrequency      []TagCount `json:"errorFrequency"`
	DistortionFrequency []TagCount `json:"distortionFrequency"`

	AvgIntensity  int  `json:"avgIntensity"`
	AvgEfficacy   int  `json:"avgEfficacy"`
	AvgResilience int  `json:"avgResilience"`
	HasScores     bool `json:"hasScores"`
	HasEfficacy   bool `json:"hasEfficacy"`
	HasResilience bool `json:"hasResilience"`

	Trend []TrendPoint `json:"trend"`
	// TrendSlope is the least-squares slope of intensity over time, in
	// score points per day. Zero when fewer than two samples exist.
	TrendSlope float64 `json:"trendSlope"`

	Keywords []WordCount `json:"keywords"`
}

// Aggregate computes the analytics summary for a collection.
func Aggregate(records []session.Record) Summary {
	s := Summary{TotalSessions: len(records)}

	errorCounts := make(map[string]int)
	distortionCounts := make(map[string]int)
	keywordCounts := make(map[string]int)
	var intensities, efficacies, resiliences []float64

	for _, rec := range records {
		switch rec.EffectiveType() {
		case session.Stressor:
			s.StressorSessions++
		case session.Worry:
			s.WorrySessions++
			switch rec.WorryType {
			case session.WorryHypothetical:
				s.WorryBreakdown.Hypothetical++
			case session.WorryCurrent:
				switch rec.WorryActionable {
				case session.ActionableYes:
					s.WorryBreakdown.Actionable++
				case session.ActionableNo:
					s.WorryBreakdown.Acceptance++
				}
			}
		case session.Mood:
			s.MoodSessions++
		default:
			s.DistortionSessions++
		}

		for _, id := range rec.SelectedErrors {
			errorCounts[id]++
		}
		for _, id := range rec.SelectedDistortions {
			distortionCounts[id]++
		}
		for _, word := range rec.AIKeywords {
			keywordCounts[strings.ToLower(word)]++
		}

		if sc := rec.AIScores; sc != nil {
			if sc.Intensity > 0 {
				intensities = append(intensities, float64(sc.Intensity))
			}
			if sc.Efficacy > 0 {
				efficacies = append(efficacies, float64(sc.Efficacy))
			}
			if sc.Resilience > 0 {
				resiliences = append(resiliences, float64(sc.Resilience))
			}
		}
	}

	s.ErrorFrequency = frequencyTable(errorCounts, vocab.ThinkingErrors)
	s.DistortionFrequency = frequencyTable(distortionCounts, vocab.CognitiveDistortions)

	s.AvgIntensity = roundedMean(intensities)
	s.AvgEfficacy = roundedMean(efficacies)
	s.AvgResilience = roundedMean(resiliences)
	s.HasScores = len(intensities) > 0
	s.HasEfficacy = len(efficacies) > 0
	s.HasResilience = len(resiliences) > 0

	s.Trend = trendSeries(records)
	s.TrendSlope = trendSlope(s.Trend)

	s.Keywords = topKeywords(keywordCounts, maxKeywords)
	return s
}

// roundedMean averages the contributing values only; an empty sample yields
// 0, never a division by zero.
func roundedMean(values []float64) int {
	if len(values) == 0 {
		return 0
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return int(math.Round(mean))
}

// frequencyTable turns raw tag counts into a table sorted by count
// descending, with percentages of total tagged occurrences.
func frequencyTable(counts map[string]int, source []vocab.Option) []TagCount {
	total := 0
	for _, c := range counts {
		total += c
	}
	out := make([]TagCount, 0, len(counts))
	for id, count := range counts {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(count) / float64(total) * 100))
		}
		out = append(out, TagCount{
			ID:         id,
			Label:      vocab.Label(id, source),
			Count:      count,
			Percentage: pct,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// trendSeries extracts the time-ordered (timestamp, scores) tuples of all
// records that carry at least an intensity score.
func trendSeries(records []session.Record) []TrendPoint {
	out := make([]TrendPoint, 0, len(records))
	for _, rec := range records {
		if !rec.HasIntensity() {
			continue
		}
		out = append(out, TrendPoint{
			Timestamp:  int64(rec.ID),
			Intensity:  rec.AIScores.Intensity,
			Efficacy:   rec.AIScores.Efficacy,
			Resilience: rec.AIScores.Resilience,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out
}

// trendSlope fits intensity against time. Timestamps are rescaled to days so
// the slope reads as points per day instead of points per millisecond.
func trendSlope(points []TrendPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	const msPerDay = 24 * 60 * 60 * 1000
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.Timestamp-points[0].Timestamp) / msPerDay
		ys[i] = float64(p.Intensity)
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return 0
	}
	return slope
}

// topKeywords returns the case-folded keyword table truncated to the top n
// by count.
func topKeywords(counts map[string]int, n int) []WordCount {
	out := make([]WordCount, 0, len(counts))
	for text, count := range counts {
		out = append(out, WordCount{Text: text, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Text < out[j].Text
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
