// journal_report prints an analytics summary of a journal data directory or
// backup file, for checking an export without starting the server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"socratic/adapters/diskv"
	"socratic/app"
	"socratic/domain/journal"
	"socratic/domain/session"
)

func main() {
	dataDir := flag.String("data", "", "journal data directory")
	backup := flag.String("backup", "", "exported backup file (.json)")
	flag.Parse()

	var records []session.Record
	var err error
	switch {
	case *backup != "":
		records, err = loadBackup(*backup)
	case *dataDir != "":
		records, err = loadDataDir(*dataDir)
	default:
		fmt.Fprintln(os.Stderr, "one of -data or -backup is required")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load failed: %v\n", err)
		os.Exit(1)
	}

	printSummary(journal.Aggregate(records))
}

func loadBackup(path string) ([]session.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []session.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("backup is not a JSON array of sessions: %w", err)
	}
	return records, nil
}

func loadDataDir(dir string) ([]session.Record, error) {
	store, err := diskv.NewStore(dir)
	if err != nil {
		return nil, err
	}
	return app.NewJournalService(store, nil, nil).History()
}

func printSummary(s journal.Summary) {
	fmt.Printf("Sessions: %d (distortion=%d stressor=%d worry=%d mood=%d)\n",
		s.TotalSessions, s.DistortionSessions, s.StressorSessions, s.WorrySessions, s.MoodSessions)

	if s.WorrySessions > 0 {
		fmt.Printf("Worries:  hypothetical=%d actionable=%d acceptance=%d\n",
			s.WorryBreakdown.Hypothetical, s.WorryBreakdown.Actionable, s.WorryBreakdown.Acceptance)
	}

	if s.HasScores {
		fmt.Printf("Scores:   avg intensity %d", s.AvgIntensity)
		if s.HasEfficacy {
			fmt.Printf(", avg efficacy %d", s.AvgEfficacy)
		}
		if s.HasResilience {
			fmt.Printf(", avg resilience %d", s.AvgResilience)
		}
		fmt.Printf(" (trend slope %+.2f/day)\n", s.TrendSlope)
	}

	if len(s.ErrorFrequency) > 0 {
		fmt.Println("Top thinking errors:")
		for i, tc := range s.ErrorFrequency {
			if i == 5 {
				break
			}
			fmt.Printf("  %-28s %3d (%d%%)\n", tc.Label, tc.Count, tc.Percentage)
		}
	}

	if len(s.Keywords) > 0 {
		top := s.Keywords
		if len(top) > 10 {
			top = top[:10]
		}
		words := make([]string, len(top))
		for i, kw := range top {
			words[i] = fmt.Sprintf("%s(%d)", kw.Text, kw.Count)
		}
		fmt.Printf("Keywords: %s\n", strings.Join(words, " "))
	}
}
