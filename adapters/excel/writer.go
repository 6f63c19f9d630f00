// Package excel renders the journal history as an xlsx workbook for export.
package excel

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"socratic/domain/session"
	"socratic/domain/vocab"
)

var headers = []string{
	"Date", "Type", "Thought", "Thinking Errors", "Distortions",
	"Worry Type", "Actionable", "Intensity", "Outcome", "Keywords", "AI Summary",
}

// WriteHistory writes the records as a single-sheet workbook, one row per
// session, newest first ordering preserved from the input.
func WriteHistory(w io.Writer, records []session.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sessions"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, rec := range records {
		rowIdx := r + 2
		for c, v := range rowValues(rec) {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheet, "C", "C", 60); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "K", "K", 60); err != nil {
		return err
	}

	return f.Write(w)
}

func rowValues(rec session.Record) []interface{} {
	intensity := ""
	if rec.HasIntensity() {
		intensity = strconv.Itoa(rec.Intensity())
	}
	outcome := ""
	if score := rec.OutcomeScore(); score > 0 {
		outcome = strconv.Itoa(score)
	}
	return []interface{}{
		rec.ID.Time().Format(time.RFC3339),
		string(rec.EffectiveType()),
		rec.Thought,
		vocab.Labels(rec.SelectedErrors, vocab.ThinkingErrors),
		vocab.Labels(rec.SelectedDistortions, vocab.CognitiveDistortions),
		rec.WorryType,
		rec.WorryActionable,
		intensity,
		outcome,
		strings.Join(rec.AIKeywords, ", "),
		stripTags(rec.AISummary),
	}
}

// stripTags flattens the HTML-bearing AI fields into plain text for cells.
func stripTags(s string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}
