package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"socratic/domain/core"
	"socratic/domain/session"
)

func TestWriteHistory(t *testing.T) {
	records := []session.Record{
		{
			ID:             core.EntryID(1700000000000),
			Type:           session.Distortion,
			Thought:        "Everyone thinks I failed",
			SelectedErrors: []string{"mind_reading", "blowing_up"},
			Enrichment: session.Enrichment{
				AISummary:  "<div class='AIsummary'>A harsh read of an ambiguous moment.</div>",
				AIKeywords: []string{"Work & Career", "evidence"},
				AIScores:   &session.Scores{Intensity: 70, Efficacy: 85},
			},
		},
		{
			ID:        core.EntryID(1700000000001),
			Type:      session.Worry,
			Thought:   "What if the talk goes badly",
			WorryType: session.WorryHypothetical,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHistory(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sessions")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per record")

	assert.Equal(t, headers, rows[0][:len(headers)])

	first := rows[1]
	assert.Equal(t, "distortion", first[1])
	assert.Equal(t, "Everyone thinks I failed", first[2])
	assert.Equal(t, "Mind Reading, Blowing Things Up", first[3])
	assert.Equal(t, "70", first[7])
	assert.Equal(t, "85", first[8])
	assert.Equal(t, "Work & Career, evidence", first[9])
	// HTML stripped for the cell
	assert.Equal(t, "A harsh read of an ambiguous moment.", first[10])

	second := rows[2]
	assert.Equal(t, "worry", second[1])
	assert.Equal(t, "hypothetical", second[5])
}

func TestWriteHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHistory(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sessions")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "plain", stripTags("plain"))
	assert.Equal(t, "nested text", stripTags("<div><b>nested</b> text</div>"))
	assert.Equal(t, "", stripTags(""))
}
