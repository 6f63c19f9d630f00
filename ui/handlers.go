package ui

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"socratic/domain/core"
	"socratic/domain/journal"
	"socratic/domain/session"
	"socratic/domain/workflow"
)

// maxImportBytes bounds uploaded backup files.
const maxImportBytes = 16 << 20

// sessionState is the wire view of one wizard session.
type sessionState struct {
	ID         core.DraftID         `json:"id"`
	Type       session.WorkflowType `json:"type"`
	Step       int                  `json:"step"`
	TotalSteps int                  `json:"totalSteps"`
	AtTerminal bool                 `json:"atTerminal"`
	InFlight   bool                 `json:"inFlight"`
	Fields     []workflow.FieldID   `json:"fields"`
	Draft      draftView            `json:"draft"`
}

type draftView struct {
	Thought    string                    `json:"thought"`
	Distortion *session.DistortionFields `json:"distortion,omitempty"`
	Stressor   *session.StressorFields   `json:"stressor,omitempty"`
	Worry      *session.WorryFields      `json:"worry,omitempty"`
	Mood       *session.MoodFields       `json:"mood,omitempty"`
}

func stateOf(seq *workflow.Sequencer) (sessionState, error) {
	fields, err := seq.Fields()
	if err != nil {
		return sessionState{}, err
	}
	d := seq.Draft()
	return sessionState{
		ID:         seq.ID(),
		Type:       d.Type,
		Step:       seq.Step(),
		TotalSteps: seq.TotalSteps(),
		AtTerminal: seq.AtTerminal(),
		InFlight:   seq.InFlight(),
		Fields:     fields,
		Draft: draftView{
			Thought:    d.Thought,
			Distortion: d.Distortion,
			Stressor:   d.Stressor,
			Worry:      d.Worry,
			Mood:       d.Mood,
		},
	}, nil
}

func (s *Server) handleStartSession(c *gin.Context) {
	var req struct {
		Type string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, core.NewValidationError("body", "must be JSON with a type field"))
		return
	}

	workflowType, err := session.ParseWorkflowType(req.Type)
	if err != nil {
		respondError(c, err)
		return
	}

	seq, err := workflow.NewSequencer(workflowType)
	if err != nil {
		respondError(c, err)
		return
	}
	s.register(seq)

	state, err := stateOf(seq)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

func (s *Server) handleGetSession(c *gin.Context) {
	seq, ok := s.sequencer(c.Param("id"))
	if !ok {
		respondError(c, core.NewNotFoundError("session", c.Param("id")))
		return
	}
	s.mu.Lock()
	state, err := stateOf(seq)
	s.mu.Unlock()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (s *Server) handleUpdateSession(c *gin.Context) {
	seq, ok := s.sequencer(c.Param("id"))
	if !ok {
		respondError(c, core.NewNotFoundError("session", c.Param("id")))
		return
	}

	var update session.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, core.NewValidationError("body", "is not a valid draft update"))
		return
	}

	s.mu.Lock()
	seq.Draft().Apply(update)
	state, err := stateOf(seq)
	s.mu.Unlock()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (s *Server) handleAdvance(c *gin.Context) {
	seq, ok := s.sequencer(c.Param("id"))
	if !ok {
		respondError(c, core.NewNotFoundError("session", c.Param("id")))
		return
	}

	s.mu.Lock()
	err := seq.Advance()
	var state sessionState
	if err == nil {
		state, err = stateOf(seq)
	}
	s.mu.Unlock()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (s *Server) handleRetreat(c *gin.Context) {
	seq, ok := s.sequencer(c.Param("id"))
	if !ok {
		respondError(c, core.NewNotFoundError("session", c.Param("id")))
		return
	}

	s.mu.Lock()
	seq.Retreat()
	state, err := stateOf(seq)
	s.mu.Unlock()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (s *Server) handleCancel(c *gin.Context) {
	seq, ok := s.sequencer(c.Param("id"))
	if !ok {
		respondError(c, core.NewNotFoundError("session", c.Param("id")))
		return
	}
	s.mu.Lock()
	if seq.InFlight() {
		s.mu.Unlock()
		respondError(c, core.ErrSaveInFlight)
		return
	}
	seq.Cancel()
	delete(s.sequencers, seq.ID())
	s.mu.Unlock()
	c.Status(http.StatusNoContent)
}

// handleSave runs the terminal transition in two phases around the insight
// call: BeginSave and CompleteSave mutate the sequencer and happen under the
// registry lock, while the enrichment request runs unlocked against the draft
// snapshot so state polls stay responsive and see the in-flight flag.
func (s *Server) handleSave(c *gin.Context) {
	seq, ok := s.sequencer(c.Param("id"))
	if !ok {
		respondError(c, core.NewNotFoundError("session", c.Param("id")))
		return
	}

	s.mu.Lock()
	draft, err := seq.BeginSave()
	s.mu.Unlock()
	if err != nil {
		respondError(c, err)
		return
	}

	enrichment := s.journal.Enrich(c.Request.Context(), draft)

	s.mu.Lock()
	rec := seq.CompleteSave(enrichment)
	delete(s.sequencers, seq.ID())
	s.mu.Unlock()

	if err := s.journal.Append(rec); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleTriage(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		respondError(c, core.NewValidationError("text", "is required"))
		return
	}

	rec, err := s.journal.Triage(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleJournal(c *gin.Context) {
	filter := journal.Filter{
		Intensity: journal.ScoreBand(c.Query("intensity")),
		Outcome:   journal.ScoreBand(c.Query("outcome")),
	}
	if typeParam := c.Query("type"); typeParam != "" {
		workflowType, err := session.ParseWorkflowType(typeParam)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.Type = workflowType
	}
	if errs := c.Query("errors"); errs != "" {
		filter.Errors = strings.Split(errs, ",")
	}
	if dists := c.Query("distortions"); dists != "" {
		filter.Distortions = strings.Split(dists, ",")
	}

	sortKey := journal.SortKey(c.DefaultQuery("sort", string(journal.SortDateDesc)))

	records, err := s.journal.View(filter, sortKey)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records, "total": len(records)})
}

func (s *Server) handleDelete(c *gin.Context) {
	id, err := core.ParseEntryID(c.Param("id"))
	if err != nil {
		respondError(c, core.NewValidationError("id", "must be a numeric entry id"))
		return
	}
	if err := s.journal.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleAnalytics(c *gin.Context) {
	summary, err := s.journal.Analytics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleExport(c *gin.Context) {
	raw, err := s.transfer.Export()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="socratic-journal.json"`)
	c.Data(http.StatusOK, "application/json", raw)
}

func (s *Server) handleExportExcel(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="socratic-journal.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := s.transfer.ExportExcel(c.Writer); err != nil {
		s.logger.Error("excel export failed: %v", err)
	}
}

func (s *Server) handleImport(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		respondError(c, core.NewValidationError("body", "could not be read"))
		return
	}

	added, err := s.transfer.Import(data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": added})
}

func (s *Server) handleBackupStatus(c *gin.Context) {
	last, err := s.journal.LastBackup()
	if err != nil {
		respondError(c, err)
		return
	}
	changed, err := s.journal.HasUnsavedChanges()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lastBackup": last, "hasUnsavedChanges": changed})
}

func (s *Server) handleRecordBackup(c *gin.Context) {
	if err := s.journal.RecordBackup(); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleGetTheme(c *gin.Context) {
	theme, err := s.journal.Theme()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (s *Server) handleSetTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Theme == "" {
		respondError(c, core.NewValidationError("theme", "is required"))
		return
	}
	if err := s.journal.SetTheme(req.Theme); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
