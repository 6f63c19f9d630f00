package app

import (
	"context"
	"encoding/json"
	"errors"

	"socratic/domain/core"
	"socratic/domain/journal"
	"socratic/domain/session"
	"socratic/domain/workflow"
	"socratic/internal"
	"socratic/ports"
)

// JournalService owns the persisted journal: the history collection, the
// backup bookkeeping, and the theme preference. It is the only writer of the
// store's history key.
type JournalService struct {
	store   ports.Store
	insight ports.InsightGenerator
	logger  *internal.Logger
}

// NewJournalService creates the service. A nil insight generator disables
// enrichment and triage; everything else keeps working.
func NewJournalService(store ports.Store, insight ports.InsightGenerator, logger *internal.Logger) *JournalService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &JournalService{store: store, insight: insight, logger: logger}
}

// History loads the full record collection. A missing key is an empty
// journal; a corrupted value is logged and coerced to empty rather than
// wedging every read path.
func (s *JournalService) History() ([]session.Record, error) {
	raw, ok, err := s.store.Get(ports.KeyHistory)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []session.Record{}, nil
	}

	var records []session.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Warn("history value corrupted, starting empty: %v", core.ErrStoreCorruption)
		return []session.Record{}, nil
	}
	if records == nil {
		records = []session.Record{}
	}
	return records, nil
}

func (s *JournalService) writeHistory(records []session.Record) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.store.Set(ports.KeyHistory, raw)
}

// Enrich asks the insight generator for the draft's enrichment. Failures are
// logged and read as no insight; a nil generator skips the call outright.
// Safe without any lock - it only touches the draft snapshot it is given.
func (s *JournalService) Enrich(ctx context.Context, d *session.Draft) *session.Enrichment {
	if s.insight == nil {
		return nil
	}
	e, err := s.insight.GenerateSessionInsight(ctx, d)
	if err != nil {
		s.logger.Warn("insight generation failed, saving without enrichment: %v", err)
		return nil
	}
	return e
}

// Append persists one new record at the end of the history.
func (s *JournalService) Append(rec session.Record) error {
	records, err := s.History()
	if err != nil {
		return err
	}
	records = append(records, rec)
	if err := s.writeHistory(records); err != nil {
		return err
	}
	s.logger.Info("session saved - id=%d type=%s enriched=%t",
		rec.ID, rec.EffectiveType(), rec.AISummary != "")
	return nil
}

// SaveSession fires the sequencer's terminal save transition and appends the
// resulting record to the history. Enrichment runs inside the save when an
// insight generator is configured; its failure is logged and the record
// persists without AI fields. Hosts that share a sequencer across requests
// call BeginSave, Enrich, CompleteSave, and Append themselves so the
// enrichment call runs outside their lock.
func (s *JournalService) SaveSession(ctx context.Context, seq *workflow.Sequencer) (session.Record, error) {
	var enrich workflow.EnrichFunc
	if s.insight != nil {
		enrich = func(ctx context.Context, d *session.Draft) (*session.Enrichment, error) {
			return s.Enrich(ctx, d), nil
		}
	}

	rec, err := seq.Save(ctx, enrich)
	if err != nil {
		return session.Record{}, err
	}
	if err := s.Append(rec); err != nil {
		return session.Record{}, err
	}
	return rec, nil
}

// Delete removes one record by id.
func (s *JournalService) Delete(id core.EntryID) error {
	records, err := s.History()
	if err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return core.NewNotFoundError("record", id.String())
	}
	return s.writeHistory(kept)
}

// View returns the history filtered and sorted for display.
func (s *JournalService) View(f journal.Filter, key journal.SortKey) ([]session.Record, error) {
	records, err := s.History()
	if err != nil {
		return nil, err
	}
	return journal.Sorted(journal.Apply(records, f), key), nil
}

// Analytics aggregates the full history.
func (s *JournalService) Analytics() (journal.Summary, error) {
	records, err := s.History()
	if err != nil {
		return journal.Summary{}, err
	}
	return journal.Aggregate(records), nil
}

// Triage asks the AI collaborator which workflow fits a raw thought. The
// answer is advisory; callers never auto-apply it.
func (s *JournalService) Triage(ctx context.Context, freeText string) (*ports.TriageRecommendation, error) {
	if s.insight == nil {
		return nil, core.NewInsightError("triage", errors.New("no insight generator configured"))
	}
	return s.insight.GetTriageRecommendation(ctx, freeText)
}

// LastBackup returns the entry id recorded at the latest export, zero when no
// backup has been taken.
func (s *JournalService) LastBackup() (core.EntryID, error) {
	raw, ok, err := s.store.Get(ports.KeyLastBackup)
	if err != nil || !ok {
		return 0, err
	}
	var ts core.EntryID
	if err := json.Unmarshal(raw, &ts); err != nil {
		s.logger.Warn("backup timestamp corrupted, treating as never backed up: %v", core.ErrStoreCorruption)
		return 0, nil
	}
	return ts, nil
}

// RecordBackup marks the journal as backed up as of its newest record.
func (s *JournalService) RecordBackup() error {
	records, err := s.History()
	if err != nil {
		return err
	}
	var latest core.EntryID
	for _, rec := range records {
		if rec.ID > latest {
			latest = rec.ID
		}
	}
	raw, err := json.Marshal(latest)
	if err != nil {
		return err
	}
	return s.store.Set(ports.KeyLastBackup, raw)
}

// HasUnsavedChanges reports whether any record postdates the last backup.
func (s *JournalService) HasUnsavedChanges() (bool, error) {
	records, err := s.History()
	if err != nil {
		return false, err
	}
	if len(records) == 0 {
		return false, nil
	}
	last, err := s.LastBackup()
	if err != nil {
		return false, err
	}
	for _, rec := range records {
		if rec.ID > last {
			return true, nil
		}
	}
	return false, nil
}

// Theme returns the persisted UI theme, empty when unset.
func (s *JournalService) Theme() (string, error) {
	raw, ok, err := s.store.Get(ports.KeyTheme)
	if err != nil || !ok {
		return "", err
	}
	var theme string
	if err := json.Unmarshal(raw, &theme); err != nil {
		return "", nil
	}
	return theme, nil
}

// SetTheme persists the UI theme preference.
func (s *JournalService) SetTheme(theme string) error {
	raw, err := json.Marshal(theme)
	if err != nil {
		return err
	}
	return s.store.Set(ports.KeyTheme, raw)
}
