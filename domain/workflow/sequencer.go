package workflow

import (
	"context"
	"strings"

	"socratic/domain/core"
	"socratic/domain/session"
)

// EnrichFunc produces the AI enrichment for a completed draft. A nil func
// disables enrichment entirely (records save without AI commentary).
type EnrichFunc func(ctx context.Context, d *session.Draft) (*session.Enrichment, error)

// Sequencer is the finite linear state machine over the steps of one wizard
// session. State is the current step index in [1, totalSteps]; the terminal
// save transition builds an immutable record, attempts best-effort
// enrichment, and resets the machine.
//
// Sequencers are not safe for concurrent use; the host serializes wizard
// events. The save transition is split into BeginSave and CompleteSave so a
// host can release its lock while the insight call runs; the in-flight flag
// set between the two rejects a second save and lets state reads report the
// pending save.
type Sequencer struct {
	id         core.DraftID
	draft      *session.Draft
	step       int
	totalSteps int
	inFlight   bool
}

// NewSequencer starts a wizard session of the given workflow type at step 1
// with an empty draft.
func NewSequencer(t session.WorkflowType) (*Sequencer, error) {
	draft, err := session.NewDraft(t)
	if err != nil {
		return nil, err
	}
	total, err := TotalSteps(t)
	if err != nil {
		return nil, err
	}
	return &Sequencer{
		id:         core.NewDraftID(),
		draft:      draft,
		step:       1,
		totalSteps: total,
	}, nil
}

// ID returns the draft identifier of this session.
func (s *Sequencer) ID() core.DraftID { return s.id }

// Draft returns the mutable working draft.
func (s *Sequencer) Draft() *session.Draft { return s.draft }

// Step returns the current step index.
func (s *Sequencer) Step() int { return s.step }

// TotalSteps returns the fixed step count of this session's workflow.
func (s *Sequencer) TotalSteps() int { return s.totalSteps }

// AtTerminal reports whether the save transition is reachable.
func (s *Sequencer) AtTerminal() bool { return s.step == s.totalSteps }

// InFlight reports whether a save is currently awaiting its insight call.
func (s *Sequencer) InFlight() bool { return s.inFlight }

// Fields returns the editable field set at the current step, resolving the
// worry-tree branches from the draft's prior answers.
func (s *Sequencer) Fields() ([]FieldID, error) {
	return FieldsAt(s.draft, s.step)
}

// Advance moves to the next step, clamped at the terminal step. Leaving
// step 1 requires a non-empty thought; on failure the step does not change
// and the caller surfaces the error inline.
func (s *Sequencer) Advance() error {
	if s.step == 1 && strings.TrimSpace(s.draft.Thought) == "" {
		return core.NewValidationError("thought", "is required before continuing")
	}
	if s.step < s.totalSteps {
		s.step++
	}
	return nil
}

// Retreat moves to the previous step, clamped at step 1. Unguarded.
func (s *Sequencer) Retreat() {
	if s.step > 1 {
		s.step--
	}
}

// Cancel discards the draft and returns the machine to idle. Asking the user
// to confirm is the host's concern; by the time Cancel runs the decision is
// made.
func (s *Sequencer) Cancel() {
	s.draft = nil
	s.step = 0
}

// BeginSave validates the terminal transition, marks the save as in flight,
// and returns a snapshot of the draft for the enrichment call. A host that
// guards the sequencer with a lock releases it across that call; concurrent
// readers then observe InFlight while the sequencer itself stays untouched
// until CompleteSave.
func (s *Sequencer) BeginSave() (*session.Draft, error) {
	if s.inFlight {
		return nil, core.ErrSaveInFlight
	}
	if s.draft == nil {
		return nil, core.NewValidationError("session", "was cancelled")
	}
	if !s.AtTerminal() {
		return nil, core.NewValidationError("step", "save is only available on the final step")
	}
	if strings.TrimSpace(s.draft.Thought) == "" {
		return nil, core.NewValidationError("thought", "is required before saving")
	}
	s.inFlight = true
	return s.draft.Clone(), nil
}

// CompleteSave builds the immutable record, attaches the enrichment when one
// was produced, and resets the machine to idle. Only valid after BeginSave.
func (s *Sequencer) CompleteSave(enrichment *session.Enrichment) session.Record {
	rec := session.NewRecord(s.draft, core.NewEntryID())
	if enrichment != nil {
		rec.Enrichment = *enrichment
	}
	s.inFlight = false
	s.draft = nil
	s.step = 0
	return rec
}

// Save fires the terminal transition in one call: re-validate, build the
// record, attempt enrichment, reset. Building always succeeds once validation
// passes; enrichment is a separate best-effort stage whose failure leaves the
// enrichment fields absent and never blocks the save. The returned record is
// not yet persisted - appending it to the collection is the caller's job.
func (s *Sequencer) Save(ctx context.Context, enrich EnrichFunc) (session.Record, error) {
	draft, err := s.BeginSave()
	if err != nil {
		return session.Record{}, err
	}
	var enrichment *session.Enrichment
	if enrich != nil {
		e, err := enrich(ctx, draft)
		if err == nil {
			enrichment = e
		}
		// err is the caller's to log; the record stays valid without it.
	}
	return s.CompleteSave(enrichment), nil
}
