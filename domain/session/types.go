// Package session defines the working draft a wizard mutates, the immutable
// record persisted once a draft is saved, and the AI enrichment attached to a
// record at save time.
package session

import (
	"fmt"

	"socratic/domain/core"
)

// WorkflowType selects which worksheet a session walks through.
type WorkflowType string

const (
	Distortion WorkflowType = "distortion"
	Stressor   WorkflowType = "stressor"
	Worry      WorkflowType = "worry"
	Mood       WorkflowType = "mood"
)

// ParseWorkflowType validates a triage category string.
func ParseWorkflowType(s string) (WorkflowType, error) {
	switch WorkflowType(s) {
	case Distortion, Stressor, Worry, Mood:
		return WorkflowType(s), nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrInvalidCategory, s)
}

// Answer enums for single-choice worksheet questions.
const (
	FeelingsAnswer = "feelings"
	FactsAnswer    = "facts"

	HabitAnswer   = "habit"
	PastAnswer    = "past"
	CurrentAnswer = "current"

	LikelyAnswer   = "likely"
	PossibleAnswer = "possible"

	WorryCurrent      = "current"
	WorryHypothetical = "hypothetical"

	ActionableYes = "yes"
	ActionableNo  = "no"
)

// DistortionFields holds the answers of the six-step Socratic questioning
// worksheet.
type DistortionFields struct {
	SelectedErrors             []string `json:"selectedErrors"`
	SelectedDistortions        []string `json:"selectedDistortions"`
	EvidenceFor                string   `json:"evidenceFor,omitempty"`
	EvidenceAgainst            string   `json:"evidenceAgainst,omitempty"`
	FeelingsVsFacts            string   `json:"feelingsVsFacts,omitempty"`
	AlternativeInterpretations string   `json:"alternativeInterpretations,omitempty"`
	HabitOrPast                []string `json:"habitOrPast,omitempty"`
	LikelihoodVsPossibility    string   `json:"likelihoodVsPossibility,omitempty"`
}

// StressorFields holds the answers of the valid-stressor resilience worksheet.
type StressorFields struct {
	RadicalAcceptance string `json:"radicalAcceptance,omitempty"`
	WorstCase         string `json:"worstCase,omitempty"`
	WorstCasePlan     string `json:"worstCasePlan,omitempty"`
	ControlIn         string `json:"controlIn,omitempty"`
	ControlOut        string `json:"controlOut,omitempty"`
}

// WorryFields holds the answers of the worry-tree worksheet. WorryType and
// Actionable drive the branch taken at steps 3 and 4.
type WorryFields struct {
	WorryType  string `json:"worryType,omitempty"`
	Actionable string `json:"worryActionable,omitempty"`
	Plan       string `json:"worryPlan,omitempty"`
}

// MoodFields holds the answers of the mood-reset worksheet.
type MoodFields struct {
	IntensityBefore int    `json:"moodIntensityBefore,omitempty"`
	Explanation     string `json:"moodExplanation,omitempty"`
}

// Draft is the mutable working record for one in-progress wizard instance.
// It is a tagged union keyed by Type: only the variant matching Type is
// non-nil, so read paths never probe fields of another workflow.
type Draft struct {
	Type    WorkflowType
	Thought string

	Distortion *DistortionFields
	Stressor   *StressorFields
	Worry      *WorryFields
	Mood       *MoodFields
}

// NewDraft creates an empty draft of the given workflow type with its
// variant initialized.
func NewDraft(t WorkflowType) (*Draft, error) {
	if _, err := ParseWorkflowType(string(t)); err != nil {
		return nil, err
	}
	d := &Draft{Type: t}
	switch t {
	case Distortion:
		d.Distortion = &DistortionFields{
			SelectedErrors:      []string{},
			SelectedDistortions: []string{},
		}
	case Stressor:
		d.Stressor = &StressorFields{}
	case Worry:
		d.Worry = &WorryFields{}
	case Mood:
		d.Mood = &MoodFields{}
	}
	return d, nil
}

// Clone returns a copy of the draft whose variant struct is independent of
// the original. Slice fields are shared; Apply replaces slices wholesale, so
// a clone taken before further updates never sees them.
func (d *Draft) Clone() *Draft {
	c := *d
	switch {
	case d.Distortion != nil:
		f := *d.Distortion
		c.Distortion = &f
	case d.Stressor != nil:
		f := *d.Stressor
		c.Stressor = &f
	case d.Worry != nil:
		f := *d.Worry
		c.Worry = &f
	case d.Mood != nil:
		f := *d.Mood
		c.Mood = &f
	}
	return &c
}

// Update carries a partial draft mutation from the host. Nil pointers leave
// the current value untouched, so a sparse payload only writes the fields it
// names. Fields belonging to another workflow variant are ignored.
type Update struct {
	Thought *string `json:"thought,omitempty"`

	SelectedErrors             *[]string `json:"selectedErrors,omitempty"`
	SelectedDistortions        *[]string `json:"selectedDistortions,omitempty"`
	EvidenceFor                *string   `json:"evidenceFor,omitempty"`
	EvidenceAgainst            *string   `json:"evidenceAgainst,omitempty"`
	FeelingsVsFacts            *string   `json:"feelingsVsFacts,omitempty"`
	AlternativeInterpretations *string   `json:"alternativeInterpretations,omitempty"`
	HabitOrPast                *[]string `json:"habitOrPast,omitempty"`
	LikelihoodVsPossibility    *string   `json:"likelihoodVsPossibility,omitempty"`

	RadicalAcceptance *string `json:"radicalAcceptance,omitempty"`
	WorstCase         *string `json:"worstCase,omitempty"`
	WorstCasePlan     *string `json:"worstCasePlan,omitempty"`
	ControlIn         *string `json:"controlIn,omitempty"`
	ControlOut        *string `json:"controlOut,omitempty"`

	WorryType       *string `json:"worryType,omitempty"`
	WorryActionable *string `json:"worryActionable,omitempty"`
	WorryPlan       *string `json:"worryPlan,omitempty"`

	MoodIntensityBefore *int    `json:"moodIntensityBefore,omitempty"`
	MoodExplanation     *string `json:"moodExplanation,omitempty"`
}

// Apply merges an update into the draft.
func (d *Draft) Apply(u Update) {
	if u.Thought != nil {
		d.Thought = *u.Thought
	}
	switch d.Type {
	case Distortion:
		f := d.Distortion
		if u.SelectedErrors != nil {
			f.SelectedErrors = *u.SelectedErrors
		}
		if u.SelectedDistortions != nil {
			f.SelectedDistortions = *u.SelectedDistortions
		}
		if u.EvidenceFor != nil {
			f.EvidenceFor = *u.EvidenceFor
		}
		if u.EvidenceAgainst != nil {
			f.EvidenceAgainst = *u.EvidenceAgainst
		}
		if u.FeelingsVsFacts != nil {
			f.FeelingsVsFacts = *u.FeelingsVsFacts
		}
		if u.AlternativeInterpretations != nil {
			f.AlternativeInterpretations = *u.AlternativeInterpretations
		}
		if u.HabitOrPast != nil {
			f.HabitOrPast = *u.HabitOrPast
		}
		if u.LikelihoodVsPossibility != nil {
			f.LikelihoodVsPossibility = *u.LikelihoodVsPossibility
		}
	case Stressor:
		f := d.Stressor
		if u.RadicalAcceptance != nil {
			f.RadicalAcceptance = *u.RadicalAcceptance
		}
		if u.WorstCase != nil {
			f.WorstCase = *u.WorstCase
		}
		if u.WorstCasePlan != nil {
			f.WorstCasePlan = *u.WorstCasePlan
		}
		if u.ControlIn != nil {
			f.ControlIn = *u.ControlIn
		}
		if u.ControlOut != nil {
			f.ControlOut = *u.ControlOut
		}
	case Worry:
		f := d.Worry
		if u.WorryType != nil {
			f.WorryType = *u.WorryType
		}
		if u.WorryActionable != nil {
			f.Actionable = *u.WorryActionable
		}
		if u.WorryPlan != nil {
			f.Plan = *u.WorryPlan
		}
	case Mood:
		f := d.Mood
		if u.MoodIntensityBefore != nil {
			f.IntensityBefore = *u.MoodIntensityBefore
		}
		if u.MoodExplanation != nil {
			f.Explanation = *u.MoodExplanation
		}
	}
}

// Scores is the AI score block of an enriched record. All values live on a
// 1-100 scale, so zero reads as absent. Exactly one of Efficacy (Distortion)
// or Resilience (Stressor/Worry/Mood) is set per record, never both.
type Scores struct {
	Intensity        int    `json:"intensity,omitempty"`
	Efficacy         int    `json:"efficacy,omitempty"`
	Resilience       int    `json:"resilience,omitempty"`
	ScoreExplanation string `json:"scoreExplanation,omitempty"`
}

// Outcome returns whichever of efficacy or resilience is present, 0 if
// neither.
func (s Scores) Outcome() int {
	if s.Efficacy > 0 {
		return s.Efficacy
	}
	return s.Resilience
}

// Enrichment is the set of AI-generated fields attached to a record at save
// time. All fields are absent when the insight call failed or was skipped.
type Enrichment struct {
	AISummary             string   `json:"aiSummary,omitempty"`
	AIBalancedThought     string   `json:"aiBalancedThought,omitempty"`
	AICopingPlan          string   `json:"aiCopingPlan,omitempty"`
	AIKeywords            []string `json:"aiKeywords,omitempty"`
	AISuggestedTechniques []string `json:"aiSuggestedTechniques,omitempty"`
	AIScores              *Scores  `json:"aiScores,omitempty"`
}

// Record is a finalized, persisted journal entry. The shape is flat so the
// JSON wire format stays interchangeable with previously exported backups;
// fields of non-matching workflows are simply absent. Records are immutable
// once created except for deletion.
type Record struct {
	ID      core.EntryID `json:"id"`
	Type    WorkflowType `json:"type,omitempty"`
	Thought string       `json:"thought"`

	// Distortion workflow
	SelectedErrors             []string `json:"selectedErrors,omitempty"`
	SelectedDistortions        []string `json:"selectedDistortions,omitempty"`
	EvidenceFor                string   `json:"evidenceFor,omitempty"`
	EvidenceAgainst            string   `json:"evidenceAgainst,omitempty"`
	FeelingsVsFacts            string   `json:"feelingsVsFacts,omitempty"`
	AlternativeInterpretations string   `json:"alternativeInterpretations,omitempty"`
	HabitOrPast                []string `json:"habitOrPast,omitempty"`
	LikelihoodVsPossibility    string   `json:"likelihoodVsPossibility,omitempty"`

	// Stressor workflow
	RadicalAcceptance string `json:"radicalAcceptance,omitempty"`
	WorstCase         string `json:"worstCase,omitempty"`
	WorstCasePlan     string `json:"worstCasePlan,omitempty"`
	ControlIn         string `json:"controlIn,omitempty"`
	ControlOut        string `json:"controlOut,omitempty"`

	// Worry workflow
	WorryType       string `json:"worryType,omitempty"`
	WorryActionable string `json:"worryActionable,omitempty"`
	WorryPlan       string `json:"worryPlan,omitempty"`

	// Mood workflow
	MoodIntensityBefore int    `json:"moodIntensityBefore,omitempty"`
	MoodExplanation     string `json:"moodExplanation,omitempty"`

	Enrichment
}

// NewRecord flattens a draft into a record with a fresh id. Enrichment is
// attached separately by the caller once (and if) the insight call succeeds.
func NewRecord(d *Draft, id core.EntryID) Record {
	rec := Record{
		ID:      id,
		Type:    d.Type,
		Thought: d.Thought,
	}
	switch d.Type {
	case Distortion:
		f := d.Distortion
		rec.SelectedErrors = f.SelectedErrors
		rec.SelectedDistortions = f.SelectedDistortions
		rec.EvidenceFor = f.EvidenceFor
		rec.EvidenceAgainst = f.EvidenceAgainst
		rec.FeelingsVsFacts = f.FeelingsVsFacts
		rec.AlternativeInterpretations = f.AlternativeInterpretations
		rec.HabitOrPast = f.HabitOrPast
		rec.LikelihoodVsPossibility = f.LikelihoodVsPossibility
	case Stressor:
		f := d.Stressor
		rec.RadicalAcceptance = f.RadicalAcceptance
		rec.WorstCase = f.WorstCase
		rec.WorstCasePlan = f.WorstCasePlan
		rec.ControlIn = f.ControlIn
		rec.ControlOut = f.ControlOut
	case Worry:
		f := d.Worry
		rec.WorryType = f.WorryType
		rec.WorryActionable = f.Actionable
		rec.WorryPlan = f.Plan
	case Mood:
		f := d.Mood
		rec.MoodIntensityBefore = f.IntensityBefore
		rec.MoodExplanation = f.Explanation
	}
	return rec
}

// EffectiveType resolves the workflow type of a record. Records exported
// before the triage feature existed carry no type and are Distortion
// sessions.
func (r Record) EffectiveType() WorkflowType {
	if r.Type == "" {
		return Distortion
	}
	return r.Type
}

// HasIntensity reports whether the record carries an AI intensity score.
func (r Record) HasIntensity() bool {
	return r.AIScores != nil && r.AIScores.Intensity > 0
}

// Intensity returns the AI intensity score, 0 when absent.
func (r Record) Intensity() int {
	if r.AIScores == nil {
		return 0
	}
	return r.AIScores.Intensity
}

// OutcomeScore returns the efficacy-or-resilience score, 0 when absent.
func (r Record) OutcomeScore() int {
	if r.AIScores == nil {
		return 0
	}
	return r.AIScores.Outcome()
}

// HasError reports set membership of a thinking-error id.
func (r Record) HasError(id string) bool {
	return contains(r.SelectedErrors, id)
}

// HasDistortion reports set membership of a cognitive-distortion id.
func (r Record) HasDistortion(id string) bool {
	return contains(r.SelectedDistortions, id)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
