// Package workflow implements the triage router and the linear step
// sequencer that drive a wizard session. The router is a pure mapping from
// workflow type to its ordered step sequence; the sequencer is the state
// machine walking those steps over a session draft.
package workflow

import (
	"fmt"

	"socratic/domain/core"
	"socratic/domain/session"
)

// FieldID names a draft field (or a guidance panel) editable at a step. The
// host renders inputs from these ids; the core never deals in markup.
type FieldID string

const (
	FieldThought FieldID = "thought"

	FieldSelectedErrors             FieldID = "selectedErrors"
	FieldSelectedDistortions        FieldID = "selectedDistortions"
	FieldEvidenceFor                FieldID = "evidenceFor"
	FieldEvidenceAgainst            FieldID = "evidenceAgainst"
	FieldFeelingsVsFacts            FieldID = "feelingsVsFacts"
	FieldAlternativeInterpretations FieldID = "alternativeInterpretations"
	FieldHabitOrPast                FieldID = "habitOrPast"
	FieldLikelihood                 FieldID = "likelihoodVsPossibility"

	FieldRadicalAcceptance FieldID = "radicalAcceptance"
	FieldWorstCase         FieldID = "worstCase"
	FieldWorstCasePlan     FieldID = "worstCasePlan"
	FieldControlIn         FieldID = "controlIn"
	FieldControlOut        FieldID = "controlOut"

	FieldWorryType       FieldID = "worryType"
	FieldWorryActionable FieldID = "worryActionable"
	FieldWorryPlan       FieldID = "worryPlan"
	// FieldWorryLetGo and FieldWorryAcceptance are guidance panels, not
	// inputs: the hypothetical and non-actionable branches of the worry tree.
	FieldWorryLetGo      FieldID = "worryLetGo"
	FieldWorryAcceptance FieldID = "worryAcceptance"

	FieldMoodIntensity   FieldID = "moodIntensityBefore"
	FieldMoodExplanation FieldID = "moodExplanation"
)

// Step is one entry of a workflow's ordered step sequence.
type Step struct {
	Index  int       `json:"index"`
	Title  string    `json:"title"`
	Fields []FieldID `json:"fields"`
}

// stepTables is the router's mapping. Worry steps 3 and 4 list no fields
// here; their field sets are runtime branches resolved by FieldsAt.
var stepTables = map[session.WorkflowType][]Step{
	session.Distortion: {
		{1, "Thought I want to question", []FieldID{FieldThought}},
		{2, "Which thinking errors are present?", []FieldID{FieldSelectedErrors}},
		{3, "Are there other cognitive distortions?", []FieldID{FieldSelectedDistortions}},
		{4, "Evidence for and against", []FieldID{FieldEvidenceFor, FieldEvidenceAgainst}},
		{5, "Feelings vs facts", []FieldID{FieldFeelingsVsFacts, FieldAlternativeInterpretations}},
		{6, "Habit, past, and likelihood", []FieldID{FieldHabitOrPast, FieldLikelihood}},
	},
	session.Stressor: {
		{1, "The situation", []FieldID{FieldThought}},
		{2, "Radical acceptance", []FieldID{FieldRadicalAcceptance}},
		{3, "Worst case and plan", []FieldID{FieldWorstCase, FieldWorstCasePlan}},
		{4, "Control audit", []FieldID{FieldControlIn, FieldControlOut}},
	},
	session.Worry: {
		{1, "The worry", []FieldID{FieldThought}},
		{2, "Current problem or hypothetical?", []FieldID{FieldWorryType}},
		{3, "Can you act on it?", nil},
		{4, "Plan or let go", nil},
	},
	session.Mood: {
		{1, "The event or emotion", []FieldID{FieldThought}},
		{2, "Explanation and intensity", []FieldID{FieldMoodExplanation, FieldMoodIntensity}},
	},
}

// Steps returns the ordered step sequence for a workflow type.
func Steps(t session.WorkflowType) ([]Step, error) {
	steps, ok := stepTables[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidCategory, t)
	}
	return steps, nil
}

// TotalSteps returns the fixed step count for a workflow type.
func TotalSteps(t session.WorkflowType) (int, error) {
	steps, err := Steps(t)
	if err != nil {
		return 0, err
	}
	return len(steps), nil
}

// FieldsAt resolves the editable field set for a step of a draft. For most
// steps this is the static table entry; Worry steps 3 and 4 branch on prior
// answers. The step index never changes with the branch, only the fields
// shown at it.
func FieldsAt(d *session.Draft, step int) ([]FieldID, error) {
	if d == nil {
		return nil, core.NewValidationError("session", "was cancelled")
	}
	steps, err := Steps(d.Type)
	if err != nil {
		return nil, err
	}
	if step < 1 || step > len(steps) {
		return nil, core.NewValidationError("step", fmt.Sprintf("out of range 1..%d", len(steps)))
	}
	if d.Type == session.Worry && step >= 3 {
		return worryBranch(step, d.Worry), nil
	}
	return steps[step-1].Fields, nil
}

// worryBranch is the worry-tree decision table keyed by (step, worryType,
// actionable):
//
//	step 3, hypothetical      -> let-it-go guidance
//	step 3, current           -> actionable yes/no classification
//	step 4, hypothetical      -> acceptance strategy (regardless of actionable)
//	step 4, current + yes     -> action plan
//	step 4, current + no      -> acceptance strategy
func worryBranch(step int, f *session.WorryFields) []FieldID {
	hypothetical := f == nil || f.WorryType != session.WorryCurrent
	switch step {
	case 3:
		if hypothetical {
			return []FieldID{FieldWorryLetGo}
		}
		return []FieldID{FieldWorryActionable}
	case 4:
		if hypothetical {
			return []FieldID{FieldWorryAcceptance}
		}
		if f.Actionable == session.ActionableYes {
			return []FieldID{FieldWorryPlan}
		}
		return []FieldID{FieldWorryAcceptance}
	}
	return nil
}
