// Package vocab holds the fixed reference vocabularies used by the
// Distortion workflow and the AI prompt builder: thinking errors, cognitive
// distortions, and the standard topic list for keyword generation.
package vocab

import "strings"

// Option is one selectable item of a reference vocabulary.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ThinkingErrors is the thinking-error vocabulary, selected by id during
// step 2 of the Distortion workflow.
var ThinkingErrors = []Option{
	{ID: "ignoring_good", Label: "Ignoring the Good", Description: "Paying more attention to bad things and ignoring when something good happens."},
	{ID: "blowing_up", Label: "Blowing Things Up", Description: "Making a big deal out of something small or making something a little bit bad seem like the worst thing ever."},
	{ID: "fortune_telling", Label: "Fortune Telling", Description: "Thinking you know what will happen in the future and that it will be bad."},
	{ID: "mind_reading", Label: "Mind Reading", Description: "Believing you know what someone else is thinking or why they are doing something without enough information."},
	{ID: "negative_labeling", Label: "Negative Labeling", Description: "Having a negative belief about yourself and thinking it applies to everything you do."},
	{ID: "should_statements", Label: "Should Statements", Description: "Believing things have to be a certain way."},
	{ID: "feelings_as_facts", Label: "Feelings as Facts", Description: "Believing that if you feel something, it must be true."},
	{ID: "self_blame", Label: "Self-Blaming", Description: "Blaming yourself for anything that goes wrong around you, even if you had nothing to do with it."},
	{ID: "all_or_nothing", Label: "Setting the Bar Too High", Description: "Thinking that you must be perfect in everything you do, otherwise you're no good."},
}

// CognitiveDistortions is the cognitive-distortion vocabulary, selected by id
// during step 3 of the Distortion workflow.
var CognitiveDistortions = []Option{
	{ID: "magnification_minimization", Label: "Magnification and Minimization", Description: "Exaggerating or minimizing the importance of events."},
	{ID: "overgeneralization", Label: "Overgeneralization", Description: "Making broad interpretations from a single or few events."},
	{ID: "magical_thinking", Label: "Magical Thinking", Description: "The belief that thoughts, actions, or emotions influence unrelated situations."},
	{ID: "personalization", Label: "Personalization", Description: "The belief that you are responsible for events outside of your control."},
	{ID: "jumping_to_conclusions", Label: "Jumping to Conclusions", Description: "Interpreting the meaning of a situation with little or no evidence."},
	{ID: "emotional_reasoning", Label: "Emotional Reasoning", Description: "The assumption that emotions reflect the way things really are."},
	{ID: "disqualifying_positive", Label: "Disqualifying the Positive", Description: "Recognizing only the negative aspects of a situation while ignoring the positive."},
	{ID: "should_statements", Label: "Should Statements", Description: "The belief that things should be a certain way."},
	{ID: "all_or_nothing", Label: "All-or-nothing Thinking", Description: "Thinking in absolutes such as \"always,\" \"never,\" or \"every.\""},
}

// StandardTopics is the fixed topic vocabulary the first AI keyword must be
// drawn from.
var StandardTopics = []string{
	"Work & Career", "Relationships", "Family", "Health & Body", "Self-Esteem",
	"Finances", "Social Interactions", "Future & Anxiety", "Past & Trauma", "Daily Life",
}

// Lookup finds an option by id. The second return reports whether the id is
// part of the vocabulary.
func Lookup(id string, source []Option) (Option, bool) {
	for _, opt := range source {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Label resolves an id to its human-readable label, falling back to the raw
// id for values outside the vocabulary.
func Label(id string, source []Option) string {
	if opt, ok := Lookup(id, source); ok {
		return opt.Label
	}
	return id
}

// Labels resolves a list of ids to a comma-joined label string for prompt
// embedding.
func Labels(ids []string, source []Option) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, Label(id, source))
	}
	return strings.Join(labels, ", ")
}

// TopicList returns the standard topics joined for prompt embedding.
func TopicList() string {
	return strings.Join(StandardTopics, ", ")
}
