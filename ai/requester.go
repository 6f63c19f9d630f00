package ai

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"socratic/domain/core"
	"socratic/domain/session"
	"socratic/domain/vocab"
	"socratic/models"
	"socratic/ports"
)

const maxKeywords = 7

// InsightRequester builds workflow-specific prompts from a finished draft,
// makes the single-shot Gemini call, and maps the structured response onto an
// Enrichment. It implements ports.InsightGenerator.
type InsightRequester struct {
	insightClient *StructuredClient[models.InsightResponse]
	triageClient  *StructuredClient[models.TriageResponse]
}

// NewInsightRequester creates a requester against the given AI configuration.
func NewInsightRequester(config *models.AIConfig) *InsightRequester {
	return &InsightRequester{
		insightClient: NewStructuredClient[models.InsightResponse](config),
		triageClient:  NewStructuredClient[models.TriageResponse](config),
	}
}

// GenerateSessionInsight requests the per-workflow analysis of a completed
// draft. Any failure surfaces as core.ErrInsightGeneration; the caller treats
// that as "no insight", never as a blocking fault.
func (r *InsightRequester) GenerateSessionInsight(ctx context.Context, d *session.Draft) (*session.Enrichment, error) {
	promptName, replacements, err := promptFor(d)
	if err != nil {
		return nil, core.NewInsightError("prompt", err)
	}

	log.Printf("[InsightRequester] Requesting insight - workflow=%s", d.Type)

	resp, err := r.insightClient.GetJsonResponseFromPrompt(ctx, promptName, replacements)
	if err != nil {
		return nil, core.NewInsightError("request", err)
	}

	return mapInsight(d.Type, resp), nil
}

// GetTriageRecommendation classifies free text into one of the four workflow
// categories.
func (r *InsightRequester) GetTriageRecommendation(ctx context.Context, freeText string) (*ports.TriageRecommendation, error) {
	replacements := map[string]string{"THOUGHT": freeText}

	resp, err := r.triageClient.GetJsonResponseFromPrompt(ctx, "triage", replacements)
	if err != nil {
		return nil, core.NewInsightError("triage request", err)
	}

	workflowType, err := session.ParseWorkflowType(strings.ToLower(strings.TrimSpace(resp.Type)))
	if err != nil {
		return nil, core.NewInsightError("triage response", fmt.Errorf("unrecognized type %q", resp.Type))
	}

	return &ports.TriageRecommendation{
		Type:   workflowType,
		Reason: strings.TrimSpace(resp.Reason),
	}, nil
}

// promptFor selects the template pair for the draft's workflow and serializes
// the relevant answer subset, converting stored option ids to their labels.
func promptFor(d *session.Draft) (string, map[string]string, error) {
	base := map[string]string{
		"THOUGHT":         d.Thought,
		"STANDARD_TOPICS": vocab.TopicList(),
	}

	switch d.Type {
	case session.Distortion:
		f := d.Distortion
		base["THINKING_ERRORS"] = vocab.Labels(f.SelectedErrors, vocab.ThinkingErrors)
		base["COGNITIVE_DISTORTIONS"] = vocab.Labels(f.SelectedDistortions, vocab.CognitiveDistortions)
		base["EVIDENCE_FOR"] = f.EvidenceFor
		base["EVIDENCE_AGAINST"] = f.EvidenceAgainst
		base["FEELINGS_VS_FACTS"] = f.FeelingsVsFacts
		base["ALTERNATIVE_INTERPRETATIONS"] = f.AlternativeInterpretations
		base["HABIT_OR_PAST"] = strings.Join(f.HabitOrPast, ", ")
		base["LIKELIHOOD_VS_POSSIBILITY"] = f.LikelihoodVsPossibility
		return "insight_distortion", base, nil
	case session.Stressor:
		f := d.Stressor
		base["RADICAL_ACCEPTANCE"] = f.RadicalAcceptance
		base["WORST_CASE"] = f.WorstCase
		base["WORST_CASE_PLAN"] = f.WorstCasePlan
		base["CONTROL_IN"] = f.ControlIn
		base["CONTROL_OUT"] = f.ControlOut
		return "insight_stressor", base, nil
	case session.Worry:
		f := d.Worry
		base["WORRY_TYPE"] = f.WorryType
		base["WORRY_ACTIONABLE"] = f.Actionable
		base["WORRY_PLAN"] = f.Plan
		return "insight_worry", base, nil
	case session.Mood:
		f := d.Mood
		base["MOOD_EXPLANATION"] = f.Explanation
		base["MOOD_INTENSITY"] = strconv.Itoa(f.IntensityBefore)
		return "insight_mood", base, nil
	}
	return "", nil, fmt.Errorf("%w: %q", core.ErrInvalidCategory, d.Type)
}

// mapInsight converts the wire response to an Enrichment, enforcing the
// per-workflow schema: Distortion carries AIbalancedThought and efficacy, the
// acceptance workflows carry AIcopingPlan and resilience, and
// suggestedTechniques attach to Mood only. Off-schema keys the model returns
// anyway are dropped.
func mapInsight(t session.WorkflowType, resp *models.InsightResponse) *session.Enrichment {
	e := &session.Enrichment{
		AISummary: EnsureHTML(resp.AISummary),
	}

	if t == session.Distortion {
		e.AIBalancedThought = EnsureHTML(resp.AIBalancedThought)
	} else {
		e.AICopingPlan = EnsureHTML(resp.AICopingPlan)
	}

	if t == session.Mood {
		e.AISuggestedTechniques = resp.SuggestedTechniques
	}

	keywords := resp.Keywords
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	e.AIKeywords = keywords

	if resp.Scores != nil {
		scores := &session.Scores{
			Intensity:        clampScore(resp.Scores.Intensity),
			ScoreExplanation: EnsureHTML(resp.Scores.ScoreExplanation),
		}
		if t == session.Distortion {
			scores.Efficacy = clampScore(resp.Scores.Efficacy)
		} else {
			scores.Resilience = clampScore(resp.Scores.Resilience)
		}
		e.AIScores = scores
	}

	return e
}

// clampScore bounds a model-reported score to the 1-100 scale, with 0 kept as
// "absent".
func clampScore(n int) int {
	if n <= 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
