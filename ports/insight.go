package ports

import (
	"context"

	"socratic/domain/session"
)

// TriageRecommendation is the AI-assisted triage answer. It is advisory
// only: the user's explicit selection always takes precedence and the
// recommendation is never auto-applied.
type TriageRecommendation struct {
	Type   session.WorkflowType `json:"type"`
	Reason string               `json:"reason"`
}

// InsightGenerator is the contract against the external AI collaborator.
// Both operations are single-shot; failures surface as
// core.ErrInsightGeneration and callers treat them as "no insight", never as
// a blocking fault.
type InsightGenerator interface {
	// GenerateSessionInsight builds the workflow-specific prompt from a
	// completed draft and maps the structured response onto an Enrichment.
	GenerateSessionInsight(ctx context.Context, d *session.Draft) (*session.Enrichment, error)

	// GetTriageRecommendation classifies free text into one of the four
	// workflow categories with a short natural-language reason.
	GetTriageRecommendation(ctx context.Context, freeText string) (*TriageRecommendation, error)
}
