package ai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"socratic/domain/core"
	"socratic/domain/session"
)

func newTestRequester(t *testing.T, responseText string) (*InsightRequester, *string) {
	t.Helper()
	var lastBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		lastBody = string(body)
		w.Write([]byte(geminiEnvelope(responseText)))
	}))
	t.Cleanup(srv.Close)
	return NewInsightRequester(testConfig(srv.URL)), &lastBody
}

func TestGenerateSessionInsightDistortion(t *testing.T) {
	requester, lastBody := newTestRequester(t, `{
		"AIsummary": "<div class='AIsummary'>Summary</div>",
		"AIbalancedThought": "<div class='AIbalancedThought'>Balanced</div>",
		"keywords": ["Work & Career", "evidence", "reframing"],
		"scores": {"intensity": 70, "efficacy": 85, "resilience": 40, "scoreExplanation": "<p>Why</p>"}
	}`)

	d, _ := session.NewDraft(session.Distortion)
	d.Thought = "Everyone thinks I failed"
	d.Distortion.SelectedErrors = []string{"mind_reading"}
	d.Distortion.EvidenceAgainst = "Nobody actually said that"

	e, err := requester.GenerateSessionInsight(context.Background(), d)
	if err != nil {
		t.Fatalf("GenerateSessionInsight: %v", err)
	}

	if e.AIBalancedThought == "" {
		t.Error("expected balanced thought for distortion workflow")
	}
	if e.AICopingPlan != "" {
		t.Error("coping plan must not attach to a distortion session")
	}
	if e.AIScores == nil || e.AIScores.Efficacy != 85 {
		t.Fatalf("AIScores = %+v, want efficacy 85", e.AIScores)
	}
	if e.AIScores.Resilience != 0 {
		t.Error("resilience must be dropped for a distortion session")
	}

	// stored ids get converted to labels in the prompt body
	if !strings.Contains(*lastBody, "Mind Reading") {
		t.Errorf("prompt body missing label conversion: %s", *lastBody)
	}
}

func TestGenerateSessionInsightStressor(t *testing.T) {
	requester, _ := newTestRequester(t, `{
		"AIsummary": "<div class='AIsummary'>Hard situation</div>",
		"AIcopingPlan": "<div class='AIcopingPlan'>Plan</div>",
		"keywords": ["Health & Body"],
		"scores": {"intensity": 60, "efficacy": 90, "resilience": 75, "scoreExplanation": "<p>Why</p>"}
	}`)

	d, _ := session.NewDraft(session.Stressor)
	d.Thought = "My lease is ending and rents went up"
	d.Stressor.WorstCasePlan = "Look at smaller places"

	e, err := requester.GenerateSessionInsight(context.Background(), d)
	if err != nil {
		t.Fatalf("GenerateSessionInsight: %v", err)
	}

	if e.AICopingPlan == "" {
		t.Error("expected coping plan for stressor workflow")
	}
	if e.AIBalancedThought != "" {
		t.Error("balanced thought must not attach to a stressor session")
	}
	if e.AIScores == nil || e.AIScores.Resilience != 75 {
		t.Fatalf("AIScores = %+v, want resilience 75", e.AIScores)
	}
	if e.AIScores.Efficacy != 0 {
		t.Error("efficacy must be dropped for a stressor session")
	}
	if len(e.AISuggestedTechniques) != 0 {
		t.Error("suggested techniques attach to mood sessions only")
	}
}

func TestGenerateSessionInsightMood(t *testing.T) {
	requester, _ := newTestRequester(t, `{
		"AIsummary": "Feeling low after the cancellation is understandable.",
		"suggestedTechniques": ["Behavioral Activation", "Grounding"],
		"keywords": ["Daily Life", "one", "two", "three", "four", "five", "six", "seven", "eight"],
		"scores": {"intensity": 55, "resilience": 65, "scoreExplanation": "Why"}
	}`)

	d, _ := session.NewDraft(session.Mood)
	d.Thought = "Deflated"
	d.Mood.Explanation = "Project cancelled"
	d.Mood.IntensityBefore = 7

	e, err := requester.GenerateSessionInsight(context.Background(), d)
	if err != nil {
		t.Fatalf("GenerateSessionInsight: %v", err)
	}

	if len(e.AISuggestedTechniques) != 2 {
		t.Errorf("AISuggestedTechniques = %v, want 2 entries", e.AISuggestedTechniques)
	}
	if len(e.AIKeywords) != maxKeywords {
		t.Errorf("keywords = %d, want cap of %d", len(e.AIKeywords), maxKeywords)
	}
	// a plain-text summary gets rendered to HTML
	if !strings.Contains(e.AISummary, "<") {
		t.Errorf("AISummary not HTML: %q", e.AISummary)
	}
}

func TestGenerateSessionInsightFailureWrapsSentinel(t *testing.T) {
	requester, _ := newTestRequester(t, "I had trouble with that request.")

	d, _ := session.NewDraft(session.Distortion)
	d.Thought = "thought"

	_, err := requester.GenerateSessionInsight(context.Background(), d)
	if err == nil {
		t.Fatal("expected error for unparseable content")
	}
	if !core.IsInsightError(err) {
		t.Errorf("error %v does not wrap the insight sentinel", err)
	}
}

func TestGetTriageRecommendation(t *testing.T) {
	requester, _ := newTestRequester(t, `{"type": "Stressor", "reason": "An objectively difficult situation."}`)

	rec, err := requester.GetTriageRecommendation(context.Background(), "My lease is ending")
	if err != nil {
		t.Fatalf("GetTriageRecommendation: %v", err)
	}
	if rec.Type != session.Stressor {
		t.Errorf("Type = %q, want stressor", rec.Type)
	}
	if rec.Reason == "" {
		t.Error("expected a reason")
	}
}

func TestGetTriageRecommendationRejectsUnknownType(t *testing.T) {
	requester, _ := newTestRequester(t, `{"type": "rumination", "reason": "made up"}`)

	_, err := requester.GetTriageRecommendation(context.Background(), "text")
	if err == nil {
		t.Fatal("expected error for unknown workflow type")
	}
	if !core.IsInsightError(err) {
		t.Errorf("error %v does not wrap the insight sentinel", err)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 0}, {0, 0}, {1, 1}, {100, 100}, {250, 100},
	}
	for _, tt := range tests {
		if got := clampScore(tt.in); got != tt.want {
			t.Errorf("clampScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
