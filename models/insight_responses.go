package models

// InsightResponse is the JSON object the model is instructed to return for a
// completed session. Key casing matches the established backup format so
// responses can be attached to records without renaming.
type InsightResponse struct {
	AISummary           string         `json:"AIsummary" description:"Warm 2-3 sentence HTML summary of the session"`
	AIBalancedThought   string         `json:"AIbalancedThought" description:"A kinder, more balanced restatement of the original thought, HTML"`
	AICopingPlan        string         `json:"AIcopingPlan" description:"Short HTML coping or acceptance plan"`
	Keywords            []string       `json:"keywords" description:"Up to 7 single-word lowercase topic keywords"`
	SuggestedTechniques []string       `json:"suggestedTechniques" description:"Names of CBT techniques worth trying next"`
	Scores              *InsightScores `json:"scores" description:"Numeric read of the session"`
}

// InsightScores carries the model's 1-100 ratings. Efficacy applies to
// restructuring workflows, resilience to acceptance workflows; the model is
// told to fill exactly one of the two.
type InsightScores struct {
	Intensity        int    `json:"intensity" description:"How distressing the original thought reads, 1-100"`
	Efficacy         int    `json:"efficacy,omitempty" description:"How effectively the session reframed the thought, 1-100"`
	Resilience       int    `json:"resilience,omitempty" description:"How much acceptance the session built, 1-100"`
	ScoreExplanation string `json:"scoreExplanation" description:"One sentence explaining the scores"`
}

// TriageResponse is the model's workflow recommendation for a raw thought.
type TriageResponse struct {
	Type   string `json:"type" description:"One of distortion, stressor, worry, mood"`
	Reason string `json:"reason" description:"One sentence explaining the recommendation"`
}
