package vocab

import (
	"strings"
	"testing"
)

func TestLabels_ResolvesKnownAndFallsBack(t *testing.T) {
	got := Labels([]string{"mind_reading", "not_a_real_id"}, ThinkingErrors)
	want := "Mind Reading, not_a_real_id"
	if got != want {
		t.Fatalf("Labels = %q, want %q", got, want)
	}
}

func TestLabels_Empty(t *testing.T) {
	if got := Labels(nil, ThinkingErrors); got != "" {
		t.Fatalf("Labels(nil) = %q, want empty", got)
	}
}

func TestVocabularies_UniqueIDs(t *testing.T) {
	for name, source := range map[string][]Option{
		"thinking errors":       ThinkingErrors,
		"cognitive distortions": CognitiveDistortions,
	} {
		seen := make(map[string]bool)
		for _, opt := range source {
			if opt.ID == "" || opt.Label == "" {
				t.Fatalf("%s: option %+v missing id or label", name, opt)
			}
			if seen[opt.ID] {
				t.Fatalf("%s: duplicate id %q", name, opt.ID)
			}
			seen[opt.ID] = true
		}
	}
}

func TestTopicList(t *testing.T) {
	list := TopicList()
	if !strings.Contains(list, "Self-Esteem") || !strings.Contains(list, "Daily Life") {
		t.Fatalf("topic list missing expected topics: %s", list)
	}
}
