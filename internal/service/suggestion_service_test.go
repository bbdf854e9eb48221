package service

import (
	"testing"

	"metory-be/internal/constant"
)

func TestQuestionsForTopic(t *testing.T) {
	svc := NewSuggestionService()

	tests := []struct {
		name         string
		topic        string
		wantCount    int
		wantFallback bool
	}{
		{
			name:         "curated travel set",
			topic:        constant.TopicTravel,
			wantCount:    constant.MaxSuggestedQuestions,
			wantFallback: false,
		},
		{
			name:         "curated food set",
			topic:        constant.TopicFood,
			wantCount:    constant.MaxSuggestedQuestions,
			wantFallback: false,
		},
		{
			name:         "unknown topic falls back to generic",
			topic:        "Âm nhạc",
			wantCount:    constant.MaxSuggestedQuestions,
			wantFallback: true,
		},
		{
			name:         "empty topic falls back to generic",
			topic:        "",
			wantCount:    constant.MaxSuggestedQuestions,
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.QuestionsForTopic(tt.topic)
			if res.Topic != tt.topic {
				t.Errorf("Topic = %q, want %q", res.Topic, tt.topic)
			}
			if len(res.Questions) != tt.wantCount {
				t.Errorf("len(Questions) = %d, want %d", len(res.Questions), tt.wantCount)
			}
			if res.Fallback != tt.wantFallback {
				t.Errorf("Fallback = %v, want %v", res.Fallback, tt.wantFallback)
			}
		})
	}
}

func TestTopicsOrderIsStable(t *testing.T) {
	svc := NewSuggestionService()

	want := []string{constant.TopicTravel, constant.TopicFood, constant.TopicSports, constant.TopicTech}
	got := svc.Topics()

	if len(got) != len(want) {
		t.Fatalf("len(Topics) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Topics()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// The returned slice is a copy; mutating it must not leak.
	got[0] = "mutated"
	if svc.Topics()[0] != want[0] {
		t.Error("Topics() returned a shared slice")
	}
}
