package service

import (
	"testing"

	"metory-be/pkg/events"

	"github.com/google/uuid"
)

func TestDescribeEvent(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		wantKind  string
	}{
		{"story liked", events.TypeStoryLiked, "like"},
		{"story saved", events.TypeStorySaved, "save"},
		{"story commented", events.TypeStoryCommented, "comment"},
		{"user followed", events.TypeUserFollowed, "follow"},
		{"login is not a feed event", events.TypeUserLogin, ""},
		{"unknown type is dropped", "SOMETHING_NEW", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, message := describeEvent(tt.eventType)
			if kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", kind, tt.wantKind)
			}
			if tt.wantKind != "" && message == "" {
				t.Error("feed events must carry a message")
			}
		})
	}
}

func TestParseUUIDField(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name   string
		data   map[string]interface{}
		wantOK bool
	}{
		{"valid string uuid", map[string]interface{}{"actor_id": id.String()}, true},
		{"missing key", map[string]interface{}{}, false},
		{"wrong type", map[string]interface{}{"actor_id": 42}, false},
		{"malformed uuid", map[string]interface{}{"actor_id": "not-a-uuid"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseUUIDField(tt.data, "actor_id")
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != id {
				t.Errorf("id = %s, want %s", got, id)
			}
		})
	}
}
