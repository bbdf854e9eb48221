package dto

import (
	"github.com/google/uuid"
)

type OpenSessionRequest struct {
	StoryId uuid.UUID `json:"story_id" validate:"required"`
}

type ClipView struct {
	Question string `json:"question"`
	Category string `json:"category"`
	VideoURL string `json:"videoUrl"`
}

type OpenSessionResponse struct {
	SessionId  uuid.UUID             `json:"session_id"`
	StoryId    uuid.UUID             `json:"story_id"`
	ActiveClip *ClipView             `json:"active_clip"`
	Categories []string              `json:"categories"`
	Grouped    map[string][]ClipView `json:"grouped"`
}

type AskRequest struct {
	Text string `json:"text" validate:"required"`
}

type AskResponse struct {
	Matched    bool      `json:"matched"`
	Answer     string    `json:"answer"`
	ActiveClip *ClipView `json:"active_clip,omitempty"`
}

type SelectClipRequest struct {
	VideoURL string `json:"videoUrl" validate:"required"`
}

type TranscriptEntryView struct {
	Seq  int    `json:"seq"`
	Role string `json:"role"`
	Text string `json:"text"`
}

type TranscriptResponse struct {
	Entries []TranscriptEntryView `json:"entries"`
}

// RecordViewMessage is the payload published on the in-process view topic
// whenever a viewing session opens.
type RecordViewMessage struct {
	StoryId  uuid.UUID `json:"story_id"`
	ViewerId uuid.UUID `json:"viewer_id"`
}
