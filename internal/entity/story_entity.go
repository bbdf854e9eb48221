package entity

import (
	"time"

	"github.com/google/uuid"
)

type ClipStatus string

const (
	// ClipStatusPending means the clip row exists but the video has not
	// been confirmed uploaded yet.
	ClipStatusPending ClipStatus = "pending"
	ClipStatusReady   ClipStatus = "ready"
)

type Story struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Description string
	Topic       string
	Visibility  string
	Meta        map[string]interface{}
	ViewCount   int64
	LikeCount   int64
	SaveCount   int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool

	Clips []*Clip
}

// Clip is one question/answer video segment of a story. Position is the
// playback and matching order; the interaction resolver scans clips in
// exactly this order.
type Clip struct {
	Id           uuid.UUID
	StoryId      uuid.UUID
	Question     string
	Category     string
	VideoURL     string
	ThumbnailURL string
	DurationSecs int
	Position     int
	Status       ClipStatus
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
