package dto

import (
	"time"

	"github.com/google/uuid"
)

type ActivityResponse struct {
	Id           uuid.UUID  `json:"id"`
	ActorId      uuid.UUID  `json:"actor_id"`
	TargetUserId uuid.UUID  `json:"target_user_id"`
	StoryId      *uuid.UUID `json:"story_id,omitempty"`
	Kind         string     `json:"kind"`
	Message      string     `json:"message"`
	Read         bool       `json:"read"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Unread     int64              `json:"unread"`
}
