package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one row of the notification feed: actor did kind to target,
// optionally about a story.
type Activity struct {
	Id           uuid.UUID
	ActorId      uuid.UUID
	TargetUserId uuid.UUID
	StoryId      *uuid.UUID
	Kind         string
	Message      string
	Read         bool
	CreatedAt    time.Time
}

type Follow struct {
	Id         uuid.UUID
	FollowerId uuid.UUID
	FolloweeId uuid.UUID
	CreatedAt  time.Time
}

type StoryLike struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	StoryId   uuid.UUID
	CreatedAt time.Time
}

// StorySave is a viewer's bookmark: saved stories show up in their personal
// "watch again" list.
type StorySave struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	StoryId   uuid.UUID
	CreatedAt time.Time
}

type StoryComment struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	StoryId   uuid.UUID
	Content   string
	CreatedAt time.Time
}
