package model

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ActorId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	TargetUserId uuid.UUID  `gorm:"type:uuid;not null;index:idx_activities_target_created,priority:1"`
	StoryId      *uuid.UUID `gorm:"type:uuid;index"`
	Kind         string     `gorm:"type:varchar(30);not null"`
	Message      string     `gorm:"type:text;not null"`
	Read         bool       `gorm:"default:false"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index:idx_activities_target_created,priority:2"`
}

func (Activity) TableName() string {
	return "activities"
}

type Follow struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FollowerId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_pair,priority:1"`
	FolloweeId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_pair,priority:2"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Follow) TableName() string {
	return "follows"
}

type StoryLike struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_story_likes_pair,priority:1"`
	StoryId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_story_likes_pair,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (StoryLike) TableName() string {
	return "story_likes"
}

type StorySave struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_story_saves_pair,priority:1"`
	StoryId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_story_saves_pair,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (StorySave) TableName() string {
	return "story_saves"
}

type StoryComment struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	StoryId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (StoryComment) TableName() string {
	return "story_comments"
}
