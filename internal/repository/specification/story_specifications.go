package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByOwner struct {
	UserId uuid.UUID
}

func (s ByOwner) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

type ByTopic struct {
	Topic string
}

func (s ByTopic) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic = ?", s.Topic)
}

type PublicOnly struct{}

func (s PublicOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("visibility = ?", "public")
}

// WithClips preloads clips ordered by position so the interaction engine
// sees the catalog in matching order.
type WithClips struct{}

func (s WithClips) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Clips", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

type ByStory struct {
	StoryId uuid.UUID
}

func (s ByStory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("story_id = ?", s.StoryId)
}
