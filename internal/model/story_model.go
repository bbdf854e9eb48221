package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Story struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Topic       string         `gorm:"type:varchar(100);not null;index"`
	Visibility  string         `gorm:"type:varchar(20);not null;default:'public'"`
	Meta        datatypes.JSON `gorm:"type:jsonb"`
	ViewCount   int64          `gorm:"default:0"`
	LikeCount   int64          `gorm:"default:0"`
	SaveCount   int64          `gorm:"default:0"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Clips []*Clip `gorm:"foreignKey:StoryId"`
}

func (Story) TableName() string {
	return "stories"
}

type Clip struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoryId      uuid.UUID `gorm:"type:uuid;not null;index:idx_clips_story_position,priority:1"`
	Question     string    `gorm:"type:text;not null"`
	Category     string    `gorm:"type:varchar(100);not null;default:'Khác'"`
	VideoURL     string    `gorm:"type:text"`
	ThumbnailURL string    `gorm:"type:text"`
	DurationSecs int       `gorm:"default:0"`
	Position     int       `gorm:"not null;index:idx_clips_story_position,priority:2"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Clip) TableName() string {
	return "clips"
}
