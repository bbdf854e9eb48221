package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByTargetUser struct {
	UserId uuid.UUID
}

func (s ByTargetUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("target_user_id = ?", s.UserId)
}

type UnreadOnly struct{}

func (s UnreadOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("read = ?", false)
}
