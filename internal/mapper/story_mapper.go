package mapper

import (
	"encoding/json"
	"time"

	"metory-be/internal/entity"
	"metory-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StoryMapper struct {
	clipMapper *ClipMapper
}

func NewStoryMapper(clipMapper *ClipMapper) *StoryMapper {
	return &StoryMapper{clipMapper: clipMapper}
}

func (m *StoryMapper) ToEntity(s *model.Story) *entity.Story {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	var meta map[string]interface{}
	if len(s.Meta) > 0 {
		// Corrupt meta is dropped rather than failing the read.
		_ = json.Unmarshal(s.Meta, &meta)
	}

	return &entity.Story{
		Id:          s.Id,
		UserId:      s.UserId,
		Title:       s.Title,
		Description: s.Description,
		Topic:       s.Topic,
		Visibility:  s.Visibility,
		Meta:        meta,
		ViewCount:   s.ViewCount,
		LikeCount:   s.LikeCount,
		SaveCount:   s.SaveCount,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   s.DeletedAt.Valid,
		Clips:       m.clipMapper.ToEntities(s.Clips),
	}
}

func (m *StoryMapper) ToModel(s *entity.Story) *model.Story {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	var meta datatypes.JSON
	if len(s.Meta) > 0 {
		if raw, err := json.Marshal(s.Meta); err == nil {
			meta = datatypes.JSON(raw)
		}
	}

	return &model.Story{
		Id:          s.Id,
		UserId:      s.UserId,
		Title:       s.Title,
		Description: s.Description,
		Topic:       s.Topic,
		Visibility:  s.Visibility,
		Meta:        meta,
		ViewCount:   s.ViewCount,
		LikeCount:   s.LikeCount,
		SaveCount:   s.SaveCount,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		Clips:       m.clipMapper.ToModels(s.Clips),
	}
}

func (m *StoryMapper) ToEntities(stories []*model.Story) []*entity.Story {
	entities := make([]*entity.Story, len(stories))
	for i, s := range stories {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
