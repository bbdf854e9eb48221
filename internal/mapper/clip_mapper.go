package mapper

import (
	"time"

	"metory-be/internal/entity"
	"metory-be/internal/model"
	"metory-be/pkg/interaction"
)

type ClipMapper struct{}

func NewClipMapper() *ClipMapper {
	return &ClipMapper{}
}

func (m *ClipMapper) ToEntity(c *model.Clip) *entity.Clip {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Clip{
		Id:           c.Id,
		StoryId:      c.StoryId,
		Question:     c.Question,
		Category:     c.Category,
		VideoURL:     c.VideoURL,
		ThumbnailURL: c.ThumbnailURL,
		DurationSecs: c.DurationSecs,
		Position:     c.Position,
		Status:       entity.ClipStatus(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ClipMapper) ToModel(c *entity.Clip) *model.Clip {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Clip{
		Id:           c.Id,
		StoryId:      c.StoryId,
		Question:     c.Question,
		Category:     c.Category,
		VideoURL:     c.VideoURL,
		ThumbnailURL: c.ThumbnailURL,
		DurationSecs: c.DurationSecs,
		Position:     c.Position,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ClipMapper) ToEntities(clips []*model.Clip) []*entity.Clip {
	entities := make([]*entity.Clip, len(clips))
	for i, c := range clips {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *ClipMapper) ToModels(clips []*entity.Clip) []*model.Clip {
	models := make([]*model.Clip, len(clips))
	for i, c := range clips {
		models[i] = m.ToModel(c)
	}
	return models
}

// ToInteractionClip converts a stored clip into the engine's value type.
// The resolver matches on the lowercased question and compares clips by
// video reference, so VideoRef must be the playable URL.
func (m *ClipMapper) ToInteractionClip(c *entity.Clip) interaction.Clip {
	return interaction.Clip{
		Question: c.Question,
		Category: c.Category,
		VideoRef: c.VideoURL,
	}
}

func (m *ClipMapper) ToInteractionClips(clips []*entity.Clip) []interaction.Clip {
	out := make([]interaction.Clip, len(clips))
	for i, c := range clips {
		out[i] = m.ToInteractionClip(c)
	}
	return out
}
