package mapper

import (
	"metory-be/internal/entity"
	"metory-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.Activity) *entity.Activity {
	if a == nil {
		return nil
	}

	return &entity.Activity{
		Id:           a.Id,
		ActorId:      a.ActorId,
		TargetUserId: a.TargetUserId,
		StoryId:      a.StoryId,
		Kind:         a.Kind,
		Message:      a.Message,
		Read:         a.Read,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.Activity) *model.Activity {
	if a == nil {
		return nil
	}

	return &model.Activity{
		Id:           a.Id,
		ActorId:      a.ActorId,
		TargetUserId: a.TargetUserId,
		StoryId:      a.StoryId,
		Kind:         a.Kind,
		Message:      a.Message,
		Read:         a.Read,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *ActivityMapper) ToEntities(activities []*model.Activity) []*entity.Activity {
	entities := make([]*entity.Activity, len(activities))
	for i, a := range activities {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
