package implementation

import (
	"context"
	"errors"

	"metory-be/internal/entity"
	"metory-be/internal/mapper"
	"metory-be/internal/model"
	"metory-be/internal/repository/contract"
	"metory-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StoryMapper
}

func NewStoryRepository(db *gorm.DB) contract.StoryRepository {
	return &StoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewStoryMapper(mapper.NewClipMapper()),
	}
}

func (r *StoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StoryRepositoryImpl) Create(ctx context.Context, story *entity.Story) error {
	m := r.mapper.ToModel(story)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*story = *r.mapper.ToEntity(m)
	return nil
}

func (r *StoryRepositoryImpl) Update(ctx context.Context, story *entity.Story) error {
	m := r.mapper.ToModel(story)
	// Omit clips so a metadata save never rewrites positions.
	if err := r.db.WithContext(ctx).Omit("Clips").Save(m).Error; err != nil {
		return err
	}
	return nil
}

func (r *StoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Story{}).Error
}

func (r *StoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Story, error) {
	var m model.Story
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Story, error) {
	var models []*model.Story
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Story{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StoryRepositoryImpl) IncrementViewCount(ctx context.Context, id uuid.UUID, delta int64) error {
	return r.db.WithContext(ctx).Model(&model.Story{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
}

func (r *StoryRepositoryImpl) IncrementLikeCount(ctx context.Context, id uuid.UUID, delta int64) error {
	return r.db.WithContext(ctx).Model(&model.Story{}).
		Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).Error
}

func (r *StoryRepositoryImpl) IncrementSaveCount(ctx context.Context, id uuid.UUID, delta int64) error {
	return r.db.WithContext(ctx).Model(&model.Story{}).
		Where("id = ?", id).
		UpdateColumn("save_count", gorm.Expr("save_count + ?", delta)).Error
}

func (r *StoryRepositoryImpl) CreateLike(ctx context.Context, like *entity.StoryLike) error {
	m := &model.StoryLike{
		Id:      like.Id,
		UserId:  like.UserId,
		StoryId: like.StoryId,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	like.Id = m.Id
	like.CreatedAt = m.CreatedAt
	return nil
}

func (r *StoryRepositoryImpl) DeleteLike(ctx context.Context, userId, storyId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND story_id = ?", userId, storyId).
		Delete(&model.StoryLike{}).Error
}

func (r *StoryRepositoryImpl) HasLiked(ctx context.Context, userId, storyId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.StoryLike{}).
		Where("user_id = ? AND story_id = ?", userId, storyId).
		Count(&count).Error
	return count > 0, err
}

func (r *StoryRepositoryImpl) CreateSave(ctx context.Context, save *entity.StorySave) error {
	m := &model.StorySave{
		Id:      save.Id,
		UserId:  save.UserId,
		StoryId: save.StoryId,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	save.Id = m.Id
	save.CreatedAt = m.CreatedAt
	return nil
}

func (r *StoryRepositoryImpl) DeleteSave(ctx context.Context, userId, storyId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND story_id = ?", userId, storyId).
		Delete(&model.StorySave{}).Error
}

func (r *StoryRepositoryImpl) HasSaved(ctx context.Context, userId, storyId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.StorySave{}).
		Where("user_id = ? AND story_id = ?", userId, storyId).
		Count(&count).Error
	return count > 0, err
}

// FindSaved lists the viewer's bookmarked stories, most recently saved first.
func (r *StoryRepositoryImpl) FindSaved(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*entity.Story, error) {
	var models []*model.Story
	err := r.db.WithContext(ctx).
		Joins("JOIN story_saves ON story_saves.story_id = stories.id").
		Where("story_saves.user_id = ?", userId).
		Order("story_saves.created_at DESC").
		Limit(limit).Offset(offset).
		Preload("Clips", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StoryRepositoryImpl) CountSaved(ctx context.Context, userId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.StorySave{}).
		Where("user_id = ?", userId).
		Count(&count).Error
	return count, err
}

func (r *StoryRepositoryImpl) CreateComment(ctx context.Context, comment *entity.StoryComment) error {
	m := &model.StoryComment{
		Id:      comment.Id,
		UserId:  comment.UserId,
		StoryId: comment.StoryId,
		Content: comment.Content,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	comment.Id = m.Id
	comment.CreatedAt = m.CreatedAt
	return nil
}

func (r *StoryRepositoryImpl) FindComments(ctx context.Context, storyId uuid.UUID, limit, offset int) ([]*entity.StoryComment, error) {
	var models []*model.StoryComment
	err := r.db.WithContext(ctx).
		Where("story_id = ?", storyId).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.StoryComment, len(models))
	for i, m := range models {
		comments[i] = &entity.StoryComment{
			Id:        m.Id,
			UserId:    m.UserId,
			StoryId:   m.StoryId,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return comments, nil
}
