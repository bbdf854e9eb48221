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

type ClipRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ClipMapper
}

func NewClipRepository(db *gorm.DB) contract.ClipRepository {
	return &ClipRepositoryImpl{
		db:     db,
		mapper: mapper.NewClipMapper(),
	}
}

func (r *ClipRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ClipRepositoryImpl) Create(ctx context.Context, clip *entity.Clip) error {
	m := r.mapper.ToModel(clip)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*clip = *r.mapper.ToEntity(m)
	return nil
}

func (r *ClipRepositoryImpl) Update(ctx context.Context, clip *entity.Clip) error {
	m := r.mapper.ToModel(clip)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*clip = *r.mapper.ToEntity(m)
	return nil
}

func (r *ClipRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Clip{}).Error
}

func (r *ClipRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Clip, error) {
	var m model.Clip
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ClipRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Clip, error) {
	var models []*model.Clip
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ClipRepositoryImpl) UpdatePosition(ctx context.Context, id uuid.UUID, position int) error {
	return r.db.WithContext(ctx).Model(&model.Clip{}).
		Where("id = ?", id).
		Update("position", position).Error
}

func (r *ClipRepositoryImpl) MarkReady(ctx context.Context, id uuid.UUID, durationSecs int, thumbnailURL string) error {
	updates := map[string]interface{}{
		"status":        string(entity.ClipStatusReady),
		"duration_secs": durationSecs,
	}
	if thumbnailURL != "" {
		updates["thumbnail_url"] = thumbnailURL
	}
	return r.db.WithContext(ctx).Model(&model.Clip{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *ClipRepositoryImpl) SetVideoURL(ctx context.Context, id uuid.UUID, videoURL string) error {
	return r.db.WithContext(ctx).Model(&model.Clip{}).
		Where("id = ?", id).
		Update("video_url", videoURL).Error
}
