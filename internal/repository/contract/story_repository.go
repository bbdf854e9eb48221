package contract

import (
	"context"

	"metory-be/internal/entity"
	"metory-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StoryRepository interface {
	Create(ctx context.Context, story *entity.Story) error
	Update(ctx context.Context, story *entity.Story) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Story, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Story, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Counters updated outside the request path by the view/like pipelines.
	IncrementViewCount(ctx context.Context, id uuid.UUID, delta int64) error
	IncrementLikeCount(ctx context.Context, id uuid.UUID, delta int64) error
	IncrementSaveCount(ctx context.Context, id uuid.UUID, delta int64) error

	// Likes
	CreateLike(ctx context.Context, like *entity.StoryLike) error
	DeleteLike(ctx context.Context, userId, storyId uuid.UUID) error
	HasLiked(ctx context.Context, userId, storyId uuid.UUID) (bool, error)

	// Saves (bookmarks)
	CreateSave(ctx context.Context, save *entity.StorySave) error
	DeleteSave(ctx context.Context, userId, storyId uuid.UUID) error
	HasSaved(ctx context.Context, userId, storyId uuid.UUID) (bool, error)
	FindSaved(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*entity.Story, error)
	CountSaved(ctx context.Context, userId uuid.UUID) (int64, error)

	// Comments
	CreateComment(ctx context.Context, comment *entity.StoryComment) error
	FindComments(ctx context.Context, storyId uuid.UUID, limit, offset int) ([]*entity.StoryComment, error)
}
