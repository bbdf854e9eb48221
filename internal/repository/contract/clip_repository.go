package contract

import (
	"context"

	"metory-be/internal/entity"
	"metory-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ClipRepository interface {
	Create(ctx context.Context, clip *entity.Clip) error
	Update(ctx context.Context, clip *entity.Clip) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Clip, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Clip, error)

	// UpdatePosition moves a single clip; reordering a story issues one
	// call per clip inside a unit of work.
	UpdatePosition(ctx context.Context, id uuid.UUID, position int) error
	MarkReady(ctx context.Context, id uuid.UUID, durationSecs int, thumbnailURL string) error
	SetVideoURL(ctx context.Context, id uuid.UUID, videoURL string) error
}
