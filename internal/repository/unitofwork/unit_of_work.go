package unitofwork

import (
	"context"

	"metory-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	StoryRepository() contract.StoryRepository
	ClipRepository() contract.ClipRepository
	ActivityRepository() contract.ActivityRepository
}
