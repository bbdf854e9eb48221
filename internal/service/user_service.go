package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"metory-be/internal/dto"
	"metory-be/internal/entity"
	"metory-be/internal/repository/specification"
	"metory-be/internal/repository/unitofwork"
	"metory-be/pkg/events"
	pkgNats "metory-be/pkg/nats"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	GetPublicProfile(ctx context.Context, viewerId, userId uuid.UUID) (*dto.PublicProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	Follow(ctx context.Context, followerId, followeeId uuid.UUID) error
	Unfollow(ctx context.Context, followerId, followeeId uuid.UUID) error
}

type userService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pkgNats.Publisher
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pkgNats.Publisher) IUserService {
	return &userService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := toUserProfile(user)
	return &profile, nil
}

func (s *userService) GetPublicProfile(ctx context.Context, viewerId, userId uuid.UUID) (*dto.PublicProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	storyCount, err := uow.StoryRepository().Count(ctx,
		specification.ByOwner{UserId: userId},
		specification.PublicOnly{},
	)
	if err != nil {
		return nil, err
	}

	followers, err := uow.UserRepository().CountFollowers(ctx, userId)
	if err != nil {
		return nil, err
	}
	following, err := uow.UserRepository().CountFollowing(ctx, userId)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if viewerId != uuid.Nil && viewerId != userId {
		isFollowing, err = uow.UserRepository().IsFollowing(ctx, viewerId, userId)
		if err != nil {
			return nil, err
		}
	}

	resp := &dto.PublicProfileResponse{
		Id:             user.Id,
		Username:       user.Username,
		FullName:       user.FullName,
		Bio:            user.Bio,
		StoryCount:     storyCount,
		FollowerCount:  followers,
		FollowingCount: following,
		IsFollowing:    isFollowing,
	}
	if user.AvatarURL != nil {
		resp.AvatarURL = *user.AvatarURL
	}
	return resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.FullName = req.FullName
	user.Bio = req.Bio
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	profile := toUserProfile(user)
	return &profile, nil
}

func (s *userService) Follow(ctx context.Context, followerId, followeeId uuid.UUID) error {
	if followerId == followeeId {
		return errors.New("cannot follow yourself")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	followee, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: followeeId})
	if err != nil {
		return err
	}
	if followee == nil {
		return ErrUserNotFound
	}

	already, err := uow.UserRepository().IsFollowing(ctx, followerId, followeeId)
	if err != nil {
		return err
	}
	if already {
		return nil
	}

	follow := &entity.Follow{
		Id:         uuid.New(),
		FollowerId: followerId,
		FolloweeId: followeeId,
	}
	if err := uow.UserRepository().CreateFollow(ctx, follow); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeUserFollowed,
			Data: map[string]interface{}{
				"actor_id":       followerId,
				"target_user_id": followeeId,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_FOLLOWED event: %v\n", err)
		}
	}
	return nil
}

func (s *userService) Unfollow(ctx context.Context, followerId, followeeId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().DeleteFollow(ctx, followerId, followeeId)
}
