package service

import (
	"context"
	"fmt"
	"time"

	"metory-be/internal/dto"
	"metory-be/internal/entity"
	"metory-be/internal/pkg/logger"
	"metory-be/internal/repository/specification"
	"metory-be/internal/repository/unitofwork"
	"metory-be/internal/websocket"
	"metory-be/pkg/events"

	"github.com/google/uuid"
)

type IActivityService interface {
	// HandleEvent is wired as the NATS subscriber callback.
	HandleEvent(ctx context.Context, event events.Event) error

	List(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.ActivityListResponse, error)
	MarkRead(ctx context.Context, userId, activityId uuid.UUID) error
	MarkAllRead(ctx context.Context, userId uuid.UUID) error
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
	hub        *websocket.Hub
	log        logger.ILogger
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory, hub *websocket.Hub, log logger.ILogger) IActivityService {
	return &activityService{
		uowFactory: uowFactory,
		hub:        hub,
		log:        log,
	}
}

// HandleEvent turns social events into feed rows and pushes them to the
// target user's open connections. Unknown event types are dropped silently
// so new publishers never wedge the durable consumer.
func (s *activityService) HandleEvent(ctx context.Context, event events.Event) error {
	kind, messageFmt := describeEvent(event.EventType())
	if kind == "" {
		return nil
	}

	data := event.Payload()
	actorId, okActor := parseUUIDField(data, "actor_id")
	targetId, okTarget := parseUUIDField(data, "target_user_id")
	if !okActor || !okTarget {
		s.log.Warn("ActivityService", "Event missing actor or target", map[string]interface{}{
			"type": event.EventType(),
		})
		return nil
	}
	if actorId == targetId {
		return nil
	}

	activity := &entity.Activity{
		Id:           uuid.New(),
		ActorId:      actorId,
		TargetUserId: targetId,
		Kind:         kind,
		Message:      messageFmt,
		CreatedAt:    time.Now(),
	}
	if storyId, ok := parseUUIDField(data, "story_id"); ok {
		activity.StoryId = &storyId
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ActivityRepository().Create(ctx, activity); err != nil {
		return fmt.Errorf("persist activity: %w", err)
	}

	if s.hub != nil {
		s.hub.Send(targetId, "activity", toActivityResponse(activity))
	}
	return nil
}

func (s *activityService) List(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.ActivityListResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	activities, err := uow.ActivityRepository().FindAll(ctx,
		specification.ByTargetUser{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	unread, err := uow.ActivityRepository().Count(ctx,
		specification.ByTargetUser{UserId: userId},
		specification.UnreadOnly{},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.ActivityListResponse{Unread: unread}
	for _, activity := range activities {
		resp.Activities = append(resp.Activities, toActivityResponse(activity))
	}
	return resp, nil
}

func (s *activityService) MarkRead(ctx context.Context, userId, activityId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activities, err := uow.ActivityRepository().FindAll(ctx,
		specification.ByID{ID: activityId},
		specification.ByTargetUser{UserId: userId},
	)
	if err != nil {
		return err
	}
	if len(activities) == 0 {
		return fmt.Errorf("activity not found")
	}

	return uow.ActivityRepository().MarkRead(ctx, activityId)
}

func (s *activityService) MarkAllRead(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ActivityRepository().MarkAllRead(ctx, userId)
}

func describeEvent(eventType string) (kind, message string) {
	switch eventType {
	case events.TypeStoryLiked:
		return "like", "đã thích câu chuyện của bạn"
	case events.TypeStorySaved:
		return "save", "đã lưu câu chuyện của bạn"
	case events.TypeStoryCommented:
		return "comment", "đã bình luận về câu chuyện của bạn"
	case events.TypeUserFollowed:
		return "follow", "đã bắt đầu theo dõi bạn"
	default:
		return "", ""
	}
}

func parseUUIDField(data map[string]interface{}, key string) (uuid.UUID, bool) {
	raw, ok := data[key]
	if !ok {
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func toActivityResponse(activity *entity.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		Id:           activity.Id,
		ActorId:      activity.ActorId,
		TargetUserId: activity.TargetUserId,
		StoryId:      activity.StoryId,
		Kind:         activity.Kind,
		Message:      activity.Message,
		Read:         activity.Read,
		CreatedAt:    activity.CreatedAt,
	}
}
