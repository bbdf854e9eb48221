package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"metory-be/internal/constant"
	"metory-be/internal/dto"
	"metory-be/internal/entity"
	"metory-be/internal/pkg/logger"
	"metory-be/internal/repository/specification"
	"metory-be/internal/repository/unitofwork"
	"metory-be/pkg/events"
	"metory-be/pkg/interaction"
	pkgNats "metory-be/pkg/nats"
	"metory-be/pkg/storage"

	"github.com/google/uuid"
)

var (
	ErrStoryNotFound  = errors.New("story not found")
	ErrNotStoryOwner  = errors.New("not the story owner")
	ErrClipNotFound   = errors.New("clip not found")
	ErrStoryIsPrivate = errors.New("story is private")
)

const uploadTicketExpiry = 15 * time.Minute

type IStoryService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoryRequest) (*dto.CreateStoryResponse, error)
	GetById(ctx context.Context, viewerId, storyId uuid.UUID) (*dto.StoryResponse, error)
	Feed(ctx context.Context, topic string, page, limit int) (*dto.FeedResponse, error)
	ListByUser(ctx context.Context, ownerId uuid.UUID, includePrivate bool, page, limit int) (*dto.FeedResponse, error)
	UploadURL(ctx context.Context, userId, storyId uuid.UUID, req *dto.UploadURLRequest) (*dto.ClipUploadTicket, error)
	VideoUploaded(ctx context.Context, userId uuid.UUID, req *dto.VideoUploadedRequest) error
	ReorderClips(ctx context.Context, userId, storyId uuid.UUID, req *dto.ReorderClipsRequest) error
	Delete(ctx context.Context, userId, storyId uuid.UUID) error
	Like(ctx context.Context, userId, storyId uuid.UUID) error
	Unlike(ctx context.Context, userId, storyId uuid.UUID) error
	Save(ctx context.Context, userId, storyId uuid.UUID) error
	Unsave(ctx context.Context, userId, storyId uuid.UUID) error
	Saved(ctx context.Context, userId uuid.UUID, page, limit int) (*dto.FeedResponse, error)
	Comment(ctx context.Context, userId, storyId uuid.UUID, req *dto.CommentRequest) error
	Comments(ctx context.Context, viewerId, storyId uuid.UUID, page, limit int) (*dto.CommentListResponse, error)
}

type storyService struct {
	uowFactory     unitofwork.RepositoryFactory
	storageClient  *storage.R2Client
	eventPublisher *pkgNats.Publisher
	log            logger.ILogger
}

func NewStoryService(uowFactory unitofwork.RepositoryFactory, storageClient *storage.R2Client, eventPublisher *pkgNats.Publisher, log logger.ILogger) IStoryService {
	return &storyService{
		uowFactory:     uowFactory,
		storageClient:  storageClient,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

// Create persists the story and all its clip rows in one transaction, then
// presigns one upload URL per clip. A failed presign aborts nothing: the
// clips stay pending and the client can retry the upload flow.
func (s *storyService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoryRequest) (*dto.CreateStoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	visibility := req.Visibility
	if visibility == "" {
		visibility = constant.VisibilityPublic
	}

	story := &entity.Story{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		Topic:       req.Topic,
		Visibility:  visibility,
		CreatedAt:   time.Now(),
	}
	if style, ok := constant.StyleForTopic(req.Topic); ok {
		story.Meta = map[string]interface{}{"icon": style.Icon, "color": style.Color}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.StoryRepository().Create(ctx, story); err != nil {
		return nil, err
	}

	clips := make([]*entity.Clip, len(req.Clips))
	fileNames := make([]string, len(req.Clips))
	for i, clipReq := range req.Clips {
		category := clipReq.Category
		if category == "" {
			category = interaction.CategoryOther
		}

		clip := &entity.Clip{
			Id:        uuid.New(),
			StoryId:   story.Id,
			Question:  clipReq.Question,
			Category:  category,
			Position:  i,
			Status:    entity.ClipStatusPending,
			CreatedAt: time.Now(),
		}

		objectKey := storage.ObjectKey(userId.String(), story.Id.String(), clip.Id.String(), clipReq.FileName)
		clip.VideoURL = s.storageClient.PublicURL(objectKey)

		if err := uow.ClipRepository().Create(ctx, clip); err != nil {
			return nil, err
		}
		clips[i] = clip
		fileNames[i] = clipReq.FileName
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	uploads := make([]dto.ClipUploadTicket, 0, len(clips))
	for i, clip := range clips {
		objectKey := storage.ObjectKey(userId.String(), story.Id.String(), clip.Id.String(), fileNames[i])
		ticket, err := s.storageClient.PresignUpload(ctx, objectKey, "video/mp4", uploadTicketExpiry)
		if err != nil {
			s.log.Error("StoryService", "Presign failed", map[string]interface{}{
				"story_id": story.Id, "clip_id": clip.Id, "error": err.Error(),
			})
			continue
		}
		uploads = append(uploads, dto.ClipUploadTicket{
			ClipId:    clip.Id,
			UploadURL: ticket.URL,
			Method:    ticket.Method,
			Headers:   ticket.Headers,
			ObjectKey: ticket.ObjectKey,
			ExpiresAt: ticket.ExpiresAt,
		})
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeStoryCreated,
			Data: map[string]interface{}{
				"story_id": story.Id,
				"user_id":  userId,
				"topic":    story.Topic,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish STORY_CREATED event: %v\n", err)
		}
	}

	return &dto.CreateStoryResponse{Id: story.Id, Uploads: uploads}, nil
}

func (s *storyService) GetById(ctx context.Context, viewerId, storyId uuid.UUID) (*dto.StoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: storyId},
		specification.WithClips{},
	)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}
	if story.Visibility == constant.VisibilityPrivate && story.UserId != viewerId {
		return nil, ErrStoryIsPrivate
	}

	resp := toStoryResponse(story, true)
	return &resp, nil
}

func (s *storyService) Feed(ctx context.Context, topic string, page, limit int) (*dto.FeedResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.PublicOnly{},
	}
	if topic != "" {
		specs = append(specs, specification.ByTopic{Topic: topic})
	}

	total, err := uow.StoryRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs,
		specification.WithClips{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	stories, err := uow.StoryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	return &dto.FeedResponse{
		Stories: toStoryResponses(stories, true),
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

func (s *storyService) ListByUser(ctx context.Context, ownerId uuid.UUID, includePrivate bool, page, limit int) (*dto.FeedResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByOwner{UserId: ownerId},
	}
	if !includePrivate {
		specs = append(specs, specification.PublicOnly{})
	}

	total, err := uow.StoryRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs,
		specification.WithClips{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	stories, err := uow.StoryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	return &dto.FeedResponse{
		Stories: toStoryResponses(stories, false),
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// UploadURL issues a fresh presigned ticket for one clip, covering retries
// after the ticket handed out at creation expired. A new file name moves
// the object key, so the stored video URL is rewritten to match.
func (s *storyService) UploadURL(ctx context.Context, userId, storyId uuid.UUID, req *dto.UploadURLRequest) (*dto.ClipUploadTicket, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: storyId})
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}
	if story.UserId != userId {
		return nil, ErrNotStoryOwner
	}

	clip, err := uow.ClipRepository().FindOne(ctx, specification.ByID{ID: req.ClipId})
	if err != nil {
		return nil, err
	}
	if clip == nil || clip.StoryId != storyId {
		return nil, ErrClipNotFound
	}

	objectKey := storage.ObjectKey(userId.String(), storyId.String(), clip.Id.String(), req.FileName)
	publicURL := s.storageClient.PublicURL(objectKey)
	if clip.VideoURL != publicURL {
		if err := uow.ClipRepository().SetVideoURL(ctx, clip.Id, publicURL); err != nil {
			return nil, err
		}
	}

	ticket, err := s.storageClient.PresignUpload(ctx, objectKey, "video/mp4", uploadTicketExpiry)
	if err != nil {
		return nil, err
	}

	return &dto.ClipUploadTicket{
		ClipId:    clip.Id,
		UploadURL: ticket.URL,
		Method:    ticket.Method,
		Headers:   ticket.Headers,
		ObjectKey: ticket.ObjectKey,
		ExpiresAt: ticket.ExpiresAt,
	}, nil
}

func (s *storyService) VideoUploaded(ctx context.Context, userId uuid.UUID, req *dto.VideoUploadedRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clip, err := uow.ClipRepository().FindOne(ctx, specification.ByID{ID: req.ClipId})
	if err != nil {
		return err
	}
	if clip == nil {
		return ErrClipNotFound
	}

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: clip.StoryId})
	if err != nil {
		return err
	}
	if story == nil {
		return ErrStoryNotFound
	}
	if story.UserId != userId {
		return ErrNotStoryOwner
	}

	return uow.ClipRepository().MarkReady(ctx, clip.Id, req.DurationSecs, req.ThumbnailURL)
}

// ReorderClips rewrites positions to match the given id order. The list
// must mention every clip of the story exactly once.
func (s *storyService) ReorderClips(ctx context.Context, userId, storyId uuid.UUID, req *dto.ReorderClipsRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: storyId},
		specification.WithClips{},
	)
	if err != nil {
		return err
	}
	if story == nil {
		return ErrStoryNotFound
	}
	if story.UserId != userId {
		return ErrNotStoryOwner
	}

	if len(req.ClipIds) != len(story.Clips) {
		return errors.New("reorder must list every clip exactly once")
	}
	existing := make(map[uuid.UUID]bool, len(story.Clips))
	for _, clip := range story.Clips {
		existing[clip.Id] = true
	}
	for _, id := range req.ClipIds {
		if !existing[id] {
			return ErrClipNotFound
		}
		delete(existing, id)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for position, id := range req.ClipIds {
		if err := uow.ClipRepository().UpdatePosition(ctx, id, position); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (s *storyService) Delete(ctx context.Context, userId, storyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: storyId})
	if err != nil {
		return err
	}
	if story == nil {
		return ErrStoryNotFound
	}
	if story.UserId != userId {
		return ErrNotStoryOwner
	}

	return uow.StoryRepository().Delete(ctx, storyId)
}

func (s *storyService) Like(ctx context.Context, userId, storyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: storyId})
	if err != nil {
		return err
	}
	if story == nil {
		return ErrStoryNotFound
	}

	liked, err := uow.StoryRepository().HasLiked(ctx, userId, storyId)
	if err != nil {
		return err
	}
	if liked {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	like := &entity.StoryLike{Id: uuid.New(), UserId: userId, StoryId: storyId}
	if err := uow.StoryRepository().CreateLike(ctx, like); err != nil {
		return err
	}
	if err := uow.StoryRepository().IncrementLikeCount(ctx, storyId, 1); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishSocial(ctx, events.TypeStoryLiked, userId, story.UserId, storyId, "")
	return nil
}

func (s *storyService) Unlike(ctx context.Context, userId, storyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	liked, err := uow.StoryRepository().HasLiked(ctx, userId, storyId)
	if err != nil {
		return err
	}
	if !liked {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.StoryRepository().DeleteLike(ctx, userId, storyId); err != nil {
		return err
	}
	if err := uow.StoryRepository().IncrementLikeCount(ctx, storyId, -1); err != nil {
		return err
	}

	return uow.Commit()
}

// Save bookmarks a story. Saving twice is a no-op, like Like.
func (s *storyService) Save(ctx context.Context, userId, storyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: storyId})
	if err != nil {
		return err
	}
	if story == nil {
		return ErrStoryNotFound
	}
	if story.Visibility == constant.VisibilityPrivate && story.UserId != userId {
		return ErrStoryIsPrivate
	}

	saved, err := uow.StoryRepository().HasSaved(ctx, userId, storyId)
	if err != nil {
		return err
	}
	if saved {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	save := &entity.StorySave{Id: uuid.New(), UserId: userId, StoryId: storyId}
	if err := uow.StoryRepository().CreateSave(ctx, save); err != nil {
		return err
	}
	if err := uow.StoryRepository().IncrementSaveCount(ctx, storyId, 1); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishSocial(ctx, events.TypeStorySaved, userId, story.UserId, storyId, "")
	return nil
}

func (s *storyService) Unsave(ctx context.Context, userId, storyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	saved, err := uow.StoryRepository().HasSaved(ctx, userId, storyId)
	if err != nil {
		return err
	}
	if !saved {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.StoryRepository().DeleteSave(ctx, userId, storyId); err != nil {
		return err
	}
	if err := uow.StoryRepository().IncrementSaveCount(ctx, storyId, -1); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *storyService) Saved(ctx context.Context, userId uuid.UUID, page, limit int) (*dto.FeedResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.StoryRepository().CountSaved(ctx, userId)
	if err != nil {
		return nil, err
	}

	stories, err := uow.StoryRepository().FindSaved(ctx, userId, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &dto.FeedResponse{
		Stories: toStoryResponses(stories, true),
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

func (s *storyService) Comment(ctx context.Context, userId, storyId uuid.UUID, req *dto.CommentRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: storyId})
	if err != nil {
		return err
	}
	if story == nil {
		return ErrStoryNotFound
	}

	comment := &entity.StoryComment{
		Id:      uuid.New(),
		UserId:  userId,
		StoryId: storyId,
		Content: req.Content,
	}
	if err := uow.StoryRepository().CreateComment(ctx, comment); err != nil {
		return err
	}

	s.publishSocial(ctx, events.TypeStoryCommented, userId, story.UserId, storyId, req.Content)
	return nil
}

func (s *storyService) Comments(ctx context.Context, viewerId, storyId uuid.UUID, page, limit int) (*dto.CommentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: storyId})
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}
	if story.Visibility == constant.VisibilityPrivate && story.UserId != viewerId {
		return nil, ErrStoryIsPrivate
	}

	comments, err := uow.StoryRepository().FindComments(ctx, storyId, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	views := make([]dto.CommentResponse, len(comments))
	for i, comment := range comments {
		views[i] = dto.CommentResponse{
			Id:        comment.Id,
			UserId:    comment.UserId,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
	}
	return &dto.CommentListResponse{Comments: views, Page: page, Limit: limit}, nil
}

func (s *storyService) publishSocial(ctx context.Context, eventType string, actorId, targetUserId, storyId uuid.UUID, content string) {
	if s.eventPublisher == nil || actorId == targetUserId {
		return
	}
	event := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"actor_id":       actorId,
			"target_user_id": targetUserId,
			"story_id":       storyId,
			"content":        content,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func toStoryResponse(story *entity.Story, readyClipsOnly bool) dto.StoryResponse {
	resp := dto.StoryResponse{
		Id:          story.Id,
		UserId:      story.UserId,
		Title:       story.Title,
		Description: story.Description,
		Topic:       story.Topic,
		Visibility:  story.Visibility,
		Meta:        story.Meta,
		ViewCount:   story.ViewCount,
		LikeCount:   story.LikeCount,
		SaveCount:   story.SaveCount,
		CreatedAt:   story.CreatedAt,
	}
	for _, clip := range story.Clips {
		if readyClipsOnly && clip.Status != entity.ClipStatusReady {
			continue
		}
		resp.Clips = append(resp.Clips, dto.ClipResponse{
			Id:           clip.Id,
			Question:     clip.Question,
			Category:     clip.Category,
			VideoURL:     clip.VideoURL,
			ThumbnailURL: clip.ThumbnailURL,
			DurationSecs: clip.DurationSecs,
			Position:     clip.Position,
			Status:       string(clip.Status),
		})
	}
	return resp
}

func toStoryResponses(stories []*entity.Story, readyClipsOnly bool) []dto.StoryResponse {
	out := make([]dto.StoryResponse, len(stories))
	for i, story := range stories {
		out[i] = toStoryResponse(story, readyClipsOnly)
	}
	return out
}
