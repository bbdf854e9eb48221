package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"metory-be/internal/constant"
	"metory-be/internal/dto"
	"metory-be/internal/entity"
	"metory-be/internal/mapper"
	"metory-be/internal/pkg/logger"
	"metory-be/internal/repository/memory"
	"metory-be/internal/repository/specification"
	"metory-be/internal/repository/unitofwork"
	"metory-be/internal/websocket"
	"metory-be/pkg/events"
	"metory-be/pkg/interaction"
	pkgNats "metory-be/pkg/nats"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("viewing session not found")
	ErrNotSessionOwner  = errors.New("not the session owner")
	ErrSessionBusy      = errors.New("a question is already being answered")
	ErrNoPlayableClips  = errors.New("story has no playable clips")
	ErrQueryNotAccepted = errors.New("query was empty or rejected")
)

type IInteractionService interface {
	Open(ctx context.Context, viewerId uuid.UUID, req *dto.OpenSessionRequest) (*dto.OpenSessionResponse, error)
	Ask(ctx context.Context, viewerId, sessionId uuid.UUID, req *dto.AskRequest) (*dto.AskResponse, error)
	SelectClip(ctx context.Context, viewerId, sessionId uuid.UUID, req *dto.SelectClipRequest) (*dto.ClipView, error)
	Transcript(ctx context.Context, viewerId, sessionId uuid.UUID) (*dto.TranscriptResponse, error)
	Close(ctx context.Context, viewerId, sessionId uuid.UUID) error
}

type interactionService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       *memory.SessionRepository
	hub            *websocket.Hub
	viewPublisher  IPublisherService
	eventPublisher *pkgNats.Publisher
	clipMapper     *mapper.ClipMapper
	thinkingDelay  time.Duration
	log            logger.ILogger
}

func NewInteractionService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	hub *websocket.Hub,
	viewPublisher IPublisherService,
	eventPublisher *pkgNats.Publisher,
	thinkingDelay time.Duration,
	log logger.ILogger,
) IInteractionService {
	return &interactionService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		hub:            hub,
		viewPublisher:  viewPublisher,
		eventPublisher: eventPublisher,
		clipMapper:     mapper.NewClipMapper(),
		thinkingDelay:  thinkingDelay,
		log:            log,
	}
}

// resolution is what an Ask waits for: the system answer plus the clip the
// session switched to, if any.
type resolution struct {
	matched bool
	answer  string
	clip    interaction.Clip
}

// sessionSink forwards engine events to the viewer's websocket devices and
// hands resolutions to the single in-flight Ask, if one is waiting. The
// engine invokes it under its own lock, so the sink only records and
// signals; it never calls back into the session.
type sessionSink struct {
	hub       *websocket.Hub
	viewerId  uuid.UUID
	sessionId uuid.UUID

	mu            sync.Mutex
	waiter        chan resolution
	pendingAnswer string
}

// tryArm installs a fresh waiter channel, failing if one is already in
// place. Holding the waiter is what serializes Asks: checking the engine's
// Thinking flag alone leaves a window where two callers both pass and the
// loser would overwrite the winner's channel.
func (s *sessionSink) tryArm() (chan resolution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waiter != nil {
		return nil, false
	}
	ch := make(chan resolution, 1)
	s.waiter = ch
	s.pendingAnswer = ""
	return ch, true
}

func (s *sessionSink) disarm() {
	s.mu.Lock()
	s.waiter = nil
	s.pendingAnswer = ""
	s.mu.Unlock()
}

func (s *sessionSink) push(messageType string, payload interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.Send(s.viewerId, messageType, map[string]interface{}{
		"session_id": s.sessionId,
		"event":      payload,
	})
}

func (s *sessionSink) ThinkingChanged(thinking bool) {
	s.push("interaction.thinking", map[string]interface{}{"thinking": thinking})
}

func (s *sessionSink) TranscriptAppended(entry interaction.Entry) {
	s.push("interaction.transcript", entry)

	if entry.Role != interaction.RoleSystem {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waiter == nil {
		return
	}
	if entry.Text == interaction.FallbackMessage {
		// Miss: the fallback line is the final event of this resolution.
		s.waiter <- resolution{matched: false, answer: entry.Text}
		s.waiter = nil
		return
	}
	// Match: ClipChanged follows with the destination clip.
	s.pendingAnswer = entry.Text
}

func (s *sessionSink) ClipChanged(clip interaction.Clip) {
	s.push("interaction.clip", dto.ClipView{
		Question: clip.Question,
		Category: clip.Category,
		VideoURL: clip.VideoRef,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waiter == nil || s.pendingAnswer == "" {
		return
	}
	s.waiter <- resolution{matched: true, answer: s.pendingAnswer, clip: clip}
	s.waiter = nil
	s.pendingAnswer = ""
}

func (s *interactionService) Open(ctx context.Context, viewerId uuid.UUID, req *dto.OpenSessionRequest) (*dto.OpenSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: req.StoryId},
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

	ready := make([]*entity.Clip, 0, len(story.Clips))
	for _, clip := range story.Clips {
		if clip.Status == entity.ClipStatusReady {
			ready = append(ready, clip)
		}
	}
	if len(ready) == 0 {
		return nil, ErrNoPlayableClips
	}

	clips := s.clipMapper.ToInteractionClips(ready)

	sessionId := uuid.New()
	sink := &sessionSink{hub: s.hub, viewerId: viewerId, sessionId: sessionId}
	engine := interaction.NewSession(clips, s.thinkingDelay, sink)

	viewing := &memory.ViewingSession{
		Id:        sessionId,
		StoryId:   story.Id,
		ViewerId:  viewerId,
		Engine:    engine,
		CreatedAt: time.Now(),
	}
	s.sessions.Save(viewing)

	// Record the view off the request path.
	if s.viewPublisher != nil {
		payload, _ := json.Marshal(dto.RecordViewMessage{StoryId: story.Id, ViewerId: viewerId})
		if err := s.viewPublisher.Publish(ctx, payload); err != nil {
			s.log.Warn("InteractionService", "Failed to publish view record", map[string]interface{}{
				"story_id": story.Id, "error": err.Error(),
			})
		}
	}

	categories, grouped := interaction.GroupByCategory(clips)
	groupedViews := make(map[string][]dto.ClipView, len(grouped))
	for category, categoryClips := range grouped {
		groupedViews[category] = toClipViews(categoryClips)
	}

	resp := &dto.OpenSessionResponse{
		SessionId:  sessionId,
		StoryId:    story.Id,
		Categories: categories,
		Grouped:    groupedViews,
	}
	if active, ok := engine.ActiveClip(); ok {
		view := toClipView(active)
		resp.ActiveClip = &view
	}
	return resp, nil
}

func (s *interactionService) Ask(ctx context.Context, viewerId, sessionId uuid.UUID, req *dto.AskRequest) (*dto.AskResponse, error) {
	viewing, sink, err := s.lookup(viewerId, sessionId)
	if err != nil {
		return nil, err
	}

	ch, ok := sink.tryArm()
	if !ok {
		return nil, ErrSessionBusy
	}
	if !viewing.Engine.SubmitQuery(req.Text) {
		sink.disarm()
		// The engine can still be thinking with no waiter attached when an
		// earlier Ask timed out before its resolution landed.
		if viewing.Engine.Thinking() {
			return nil, ErrSessionBusy
		}
		return nil, ErrQueryNotAccepted
	}

	// The engine resolves after its thinking delay; leave headroom past it.
	waitCtx, cancel := context.WithTimeout(ctx, s.thinkingDelay+5*time.Second)
	defer cancel()

	select {
	case res := <-ch:
		s.publishOutcome(ctx, viewing, req.Text, res)

		resp := &dto.AskResponse{Matched: res.matched, Answer: res.answer}
		if res.matched {
			view := toClipView(res.clip)
			resp.ActiveClip = &view
		}
		return resp, nil
	case <-waitCtx.Done():
		sink.disarm()
		return nil, waitCtx.Err()
	}
}

func (s *interactionService) SelectClip(ctx context.Context, viewerId, sessionId uuid.UUID, req *dto.SelectClipRequest) (*dto.ClipView, error) {
	viewing, _, err := s.lookup(viewerId, sessionId)
	if err != nil {
		return nil, err
	}

	var target *interaction.Clip
	for _, clip := range viewing.Engine.Clips() {
		if clip.VideoRef == req.VideoURL {
			c := clip
			target = &c
			break
		}
	}
	if target == nil {
		return nil, interaction.ErrClipNotInStory
	}

	if err := viewing.Engine.SelectClip(*target); err != nil {
		return nil, err
	}

	view := toClipView(*target)
	return &view, nil
}

func (s *interactionService) Transcript(ctx context.Context, viewerId, sessionId uuid.UUID) (*dto.TranscriptResponse, error) {
	viewing, _, err := s.lookup(viewerId, sessionId)
	if err != nil {
		return nil, err
	}

	entries := viewing.Engine.Transcript()
	views := make([]dto.TranscriptEntryView, len(entries))
	for i, entry := range entries {
		views[i] = dto.TranscriptEntryView{
			Seq:  entry.Seq,
			Role: string(entry.Role),
			Text: entry.Text,
		}
	}
	return &dto.TranscriptResponse{Entries: views}, nil
}

func (s *interactionService) Close(ctx context.Context, viewerId, sessionId uuid.UUID) error {
	if _, _, err := s.lookup(viewerId, sessionId); err != nil {
		return err
	}
	s.sessions.Delete(sessionId)
	return nil
}

func (s *interactionService) lookup(viewerId, sessionId uuid.UUID) (*memory.ViewingSession, *sessionSink, error) {
	viewing, found := s.sessions.Get(sessionId)
	if !found {
		return nil, nil, ErrSessionNotFound
	}
	if viewing.ViewerId != viewerId {
		return nil, nil, ErrNotSessionOwner
	}
	// The sink was installed at Open; sessions always carry one.
	sink, _ := viewing.Engine.Sink().(*sessionSink)
	if sink == nil {
		return nil, nil, ErrSessionNotFound
	}
	return viewing, sink, nil
}

func (s *interactionService) publishOutcome(ctx context.Context, viewing *memory.ViewingSession, query string, res resolution) {
	if s.eventPublisher == nil {
		return
	}
	eventType := events.TypeClipMissed
	data := map[string]interface{}{
		"session_id": viewing.Id,
		"story_id":   viewing.StoryId,
		"viewer_id":  viewing.ViewerId,
		"query":      query,
	}
	if res.matched {
		eventType = events.TypeClipMatched
		data["question"] = res.clip.Question
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func toClipView(clip interaction.Clip) dto.ClipView {
	return dto.ClipView{
		Question: clip.Question,
		Category: clip.Category,
		VideoURL: clip.VideoRef,
	}
}

func toClipViews(clips []interaction.Clip) []dto.ClipView {
	views := make([]dto.ClipView, len(clips))
	for i, clip := range clips {
		views[i] = toClipView(clip)
	}
	return views
}
