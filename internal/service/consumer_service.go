package service

import (
	"context"
	"encoding/json"
	"log"

	"metory-be/internal/dto"
	"metory-be/internal/repository/specification"
	"metory-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process view-record topic and folds the
// counts into the stories table. Views are fire-and-forget from the request
// path; a dropped message costs one count, not a failed request.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RecordViewMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal view message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: payload.StoryId})
	if err != nil {
		log.Printf("[ERROR] Failed to load story %s: %v", payload.StoryId, err)
		msg.Nack()
		return
	}
	if story == nil {
		// Story deleted before the view landed. Ack.
		msg.Ack()
		return
	}

	if err := uow.StoryRepository().IncrementViewCount(ctx, payload.StoryId, 1); err != nil {
		log.Printf("[ERROR] Failed to increment view count for %s: %v", payload.StoryId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
