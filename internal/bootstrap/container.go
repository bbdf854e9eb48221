package bootstrap

import (
	"context"
	"log"

	"metory-be/internal/config"
	"metory-be/internal/controller"
	"metory-be/internal/handler"
	"metory-be/internal/pkg/logger"
	"metory-be/internal/pkg/mailer"
	"metory-be/internal/repository/memory"
	"metory-be/internal/repository/unitofwork"
	"metory-be/internal/service"
	"metory-be/internal/websocket"
	"metory-be/pkg/storage"

	pktNats "metory-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	OAuthController       controller.IOAuthController
	UserController        controller.IUserController
	StoryController       controller.IStoryController
	InteractionController controller.IInteractionController
	ActivityController    controller.IActivityController
	SuggestionController  controller.ISuggestionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// R2 Object Storage (clip videos live here, uploads are presigned)
	storageClient, err := storage.NewR2Client(
		context.Background(),
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKeyID,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.PublicBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize R2 storage client: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// In-memory viewing sessions; expired sessions close their engines.
	sessionRepo := memory.NewSessionRepository(cfg.Interaction.SessionTTL)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.ViewTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ViewTopic,
		uowFactory,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)
	userService := service.NewUserService(uowFactory, natsPub)
	storyService := service.NewStoryService(uowFactory, storageClient, natsPub, sysLogger)
	interactionService := service.NewInteractionService(
		uowFactory,
		sessionRepo,
		wsHub,
		publisherService,
		natsPub,
		cfg.Interaction.ThinkingDelay,
		sysLogger,
	)
	suggestionService := service.NewSuggestionService()
	activityService := service.NewActivityService(uowFactory, wsHub, sysLogger)

	// 3.5 Event Consumers
	// Social events fan into the activity feed (and out over the hub).
	if natsSub != nil {
		if err := natsSub.Subscribe("events.>", "metory-activity-feed", activityService.HandleEvent); err != nil {
			log.Printf("[WARN] Failed to subscribe to activity events: %v", err)
		}
	}

	// Handler
	streamHandler := handler.NewStreamHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		StreamHandler: streamHandler,
		WebSocketHub:  wsHub,

		AuthController:        controller.NewAuthController(authService),
		OAuthController:       controller.NewOAuthController(oauthService),
		UserController:        controller.NewUserController(userService),
		StoryController:       controller.NewStoryController(storyService),
		InteractionController: controller.NewInteractionController(interactionService),
		ActivityController:    controller.NewActivityController(activityService),
		SuggestionController:  controller.NewSuggestionController(suggestionService),

		ConsumerService: consumerService,
	}
}
