package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"metory-be/internal/entity"
	"metory-be/internal/repository/specification"
	"metory-be/internal/repository/unitofwork"
	"metory-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.StoryRepository())
	assert.NotNil(t, uow.ClipRepository())
	assert.NotNil(t, uow.ActivityRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Transactional Story Creation", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			Username: "it_" + uuid.New().String()[:8],
			FullName: "Integration Test User",
			Status:   entity.UserStatusActive,
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		txUow := uowFactory.NewUnitOfWork(ctx)
		err = txUow.Begin(ctx)
		assert.NoError(t, err)
		defer txUow.Rollback()

		story := &entity.Story{
			Id:         uuid.New(),
			UserId:     user.Id,
			Title:      "Integration Story",
			Topic:      "Du lịch",
			Visibility: "public",
		}
		err = txUow.StoryRepository().Create(ctx, story)
		assert.NoError(t, err)

		clip := &entity.Clip{
			Id:       uuid.New(),
			StoryId:  story.Id,
			Question: "Giới thiệu về chuyến đi này?",
			Category: "Tổng quan",
			Position: 0,
			Status:   entity.ClipStatusPending,
		}
		err = txUow.ClipRepository().Create(ctx, clip)
		assert.NoError(t, err)

		err = txUow.Commit()
		assert.NoError(t, err)

		// Read back through the preload path used by the feed.
		found, err := uow.StoryRepository().FindOne(ctx,
			specification.ByID{ID: story.Id},
			specification.WithClips{},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, "Integration Story", found.Title)
			assert.Len(t, found.Clips, 1)
		}

		// Cleanup
		_ = uow.StoryRepository().Delete(ctx, story.Id)
		_ = uow.UserRepository().Delete(ctx, user.Id)
	})

	t.Run("Check Saves And Comments", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-social-" + uuid.New().String() + "@example.com",
			Username: "it_" + uuid.New().String()[:8],
			FullName: "Integration Social User",
			Status:   entity.UserStatusActive,
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		story := &entity.Story{
			Id:         uuid.New(),
			UserId:     user.Id,
			Title:      "Saved Story",
			Topic:      "Ẩm thực",
			Visibility: "public",
		}
		err = uow.StoryRepository().Create(ctx, story)
		assert.NoError(t, err)

		save := &entity.StorySave{Id: uuid.New(), UserId: user.Id, StoryId: story.Id}
		err = uow.StoryRepository().CreateSave(ctx, save)
		assert.NoError(t, err)

		saved, err := uow.StoryRepository().HasSaved(ctx, user.Id, story.Id)
		assert.NoError(t, err)
		assert.True(t, saved)

		stories, err := uow.StoryRepository().FindSaved(ctx, user.Id, 10, 0)
		assert.NoError(t, err)
		if assert.Len(t, stories, 1) {
			assert.Equal(t, "Saved Story", stories[0].Title)
		}

		total, err := uow.StoryRepository().CountSaved(ctx, user.Id)
		assert.NoError(t, err)
		assert.EqualValues(t, 1, total)

		comment := &entity.StoryComment{
			Id:      uuid.New(),
			UserId:  user.Id,
			StoryId: story.Id,
			Content: "Tuyệt vời!",
		}
		err = uow.StoryRepository().CreateComment(ctx, comment)
		assert.NoError(t, err)

		comments, err := uow.StoryRepository().FindComments(ctx, story.Id, 10, 0)
		assert.NoError(t, err)
		if assert.Len(t, comments, 1) {
			assert.Equal(t, "Tuyệt vời!", comments[0].Content)
		}

		// Cleanup
		_ = uow.StoryRepository().DeleteSave(ctx, user.Id, story.Id)
		_ = uow.StoryRepository().Delete(ctx, story.Id)
		_ = uow.UserRepository().Delete(ctx, user.Id)
	})
}
