package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateClipRequest struct {
	Question string `json:"question" validate:"required"`
	Category string `json:"category"`
	FileName string `json:"file_name" validate:"required"`
}

type CreateStoryRequest struct {
	Title       string              `json:"title" validate:"required,max=255"`
	Description string              `json:"description"`
	Topic       string              `json:"topic" validate:"required"`
	Visibility  string              `json:"visibility" validate:"omitempty,oneof=public private"`
	Clips       []CreateClipRequest `json:"clips" validate:"required,min=1,dive"`
}

// ClipUploadTicket carries the presigned PUT details for one clip.
type ClipUploadTicket struct {
	ClipId    uuid.UUID         `json:"clip_id"`
	UploadURL string            `json:"upload_url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
	ObjectKey string            `json:"object_key"`
	ExpiresAt time.Time         `json:"expires_at"`
}

type CreateStoryResponse struct {
	Id      uuid.UUID          `json:"id"`
	Uploads []ClipUploadTicket `json:"uploads"`
}

type ClipResponse struct {
	Id           uuid.UUID `json:"id"`
	Question     string    `json:"question"`
	Category     string    `json:"category"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	DurationSecs int       `json:"duration_secs"`
	Position     int       `json:"position"`
	Status       string    `json:"status"`
}

type StoryResponse struct {
	Id          uuid.UUID              `json:"id"`
	UserId      uuid.UUID              `json:"user_id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Topic       string                 `json:"topic"`
	Visibility  string                 `json:"visibility"`
	Meta        map[string]interface{} `json:"meta,omitempty"`
	ViewCount   int64                  `json:"view_count"`
	LikeCount   int64                  `json:"like_count"`
	SaveCount   int64                  `json:"save_count"`
	CreatedAt   time.Time              `json:"created_at"`
	Clips       []ClipResponse         `json:"clips,omitempty"`
}

type FeedResponse struct {
	Stories []StoryResponse `json:"stories"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
}

// UploadURLRequest asks for a fresh presigned ticket for a pending clip,
// e.g. after the one issued at creation expired.
type UploadURLRequest struct {
	ClipId   uuid.UUID `json:"clip_id" validate:"required"`
	FileName string    `json:"file_name" validate:"required"`
}

type VideoUploadedRequest struct {
	ClipId       uuid.UUID `json:"clip_id" validate:"required"`
	DurationSecs int       `json:"duration_secs"`
	ThumbnailURL string    `json:"thumbnail_url"`
}

type ReorderClipsRequest struct {
	ClipIds []uuid.UUID `json:"clip_ids" validate:"required,min=1"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type CommentResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
