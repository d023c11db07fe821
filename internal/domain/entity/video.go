package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is a published media item. The file and thumbnail live with an external host.
type Video struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"` // Seconds.
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VideoOwner is the slice of the owner's profile shown next to a video.
type VideoOwner struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
	Avatar   string    `json:"avatar"`
}

// WatchedVideo is one entry of a user's watch history, joined with its owner.
type WatchedVideo struct {
	Video
	Owner *VideoOwner `json:"owner"`
}
