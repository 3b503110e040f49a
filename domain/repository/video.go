package repository

import (
	"context"

	"enthro-backend/domain/model"
)

type IVideo interface {
	Exists(ctx context.Context, videoAddress string) (bool, error)
	// Create adds the video address to the streamer's video set and inserts
	// the video in one transactional unit.
	Create(ctx context.Context, video model.Video) error
	// GetByAddress returns (nil, nil) when no video matches.
	GetByAddress(ctx context.Context, videoAddress string) (*model.Video, error)
	// Find returns a window sorted by created_at descending; an empty
	// streamer means no owner filter.
	Find(ctx context.Context, streamer string, page Page) ([]model.Video, error)
	Count(ctx context.Context, streamer string) (int64, error)

	// React adds the viewer to likes (like=true) or dislikes and removes it
	// from the opposite set in the same update.
	React(ctx context.Context, videoAddress string, viewer string, like bool) error
	// Watch increments the view counter; a non-empty viewer is additionally
	// recorded in the viewer set within the same update.
	Watch(ctx context.Context, videoAddress string, viewer string) error
}
