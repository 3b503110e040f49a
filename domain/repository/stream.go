package repository

import (
	"context"

	"enthro-backend/domain/model"
)

// IStream persists streams. Every engagement mutation is issued as one
// atomic conditional update so that concurrent toggles by different viewers
// never lose an update and a viewer sits in at most one of likes/dislikes.
type IStream interface {
	Exists(ctx context.Context, streamAddress string) (bool, error)
	// Create adds the stream address to the streamer's stream set and
	// inserts the stream in one transactional unit.
	Create(ctx context.Context, stream model.Stream) error
	// GetByAddress returns (nil, nil) when no stream matches.
	GetByAddress(ctx context.Context, streamAddress string) (*model.Stream, error)
	// Find returns a window sorted by start_at descending; an empty
	// streamer means no owner filter.
	Find(ctx context.Context, streamer string, page Page) ([]model.Stream, error)
	Count(ctx context.Context, streamer string) (int64, error)

	// Start flips a non-live stream to live and assigns the server/key
	// pair. A stream already live is left untouched.
	Start(ctx context.Context, streamAddress string, server string, key string) error
	// End flips a live stream offline and clears the server/key pair.
	End(ctx context.Context, streamAddress string) error
	// AddViewer records a viewer on a live stream only.
	AddViewer(ctx context.Context, streamAddress string, viewer string) error
	// React adds the viewer to likes (like=true) or dislikes and removes it
	// from the opposite set in the same update. Live streams only.
	React(ctx context.Context, streamAddress string, viewer string, like bool) error
}
