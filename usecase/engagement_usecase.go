package usecase

import (
	"context"

	"enthro-backend/domain/repository"
)

// IEngagementUsecase applies idempotent set-membership toggles. Every call
// maps to exactly one atomic store update; repeating a call has no further
// effect. An empty viewer means no authenticated actor is present.
type IEngagementUsecase interface {
	Follow(ctx context.Context, streamer, viewer string) error
	Unfollow(ctx context.Context, streamer, viewer string) error
	JoinStream(ctx context.Context, viewer, streamAddress string) error
	LikeStream(ctx context.Context, viewer, streamAddress string) error
	DislikeStream(ctx context.Context, viewer, streamAddress string) error
	LikeVideo(ctx context.Context, viewer, videoAddress string) error
	DislikeVideo(ctx context.Context, viewer, videoAddress string) error
	WatchVideo(ctx context.Context, viewer, videoAddress string) error
}

type engagementUsecase struct {
	accountRepo repository.IAccount
	streamRepo  repository.IStream
	videoRepo   repository.IVideo
}

func NewEngagementUsecase(
	accountRepo repository.IAccount,
	streamRepo repository.IStream,
	videoRepo repository.IVideo,
) IEngagementUsecase {
	return &engagementUsecase{
		accountRepo: accountRepo,
		streamRepo:  streamRepo,
		videoRepo:   videoRepo,
	}
}

func (u *engagementUsecase) Follow(ctx context.Context, streamer, viewer string) error {
	return u.accountRepo.AddFollower(ctx, streamer, viewer)
}

func (u *engagementUsecase) Unfollow(ctx context.Context, streamer, viewer string) error {
	return u.accountRepo.RemoveFollower(ctx, streamer, viewer)
}

// JoinStream records an identified viewer on a live stream. Anonymous viewers
// and non-live streams are quietly ignored; the caller still sees success.
func (u *engagementUsecase) JoinStream(ctx context.Context, viewer, streamAddress string) error {
	if viewer == "" {
		return nil
	}
	return u.streamRepo.AddViewer(ctx, streamAddress, viewer)
}

func (u *engagementUsecase) LikeStream(ctx context.Context, viewer, streamAddress string) error {
	return u.streamRepo.React(ctx, streamAddress, viewer, true)
}

func (u *engagementUsecase) DislikeStream(ctx context.Context, viewer, streamAddress string) error {
	return u.streamRepo.React(ctx, streamAddress, viewer, false)
}

func (u *engagementUsecase) LikeVideo(ctx context.Context, viewer, videoAddress string) error {
	return u.videoRepo.React(ctx, videoAddress, viewer, true)
}

func (u *engagementUsecase) DislikeVideo(ctx context.Context, viewer, videoAddress string) error {
	return u.videoRepo.React(ctx, videoAddress, viewer, false)
}

// WatchVideo always bumps the view counter; only an identified viewer is
// added to the viewer set.
func (u *engagementUsecase) WatchVideo(ctx context.Context, viewer, videoAddress string) error {
	return u.videoRepo.Watch(ctx, videoAddress, viewer)
}
