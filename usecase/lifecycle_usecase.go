package usecase

import (
	"context"
	"errors"
	"time"

	"enthro-backend/domain/model"
	"enthro-backend/domain/repository"
	"enthro-backend/infrastructure/cache"
	"enthro-backend/infrastructure/logger"
)

var (
	// ErrDuplicate signals a creation attempted on an existing primary key.
	ErrDuplicate = errors.New("record already exists")
	// ErrNotFound signals a missing lookup target. Store failures propagate
	// as their own errors so callers can tell the two apart.
	ErrNotFound = errors.New("record not found")
)

type ILifecycleUsecase interface {
	CreateAccount(ctx context.Context, account model.Account) (*model.Account, error)
	CreateChannel(ctx context.Context, channel model.Channel) (*model.Channel, error)
	CreateStream(ctx context.Context, stream model.Stream) (*model.Stream, error)
	UploadVideo(ctx context.Context, video model.Video) (*model.Video, error)
	StartStream(ctx context.Context, streamAddress, server, key string) error
	EndStream(ctx context.Context, streamAddress string) error
}

type lifecycleUsecase struct {
	accountRepo repository.IAccount
	channelRepo repository.IChannel
	streamRepo  repository.IStream
	videoRepo   repository.IVideo
	notifier    repository.IStreamNotifier
	lookupCache cache.ICatalogCache
}

func NewLifecycleUsecase(
	accountRepo repository.IAccount,
	channelRepo repository.IChannel,
	streamRepo repository.IStream,
	videoRepo repository.IVideo,
	notifier repository.IStreamNotifier,
	lookupCache cache.ICatalogCache,
) ILifecycleUsecase {
	return &lifecycleUsecase{
		accountRepo: accountRepo,
		channelRepo: channelRepo,
		streamRepo:  streamRepo,
		videoRepo:   videoRepo,
		notifier:    notifier,
		lookupCache: lookupCache,
	}
}

func (u *lifecycleUsecase) CreateAccount(ctx context.Context, account model.Account) (*model.Account, error) {
	exists, err := u.accountRepo.Exists(ctx, account.Address)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	account.CreatedAt = time.Now()
	account.Followers = []string{}
	account.Videos = []string{}
	account.Streams = []string{}
	account.Channel = nil
	account.ChannelInfo = nil

	if err := u.accountRepo.Insert(ctx, account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (u *lifecycleUsecase) CreateChannel(ctx context.Context, channel model.Channel) (*model.Channel, error) {
	exists, err := u.channelRepo.Exists(ctx, channel.Owner)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	channel.CreatedAt = time.Now()
	channel.OwnerInfo = nil

	if err := u.channelRepo.Create(ctx, channel); err != nil {
		return nil, err
	}
	u.lookupCache.Delete(ctx, accountKey(channel.Owner))
	return &channel, nil
}

func (u *lifecycleUsecase) CreateStream(ctx context.Context, stream model.Stream) (*model.Stream, error) {
	exists, err := u.streamRepo.Exists(ctx, stream.StreamAddress)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	stream.CreatedAt = time.Now()
	stream.Live = false
	stream.StreamServer = nil
	stream.StreamKey = nil
	stream.Viewers = []string{}
	stream.Likes = []string{}
	stream.Dislikes = []string{}
	stream.Owner = nil

	if err := u.streamRepo.Create(ctx, stream); err != nil {
		return nil, err
	}
	u.notify(ctx, model.StreamEvent{StreamAddress: stream.StreamAddress, Started: false})
	u.lookupCache.Delete(ctx, accountKey(stream.Streamer))
	return &stream, nil
}

func (u *lifecycleUsecase) UploadVideo(ctx context.Context, video model.Video) (*model.Video, error) {
	exists, err := u.videoRepo.Exists(ctx, video.VideoAddress)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	video.CreatedAt = time.Now()
	video.Views = 0
	video.Viewers = []string{}
	video.Likes = []string{}
	video.Dislikes = []string{}
	video.Owner = nil

	if err := u.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}
	u.lookupCache.Delete(ctx, accountKey(video.Streamer))
	return &video, nil
}

// StartStream assigns the server/key pair and flips the stream live. The
// underlying update is guarded on the offline state, so starting an already
// live stream changes nothing.
func (u *lifecycleUsecase) StartStream(ctx context.Context, streamAddress, server, key string) error {
	if err := u.streamRepo.Start(ctx, streamAddress, server, key); err != nil {
		return err
	}
	u.notify(ctx, model.StreamEvent{StreamAddress: streamAddress, Started: true})
	u.lookupCache.Delete(ctx, streamKey(streamAddress))
	return nil
}

func (u *lifecycleUsecase) EndStream(ctx context.Context, streamAddress string) error {
	if err := u.streamRepo.End(ctx, streamAddress); err != nil {
		return err
	}
	u.notify(ctx, model.StreamEvent{StreamAddress: streamAddress, Started: false})
	u.lookupCache.Delete(ctx, streamKey(streamAddress))
	return nil
}

// notify is fire-and-forget: a queue outage never fails the transition.
func (u *lifecycleUsecase) notify(ctx context.Context, event model.StreamEvent) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, event); err != nil {
		logger.GetLogger().
			WithField("error", err).
			WithField("streamAddress", event.StreamAddress).
			Error("Error while submitting stream event")
	}
}
