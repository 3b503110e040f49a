package usecase

import (
	"context"

	"enthro-backend/domain/model"
	"enthro-backend/domain/repository"
	"enthro-backend/infrastructure/cache"
)

// IQueryUsecase serves bounded listing windows with paging metadata and
// single-item lookups, both with the owner/channel hydration applied by the
// store layer. The page size is injected at construction.
type IQueryUsecase interface {
	GetStreams(ctx context.Context, page int64, streamer string) (*model.Paged[model.Stream], error)
	GetVideos(ctx context.Context, page int64, streamer string) (*model.Paged[model.Video], error)
	GetChannels(ctx context.Context, page int64) (*model.Paged[model.Channel], error)
	GetStream(ctx context.Context, streamAddress string) (*model.Stream, error)
	GetVideo(ctx context.Context, videoAddress string) (*model.Video, error)
	GetAccount(ctx context.Context, address string) (*model.Account, error)
	GetChannel(ctx context.Context, owner string) (*model.Channel, error)
}

type queryUsecase struct {
	accountRepo repository.IAccount
	channelRepo repository.IChannel
	streamRepo  repository.IStream
	videoRepo   repository.IVideo
	lookupCache cache.ICatalogCache
	pageSize    int64
}

func NewQueryUsecase(
	accountRepo repository.IAccount,
	channelRepo repository.IChannel,
	streamRepo repository.IStream,
	videoRepo repository.IVideo,
	lookupCache cache.ICatalogCache,
	pageSize int64,
) IQueryUsecase {
	return &queryUsecase{
		accountRepo: accountRepo,
		channelRepo: channelRepo,
		streamRepo:  streamRepo,
		videoRepo:   videoRepo,
		lookupCache: lookupCache,
		pageSize:    pageSize,
	}
}

func (u *queryUsecase) GetStreams(ctx context.Context, page int64, streamer string) (*model.Paged[model.Stream], error) {
	total, err := u.streamRepo.Count(ctx, streamer)
	if err != nil {
		return nil, err
	}
	data, err := u.streamRepo.Find(ctx, streamer, u.window(page))
	if err != nil {
		return nil, err
	}
	return &model.Paged[model.Stream]{Total: total, LastPage: u.lastPage(total), Data: data}, nil
}

func (u *queryUsecase) GetVideos(ctx context.Context, page int64, streamer string) (*model.Paged[model.Video], error) {
	total, err := u.videoRepo.Count(ctx, streamer)
	if err != nil {
		return nil, err
	}
	data, err := u.videoRepo.Find(ctx, streamer, u.window(page))
	if err != nil {
		return nil, err
	}
	return &model.Paged[model.Video]{Total: total, LastPage: u.lastPage(total), Data: data}, nil
}

func (u *queryUsecase) GetChannels(ctx context.Context, page int64) (*model.Paged[model.Channel], error) {
	total, err := u.channelRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	data, err := u.channelRepo.Find(ctx, u.window(page))
	if err != nil {
		return nil, err
	}
	return &model.Paged[model.Channel]{Total: total, LastPage: u.lastPage(total), Data: data}, nil
}

func (u *queryUsecase) GetStream(ctx context.Context, streamAddress string) (*model.Stream, error) {
	key := streamKey(streamAddress)
	var cached model.Stream
	if u.lookupCache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	stream, err := u.streamRepo.GetByAddress(ctx, streamAddress)
	if err != nil {
		return nil, err
	}
	if stream == nil {
		return nil, ErrNotFound
	}
	u.lookupCache.Set(ctx, key, stream)
	return stream, nil
}

func (u *queryUsecase) GetVideo(ctx context.Context, videoAddress string) (*model.Video, error) {
	key := videoKey(videoAddress)
	var cached model.Video
	if u.lookupCache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	video, err := u.videoRepo.GetByAddress(ctx, videoAddress)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrNotFound
	}
	u.lookupCache.Set(ctx, key, video)
	return video, nil
}

func (u *queryUsecase) GetAccount(ctx context.Context, address string) (*model.Account, error) {
	key := accountKey(address)
	var cached model.Account
	if u.lookupCache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	account, err := u.accountRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}
	u.lookupCache.Set(ctx, key, account)
	return account, nil
}

func (u *queryUsecase) GetChannel(ctx context.Context, owner string) (*model.Channel, error) {
	key := channelKey(owner)
	var cached model.Channel
	if u.lookupCache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	channel, err := u.channelRepo.GetByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, ErrNotFound
	}
	u.lookupCache.Set(ctx, key, channel)
	return channel, nil
}

// window converts a 1-indexed page into an offset window. Pages below 1
// clamp to the first window.
func (u *queryUsecase) window(page int64) repository.Page {
	if page < 1 {
		page = 1
	}
	return repository.Page{Skip: (page - 1) * u.pageSize, Limit: u.pageSize}
}

func (u *queryUsecase) lastPage(total int64) int64 {
	return (total + u.pageSize - 1) / u.pageSize
}

func accountKey(address string) string { return "account:" + address }
func channelKey(owner string) string   { return "channel:" + owner }
func streamKey(address string) string  { return "stream:" + address }
func videoKey(address string) string   { return "video:" + address }
