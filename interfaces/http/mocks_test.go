package http

import (
	"context"

	"github.com/stretchr/testify/mock"
	"enthro-backend/domain/model"
)

type MockLifecycleUsecase struct {
	mock.Mock
}

func (m *MockLifecycleUsecase) CreateAccount(ctx context.Context, account model.Account) (*model.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockLifecycleUsecase) CreateChannel(ctx context.Context, channel model.Channel) (*model.Channel, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Channel), args.Error(1)
}

func (m *MockLifecycleUsecase) CreateStream(ctx context.Context, stream model.Stream) (*model.Stream, error) {
	args := m.Called(ctx, stream)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stream), args.Error(1)
}

func (m *MockLifecycleUsecase) UploadVideo(ctx context.Context, video model.Video) (*model.Video, error) {
	args := m.Called(ctx, video)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockLifecycleUsecase) StartStream(ctx context.Context, streamAddress, server, key string) error {
	args := m.Called(ctx, streamAddress, server, key)
	return args.Error(0)
}

func (m *MockLifecycleUsecase) EndStream(ctx context.Context, streamAddress string) error {
	args := m.Called(ctx, streamAddress)
	return args.Error(0)
}

type MockEngagementUsecase struct {
	mock.Mock
}

func (m *MockEngagementUsecase) Follow(ctx context.Context, streamer, viewer string) error {
	args := m.Called(ctx, streamer, viewer)
	return args.Error(0)
}

func (m *MockEngagementUsecase) Unfollow(ctx context.Context, streamer, viewer string) error {
	args := m.Called(ctx, streamer, viewer)
	return args.Error(0)
}

func (m *MockEngagementUsecase) JoinStream(ctx context.Context, viewer, streamAddress string) error {
	args := m.Called(ctx, viewer, streamAddress)
	return args.Error(0)
}

func (m *MockEngagementUsecase) LikeStream(ctx context.Context, viewer, streamAddress string) error {
	args := m.Called(ctx, viewer, streamAddress)
	return args.Error(0)
}

func (m *MockEngagementUsecase) DislikeStream(ctx context.Context, viewer, streamAddress string) error {
	args := m.Called(ctx, viewer, streamAddress)
	return args.Error(0)
}

func (m *MockEngagementUsecase) LikeVideo(ctx context.Context, viewer, videoAddress string) error {
	args := m.Called(ctx, viewer, videoAddress)
	return args.Error(0)
}

func (m *MockEngagementUsecase) DislikeVideo(ctx context.Context, viewer, videoAddress string) error {
	args := m.Called(ctx, viewer, videoAddress)
	return args.Error(0)
}

func (m *MockEngagementUsecase) WatchVideo(ctx context.Context, viewer, videoAddress string) error {
	args := m.Called(ctx, viewer, videoAddress)
	return args.Error(0)
}

type MockQueryUsecase struct {
	mock.Mock
}

func (m *MockQueryUsecase) GetStreams(ctx context.Context, page int64, streamer string) (*model.Paged[model.Stream], error) {
	args := m.Called(ctx, page, streamer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paged[model.Stream]), args.Error(1)
}

func (m *MockQueryUsecase) GetVideos(ctx context.Context, page int64, streamer string) (*model.Paged[model.Video], error) {
	args := m.Called(ctx, page, streamer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paged[model.Video]), args.Error(1)
}

func (m *MockQueryUsecase) GetChannels(ctx context.Context, page int64) (*model.Paged[model.Channel], error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paged[model.Channel]), args.Error(1)
}

func (m *MockQueryUsecase) GetStream(ctx context.Context, streamAddress string) (*model.Stream, error) {
	args := m.Called(ctx, streamAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stream), args.Error(1)
}

func (m *MockQueryUsecase) GetVideo(ctx context.Context, videoAddress string) (*model.Video, error) {
	args := m.Called(ctx, videoAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockQueryUsecase) GetAccount(ctx context.Context, address string) (*model.Account, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockQueryUsecase) GetChannel(ctx context.Context, owner string) (*model.Channel, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Channel), args.Error(1)
}
