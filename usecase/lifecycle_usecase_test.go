package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"enthro-backend/domain/model"
	"enthro-backend/usecase"
)

func newLifecycle(
	accountRepo *MockAccountRepo,
	channelRepo *MockChannelRepo,
	streamRepo *MockStreamRepo,
	videoRepo *MockVideoRepo,
	notifier *MockStreamNotifier,
) usecase.ILifecycleUsecase {
	return usecase.NewLifecycleUsecase(accountRepo, channelRepo, streamRepo, videoRepo, notifier, passthroughCache{})
}

func TestCreateAccount(t *testing.T) {
	t.Run("first creation succeeds with empty sets", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		accountRepo.On("Exists", mock.Anything, "0xabc").Return(false, nil).Once()
		accountRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a model.Account) bool {
			return a.Address == "0xabc" &&
				len(a.Followers) == 0 && a.Followers != nil &&
				len(a.Videos) == 0 && len(a.Streams) == 0 &&
				a.Channel == nil && !a.CreatedAt.IsZero()
		})).Return(nil).Once()

		uc := newLifecycle(accountRepo, new(MockChannelRepo), new(MockStreamRepo), new(MockVideoRepo), new(MockStreamNotifier))
		created, err := uc.CreateAccount(context.Background(), model.Account{Address: "0xabc", Name: "alice"})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "0xabc", created.Address)
		accountRepo.AssertExpectations(t)
	})

	t.Run("second creation signals duplicate without inserting", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		accountRepo.On("Exists", mock.Anything, "0xabc").Return(true, nil).Once()

		uc := newLifecycle(accountRepo, new(MockChannelRepo), new(MockStreamRepo), new(MockVideoRepo), new(MockStreamNotifier))
		created, err := uc.CreateAccount(context.Background(), model.Account{Address: "0xabc", Name: "alice"})

		require.ErrorIs(t, err, usecase.ErrDuplicate)
		assert.Nil(t, created)
		accountRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("store failure propagates instead of masquerading as duplicate", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		storeErr := errors.New("connection reset")
		accountRepo.On("Exists", mock.Anything, "0xabc").Return(false, storeErr).Once()

		uc := newLifecycle(accountRepo, new(MockChannelRepo), new(MockStreamRepo), new(MockVideoRepo), new(MockStreamNotifier))
		_, err := uc.CreateAccount(context.Background(), model.Account{Address: "0xabc"})

		require.ErrorIs(t, err, storeErr)
		require.NotErrorIs(t, err, usecase.ErrDuplicate)
	})
}

func TestCreateChannel(t *testing.T) {
	t.Run("one channel per account", func(t *testing.T) {
		channelRepo := new(MockChannelRepo)
		channelRepo.On("Exists", mock.Anything, "0xabc").Return(true, nil).Once()

		uc := newLifecycle(new(MockAccountRepo), channelRepo, new(MockStreamRepo), new(MockVideoRepo), new(MockStreamNotifier))
		created, err := uc.CreateChannel(context.Background(), model.Channel{Owner: "0xabc", Name: "my channel"})

		require.ErrorIs(t, err, usecase.ErrDuplicate)
		assert.Nil(t, created)
		channelRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("creation stamps created_at", func(t *testing.T) {
		channelRepo := new(MockChannelRepo)
		channelRepo.On("Exists", mock.Anything, "0xabc").Return(false, nil).Once()
		channelRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Channel) bool {
			return c.Owner == "0xabc" && !c.CreatedAt.IsZero()
		})).Return(nil).Once()

		uc := newLifecycle(new(MockAccountRepo), channelRepo, new(MockStreamRepo), new(MockVideoRepo), new(MockStreamNotifier))
		created, err := uc.CreateChannel(context.Background(), model.Channel{Owner: "0xabc", Name: "my channel"})

		require.NoError(t, err)
		require.NotNil(t, created)
		channelRepo.AssertExpectations(t)
	})
}

func TestCreateStream(t *testing.T) {
	t.Run("new stream starts offline with no server or key", func(t *testing.T) {
		streamRepo := new(MockStreamRepo)
		notifier := new(MockStreamNotifier)
		streamRepo.On("Exists", mock.Anything, "stream-1").Return(false, nil).Once()
		streamRepo.On("Create", mock.Anything, mock.MatchedBy(func(s model.Stream) bool {
			return s.StreamAddress == "stream-1" && !s.Live &&
				s.StreamServer == nil && s.StreamKey == nil &&
				s.Viewers != nil && s.Likes != nil && s.Dislikes != nil
		})).Return(nil).Once()
		notifier.On("Notify", mock.Anything, model.StreamEvent{StreamAddress: "stream-1", Started: false}).
			Return(nil).Once()

		uc := newLifecycle(new(MockAccountRepo), new(MockChannelRepo), streamRepo, new(MockVideoRepo), notifier)
		server := "rtmp://leaked"
		created, err := uc.CreateStream(context.Background(), model.Stream{
			StreamAddress: "stream-1",
			Streamer:      "0xabc",
			Live:          true,
			StreamServer:  &server,
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.False(t, created.Live, "client-supplied live flag must be ignored")
		streamRepo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("duplicate stream address is rejected before any write", func(t *testing.T) {
		streamRepo := new(MockStreamRepo)
		notifier := new(MockStreamNotifier)
		streamRepo.On("Exists", mock.Anything, "stream-1").Return(true, nil).Once()

		uc := newLifecycle(new(MockAccountRepo), new(MockChannelRepo), streamRepo, new(MockVideoRepo), notifier)
		_, err := uc.CreateStream(context.Background(), model.Stream{StreamAddress: "stream-1"})

		require.ErrorIs(t, err, usecase.ErrDuplicate)
		streamRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})
}

func TestUploadVideo(t *testing.T) {
	videoRepo := new(MockVideoRepo)
	videoRepo.On("Exists", mock.Anything, "video-1").Return(false, nil).Once()
	videoRepo.On("Create", mock.Anything, mock.MatchedBy(func(v model.Video) bool {
		return v.VideoAddress == "video-1" && v.Views == 0 &&
			v.Viewers != nil && v.Likes != nil && v.Dislikes != nil
	})).Return(nil).Once()

	uc := newLifecycle(new(MockAccountRepo), new(MockChannelRepo), new(MockStreamRepo), videoRepo, new(MockStreamNotifier))
	created, err := uc.UploadVideo(context.Background(), model.Video{VideoAddress: "video-1", Streamer: "0xabc", Views: 99})

	require.NoError(t, err)
	assert.Equal(t, int64(0), created.Views, "view counter starts at zero")
	videoRepo.AssertExpectations(t)
}

func TestStreamTransitions(t *testing.T) {
	t.Run("start submits a started event", func(t *testing.T) {
		streamRepo := new(MockStreamRepo)
		notifier := new(MockStreamNotifier)
		streamRepo.On("Start", mock.Anything, "stream-1", "rtmp://x", "key1").Return(nil).Once()
		notifier.On("Notify", mock.Anything, model.StreamEvent{StreamAddress: "stream-1", Started: true}).
			Return(nil).Once()

		uc := newLifecycle(new(MockAccountRepo), new(MockChannelRepo), streamRepo, new(MockVideoRepo), notifier)
		require.NoError(t, uc.StartStream(context.Background(), "stream-1", "rtmp://x", "key1"))

		streamRepo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("end submits a stopped event", func(t *testing.T) {
		streamRepo := new(MockStreamRepo)
		notifier := new(MockStreamNotifier)
		streamRepo.On("End", mock.Anything, "stream-1").Return(nil).Once()
		notifier.On("Notify", mock.Anything, model.StreamEvent{StreamAddress: "stream-1", Started: false}).
			Return(nil).Once()

		uc := newLifecycle(new(MockAccountRepo), new(MockChannelRepo), streamRepo, new(MockVideoRepo), notifier)
		require.NoError(t, uc.EndStream(context.Background(), "stream-1"))

		notifier.AssertExpectations(t)
	})

	t.Run("queue outage never fails the transition", func(t *testing.T) {
		streamRepo := new(MockStreamRepo)
		notifier := new(MockStreamNotifier)
		streamRepo.On("Start", mock.Anything, "stream-1", "rtmp://x", "key1").Return(nil).Once()
		notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("queue unreachable")).Once()

		uc := newLifecycle(new(MockAccountRepo), new(MockChannelRepo), streamRepo, new(MockVideoRepo), notifier)
		require.NoError(t, uc.StartStream(context.Background(), "stream-1", "rtmp://x", "key1"))
	})

	t.Run("nil notifier is tolerated", func(t *testing.T) {
		streamRepo := new(MockStreamRepo)
		streamRepo.On("End", mock.Anything, "stream-1").Return(nil).Once()

		uc := usecase.NewLifecycleUsecase(new(MockAccountRepo), new(MockChannelRepo), streamRepo, new(MockVideoRepo), nil, passthroughCache{})
		require.NoError(t, uc.EndStream(context.Background(), "stream-1"))
	})
}
