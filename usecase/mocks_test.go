package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"enthro-backend/domain/model"
	"enthro-backend/domain/repository"
)

// Mock implementations

type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Exists(ctx context.Context, address string) (bool, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepo) Insert(ctx context.Context, account model.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepo) GetByAddress(ctx context.Context, address string) (*model.Account, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepo) AddFollower(ctx context.Context, streamer, viewer string) error {
	args := m.Called(ctx, streamer, viewer)
	return args.Error(0)
}

func (m *MockAccountRepo) RemoveFollower(ctx context.Context, streamer, viewer string) error {
	args := m.Called(ctx, streamer, viewer)
	return args.Error(0)
}

type MockChannelRepo struct {
	mock.Mock
}

func (m *MockChannelRepo) Exists(ctx context.Context, owner string) (bool, error) {
	args := m.Called(ctx, owner)
	return args.Bool(0), args.Error(1)
}

func (m *MockChannelRepo) Create(ctx context.Context, channel model.Channel) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *MockChannelRepo) GetByOwner(ctx context.Context, owner string) (*model.Channel, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Channel), args.Error(1)
}

func (m *MockChannelRepo) Find(ctx context.Context, page repository.Page) ([]model.Channel, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Channel), args.Error(1)
}

func (m *MockChannelRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockStreamRepo struct {
	mock.Mock
}

func (m *MockStreamRepo) Exists(ctx context.Context, streamAddress string) (bool, error) {
	args := m.Called(ctx, streamAddress)
	return args.Bool(0), args.Error(1)
}

func (m *MockStreamRepo) Create(ctx context.Context, stream model.Stream) error {
	args := m.Called(ctx, stream)
	return args.Error(0)
}

func (m *MockStreamRepo) GetByAddress(ctx context.Context, streamAddress string) (*model.Stream, error) {
	args := m.Called(ctx, streamAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stream), args.Error(1)
}

func (m *MockStreamRepo) Find(ctx context.Context, streamer string, page repository.Page) ([]model.Stream, error) {
	args := m.Called(ctx, streamer, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Stream), args.Error(1)
}

func (m *MockStreamRepo) Count(ctx context.Context, streamer string) (int64, error) {
	args := m.Called(ctx, streamer)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStreamRepo) Start(ctx context.Context, streamAddress, server, key string) error {
	args := m.Called(ctx, streamAddress, server, key)
	return args.Error(0)
}

func (m *MockStreamRepo) End(ctx context.Context, streamAddress string) error {
	args := m.Called(ctx, streamAddress)
	return args.Error(0)
}

func (m *MockStreamRepo) AddViewer(ctx context.Context, streamAddress, viewer string) error {
	args := m.Called(ctx, streamAddress, viewer)
	return args.Error(0)
}

func (m *MockStreamRepo) React(ctx context.Context, streamAddress, viewer string, like bool) error {
	args := m.Called(ctx, streamAddress, viewer, like)
	return args.Error(0)
}

type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) Exists(ctx context.Context, videoAddress string) (bool, error) {
	args := m.Called(ctx, videoAddress)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepo) Create(ctx context.Context, video model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepo) GetByAddress(ctx context.Context, videoAddress string) (*model.Video, error) {
	args := m.Called(ctx, videoAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepo) Find(ctx context.Context, streamer string, page repository.Page) ([]model.Video, error) {
	args := m.Called(ctx, streamer, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoRepo) Count(ctx context.Context, streamer string) (int64, error) {
	args := m.Called(ctx, streamer)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepo) React(ctx context.Context, videoAddress, viewer string, like bool) error {
	args := m.Called(ctx, videoAddress, viewer, like)
	return args.Error(0)
}

func (m *MockVideoRepo) Watch(ctx context.Context, videoAddress, viewer string) error {
	args := m.Called(ctx, videoAddress, viewer)
	return args.Error(0)
}

type MockStreamNotifier struct {
	mock.Mock
}

func (m *MockStreamNotifier) Notify(ctx context.Context, event model.StreamEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) Get(ctx context.Context, key string, dest interface{}) bool {
	args := m.Called(ctx, key, dest)
	return args.Bool(0)
}

func (m *MockCatalogCache) Set(ctx context.Context, key string, value interface{}) {
	m.Called(ctx, key, value)
}

func (m *MockCatalogCache) Delete(ctx context.Context, keys ...string) {
	callArgs := make([]interface{}, 0, len(keys)+1)
	callArgs = append(callArgs, ctx)
	for _, k := range keys {
		callArgs = append(callArgs, k)
	}
	m.Called(callArgs...)
}

// passthroughCache is a no-op cache for tests that don't exercise caching.
type passthroughCache struct{}

func (passthroughCache) Get(ctx context.Context, key string, dest interface{}) bool { return false }
func (passthroughCache) Set(ctx context.Context, key string, value interface{})     {}
func (passthroughCache) Delete(ctx context.Context, keys ...string)                 {}
