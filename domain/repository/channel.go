package repository

import (
	"context"

	"enthro-backend/domain/model"
)

type IChannel interface {
	Exists(ctx context.Context, owner string) (bool, error)
	// Create stamps the owning account with the channel back-reference and
	// inserts the channel in one transactional unit.
	Create(ctx context.Context, channel model.Channel) error
	// GetByOwner returns (nil, nil) when no channel matches.
	GetByOwner(ctx context.Context, owner string) (*model.Channel, error)
	Find(ctx context.Context, page Page) ([]model.Channel, error)
	Count(ctx context.Context) (int64, error)
}
