package repository

import (
	"context"

	"enthro-backend/domain/model"
)

// Page is one offset window of a sorted listing.
type Page struct {
	Skip  int64
	Limit int64
}

// IAccount persists accounts and the follower graph. Follower mutations are
// single atomic set-membership updates against the store.
type IAccount interface {
	Exists(ctx context.Context, address string) (bool, error)
	Insert(ctx context.Context, account model.Account) error
	// GetByAddress returns (nil, nil) when no account matches.
	GetByAddress(ctx context.Context, address string) (*model.Account, error)
	AddFollower(ctx context.Context, streamer string, viewer string) error
	RemoveFollower(ctx context.Context, streamer string, viewer string) error
}
