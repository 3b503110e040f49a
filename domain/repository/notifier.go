package repository

import (
	"context"

	"enthro-backend/domain/model"
)

// IStreamNotifier submits fire-and-forget stream lifecycle jobs to a worker
// queue. The catalog core never inspects job outcomes.
type IStreamNotifier interface {
	Notify(ctx context.Context, event model.StreamEvent) error
}
