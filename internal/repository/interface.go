package repository

import "context"

// DB is the minimal interface for checking database liveness.
type DB interface {
	Ping(ctx context.Context) error
}
