package database

import "context"

// TxManager runs a group of repository writes as one unit. Repositories pick
// up the unit from the context passed to fn.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoopTxManager runs fn directly. It backs stores whose writes are already
// serialized, such as the in-memory store.
type NoopTxManager struct{}

func (NoopTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
