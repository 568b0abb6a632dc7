package repositories

import (
	"context"
)

// TransactionManager runs a unit of work atomically.
//
// The open transaction travels inside the context handed to fn, so every
// repository call made with that context joins it. A RunInTx call made with a
// context that already carries a transaction joins the outer one instead of
// starting a new one. If fn returns an error everything is rolled back.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
