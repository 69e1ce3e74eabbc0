package usecase

import "context"

// Transactor runs fn atomically. Repository calls made with the context
// handed to fn take part in the transaction; when fn returns an error none of
// its writes are kept.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
