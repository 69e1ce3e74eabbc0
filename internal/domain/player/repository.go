package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Insert(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, playerID string, mutate func(*Player)) (Player, bool, error)
	Delete(ctx context.Context, playerID string) (Player, bool, error)
}
