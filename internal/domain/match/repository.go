package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Insert(ctx context.Context, item Match) (Match, error)
	Update(ctx context.Context, matchID string, mutate func(*Match)) (Match, bool, error)
	Delete(ctx context.Context, matchID string) (Match, bool, error)
}

// EventRepository stores match events. Events are never updated or removed.
type EventRepository interface {
	List(ctx context.Context) ([]Event, error)
	ListByMatch(ctx context.Context, matchID string) ([]Event, error)
	Insert(ctx context.Context, item Event) (Event, error)
}
