package playerstats

import "context"

type Repository interface {
	List(ctx context.Context) ([]Statistics, error)
	GetByPlayerID(ctx context.Context, playerID string) (Statistics, bool, error)
	Insert(ctx context.Context, item Statistics) error
	Update(ctx context.Context, playerID string, mutate func(*Statistics)) (Statistics, bool, error)
	Delete(ctx context.Context, playerID string) (bool, error)
}
