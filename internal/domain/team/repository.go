package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Insert(ctx context.Context, item Team) (Team, error)
	Update(ctx context.Context, teamID string, mutate func(*Team)) (Team, bool, error)
	Delete(ctx context.Context, teamID string) (Team, bool, error)
}
