package teamstats

import "context"

type Repository interface {
	List(ctx context.Context) ([]Statistics, error)
	GetByTeamID(ctx context.Context, teamID string) (Statistics, bool, error)
	Insert(ctx context.Context, item Statistics) error
	Update(ctx context.Context, teamID string, mutate func(*Statistics)) (Statistics, bool, error)
	Delete(ctx context.Context, teamID string) (bool, error)
}
