package gqlapi

import (
	"context"

	"github.com/riskibarqy/sports-league/internal/interfaces/gqlapi/dataloaders"
)

// Resolver is the root of both the query and the mutation type.
type Resolver struct {
	services Services
	loaders  *dataloaders.Factory
}

// loadersFor returns the operation's loaders. Operations executed without
// Service.Exec get a set of their own.
func (r *Resolver) loadersFor(ctx context.Context) *dataloaders.Loaders {
	if loaders, ok := dataloaders.FromContext(ctx); ok {
		return loaders
	}
	return r.loaders.New()
}

func optionalInt(v *int32) *int {
	if v == nil {
		return nil
	}
	out := int(*v)
	return &out
}

func optionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func nonEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
