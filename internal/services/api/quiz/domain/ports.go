package domain

import (
	"context"

	"careerpath/internal/core/recommend"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Save(ctx context.Context, in recommend.Input) (SaveResult, error)
	Latest(ctx context.Context) (Latest, error)
	Ensure(ctx context.Context) error
}
