package domain

import (
	"context"

	"careerpath/internal/core/recommend"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Analyze(ctx context.Context, in recommend.Input) recommend.Response
	Explain(ctx context.Context, in recommend.Input) Explanation
}
