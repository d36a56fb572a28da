package domain

import "context"

// Recorder persists analysis events; other modules receive it as a port
type Recorder interface {
	Record(ctx context.Context, ev AnalysisEvent) error
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Recorder
	Domains(ctx context.Context, in DomainsInput) (DomainsResponse, error)
	Ensure(ctx context.Context) error
}
