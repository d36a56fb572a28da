// Package module wires stats into the API using modkit
package module

import (
	"context"
	"time"

	modkit "careerpath/internal/modkit"
	phttp "careerpath/internal/platform/net/http"
	statshttp "careerpath/internal/services/api/stats/http"
	statsrepo "careerpath/internal/services/api/stats/repo"
	statssvc "careerpath/internal/services/api/stats/service"
)

// Module implements the stats module
type Module struct {
	modkit.Base
	svc     *statssvc.Svc
	batcher *statssvc.Batcher
}

// New constructs the stats module; without clickhouse it records nothing and reads 503
// recorded events are only written while Run is active
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	svc := statssvc.New(statsrepo.NewCH(deps.CH))
	b := statssvc.NewBatcher(svc, statssvc.BatchOptions{
		Size:  deps.Cfg.MayInt("STATS_BATCH_SIZE", 256),
		Every: deps.Cfg.MayDuration("STATS_FLUSH_EVERY", 2*time.Second),
		Queue: deps.Cfg.MayInt("STATS_QUEUE", 4096),
	})
	m := &Module{Base: modkit.NewBase("stats", "/stats", opts...), svc: svc, batcher: b}
	m.Built.Ports = Ports{Service: svc, Recorder: b}
	m.Routes = func(r phttp.Router) { statshttp.Register(r, m.svc) }
	return m
}

// Service exposes the stats service, used by startup and the CLI for Ensure
func (m *Module) Service() statssvc.Service { return m.svc }

// Run writes queued analytics until ctx ends
func (m *Module) Run(ctx context.Context) error { return m.batcher.Run(ctx) }
