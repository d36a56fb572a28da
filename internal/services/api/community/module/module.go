// Package module wires the community feed into the API using modkit
package module

import (
	"time"

	modkit "careerpath/internal/modkit"
	"careerpath/internal/modkit/repokit"
	phttp "careerpath/internal/platform/net/http"
	communityhttp "careerpath/internal/services/api/community/http"
	communityrepo "careerpath/internal/services/api/community/repo"
	communitysvc "careerpath/internal/services/api/community/service"
)

// Ports is what community offers other modules
type Ports struct {
	Service communitysvc.Service
}

// Module implements the community module
type Module struct {
	modkit.Base
	svc communitysvc.Service
}

// New constructs the community module
// COMMUNITY_STATEMENT_TIMEOUT bounds each statement inside write transactions
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	db := repokit.OrDisabled(deps.PG, "postgres")
	if deps.HasPG() {
		timeout := deps.Cfg.MayDuration("COMMUNITY_STATEMENT_TIMEOUT", 5*time.Second)
		db = repokit.WithBeginHooks(db, repokit.StatementTimeout(timeout))
	}
	svc := communitysvc.New(db, communityrepo.NewPG())

	m := &Module{Base: modkit.NewBase("community", "/community", opts...), svc: svc}
	m.Built.Ports = Ports{Service: svc}
	m.Routes = func(r phttp.Router) { communityhttp.Register(r, m.svc) }
	return m
}

// Service exposes the community service, used by startup and the CLI for Ensure
func (m *Module) Service() communitysvc.Service { return m.svc }
