// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"careerpath/internal/core/recommend"
	"careerpath/internal/core/version"
	modkit "careerpath/internal/modkit"
	phttp "careerpath/internal/platform/net/http"

	metahttp "careerpath/internal/services/api/meta/http"
)

// Ports lets the caller share an engine with the analyze module
type Ports struct {
	Engine *recommend.Engine
}

// Module implements the meta module
type Module struct {
	modkit.Base
	deps metahttp.Deps
}

// New constructs a meta module; PING_MESSAGE under the API config prefix sets the ping reply
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	m := &Module{Base: modkit.NewBase("meta", "/meta", opts...)}

	p, _ := m.Built.Ports.(Ports)
	m.deps = metahttp.Deps{
		ServiceName: version.Service,
		StartedAt:   time.Now(),
		Engine:      p.Engine,
		PingMessage: deps.Cfg.MayString("PING_MESSAGE", "ping"),
		PG:          deps.PG,
		CH:          deps.CH,
	}

	m.Routes = func(r phttp.Router) { metahttp.Register(r, m.deps) }
	return m
}

// MountPing mounts the legacy ping probe on r
func (m *Module) MountPing(r phttp.Router) { metahttp.RegisterPing(r, m.deps) }
