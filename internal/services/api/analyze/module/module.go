// Package module wires career analysis into the API using modkit
package module

import (
	"careerpath/internal/core/recommend"
	modkit "careerpath/internal/modkit"
	phttp "careerpath/internal/platform/net/http"
	analyzehttp "careerpath/internal/services/api/analyze/http"
	analyzesvc "careerpath/internal/services/api/analyze/service"
	statsdomain "careerpath/internal/services/api/stats/domain"
)

// Ports are injected with modkit.WithPorts and returned with the service filled in
type Ports struct {
	Recorder statsdomain.Recorder
	Engine   *recommend.Engine
	Analyzer analyzesvc.Service
}

// Module implements the analyze module
type Module struct {
	modkit.Base
	svc analyzesvc.Service
}

// New constructs the analyze module
func New(_ modkit.Deps, opts ...modkit.Option) *Module {
	m := &Module{Base: modkit.NewBase("analyze", "/ai", opts...)}

	p, _ := m.Built.Ports.(Ports)
	if p.Engine == nil {
		p.Engine = recommend.Default()
	}
	m.svc = analyzesvc.New(p.Engine, p.Recorder)
	p.Analyzer = m.svc

	m.Built.Ports = p
	m.Routes = func(r phttp.Router) { analyzehttp.Register(r, m.svc) }
	return m
}
