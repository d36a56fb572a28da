// Package module wires quiz persistence into the API using modkit
package module

import (
	"careerpath/internal/core/recommend"
	modkit "careerpath/internal/modkit"
	"careerpath/internal/modkit/repokit"
	phttp "careerpath/internal/platform/net/http"
	quizhttp "careerpath/internal/services/api/quiz/http"
	quizrepo "careerpath/internal/services/api/quiz/repo"
	quizsvc "careerpath/internal/services/api/quiz/service"
)

// Ports carries an injected engine in and the quiz service out
type Ports struct {
	Engine  *recommend.Engine
	Service quizsvc.Service
}

// Module implements the quiz module
type Module struct {
	modkit.Base
	svc quizsvc.Service
}

// New constructs the quiz module; without postgres every route answers 503
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	m := &Module{Base: modkit.NewBase("quiz", "/quiz", opts...)}
	p, _ := m.Built.Ports.(Ports)
	m.svc = quizsvc.New(repokit.OrDisabled(deps.PG, "postgres"), quizrepo.NewPG(), p.Engine)
	p.Service = m.svc
	m.Built.Ports = p
	m.Routes = func(r phttp.Router) { quizhttp.Register(r, m.svc) }
	return m
}

// Service exposes the quiz service, used by startup and the CLI for Ensure
func (m *Module) Service() quizsvc.Service { return m.svc }
