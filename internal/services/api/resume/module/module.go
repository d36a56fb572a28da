// Package module wires resume text extraction into the API
package module

import (
	modkit "careerpath/internal/modkit"
	phttp "careerpath/internal/platform/net/http"
	resumehttp "careerpath/internal/services/api/resume/http"
)

// Module implements the resume module
type Module struct {
	modkit.Base
}

// New constructs the resume module
func New(_ modkit.Deps, opts ...modkit.Option) *Module {
	m := &Module{Base: modkit.NewBase("resume", "/resume", opts...)}
	m.Routes = func(r phttp.Router) { resumehttp.Register(r) }
	return m
}
