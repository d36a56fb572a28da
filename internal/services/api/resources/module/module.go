// Package module wires the learning resource index into the API
package module

import (
	"careerpath/internal/core/resources"
	modkit "careerpath/internal/modkit"
	phttp "careerpath/internal/platform/net/http"
	reshttp "careerpath/internal/services/api/resources/http"
)

// Module implements the resources module
type Module struct {
	modkit.Base
	lib *resources.Library
}

// New constructs the resources module over the embedded library
func New(_ modkit.Deps, opts ...modkit.Option) *Module {
	m := &Module{
		Base: modkit.NewBase("resources", "/resources", opts...),
		lib:  resources.Default(),
	}
	m.Routes = func(r phttp.Router) { reshttp.Register(r, m.lib) }
	return m
}
