package modkit

import (
	"net/http"

	phttp "careerpath/internal/platform/net/http"
	str "careerpath/internal/platform/strings"
)

// Built is the resolved option set a module keeps
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	Subrouter func(phttp.Router) phttp.Router
	Register  func(phttp.Router)
}

// Build applies opts in order, later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	if c.subrouter == nil {
		c.subrouter = func(r phttp.Router) phttp.Router { return r }
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Base implements Module for the common case; modules embed it and set Routes
type Base struct {
	Built
	// Routes attaches the module's own endpoints
	Routes func(phttp.Router)
}

// NewBase builds options with the module's defaults in front
func NewBase(name, prefix string, opts ...Option) Base {
	return Base{Built: Build(append([]Option{WithName(name), WithPrefix(prefix)}, opts...)...)}
}

// MountRoutes mounts middlewares and routes under Prefix
func (b *Base) MountRoutes(r phttp.Router) {
	r.Route(b.Prefix(), func(rr phttp.Router) {
		for _, mw := range b.Mw {
			rr.Use(mw)
		}
		rr = b.Subrouter(rr)
		if b.Routes != nil {
			b.Routes(rr)
		}
		b.Register(rr)
	})
}

// Name returns the module name and panics when unset
func (b *Base) Name() string { return str.MustString(b.Built.Name, "module name") }

// Prefix returns the normalized route prefix
func (b *Base) Prefix() string { return str.MustPrefix(b.Built.Prefix) }

// Ports returns the injected or module-set ports
func (b *Base) Ports() any { return b.Built.Ports }
