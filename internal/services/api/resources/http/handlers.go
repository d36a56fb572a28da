// Package http serves the curated learning resource index
package http

import (
	stdhttp "net/http"
	"net/url"
	"strings"

	"careerpath/internal/core/resources"
	"careerpath/internal/modkit/httpkit"
	perr "careerpath/internal/platform/errors"
)

// ListResponse is the full resource index
type ListResponse struct {
	Domains []resources.Domain `json:"domains"`
}

// ForResponse holds the links for the first matching domain
type ForResponse struct {
	Resources []resources.Item `json:"resources"`
}

type handlers struct{ lib *resources.Library }

// Register mounts resource endpoints backed by lib
func Register(r httpkit.Router, lib *resources.Library) {
	h := &handlers{lib: lib}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{domain}", h.one)
}

// swagger:route GET /resources Resources resourcesList
// @Summary List learning resources
// @Description Every domain with its curated links; with ?for=a,b only the first domain that has links is returned
// @Tags Resources
// @Produce json
// @Param for query string false "Comma separated domain names in preference order"
// @Success 200 {object} ListResponse "ok"
// @Router /resources [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	if raw := strings.TrimSpace(r.URL.Query().Get("for")); raw != "" {
		return httpkit.Bare(ForResponse{Resources: h.lib.For(strings.Split(raw, ",")...)}), nil
	}
	return httpkit.Bare(ListResponse{Domains: h.lib.All()}), nil
}

// swagger:route GET /resources/{domain} Resources resourcesOne
// @Summary Learning resources for one domain
// @Tags Resources
// @Produce json
// @Param domain path string true "Domain name, URL escaped"
// @Success 200 {object} resources.Domain "ok"
// @Failure 404 {object} httpkit.Envelope "unknown domain"
// @Router /resources/{domain} [get]
func (h *handlers) one(r *stdhttp.Request) (any, error) {
	name, err := url.PathUnescape(httpkit.Param(r, "domain"))
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("invalid domain"), "domain")
	}
	d, ok := h.lib.Lookup(name)
	if !ok {
		return nil, perr.NotFoundf("no resources for %q", name)
	}
	return httpkit.Bare(d), nil
}
