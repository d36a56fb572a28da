// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"careerpath/internal/modkit/httpkit"
	"careerpath/internal/services/api/stats/domain"
	svc "careerpath/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// suggestion counts per domain in a trailing window
	httpkit.Get(r, "/domains", h.domains)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /stats/domains Stats statsDomains
// @Summary Suggestion counts per domain
// @Tags Stats
// @Produce json
// @Param days query int false "Lookback window in days (max 90)"
// @Param limit query int false "Domains to return (max 50)"
// @Success 200 {object} domain.DomainsResponse "ok"
// @Failure 503 {object} httpkit.Envelope "analytics disabled"
// @Router /stats/domains [get]
func (h *handlers) domains(r *stdhttp.Request) (any, error) {
	return h.svc.Domains(r.Context(), domain.DomainsInput{
		Days:  httpkit.QueryInt(r, "days", domain.DefaultDays, domain.MaxDays),
		Limit: httpkit.QueryInt(r, "limit", domain.DefaultLimit, domain.MaxLimit),
	})
}
