// Package http provides http transport for career analysis
package http

import (
	stdhttp "net/http"

	"careerpath/internal/core/recommend"
	"careerpath/internal/modkit/httpkit"
	svc "careerpath/internal/services/api/analyze/service"
)

// Register mounts analyze endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// lenient: unknown fields ignored, empty body is {}
	httpkit.PostLenient[recommend.Input](r, "/analyze", h.analyze)
	httpkit.PostLenient[recommend.Input](r, "/analyze/explain", h.explain)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /ai/analyze Analyze analyzeCareer
// @Summary Recommend career domains for a questionnaire
// @Tags Analyze
// @Accept json
// @Produce json
// @Param payload body recommend.Input false "Questionnaire"
// @Success 200 {object} recommend.Response "ok"
// @Failure 400 {object} httpkit.Envelope "invalid JSON"
// @Router /ai/analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in recommend.Input) (any, error) {
	return httpkit.Bare(h.svc.Analyze(r.Context(), in)), nil
}

// swagger:route POST /ai/analyze/explain Analyze analyzeExplain
// @Summary Per-domain scores behind a recommendation
// @Tags Analyze
// @Accept json
// @Produce json
// @Param payload body recommend.Input false "Questionnaire"
// @Success 200 {object} domain.Explanation "ok"
// @Router /ai/analyze/explain [post]
func (h *handlers) explain(r *stdhttp.Request, in recommend.Input) (any, error) {
	return httpkit.Bare(h.svc.Explain(r.Context(), in)), nil
}
