// Package http provides http transport for quiz persistence
package http

import (
	stdhttp "net/http"

	"careerpath/internal/core/recommend"
	"careerpath/internal/modkit/httpkit"
	svc "careerpath/internal/services/api/quiz/service"
)

// Register mounts quiz endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostLenient[recommend.Input](r, "/", h.save)
	httpkit.Get(r, "/latest", h.latest)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /quiz Quiz quizSave
// @Summary Store a questionnaire and its analysis
// @Tags Quiz
// @Accept json
// @Produce json
// @Param payload body recommend.Input false "Questionnaire"
// @Success 200 {object} domain.SaveResult "ok"
// @Failure 503 {object} httpkit.Envelope "postgres disabled"
// @Router /quiz [post]
func (h *handlers) save(r *stdhttp.Request, in recommend.Input) (any, error) {
	out, err := h.svc.Save(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Bare(out), nil
}

// swagger:route GET /quiz/latest Quiz quizLatest
// @Summary Most recent questionnaire
// @Tags Quiz
// @Produce json
// @Success 200 {object} domain.Latest "ok"
// @Failure 404 {object} httpkit.Envelope "no data"
// @Router /quiz/latest [get]
func (h *handlers) latest(r *stdhttp.Request) (any, error) {
	out, err := h.svc.Latest(r.Context())
	if err != nil {
		return nil, err
	}
	return httpkit.Bare(out), nil
}
