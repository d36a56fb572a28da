// Package service runs the recommendation engine and records analytics
package service

import (
	"context"

	"careerpath/internal/core/recommend"
	"careerpath/internal/platform/logger"
	pnet "careerpath/internal/platform/net"
	"careerpath/internal/services/api/analyze/domain"
	statsdomain "careerpath/internal/services/api/stats/domain"
)

// Service defines the analyze service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analyze service
type Svc struct {
	engine *recommend.Engine
	rec    statsdomain.Recorder
}

// New constructs an analyze service; a nil recorder records nothing
// rec sits on the request path and must not block
func New(engine *recommend.Engine, rec statsdomain.Recorder) *Svc {
	if engine == nil {
		panic("analyze.Service requires a non nil Engine")
	}
	return &Svc{engine: engine, rec: rec}
}

// Analyze scores in and records the outcome; recording never fails the call
func (s *Svc) Analyze(ctx context.Context, in recommend.Input) recommend.Response {
	out := s.engine.Analyze(in)
	s.record(ctx, in, out)
	return out
}

// Explain returns the full ranking without recording it
func (s *Svc) Explain(_ context.Context, in recommend.Input) domain.Explanation {
	return domain.Explanation{EngineVersion: recommend.Version, Scores: s.engine.Rank(in)}
}

func (s *Svc) record(ctx context.Context, in recommend.Input, out recommend.Response) {
	if s.rec == nil {
		return
	}
	domains := make([]string, len(out.Suggestions))
	for i, sg := range out.Suggestions {
		domains[i] = sg.Domain
	}
	ev := statsdomain.AnalysisEvent{
		RequestID:   pnet.RequestID(ctx),
		TopDomain:   out.TopDomain(),
		Domains:     domains,
		GapCount:    len(out.SkillGaps),
		SkillsCount: len(recommend.ParseCSV(in.Skills)),
	}
	if err := s.rec.Record(ctx, ev); err != nil {
		logger.C(ctx).Warn().Err(err).Str("top_domain", ev.TopDomain).Msg("record analysis")
	}
}
