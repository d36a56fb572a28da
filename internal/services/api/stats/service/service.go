// Package service contains stats workflows
package service

import (
	"context"
	"errors"
	"time"

	perr "careerpath/internal/platform/errors"
	ptime "careerpath/internal/platform/time"
	"careerpath/internal/services/api/stats/domain"
	"careerpath/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo repo.Repo
	now  func() time.Time
}

// New constructs a stats service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("stats.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, now: time.Now}
}

// Ensure creates the analytics table when missing
func (s *Svc) Ensure(ctx context.Context) error {
	if err := s.Repo.Ensure(ctx); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "ensure analytics table")
	}
	return nil
}

// Record stores one analysis event
func (s *Svc) Record(ctx context.Context, ev domain.AnalysisEvent) error {
	return s.RecordBatch(ctx, []domain.AnalysisEvent{ev})
}

// RecordBatch stores events in one insert
func (s *Svc) RecordBatch(ctx context.Context, evs []domain.AnalysisEvent) error {
	rows := make([]repo.EventRow, 0, len(evs))
	for _, ev := range evs {
		at := ev.At
		if at.IsZero() {
			at = s.now()
		}
		rows = append(rows, repo.EventRow{
			TS:          at,
			RequestID:   ev.RequestID,
			TopDomain:   ev.TopDomain,
			Domains:     ev.Domains,
			GapCount:    clampU8(ev.GapCount),
			SkillsCount: clampU8(ev.SkillsCount),
		})
	}
	return s.Repo.Insert(ctx, rows)
}

// Domains returns suggestion counts per domain over the last in.Days days
func (s *Svc) Domains(ctx context.Context, in domain.DomainsInput) (domain.DomainsResponse, error) {
	days := clamp(in.Days, domain.DefaultDays, domain.MaxDays)
	limit := clamp(in.Limit, domain.DefaultLimit, domain.MaxLimit)
	since := ptime.DaysBefore(s.now(), days)

	rows, err := s.Repo.Domains(ctx, since, limit)
	if errors.Is(err, repo.ErrDisabled) {
		return domain.DomainsResponse{}, perr.Unavailablef("analytics disabled")
	}
	if err != nil {
		return domain.DomainsResponse{}, perr.Wrap(err, perr.ErrorCodeDB, "load domain stats")
	}
	out := domain.DomainsResponse{
		Days:    days,
		Since:   ptime.Stamp(since),
		Domains: make([]domain.DomainCount, 0, len(rows)),
	}
	for _, r := range rows {
		out.Domains = append(out.Domains, domain.DomainCount{Domain: r.Domain, Suggested: r.Suggested, Top: r.Top})
	}
	return out, nil
}

func clamp(n, def, max int) int {
	if n <= 0 {
		return def
	}
	return min(n, max)
}

func clampU8(n int) uint8 {
	return uint8(min(max(n, 0), 255))
}
