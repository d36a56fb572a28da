package service

import (
	"context"
	"errors"
	"testing"
	"time"

	perr "careerpath/internal/platform/errors"
	"careerpath/internal/platform/testkit"
	"careerpath/internal/services/api/stats/domain"
	"careerpath/internal/services/api/stats/repo"
)

type fakeRepo struct {
	inserted  []repo.EventRow
	since     time.Time
	limit     int
	rows      []repo.CountRow
	err       error
	ensureErr error
}

func (f *fakeRepo) Ensure(context.Context) error { return f.ensureErr }

func (f *fakeRepo) Insert(_ context.Context, rows []repo.EventRow) error {
	f.inserted = append(f.inserted, rows...)
	return f.err
}

func (f *fakeRepo) Domains(_ context.Context, since time.Time, limit int) ([]repo.CountRow, error) {
	f.since, f.limit = since, limit
	return f.rows, f.err
}

func fixedNow() time.Time { return time.Date(2025, 9, 8, 12, 0, 0, 0, time.UTC) }

func TestNew_PanicsOnNil(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil) })
}

func TestRecord_DefaultsAndClamps(t *testing.T) {
	f := &fakeRepo{}
	s := New(f)
	s.now = fixedNow

	err := s.Record(context.Background(), domain.AnalysisEvent{
		TopDomain:   "Data Science",
		Domains:     []string{"Data Science", "AI/ML Engineering"},
		GapCount:    6,
		SkillsCount: 400,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(f.inserted) != 1 {
		t.Fatalf("inserted %d rows", len(f.inserted))
	}
	row := f.inserted[0]
	if !row.TS.Equal(fixedNow()) || row.GapCount != 6 || row.SkillsCount != 255 {
		t.Fatalf("row = %+v", row)
	}
}

func TestDomains_Window(t *testing.T) {
	f := &fakeRepo{rows: []repo.CountRow{{Domain: "Data Science", Suggested: 3, Top: 2}}}
	s := New(f)
	s.now = fixedNow

	out, err := s.Domains(context.Background(), domain.DomainsInput{})
	if err != nil {
		t.Fatalf("domains: %v", err)
	}
	if out.Days != domain.DefaultDays || f.limit != domain.DefaultLimit {
		t.Fatalf("defaults not applied: days=%d limit=%d", out.Days, f.limit)
	}
	if want := fixedNow().Add(-7 * 24 * time.Hour); !f.since.Equal(want) {
		t.Fatalf("since = %v, want %v", f.since, want)
	}
	if len(out.Domains) != 1 || out.Domains[0].Top != 2 {
		t.Fatalf("domains = %+v", out.Domains)
	}

	_, _ = s.Domains(context.Background(), domain.DomainsInput{Days: 1000, Limit: 1000})
	if f.limit != domain.MaxLimit {
		t.Fatalf("limit not capped: %d", f.limit)
	}
}

func TestDomains_EmptyIsArray(t *testing.T) {
	s := New(&fakeRepo{})
	out, err := s.Domains(context.Background(), domain.DomainsInput{})
	if err != nil || out.Domains == nil {
		t.Fatalf("want empty non-nil slice, got %v %v", out.Domains, err)
	}
}

func TestDomains_Errors(t *testing.T) {
	s := New(repo.Disabled{})
	_, err := s.Domains(context.Background(), domain.DomainsInput{})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("disabled should be unavailable, got %v", err)
	}
	if err := s.Record(context.Background(), domain.AnalysisEvent{}); err != nil {
		t.Fatalf("disabled record should be a no-op, got %v", err)
	}

	s = New(&fakeRepo{err: errors.New("boom")})
	_, err = s.Domains(context.Background(), domain.DomainsInput{})
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("repo failure should be a db error, got %v", err)
	}
}

func TestEnsure(t *testing.T) {
	if err := New(&fakeRepo{}).Ensure(context.Background()); err != nil {
		t.Fatal(err)
	}
	err := New(&fakeRepo{ensureErr: errors.New("no perms")}).Ensure(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("ensure err = %v", err)
	}
}
