package service

import (
	"context"
	"errors"
	"testing"

	"careerpath/internal/core/recommend"
	"careerpath/internal/platform/testkit"
	statsdomain "careerpath/internal/services/api/stats/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	events []statsdomain.AnalysisEvent
	err    error
}

func (f *fakeRecorder) Record(_ context.Context, ev statsdomain.AnalysisEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

func TestNew_PanicsWithoutEngine(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, nil) })
}

func TestAnalyze_RecordsEvent(t *testing.T) {
	rec := &fakeRecorder{}
	s := New(recommend.Default(), rec)

	out := s.Analyze(context.Background(), recommend.Input{Skills: "react, node", RolePref: "engineering"})

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, out.TopDomain(), ev.TopDomain)
	assert.Equal(t, "Full Stack Engineering", ev.TopDomain)
	assert.Len(t, ev.Domains, len(out.Suggestions))
	assert.Equal(t, len(out.SkillGaps), ev.GapCount)
	assert.Equal(t, 2, ev.SkillsCount)
}

func TestAnalyze_RecorderFailureIsSwallowed(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("clickhouse down")}
	s := New(recommend.Default(), rec)

	out := s.Analyze(context.Background(), recommend.Input{})
	assert.Len(t, out.Suggestions, 4)
	assert.Len(t, rec.events, 1)
}

func TestAnalyze_NilRecorder(t *testing.T) {
	s := New(recommend.Default(), nil)
	assert.Equal(t, recommend.Analyze(recommend.Input{Skills: "sql"}), s.Analyze(context.Background(), recommend.Input{Skills: "sql"}))
}

func TestExplain(t *testing.T) {
	rec := &fakeRecorder{}
	s := New(recommend.Default(), rec)

	ex := s.Explain(context.Background(), recommend.Input{Skills: "kubernetes, terraform"})
	assert.Equal(t, recommend.Version, ex.EngineVersion)
	assert.Len(t, ex.Scores, recommend.Default().CatalogSize())
	assert.Empty(t, rec.events, "explain should not record")
}
