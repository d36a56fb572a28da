package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"careerpath/internal/core/recommend"
	"careerpath/internal/modkit/repokit"
	perr "careerpath/internal/platform/errors"
	"careerpath/internal/platform/testkit"
	"careerpath/internal/services/api/quiz/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	rows      []repo.Row
	insertErr error
	latestErr error
}

func (f *fakeRepo) Ensure(context.Context) error { return nil }

func (f *fakeRepo) Insert(_ context.Context, row repo.Row) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	row.CreatedAt = time.Date(2025, 9, 1, 0, 0, len(f.rows), 0, time.UTC)
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeRepo) Latest(context.Context) (repo.Row, error) {
	if f.latestErr != nil {
		return repo.Row{}, f.latestErr
	}
	if len(f.rows) == 0 {
		return repo.Row{}, perr.ErrNotFound
	}
	return f.rows[len(f.rows)-1], nil
}

func newSvc(f *fakeRepo) *Svc {
	return New(repokit.Disabled("test"), repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f }), nil)
}

func TestNew_Panics(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, repo.NewPG(), nil) })
	testkit.MustPanic(t, func() { New(repokit.Disabled("x"), nil, nil) })
}

func TestSave_StoresCoercedInputAndResult(t *testing.T) {
	f := &fakeRepo{}
	s := newSvc(f)

	out, err := s.Save(context.Background(), recommend.Input{Skills: "react, node"})
	require.NoError(t, err)
	assert.True(t, out.OK)
	_, err = uuid.Parse(out.ID)
	require.NoError(t, err)

	require.Len(t, f.rows, 1)
	assert.Equal(t, out.ID, f.rows[0].ID)
	assert.Contains(t, string(f.rows[0].Data), `"roles":[]`)

	var res recommend.Response
	require.NoError(t, json.Unmarshal(f.rows[0].Result, &res))
	assert.Equal(t, recommend.Analyze(recommend.Input{Skills: "react, node"}), res)
}

func TestLatest_RoundTrip(t *testing.T) {
	f := &fakeRepo{}
	s := newSvc(f)

	_, err := s.Save(context.Background(), recommend.Input{Skills: "python"})
	require.NoError(t, err)
	second, err := s.Save(context.Background(), recommend.Input{Skills: "go", Roles: []string{"backend"}})
	require.NoError(t, err)

	got, err := s.Latest(context.Background())
	require.NoError(t, err)
	assert.True(t, got.OK)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, "go", got.Data.Skills)
	assert.Equal(t, []string{"backend"}, got.Data.Roles)
	assert.Equal(t, "Backend Engineering", got.Result.TopDomain())
}

func TestLatest_Empty(t *testing.T) {
	_, err := newSvc(&fakeRepo{}).Latest(context.Background())
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	assert.Equal(t, "no data", err.Error())
}

func TestLatest_ComputesMissingResult(t *testing.T) {
	f := &fakeRepo{rows: []repo.Row{{ID: "x", Data: []byte(`{"skills":"python"}`), Result: []byte("null")}}}
	got, err := newSvc(f).Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Data Science", got.Result.TopDomain())
	assert.NotNil(t, got.Data.Roles)
}

func TestErrors_Mapped(t *testing.T) {
	s := newSvc(&fakeRepo{insertErr: errors.New("conn reset"), latestErr: perr.Unavailablef("postgres disabled")})

	_, err := s.Save(context.Background(), recommend.Input{})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDB))

	_, err = s.Latest(context.Background())
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
}
