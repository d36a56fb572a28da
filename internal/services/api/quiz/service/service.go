// Package service contains quiz workflows
package service

import (
	"context"
	"encoding/json"
	"errors"

	"careerpath/internal/core/recommend"
	"careerpath/internal/modkit/repokit"
	perr "careerpath/internal/platform/errors"
	"careerpath/internal/services/api/quiz/domain"
	"careerpath/internal/services/api/quiz/repo"

	"github.com/google/uuid"
)

// Service defines the quiz service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the quiz service
type Svc struct {
	Repo   repo.Repo
	engine *recommend.Engine
	newID  func() (uuid.UUID, error)
}

// New constructs a quiz service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], engine *recommend.Engine) *Svc {
	if db == nil {
		panic("quiz.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("quiz.Service requires a non nil Repo binder")
	}
	if engine == nil {
		engine = recommend.Default()
	}
	return &Svc{Repo: binder.Bind(db), engine: engine, newID: uuid.NewV7}
}

// Ensure creates the quizzes table when missing
func (s *Svc) Ensure(ctx context.Context) error {
	return perr.FromPostgres(s.Repo.Ensure(ctx), "ensure quizzes schema")
}

// Save stores the coerced questionnaire alongside the analysis it produces
func (s *Svc) Save(ctx context.Context, in recommend.Input) (domain.SaveResult, error) {
	in = in.Sanitized()
	id, err := s.newID()
	if err != nil {
		return domain.SaveResult{}, perr.Wrap(err, perr.ErrorCodeUnknown, "generate quiz id")
	}
	data, err := json.Marshal(in)
	if err != nil {
		return domain.SaveResult{}, perr.Wrap(err, perr.ErrorCodeUnknown, "encode quiz")
	}
	result, err := json.Marshal(s.engine.Analyze(in))
	if err != nil {
		return domain.SaveResult{}, perr.Wrap(err, perr.ErrorCodeUnknown, "encode result")
	}
	if err := s.Repo.Insert(ctx, repo.Row{ID: id.String(), Data: data, Result: result}); err != nil {
		return domain.SaveResult{}, perr.FromPostgres(err, "save quiz")
	}
	return domain.SaveResult{OK: true, ID: id.String()}, nil
}

// Latest returns the most recent submission or a not found error
func (s *Svc) Latest(ctx context.Context) (domain.Latest, error) {
	row, err := s.Repo.Latest(ctx)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Latest{}, perr.NotFoundf("no data")
	}
	if err != nil {
		return domain.Latest{}, perr.FromPostgres(err, "load latest quiz")
	}

	out := domain.Latest{OK: true, ID: row.ID, CreatedAt: row.CreatedAt}
	if err := json.Unmarshal(row.Data, &out.Data); err != nil {
		return domain.Latest{}, perr.Wrap(err, perr.ErrorCodeUnknown, "decode quiz")
	}
	out.Data = out.Data.Sanitized()
	// rows written before results were stored get one computed now
	if len(row.Result) == 0 || string(row.Result) == "null" {
		out.Result = s.engine.Analyze(out.Data)
	} else if err := json.Unmarshal(row.Result, &out.Result); err != nil {
		return domain.Latest{}, perr.Wrap(err, perr.ErrorCodeUnknown, "decode result")
	}
	return out, nil
}
