// Package repo provides postgres access for quiz submissions
package repo

import (
	"context"
	"time"

	"careerpath/internal/modkit/repokit"
	"careerpath/internal/platform/store"
)

// Repo is the minimal persistence surface for quizzes
type Repo interface {
	Ensure(ctx context.Context) error
	Insert(ctx context.Context, row Row) error
	Latest(ctx context.Context) (Row, error)
}

// Row is one stored submission; Data and Result are raw jsonb
type Row struct {
	ID        string
	CreatedAt time.Time
	Data      []byte
	Result    []byte
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// Schema is the quizzes DDL
const Schema = `
CREATE TABLE IF NOT EXISTS quizzes (
  id         UUID PRIMARY KEY,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  data       JSONB NOT NULL,
  result     JSONB
);
CREATE INDEX IF NOT EXISTS idx_quizzes_created_at ON quizzes(created_at DESC);
`

func (r *queries) Ensure(ctx context.Context) error {
	_, err := r.q.Exec(ctx, Schema)
	return err
}

func (r *queries) Insert(ctx context.Context, row Row) error {
	return store.ExecOne(ctx, r.q,
		`INSERT INTO quizzes (id, data, result) VALUES ($1::uuid, $2::jsonb, $3::jsonb)`,
		row.ID, string(row.Data), nullable(row.Result))
}

// nullable stores an empty result as SQL NULL
func nullable(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

func (r *queries) Latest(ctx context.Context) (Row, error) {
	const sql = `
select id::text, created_at, data::text, coalesce(result::text, 'null')
from quizzes
order by created_at desc
limit 1
`
	return store.One(ctx, r.q, func(row store.Row) (Row, error) {
		var out Row
		var data, result string
		if err := row.Scan(&out.ID, &out.CreatedAt, &data, &result); err != nil {
			return Row{}, err
		}
		out.Data, out.Result = []byte(data), []byte(result)
		return out, nil
	}, sql)
}
