// Package repo provides clickhouse access for stats
package repo

import (
	"context"
	"errors"
	"time"

	"careerpath/internal/platform/store"
)

// Table is the analytics table name
const Table = "career_analyses"

// ErrDisabled is returned by reads when no clickhouse is configured
var ErrDisabled = errors.New("stats: clickhouse disabled")

// Repo is the minimal persistence surface for stats
type Repo interface {
	Ensure(ctx context.Context) error
	Insert(ctx context.Context, rows []EventRow) error
	Domains(ctx context.Context, since time.Time, limit int) ([]CountRow, error)
}

// EventRow mirrors one career_analyses row
type EventRow struct {
	TS          time.Time
	RequestID   string
	TopDomain   string
	Domains     []string
	GapCount    uint8
	SkillsCount uint8
}

// CountRow is one aggregated domain
type CountRow struct {
	Domain    string
	Suggested uint64
	Top       uint64
}

const ddl = `
CREATE TABLE IF NOT EXISTS ` + Table + ` (
  ts           DateTime64(3, 'UTC'),
  request_id   String,
  top_domain   LowCardinality(String),
  domains      Array(LowCardinality(String)),
  gap_count    UInt8,
  skills_count UInt8
)
ENGINE = MergeTree
PARTITION BY toYYYYMM(ts)
ORDER BY (ts, top_domain)
TTL toDateTime(ts) + INTERVAL 180 DAY
`

type chRepo struct{ c store.Clickhouse }

// NewCH binds the repo to a clickhouse seam; nil yields the disabled repo
func NewCH(c store.Clickhouse) Repo {
	if c == nil {
		return Disabled{}
	}
	return &chRepo{c: c}
}

func (r *chRepo) Ensure(ctx context.Context) error {
	return r.c.Exec(ctx, ddl)
}

func (r *chRepo) Insert(ctx context.Context, rows []EventRow) error {
	if len(rows) == 0 {
		return nil
	}
	batch := make([][]any, 0, len(rows))
	for _, e := range rows {
		domains := e.Domains
		if domains == nil {
			domains = []string{}
		}
		batch = append(batch, []any{e.TS.UTC(), e.RequestID, e.TopDomain, domains, e.GapCount, e.SkillsCount})
	}
	return r.c.Insert(ctx, Table, batch)
}

func (r *chRepo) Domains(ctx context.Context, since time.Time, limit int) ([]CountRow, error) {
	const sql = `
SELECT d AS domain, count() AS suggested, countIf(d = top_domain) AS top
FROM ` + Table + `
ARRAY JOIN domains AS d
WHERE ts >= ?
GROUP BY d
ORDER BY suggested DESC, d ASC
LIMIT ?
`
	rows, err := r.c.Query(ctx, sql, since.UTC(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []CountRow{}
	for rows.Next() {
		var cr CountRow
		if err := rows.Scan(&cr.Domain, &cr.Suggested, &cr.Top); err != nil {
			return nil, err
		}
		out = append(out, cr)
	}
	return out, rows.Err()
}

// Disabled drops writes and refuses reads
type Disabled struct{}

// Ensure does nothing
func (Disabled) Ensure(context.Context) error { return nil }

// Insert drops rows
func (Disabled) Insert(context.Context, []EventRow) error { return nil }

// Domains returns ErrDisabled
func (Disabled) Domains(context.Context, time.Time, int) ([]CountRow, error) {
	return nil, ErrDisabled
}
