package store

import (
	"context"
	"errors"
	"testing"

	"careerpath/internal/platform/config"
	perr "careerpath/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

type fakeTag int64

func (t fakeTag) String() string      { return "UPDATE" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int:
			*d = r.vals[i].(int)
		case *string:
			*d = r.vals[i].(string)
		}
	}
	return nil
}

type fakeRows struct {
	data   [][]any
	i      int
	closed bool
}

func (r *fakeRows) Next() bool             { r.i++; return r.i <= len(r.data) }
func (r *fakeRows) Scan(dest ...any) error { return fakeRow{vals: r.data[r.i-1]}.Scan(dest...) }
func (r *fakeRows) Err() error             { return nil }
func (r *fakeRows) Close()                 { r.closed = true }
func (r *fakeRows) Columns() []string      { return []string{"n"} }

type fakeQ struct {
	affected int64
	row      fakeRow
	rows     *fakeRows
	err      error
}

func (f *fakeQ) Exec(context.Context, string, ...any) (CommandTag, error) {
	return fakeTag(f.affected), f.err
}
func (f *fakeQ) Query(context.Context, string, ...any) (Rows, error) { return f.rows, f.err }
func (f *fakeQ) QueryRow(context.Context, string, ...any) Row      { return f.row }

type fakePinger struct {
	fakeQ
	pingErr error
	closed  bool
}

func (f *fakePinger) Ping(context.Context) error { return f.pingErr }
func (f *fakePinger) Close() error               { f.closed = true; return nil }
func (f *fakePinger) Tx(ctx context.Context, fn func(RowQuerier) error) error {
	return fn(f)
}

func TestExecOne(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name     string
		affected int64
		err      error
		check    func(error) bool
	}{
		{"one", 1, nil, func(e error) bool { return e == nil }},
		{"none", 0, nil, func(e error) bool { return perr.IsCode(e, perr.ErrorCodeNotFound) }},
		{"many", 3, nil, func(e error) bool { return perr.IsCode(e, perr.ErrorCodeUnknown) }},
		{"exec error", 0, errors.New("boom"), func(e error) bool { return e != nil && e.Error() == "boom" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ExecOne(ctx, &fakeQ{affected: c.affected, err: c.err}, "UPDATE x")
			if !c.check(err) {
				t.Fatalf("unexpected err: %v", err)
			}
		})
	}
}

func TestScalarAndOne_NoRowsIsNotFound(t *testing.T) {
	ctx := context.Background()
	q := &fakeQ{row: fakeRow{err: pgx.ErrNoRows}}

	if _, err := Scalar[int](ctx, q, "SELECT 1"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("Scalar err = %v", err)
	}
	_, err := One(ctx, q, func(r Row) (string, error) {
		var s string
		return s, r.Scan(&s)
	}, "SELECT s")
	if !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("One err = %v", err)
	}

	q = &fakeQ{row: fakeRow{vals: []any{7}}}
	n, err := Scalar[int](ctx, q, "SELECT 7")
	if err != nil || n != 7 {
		t.Fatalf("Scalar = %d, %v", n, err)
	}
}

func TestMany(t *testing.T) {
	ctx := context.Background()
	rs := &fakeRows{data: [][]any{{1}, {2}, {3}}}
	got, err := Many(ctx, &fakeQ{rows: rs}, func(r Row) (int, error) {
		var n int
		return n, r.Scan(&n)
	}, "SELECT n")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[2] != 3 {
		t.Fatalf("got %v", got)
	}
	if !rs.closed {
		t.Fatalf("rows not closed")
	}

	empty, err := Many(ctx, &fakeQ{rows: &fakeRows{}}, func(r Row) (int, error) { return 0, nil }, "SELECT n")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("empty = %#v, %v", empty, err)
	}
}

func TestGuardAndClose(t *testing.T) {
	ctx := context.Background()

	var nilStore *Store
	if err := nilStore.Guard(ctx); err == nil {
		t.Fatalf("nil store should fail Guard")
	}
	if err := (&Store{}).Guard(ctx); err != nil {
		t.Fatalf("empty store Guard: %v", err)
	}

	db := &fakePinger{pingErr: errors.New("down")}
	s := &Store{PG: db}
	err := s.Guard(ctx)
	if err == nil || err.Error() != "pg: down" {
		t.Fatalf("Guard = %v", err)
	}
	if err := s.Close(ctx); err != nil || !db.closed {
		t.Fatalf("Close = %v closed=%v", err, db.closed)
	}
}

func TestOpen_NoBackends(t *testing.T) {
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatal(err)
	}
	if s.PG != nil || s.CH != nil {
		t.Fatalf("expected no backends")
	}
}

func TestOpen_BadPGURL(t *testing.T) {
	_, err := Open(context.Background(), Config{PG: PGConfig{Enabled: true, URL: "postgres://%zz"}})
	if err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestConfigFrom(t *testing.T) {
	t.Setenv("CAREER_SERVICE_PGSQL_URL", "postgres://u:p@localhost/db")
	t.Setenv("CAREER_SERVICE_PGSQL_MAX_CONNS", "4")
	t.Setenv("CAREER_SERVICE_CLICKHOUSE_URL", "clickhouse://localhost:9000/db")
	t.Setenv("CAREER_SERVICE_CLICKHOUSE_ENABLED", "false")

	cfg := ConfigFrom(config.New().Prefix("CAREER_"), "api")
	if !cfg.PG.Enabled || cfg.PG.MaxConns != 4 || cfg.PG.SlowQueryMs != 250 {
		t.Fatalf("pg = %+v", cfg.PG)
	}
	if cfg.CH.Enabled || cfg.CH.URL == "" {
		t.Fatalf("ch = %+v", cfg.CH)
	}
	if cfg.AppName != "api" {
		t.Fatalf("app = %q", cfg.AppName)
	}
}
