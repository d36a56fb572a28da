//go:build integration_pg

package store

import (
	"context"
	"errors"
	"testing"

	"careerpath/internal/platform/testkit"
)

func TestStore_PG_Integration(t *testing.T) {
	dsn := testkit.StartPostgres(t)
	ctx := context.Background()

	s, err := Open(ctx, Config{AppName: "careerpath-test", PG: PGConfig{Enabled: true, URL: dsn, LogSQL: true}})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close(ctx)

	if err := s.Guard(ctx); err != nil {
		t.Fatalf("guard: %v", err)
	}
	if _, err := s.PG.Exec(ctx, `CREATE TABLE t (id int primary key, name text)`); err != nil {
		t.Fatal(err)
	}

	err = s.PG.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, `INSERT INTO t VALUES (1, 'alpha')`); err != nil {
			return err
		}
		return errors.New("rollback")
	})
	if err == nil {
		t.Fatalf("expected rollback error")
	}
	if n, _ := Scalar[int](ctx, s.PG, `SELECT count(*) FROM t`); n != 0 {
		t.Fatalf("rolled back row visible, count=%d", n)
	}

	if err := ExecOne(ctx, s.PG, `INSERT INTO t VALUES (2, 'beta')`); err != nil {
		t.Fatal(err)
	}
	names, err := Many(ctx, s.PG, func(r Row) (string, error) {
		var n string
		return n, r.Scan(&n)
	}, `SELECT name FROM t ORDER BY id`)
	if err != nil || len(names) != 1 || names[0] != "beta" {
		t.Fatalf("names = %v, %v", names, err)
	}

	app, err := Scalar[string](ctx, s.PG, `SELECT current_setting('application_name')`)
	if err != nil || app != "careerpath-test" {
		t.Fatalf("application_name = %q, %v", app, err)
	}
}
