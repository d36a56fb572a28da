package repo

import (
	"context"
	"strings"
	"testing"
	"time"

	"careerpath/internal/platform/store"
)

type fakeCH struct {
	execSQL   string
	table     string
	data      any
	querySQL  string
	queryArgs []any
	rows      *fakeRows
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execSQL = sql
	return nil
}

func (f *fakeCH) Insert(_ context.Context, table string, data any) error {
	f.table, f.data = table, data
	return nil
}

func (f *fakeCH) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.querySQL, f.queryArgs = sql, args
	return f.rows, nil
}

func (f *fakeCH) Close() error { return nil }

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	*dest[0].(*string) = row[0].(string)
	*dest[1].(*uint64) = row[1].(uint64)
	*dest[2].(*uint64) = row[2].(uint64)
	return nil
}

func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return []string{"domain", "suggested", "top"} }

func TestNewCH_NilIsDisabled(t *testing.T) {
	if _, ok := NewCH(nil).(Disabled); !ok {
		t.Fatal("nil clickhouse should yield Disabled")
	}
}

func TestEnsure_DDL(t *testing.T) {
	f := &fakeCH{}
	if err := NewCH(f).Ensure(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(f.execSQL, "CREATE TABLE IF NOT EXISTS career_analyses") {
		t.Fatalf("ddl = %s", f.execSQL)
	}
}

func TestInsert_Batch(t *testing.T) {
	f := &fakeCH{}
	ts := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	err := NewCH(f).Insert(context.Background(), []EventRow{{TS: ts, TopDomain: "QA/Test Engineering"}})
	if err != nil {
		t.Fatal(err)
	}
	batch, ok := f.data.([][]any)
	if f.table != Table || !ok || len(batch) != 1 {
		t.Fatalf("insert table=%s data=%#v", f.table, f.data)
	}
	if d, ok := batch[0][3].([]string); !ok || d == nil {
		t.Fatalf("domains must be a non-nil []string, got %#v", batch[0][3])
	}

	f = &fakeCH{}
	if err := NewCH(f).Insert(context.Background(), nil); err != nil || f.data != nil {
		t.Fatal("empty insert should not reach clickhouse")
	}
}

func TestDomains_Scan(t *testing.T) {
	f := &fakeCH{rows: &fakeRows{data: [][]any{
		{"Data Science", uint64(5), uint64(3)},
		{"Backend Engineering", uint64(2), uint64(0)},
	}}}
	since := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	rows, err := NewCH(f).Domains(context.Background(), since, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].Suggested != 5 || rows[1].Domain != "Backend Engineering" {
		t.Fatalf("rows = %+v", rows)
	}
	if len(f.queryArgs) != 2 || f.queryArgs[1] != 10 {
		t.Fatalf("args = %v", f.queryArgs)
	}
}
