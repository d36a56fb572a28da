//go:build integration_pg

package repo

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	perr "careerpath/internal/platform/errors"
	"careerpath/internal/platform/store"
	"careerpath/internal/platform/testkit"

	"github.com/google/uuid"
)

func TestQuiz_PG_Integration(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, store.Config{AppName: "careerpath-test", PG: store.PGConfig{Enabled: true, URL: testkit.StartPostgres(t)}})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close(ctx)

	r := NewPG().Bind(s.PG)
	if err := r.Ensure(ctx); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if err := r.Ensure(ctx); err != nil {
		t.Fatalf("ensure twice: %v", err)
	}

	if _, err := r.Latest(ctx); err != perr.ErrNotFound {
		t.Fatalf("latest on empty table err = %v", err)
	}

	first := uuid.Must(uuid.NewV7()).String()
	if err := r.Insert(ctx, Row{ID: first, Data: []byte(`{"skills":"sql"}`), Result: []byte(`{"summary":"x"}`)}); err != nil {
		t.Fatalf("insert first: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	second := uuid.Must(uuid.NewV7()).String()
	if err := r.Insert(ctx, Row{ID: second, Data: []byte(`{"skills":"go"}`)}); err != nil {
		t.Fatalf("insert second: %v", err)
	}

	got, err := r.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.ID != second {
		t.Fatalf("latest id = %s, want %s", got.ID, second)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}
	var data map[string]string
	if err := json.Unmarshal(got.Data, &data); err != nil || data["skills"] != "go" {
		t.Fatalf("data = %s %v", got.Data, err)
	}
	if string(got.Result) != "null" {
		t.Fatalf("missing result = %q, want null", got.Result)
	}

	if err := r.Insert(ctx, Row{ID: "not-a-uuid", Data: []byte(`{}`)}); err == nil {
		t.Fatal("insert with a malformed id should fail")
	}
	if err := r.Insert(ctx, Row{ID: first, Data: []byte(`{}`)}); !perr.IsCode(perr.FromPostgres(err, "save quiz"), perr.ErrorCodeDuplicateKey) {
		t.Fatalf("duplicate id err = %v", err)
	}
}
