package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestDBErrorCode(t *testing.T) {
	cases := []struct {
		state string
		want  ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23503", ErrorCodeNotFound},
		{"23502", ErrorCodeValidation},
		{"22P02", ErrorCodeInvalidArgument},
		{"57P03", ErrorCodeUnavailable},
		{"40001", ErrorCodeDB},
		{"XX000", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(&pgconn.PgError{Code: c.state})
		if !ok || got != c.want {
			t.Fatalf("DBErrorCode(%s) = %d,%v want %d", c.state, got, ok, c.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("non-pg error reported ok")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("nil should stay nil")
	}
	err := FromPostgres(&pgconn.PgError{Code: "23505", ColumnName: "name"}, "create room")
	if !IsCode(err, ErrorCodeDuplicateKey) || !IsDuplicateKey(err) {
		t.Fatalf("code = %d", CodeOf(err))
	}
	if e, _ := As(err); e.Field() != "name" {
		t.Fatalf("field = %q", e.Field())
	}

	err = FromPostgresf(stderrs.New("conn reset"), "feed limit=%d", 20)
	if !IsCode(err, ErrorCodeDB) || err.Error() != "feed limit=20: conn reset" {
		t.Fatalf("non-pg wrap = %v (%d)", err, CodeOf(err))
	}

	if err := FromPostgres(ErrNotFound, "load profile"); err != ErrNotFound {
		t.Fatalf("project error should pass through, got %v", err)
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{fmt.Errorf("q: %w", context.DeadlineExceeded), false},
		{&pgconn.PgError{Code: "40001"}, true},
		{&pgconn.PgError{Code: "40P01"}, true},
		{&pgconn.PgError{Code: "23505"}, false},
		{stderrs.New("ERROR: deadlock detected"), true},
		{stderrs.New("syntax error"), false},
	}
	for _, c := range cases {
		if got := IsRetryable(c.err); got != c.want {
			t.Fatalf("IsRetryable(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
