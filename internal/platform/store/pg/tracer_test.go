package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"select 1", "select 1"},
		{"  select   1  ", " select 1 "},
		{"SELECT\t*\nFROM\r\tquizzes WHERE  id =  $1", "SELECT * FROM quizzes WHERE id = $1"},
		{"", ""},
	}
	for _, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("compact(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTracer_Levels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		ev    QueryEvent
		level string
	}{
		{"ok", QueryEvent{SQL: "SELECT 1", ElapsedUS: 1500}, "info"},
		{"slow", QueryEvent{SQL: "SELECT 1", ElapsedUS: 900000, Slow: true}, "warn"},
		{"failed", QueryEvent{SQL: "SELECT 1", Err: errors.New("boom"), Slow: true}, "error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			// root at error level must not hide query lines
			Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel)).OnQuery(context.Background(), c.ev)

			var line struct {
				Level     string  `json:"level"`
				ElapsedMS float64 `json:"elapsed_ms"`
				SQL       string  `json:"sql"`
				Component string  `json:"component"`
				Message   string  `json:"message"`
			}
			if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
				t.Fatalf("decode: %v (%s)", err, buf.String())
			}
			if line.Level != c.level || line.Component != "pg" || line.Message != "pg query" {
				t.Fatalf("line = %+v", line)
			}
			if line.ElapsedMS != float64(c.ev.ElapsedUS)/1000 {
				t.Fatalf("elapsed_ms = %v", line.ElapsedMS)
			}
		})
	}
}
