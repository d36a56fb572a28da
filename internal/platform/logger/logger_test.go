package logger

import (
	"bytes"
	"context"
	"testing"

	kit "careerpath/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"loud":    zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitAndChildren(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:   "debug",
		Format:  "json",
		Service: "careerpath-test",
		Writer:  &buf,
		Fields:  map[string]string{"build": "test"},
	})

	Get().Info().Msg("root-msg")
	Named("recommend").Info().Msg("named-msg")
	ctx := WithRequest(context.Background(), "req-1", "user-9")
	C(ctx).Info().Msg("ctx-msg")
	C(context.Background()).Info().Msg("bare-msg")

	out := buf.String()
	kit.MustContain(t, out, `"root-msg"`)
	kit.MustContain(t, out, `"component":"recommend"`)
	kit.MustContain(t, out, `"request_id":"req-1"`)
	kit.MustContain(t, out, `"user_id":"user-9"`)
	kit.MustContain(t, out, `"service":"careerpath-test"`)
	kit.MustContain(t, out, `"build":"test"`)

	// second Init is a no-op
	Init(Options{Level: "error"})
	if Get().GetLevel() != zerolog.DebugLevel {
		t.Fatalf("Init ran twice")
	}
	if Named("") != Get() {
		t.Fatalf("Named(\"\") should return root")
	}
}
