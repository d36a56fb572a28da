package config

import (
	"testing"
	"time"

	kit "careerpath/internal/platform/testkit"
)

func TestPrefixKey(t *testing.T) {
	api := New().Prefix("CAREER_").Prefix("API_")
	if got := api.Key("PORT"); got != "CAREER_API_PORT" {
		t.Fatalf("Key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("T_")
	t.Setenv("T_NAME", "  careerpath ")
	if got := c.MustString("NAME"); got != "careerpath" {
		t.Fatalf("MustString = %q", got)
	}
	t.Setenv("T_BLANK", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("BLANK") })
	kit.MustPanic(t, func() { c.Require("NAME", "MISSING") })
}

func TestMustDuration(t *testing.T) {
	c := New().Prefix("T_")
	t.Setenv("T_TIMEOUT", "250ms")
	if got := c.MustDuration("TIMEOUT"); got != 250*time.Millisecond {
		t.Fatalf("MustDuration = %v", got)
	}
	t.Setenv("T_BAD", "soon")
	kit.MustPanic(t, func() { _ = c.MustDuration("BAD") })
}

func TestMayParsers(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_INT", "42")
	t.Setenv("M_BADINT", "4x2")
	t.Setenv("M_BOOL", "true")
	t.Setenv("M_DUR", "3s")
	t.Setenv("M_BADDUR", "3 parsecs")

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"int", c.MayInt("INT", 1), 42},
		{"int invalid", c.MayInt("BADINT", 1), 1},
		{"int missing", c.MayInt("NOPE", 7), 7},
		{"bool", c.MayBool("BOOL", false), true},
		{"bool missing", c.MayBool("NOPE", true), true},
		{"duration", c.MayDuration("DUR", time.Second), 3 * time.Second},
		{"duration invalid", c.MayDuration("BADDUR", time.Second), time.Second},
		{"string missing", c.MayString("NOPE", "def"), "def"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("C_")
	t.Setenv("C_ORIGINS", " http://a , ,http://b ")
	got := c.MayCSV("ORIGINS", nil)
	if len(got) != 2 || got[0] != "http://a" || got[1] != "http://b" {
		t.Fatalf("MayCSV = %#v", got)
	}
	t.Setenv("C_EMPTY", " , ")
	if got := c.MayCSV("EMPTY", []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV blanks = %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	t.Setenv("E_MODE", "JSON")
	if got := c.MayEnum("MODE", "text", "json", "text"); got != "json" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayEnum("UNSET", "text", "json", "text"); got != "text" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_BAD", "yaml")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "text", "json", "text") })
}
