package testkit

import (
	"testing"
)

var hook = func() string { return "real" }

func TestSwapRestores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Serial(t)
		Swap(t, &hook, func() string { return "fake" })
		if hook() != "fake" {
			t.Fatalf("swap not applied")
		}
	})
	if hook() != "real" {
		t.Fatalf("swap not restored")
	}
}

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
}

func TestMustContain(t *testing.T) {
	MustContain(t, "career path", "path")
}

func TestMain(m *testing.M) { LeakMain(m) }
