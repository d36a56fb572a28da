package http

import (
	"testing"

	"careerpath/internal/platform/testkit"
)

// Run starts the listener goroutine; none may survive the suite
func TestMain(m *testing.M) { testkit.LeakMain(m) }
