package httpkit

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	perr "careerpath/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

// Param returns the trimmed route parameter
func Param(r *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}

// IDParam parses a positive integer route parameter
func IDParam(r *http.Request, name string) (int64, error) {
	raw := Param(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, perr.WithField(perr.InvalidArgf("invalid %s", name), name)
	}
	return id, nil
}

// QueryInt reads an integer query value clamped to [1, max]; missing or bad uses def
func QueryInt(r *http.Request, key string, def, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(key)))
	if err != nil || n <= 0 {
		n = def
	}
	return min(n, max)
}

// QueryTime reads an RFC3339 query value; missing yields the zero time
func QueryTime(r *http.Request, key string) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, perr.WithField(perr.InvalidArgf("invalid %s, want RFC3339", key), key)
	}
	return t, nil
}
