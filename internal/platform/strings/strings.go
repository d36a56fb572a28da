// Package strings holds small string helpers used by config and repos
package strings

import std "strings"

// IfEmpty returns def when in is empty
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString panics with "<name> is required" when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a route prefix to one leading slash and no trailing slash
// it panics on an empty or root prefix
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), "/ ")
	if s == "/" {
		panic("route prefix is required")
	}
	return s
}

// SQLNull maps blank strings to a NULL query argument
func SQLNull(s string) any {
	if std.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// FirstNonBlank returns the first argument with non-whitespace content, trimmed
func FirstNonBlank(vals ...string) string {
	for _, v := range vals {
		if v = std.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
