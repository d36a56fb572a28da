package middleware

import (
	"net/http"
	"strings"

	"careerpath/internal/platform/logger"
	pnet "careerpath/internal/platform/net"
)

// UserHeader carries the caller's self-declared id; nothing verifies it
const UserHeader = "X-User-Id"

// Identity copies the caller id from the X-User-Id header, else the userId
// query parameter, onto the request context and the request logger.
// Requests without an id pass through untouched.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := strings.TrimSpace(r.Header.Get(UserHeader))
		if uid == "" {
			uid = strings.TrimSpace(r.URL.Query().Get("userId"))
		}
		ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), uid)
		ctx = pnet.WithUser(ctx, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
