package httpkit

import (
	"net/http"
	"strings"

	perr "careerpath/internal/platform/errors"
	pnet "careerpath/internal/platform/net"
)

// User returns the caller id set by the identity middleware, falling back to
// an id carried in the request body; "" when neither is present
func User(r *http.Request, body string) string {
	if uid := pnet.UserID(r.Context()); uid != "" {
		return uid
	}
	return strings.TrimSpace(body)
}

// RequireUser is User that fails with 400 when no id is present
func RequireUser(r *http.Request, body string) (string, error) {
	uid := User(r, body)
	if uid == "" {
		return "", perr.WithField(perr.InvalidArgf("userId required"), "userId")
	}
	return uid, nil
}
