package net

import (
	"net/http"
	"testing"

	perr "careerpath/internal/platform/errors"
)

func TestError(t *testing.T) {
	status, w := Error(perr.NotFoundf("no data"), "r1")
	if status != http.StatusNotFound || w.StatusCode != status {
		t.Fatalf("status = %d / %d", status, w.StatusCode)
	}
	if w.Error != "no data" || w.Code != perr.ErrorCodeNotFound || w.RequestID != "r1" || w.Status != "Not Found" {
		t.Fatalf("wire = %+v", w)
	}
}
