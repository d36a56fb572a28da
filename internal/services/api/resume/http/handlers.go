// Package http provides the resume text upload endpoint
package http

import (
	"errors"
	"io"
	"mime"
	stdhttp "net/http"
	"strings"

	"careerpath/internal/core/resumetext"
	"careerpath/internal/modkit/httpkit"
	perr "careerpath/internal/platform/errors"
)

// MaxUpload caps the accepted upload size
const MaxUpload = 1 << 20

// multipartSlack covers part headers and boundaries around the file
const multipartSlack = 64 << 10

// Register mounts resume endpoints on the given router
func Register(r httpkit.Router) {
	httpkit.Post(r, "/text", extract)
}

// swagger:route POST /resume/text Resume resumeText
// @Summary Extract clean plain text from an uploaded resume
// @Description multipart/form-data with a "file" part, or a raw text/plain body; PDF and DOCX are rejected
// @Tags Resume
// @Accept mpfd,plain
// @Produce json
// @Param file formData file false "Resume (.txt or .md)"
// @Success 200 {object} resumetext.Result "ok"
// @Failure 413 {object} httpkit.Envelope "too large"
// @Failure 415 {object} httpkit.Envelope "unsupported format"
// @Router /resume/text [post]
func extract(r *stdhttp.Request) (any, error) {
	b, err := readUpload(r)
	if err != nil {
		return nil, err
	}
	res, err := resumetext.Extract(b)
	if errors.Is(err, resumetext.ErrUnsupported) {
		return nil, perr.Unsupportedf("unsupported resume format %s, upload .txt or .md", res.MIME)
	}
	if err != nil {
		return nil, err
	}
	return httpkit.Bare(res), nil
}

func readUpload(r *stdhttp.Request) ([]byte, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case ct == "multipart/form-data":
		r.Body = stdhttp.MaxBytesReader(nil, r.Body, MaxUpload+multipartSlack)
		if err := r.ParseMultipartForm(MaxUpload); err != nil {
			var tooBig *stdhttp.MaxBytesError
			if errors.As(err, &tooBig) {
				return nil, perr.TooLargef("upload exceeds %d bytes", MaxUpload)
			}
			return nil, perr.InvalidArgf("invalid multipart body: %v", err)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			return nil, perr.WithField(perr.InvalidArgf("file required"), "file")
		}
		defer f.Close()
		if err := resumetext.CheckName(hdr.Filename); err != nil {
			return nil, perr.Unsupportedf("unsupported resume file %s, upload .txt or .md", hdr.Filename)
		}
		return readCapped(f)
	case ct == "" || strings.HasPrefix(ct, "text/") || ct == "application/octet-stream":
		if r.Body == nil {
			return nil, perr.InvalidArgf("empty body")
		}
		return readCapped(r.Body)
	default:
		return nil, perr.Unsupportedf("unsupported content type %s", ct)
	}
}

func readCapped(rd io.Reader) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(rd, MaxUpload+1))
	if err != nil {
		return nil, perr.InvalidArgf("read upload: %v", err)
	}
	if len(b) > MaxUpload {
		return nil, perr.TooLargef("upload exceeds %d bytes", MaxUpload)
	}
	if len(b) == 0 {
		return nil, perr.InvalidArgf("empty upload")
	}
	return b, nil
}
