package http

import (
	"bytes"
	"io"
	"mime/multipart"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "careerpath/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}

func TestReadUpload_MultipartStopsAtCap(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "cv.txt")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte("a"), 4<<20))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	body := &countingReader{r: &buf}
	req := httptest.NewRequest(stdhttp.MethodPost, "/resume/text", body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	_, err = readUpload(req)
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeTooLarge), "got %v", err)
	assert.LessOrEqual(t, body.n, MaxUpload+multipartSlack+1)
}

func TestReadUpload_FileJustOverLimit(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "cv.txt")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte("a"), MaxUpload+1))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(stdhttp.MethodPost, "/resume/text", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	_, err = readUpload(req)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeTooLarge), "got %v", err)
}
