package resumetext

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"spaces", "  Go   and\tSQL  ", "Go and SQL"},
		{"line breaks", "Skills:\r\n\r\n  Python\n\n\nSQL", "Skills:\nPython\nSQL"},
		{"zero width", "Re​act", "React"},
		{"controls", "a\x00b\x07c", "abc"},
		{"nfc", "Café", "Café"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, truncated := Clean(c.in)
			assert.Equal(t, c.want, got)
			assert.False(t, truncated)
		})
	}
}

func TestClean_Truncates(t *testing.T) {
	got, truncated := Clean(strings.Repeat("é", MaxRunes+10))
	assert.True(t, truncated)
	assert.Equal(t, MaxRunes, utf8.RuneCountInString(got))
}

func TestExtract_PlainText(t *testing.T) {
	res, err := Extract([]byte("Jane Doe\nReact, Node, SQL\n"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nReact, Node, SQL", res.Text)
	assert.Contains(t, res.MIME, "text/plain")
}

func TestExtract_UTF16WithBOM(t *testing.T) {
	// "Go" in UTF-16LE with BOM
	res, err := Extract([]byte{0xFF, 0xFE, 'G', 0, 'o', 0})
	require.NoError(t, err)
	assert.Equal(t, "Go", res.Text)
}

func TestExtract_RejectsPDF(t *testing.T) {
	_, err := Extract([]byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n1 0 obj\n"))
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestDecode_Windows1252Fallback(t *testing.T) {
	// 0xE9 is é in cp1252 and invalid as lone UTF-8
	assert.Equal(t, "résumé", decode([]byte{'r', 0xE9, 's', 'u', 'm', 0xE9}))
}

func TestFromString(t *testing.T) {
	res := FromString("  hello \xff world ")
	assert.Equal(t, "hello world", res.Text)
}

func TestCheckName(t *testing.T) {
	for _, ok := range []string{"cv.txt", "CV.MD", "resume", "notes.markdown"} {
		assert.NoError(t, CheckName(ok), ok)
	}
	for _, bad := range []string{"cv.pdf", "cv.docx", "cv.DOC", "cv.rtf"} {
		assert.ErrorIs(t, CheckName(bad), ErrUnsupported, bad)
	}
}
