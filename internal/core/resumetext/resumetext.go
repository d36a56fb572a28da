// Package resumetext turns an uploaded plain-text resume into clean analyzer input
//
// Pipeline order
// 1 sniff the payload and reject anything that is not plain text
// 2 decode: BOM-marked UTF-16/UTF-8, valid UTF-8 as is, otherwise Windows-1252
// 3 Unicode NFC
// 4 drop format characters and controls other than newline and tab
// 5 collapse whitespace runs, a run with a line break becomes one newline
// 6 truncate to MaxRunes
package resumetext

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxRunes bounds the extracted text
const MaxRunes = 5000

// ErrUnsupported is returned for binary or rich formats such as PDF and DOCX
var ErrUnsupported = errors.New("resumetext: unsupported format")

// Result is the extracted text
type Result struct {
	Text      string `json:"text"`
	Truncated bool   `json:"truncated"`
	// MIME is the sniffed type of the upload
	MIME string `json:"mime" example:"text/plain; charset=utf-8"`
}

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)),
			runes.Remove(runes.Predicate(badControl)),
		)
	},
}

func badControl(r rune) bool {
	return unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r'
}

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// Extract sniffs, decodes and cleans b
func Extract(b []byte) (Result, error) {
	m := mimetype.Detect(b)
	if !isText(m) {
		return Result{MIME: m.String()}, ErrUnsupported
	}
	text, truncated := Clean(decode(b))
	return Result{Text: text, Truncated: truncated, MIME: m.String()}, nil
}

// isText accepts text/plain and its descendants such as csv
func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// FromString cleans already-decoded text
func FromString(s string) Result {
	text, truncated := Clean(strings.ToValidUTF8(s, ""))
	return Result{Text: text, Truncated: truncated, MIME: "text/plain; charset=utf-8"}
}

var textExt = map[string]bool{"": true, ".txt": true, ".text": true, ".md": true, ".markdown": true}

// CheckName rejects uploads whose extension is not a plain-text one
func CheckName(filename string) error {
	if !textExt[strings.ToLower(filepath.Ext(filename))] {
		return ErrUnsupported
	}
	return nil
}

func decode(b []byte) string {
	switch {
	case bytes.HasPrefix(b, utf8BOM), bytes.HasPrefix(b, utf16LEBOM), bytes.HasPrefix(b, utf16BEBOM):
		dec := xunicode.BOMOverride(xunicode.UTF8.NewDecoder())
		out, _, err := transform.Bytes(dec, b)
		if err == nil {
			return strings.ToValidUTF8(string(out), "")
		}
	case utf8.Valid(b):
		return string(b)
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "")
	}
	return string(out)
}

// Clean normalizes s and reports whether it was cut at MaxRunes
func Clean(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = s
	}
	return truncate(collapse(ns), MaxRunes)
}

// collapse folds whitespace runs to one space, or one newline when the run breaks a line
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS, sawNL := false, false
	flush := func() {
		if !inWS {
			return
		}
		if sawNL {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
		inWS, sawNL = false, false
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			sawNL = sawNL || r == '\n' || r == '\r'
			continue
		}
		flush()
		b.WriteRune(r)
	}
	return strings.Trim(b.String(), " \n")
}

func truncate(s string, max int) (string, bool) {
	if utf8.RuneCountInString(s) <= max {
		return s, false
	}
	n := 0
	for i := range s {
		if n == max {
			return strings.TrimRight(s[:i], " \n"), true
		}
		n++
	}
	return s, false
}
