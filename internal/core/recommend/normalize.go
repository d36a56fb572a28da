package recommend

import (
	"strings"
)

const (
	// extraSep joins the non-empty tag and preference fields
	extraSep = ", "
	// listCap bounds the parsed skills and interests lists
	listCap = 12
)

// Normalized is the searchable form of an Input
type Normalized struct {
	Text      string   // lowercase "skills interests resumeText extras"
	Tokens    []string // Text split on runs outside [a-z0-9+.#/]
	Skills    []string // parsed skills, lowercase, capped
	Interests []string // parsed interests, lowercase, capped

	tokenSet map[string]struct{}
}

// Normalize folds an Input into text, tokens and parsed lists
// it never fails and nil lists are treated as empty
func Normalize(in Input) Normalized {
	extras := make([]string, 0, 16)
	add := func(s string) {
		if s != "" {
			extras = append(extras, s)
		}
	}
	add(in.RolePref)
	for _, group := range [][]string{in.Industries, in.CodingLanguages, in.Tools, in.InterestsTags, in.Values, in.Roles} {
		for _, tag := range group {
			add(tag)
		}
	}
	add(in.LearningStyle)
	add(in.Environment)
	add(in.Goals)

	// free-text fields are space joined and always present, so phrases may span them
	text := strings.ToLower(strings.Join([]string{
		in.Skills, in.Interests, in.ResumeText, strings.Join(extras, extraSep),
	}, " "))
	toks := Tokenize(text)
	set := make(map[string]struct{}, len(toks))
	for _, t := range toks {
		set[t] = struct{}{}
	}
	return Normalized{
		Text:      text,
		Tokens:    toks,
		Skills:    ParseCSV(strings.ToLower(in.Skills)),
		Interests: ParseCSV(strings.ToLower(in.Interests)),
		tokenSet:  set,
	}
}

// HasToken reports exact token membership
func (n Normalized) HasToken(t string) bool {
	if n.tokenSet == nil {
		for _, x := range n.Tokens {
			if x == t {
				return true
			}
		}
		return false
	}
	_, ok := n.tokenSet[t]
	return ok
}

// Contains reports substring presence in the normalized text
func (n Normalized) Contains(sub string) bool { return strings.Contains(n.Text, sub) }

// Tokenize splits s on any run of characters outside [a-z0-9+.#/]
// callers lowercase first; uppercase letters act as separators
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return !tokenRune(r) })
}

func tokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '+', r == '.', r == '#', r == '/':
		return true
	}
	return false
}

// ParseCSV splits on commas, trims, drops empties and keeps the first 12 entries
func ParseCSV(s string) []string {
	out := make([]string, 0, listCap)
	for _, p := range strings.Split(s, ",") {
		if len(out) == listCap {
			break
		}
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
