// Package recommend scores a questionnaire against a fixed catalog of career
// domains and produces suggestions, skill gaps, a learning path and a summary.
//
// The engine is pure: no I/O, clock or randomness, and identical input always
// yields an identical Response. An Engine is immutable after construction and
// safe for concurrent use.
package recommend

import (
	"fmt"
	"strings"
)

// Version identifies the scoring rules; bump when weights or catalog change
const Version = "2025.1"

const (
	maxSuggestions = 4
	maxGaps        = 6
	summaryGaps    = 3
	reasonKeywords = 6
)

// Suggestion is one recommended domain with its explanation
type Suggestion struct {
	Domain string `json:"domain" example:"Frontend Engineering"`
	Reason string `json:"reason" example:"based on (react, ui) and your preferences"`
}

// Response is the full analysis result
type Response struct {
	Suggestions  []Suggestion `json:"suggestions"`
	SkillGaps    []string     `json:"skillGaps"`
	LearningPath []Step       `json:"learningPath"`
	Summary      string       `json:"summary" example:"Based on your input, we recommend exploring Frontend Engineering. Focus on closing python, sql, statistics."`
}

// TopDomain returns the first suggestion's domain or ""
func (r Response) TopDomain() string {
	if len(r.Suggestions) == 0 {
		return ""
	}
	return r.Suggestions[0].Domain
}

// Engine holds an immutable catalog and canonical skill list
type Engine struct {
	catalog []Domain
	skills  []string
}

// Option configures an Engine
type Option func(*Engine)

// WithCatalog replaces the domain catalog; an empty catalog is ignored
func WithCatalog(c []Domain) Option {
	return func(e *Engine) {
		if len(c) > 0 {
			e.catalog = cloneDomains(c)
		}
	}
}

// WithCanonicalSkills replaces the canonical skill list; an empty list is ignored
func WithCanonicalSkills(s []string) Option {
	return func(e *Engine) {
		if len(s) > 0 {
			e.skills = append([]string(nil), s...)
		}
	}
}

// New builds an Engine over the built-in catalog unless overridden
func New(opts ...Option) *Engine {
	e := &Engine{catalog: defaultCatalog, skills: defaultSkills}
	for _, o := range opts {
		if o != nil {
			o(e)
		}
	}
	return e
}

var std = New()

// Default returns the shared engine over the built-in catalog
func Default() *Engine { return std }

// Analyze runs the shared engine
func Analyze(in Input) Response { return std.Analyze(in) }

// Rank runs the shared engine and returns every domain's score in ranked order
func Rank(in Input) []Score { return std.Rank(in) }

// CatalogSize reports how many domains the engine scores
func (e *Engine) CatalogSize() int { return len(e.catalog) }

// Skills returns a copy of the canonical skill list
func (e *Engine) Skills() []string { return append([]string(nil), e.skills...) }

// Domains returns a copy of the catalog
func (e *Engine) Domains() []Domain { return cloneDomains(e.catalog) }

// Rank scores all domains, sorted by descending score with catalog order on ties
func (e *Engine) Rank(in Input) []Score {
	return rank(e.catalog, Normalize(in), in)
}

// Analyze produces the full Response for in; it never fails
func (e *Engine) Analyze(in Input) Response {
	n := Normalize(in)
	scores := rank(e.catalog, n, in)

	sugg := suggestions(scores)
	gaps := e.gaps(n.Skills)

	return Response{
		Suggestions:  sugg,
		SkillGaps:    gaps,
		LearningPath: LearningPath(),
		Summary:      summary(sugg, gaps),
	}
}

func suggestions(scores []Score) []Suggestion {
	top := scores
	if len(top) > maxSuggestions {
		top = top[:maxSuggestions]
	}
	picked := make([]Score, 0, len(top))
	for _, s := range top {
		if s.Score > 0 {
			picked = append(picked, s)
		}
	}
	if len(picked) == 0 {
		picked = top
	}

	out := make([]Suggestion, 0, len(picked))
	for _, s := range picked {
		out = append(out, Suggestion{Domain: s.Domain, Reason: reason(s)})
	}
	return out
}

func reason(s Score) string {
	if len(s.MatchedKeywords) == 0 {
		return s.BaseReason
	}
	kw := s.MatchedKeywords
	if len(kw) > reasonKeywords {
		kw = kw[:reasonKeywords]
	}
	return fmt.Sprintf("based on (%s) and your preferences", strings.Join(kw, ", "))
}

// gaps lists canonical skills absent from have, canonical order, capped
func (e *Engine) gaps(have []string) []string {
	owned := make(map[string]struct{}, len(have))
	for _, h := range have {
		owned[h] = struct{}{}
	}
	out := make([]string, 0, maxGaps)
	for _, s := range e.skills {
		if len(out) == maxGaps {
			break
		}
		if _, ok := owned[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

func summary(sugg []Suggestion, gaps []string) string {
	names := make([]string, len(sugg))
	for i, s := range sugg {
		names[i] = s.Domain
	}
	g := gaps
	if len(g) > summaryGaps {
		g = g[:summaryGaps]
	}
	return fmt.Sprintf("Based on your input, we recommend exploring %s. Focus on closing %s.",
		strings.Join(names, ", "), strings.Join(g, ", "))
}
