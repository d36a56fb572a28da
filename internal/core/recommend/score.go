package recommend

import (
	"sort"
	"strings"
)

const (
	keywordWeight  = 3.0
	boostWeight    = 1.5
	industryWeight = 0.5
	presenceWeight = 0.1
)

// Score is the per-domain result of scoring one Input
type Score struct {
	Domain          string   `json:"domain"          example:"Frontend Engineering"`
	Score           float64  `json:"score"           example:"10.5"`
	MatchedKeywords []string `json:"matchedKeywords"`
	BaseReason      string   `json:"baseReason"      example:"UI/UX focus with JavaScript, React, and CSS"`
}

// rule adds Bonus to every domain whose name contains one of Targets
// when the trigger matches
type rule struct {
	Triggers []string
	Targets  []string
	Bonus    float64
}

func (r rule) hits(domain string) bool {
	for _, t := range r.Targets {
		if strings.Contains(domain, t) {
			return true
		}
	}
	return false
}

// rolePref is compared exactly after lowercasing
var prefRules = []rule{
	{Triggers: []string{"engineering"}, Targets: []string{"Frontend", "Backend", "Full Stack"}, Bonus: 1.5},
	{Triggers: []string{"data"}, Targets: []string{"Data", "AI/ML"}, Bonus: 2},
	{Triggers: []string{"product"}, Targets: []string{"Product"}, Bonus: 2},
	{Triggers: []string{"design"}, Targets: []string{"Frontend", "UI/UX"}, Bonus: 1.2},
}

// role tags trigger when they contain any phrase; every matching rule stacks
var roleRules = []rule{
	{Triggers: []string{"frontend"}, Targets: []string{"Frontend"}, Bonus: 2.5},
	{Triggers: []string{"backend"}, Targets: []string{"Backend"}, Bonus: 2.5},
	{Triggers: []string{"full stack"}, Targets: []string{"Full Stack"}, Bonus: 2.5},
	{Triggers: []string{"software engineer", "developer"}, Targets: []string{"Frontend", "Backend", "Full Stack"}, Bonus: 1.5},
	{Triggers: []string{"mobile"}, Targets: []string{"Mobile"}, Bonus: 2.5},
	{Triggers: []string{"devops", "sre"}, Targets: []string{"Cloud/DevOps", "SRE"}, Bonus: 2.5},
	{Triggers: []string{"cloud"}, Targets: []string{"Cloud/DevOps"}, Bonus: 2},
	{Triggers: []string{"security", "cyber"}, Targets: []string{"Cybersecurity"}, Bonus: 2.5},
	{Triggers: []string{"data scientist"}, Targets: []string{"Data Science"}, Bonus: 2.5},
	{Triggers: []string{"data engineer"}, Targets: []string{"Data Engineer", "Backend"}, Bonus: 2},
	{Triggers: []string{"ml engineer", "ai"}, Targets: []string{"AI/ML"}, Bonus: 2.5},
	{Triggers: []string{"ui", "ux"}, Targets: []string{"UI/UX"}, Bonus: 2.5},
	{Triggers: []string{"product manager"}, Targets: []string{"Product Management"}, Bonus: 2.5},
	{Triggers: []string{"qa", "test"}, Targets: []string{"QA/Test"}, Bonus: 2},
	{Triggers: []string{"embedded"}, Targets: []string{"Embedded"}, Bonus: 2},
	{Triggers: []string{"game"}, Targets: []string{"Game"}, Bonus: 2},
	{Triggers: []string{"blockchain"}, Targets: []string{"Blockchain"}, Bonus: 2},
	{Triggers: []string{"database"}, Targets: []string{"Database"}, Bonus: 2},
	{Triggers: []string{"architect"}, Targets: []string{"Architect"}, Bonus: 2},
	{Triggers: []string{"technical writer"}, Targets: []string{"Technical Writing"}, Bonus: 2},
}

// scoreDomain computes one domain's score against normalized input
func scoreDomain(d Domain, n Normalized, in Input) Score {
	s := Score{Domain: d.Name, BaseReason: d.BaseReason, MatchedKeywords: []string{}}

	for _, k := range d.Keywords {
		if n.HasToken(k) || n.Contains(k) {
			s.Score += keywordWeight
			s.MatchedKeywords = append(s.MatchedKeywords, k)
		}
	}
	for _, b := range d.Boosts {
		if n.HasToken(b) {
			s.Score += boostWeight
		}
	}

	if in.RolePref != "" {
		rp := strings.ToLower(in.RolePref)
		for _, r := range prefRules {
			if r.Triggers[0] == rp && r.hits(d.Name) {
				s.Score += r.Bonus
			}
		}
	}

	for _, role := range in.Roles {
		role = strings.ToLower(role)
		for _, r := range roleRules {
			if containsAny(role, r.Triggers) && r.hits(d.Name) {
				s.Score += r.Bonus
			}
		}
	}

	for _, ind := range in.Industries {
		if n.Contains(strings.ToLower(ind)) {
			s.Score += industryWeight
		}
	}
	if in.LearningStyle != "" {
		s.Score += presenceWeight
	}
	if in.Environment != "" {
		s.Score += presenceWeight
	}
	return s
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// rank scores every domain and sorts descending, keeping catalog order on ties
func rank(catalog []Domain, n Normalized, in Input) []Score {
	out := make([]Score, len(catalog))
	for i, d := range catalog {
		out[i] = scoreDomain(d, n, in)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
