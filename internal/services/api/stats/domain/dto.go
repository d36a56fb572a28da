// Package domain holds DTOs for stats http and service contracts
package domain

import "time"

// AnalysisEvent is one recorded analysis, written after a successful analyze call
type AnalysisEvent struct {
	At          time.Time
	RequestID   string
	TopDomain   string
	Domains     []string
	GapCount    int
	SkillsCount int
}

// Window limits
const (
	DefaultDays  = 7
	MaxDays      = 90
	DefaultLimit = 10
	MaxLimit     = 50
)

// DomainsInput selects the lookback window and how many domains to return
type DomainsInput struct {
	Days  int `json:"days"  example:"7"`
	Limit int `json:"limit" example:"10"`
}

// DomainCount is how often a domain was suggested, and how often it ranked first
type DomainCount struct {
	Domain    string `json:"domain"    example:"Data Science"`
	Suggested uint64 `json:"suggested" example:"42"`
	Top       uint64 `json:"top"       example:"17"`
}

// DomainsResponse is the stats payload for the domains endpoint
type DomainsResponse struct {
	Days    int           `json:"days"    example:"7"`
	Since   string        `json:"since"   example:"2025-09-01T00:00:00Z"`
	Domains []DomainCount `json:"domains"`
}
