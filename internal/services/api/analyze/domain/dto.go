// Package domain holds DTOs and ports for the analyze module
package domain

import "careerpath/internal/core/recommend"

// Explanation lists every domain's score in ranked order
type Explanation struct {
	EngineVersion string            `json:"engineVersion" example:"2025.1"`
	Scores        []recommend.Score `json:"scores"`
}
