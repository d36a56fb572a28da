// Package domain holds DTOs and ports for quiz persistence
package domain

import (
	"time"

	"careerpath/internal/core/recommend"
)

// SaveResult is returned after a submission is stored
type SaveResult struct {
	OK bool   `json:"ok" example:"true"`
	ID string `json:"id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
}

// Latest is the most recent submission; Data is the questionnaire as stored
type Latest struct {
	OK        bool               `json:"ok"        example:"true"`
	ID        string             `json:"id"        example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	CreatedAt time.Time          `json:"createdAt" example:"2025-09-03T13:00:00Z"`
	Data      recommend.Input    `json:"data"`
	Result    recommend.Response `json:"result"`
}
