package usecase

import (
	"context"

	"journal/internal/domain/entity"
)

// MoodTrendPoint is one day of the summarized mood trend.
type MoodTrendPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// InsightSummary is the canned mood-trend report. The scoring behind it is
// deliberately stubbed; only the envelope and the personalization are real.
type InsightSummary struct {
	Personalized bool             `json:"personalized"`
	Greeting     string           `json:"greeting"`
	DominantMood entity.Mood      `json:"dominantMood"`
	Trend        []MoodTrendPoint `json:"trend"`
}

// InsightUsecase produces the summary shown on the dashboard. The identity is
// optional; anonymous callers receive a non-personalized report.
type InsightUsecase interface {
	Summary(ctx context.Context, identity *entity.Identity) (*InsightSummary, error)
}
