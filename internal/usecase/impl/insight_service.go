package impl

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"journal/internal/domain/entity"
	"journal/internal/usecase"

	"go.uber.org/fx"
)

const trendDays = 7

// insightService implements the InsightUsecase interface. The trend data is
// randomized placeholder output; only the personalization is real.
type insightService struct{}

// InsightServiceParams holds dependencies for insightService, injected by Fx.
type InsightServiceParams struct {
	fx.In
}

// NewInsightService is the constructor for insightService.
func NewInsightService(InsightServiceParams) usecase.InsightUsecase {
	return &insightService{}
}

// Summary returns the mood-trend report, personalized when an identity is
// present and anonymous otherwise.
func (srv *insightService) Summary(_ context.Context, identity *entity.Identity) (*usecase.InsightSummary, error) {
	greeting := "Here is the weekly mood summary"
	if identity != nil {
		greeting = fmt.Sprintf("Welcome back, %s", identity.Name)
	}

	trend := make([]usecase.MoodTrendPoint, 0, trendDays)
	for day := trendDays - 1; day >= 0; day-- {
		trend = append(trend, usecase.MoodTrendPoint{
			Date:  time.Now().AddDate(0, 0, -day).Format(time.DateOnly),
			Score: 1 + rand.Float64()*4, //nolint:gosec // Placeholder data, not security sensitive.
		})
	}

	return &usecase.InsightSummary{
		Personalized: identity != nil,
		Greeting:     greeting,
		DominantMood: entity.Moods[rand.IntN(len(entity.Moods))],
		Trend:        trend,
	}, nil
}
