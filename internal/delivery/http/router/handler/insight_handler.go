package handler

import (
	"net/http"

	deliverycontext "journal/internal/delivery/context"
	"journal/internal/delivery/http/response"
	"journal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InsightHandler serves the mood-trend summary.
type InsightHandler struct {
	uc usecase.InsightUsecase
}

// NewInsightHandler is the constructor for InsightHandler, injected by Fx.
func NewInsightHandler(uc usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// Summary returns the weekly summary. The route uses optional
// authentication: a logged-in caller gets a personalized report, everyone
// else gets the anonymous one.
func (h *InsightHandler) Summary(c echo.Context) error {
	identity, _ := deliverycontext.GetIdentity(c)

	summary, err := h.uc.Summary(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}
