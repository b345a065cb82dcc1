package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "journal/internal/delivery/context"
	"journal/internal/delivery/http/response"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EntryHandler holds dependencies for journal-entry handlers.
type EntryHandler struct {
	uc     usecase.EntryUsecase
	logger *slog.Logger
}

// NewEntryHandler is the constructor for EntryHandler, injected by Fx.
func NewEntryHandler(uc usecase.EntryUsecase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the journal-entry creation request.
func (h *EntryHandler) Create(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrNoToken.WrapMessage("entry create without identity")
	}

	var input usecase.CreateEntryInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "body", Message: "must be a valid JSON object"},
		})
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.Create(c.Request().Context(), identity.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry)
}

// List handles the journal-entry listing request.
func (h *EntryHandler) List(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrNoToken.WrapMessage("entry list without identity")
	}

	var input usecase.ListEntriesInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "query", Message: "limit and offset must be integers"},
		})
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	entries, err := h.uc.List(c.Request().Context(), identity.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// Get handles the single journal-entry request.
func (h *EntryHandler) Get(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrNoToken.WrapMessage("entry get without identity")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "id", Message: "must be a valid UUID", RejectedValue: c.Param("id")},
		})
	}

	entry, err := h.uc.Get(c.Request().Context(), identity.ID, entryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// Delete handles the journal-entry deletion request.
func (h *EntryHandler) Delete(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrNoToken.WrapMessage("entry delete without identity")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "id", Message: "must be a valid UUID", RejectedValue: c.Param("id")},
		})
	}

	if err := h.uc.Delete(c.Request().Context(), identity.ID, entryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Entry deleted"})
}
