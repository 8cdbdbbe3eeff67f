package handler

import (
	"net/http"

	"guideflow/internal/delivery/http/middleware"
	"guideflow/internal/delivery/http/response"
	domainerrors "guideflow/internal/domain/errors"
	"guideflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for feedback handlers.
type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

// Create records a rating with an optional comment on a guide.
func (h *FeedbackHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("user ID missing from context")
	}

	var input *usecase.CreateFeedbackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	feedback, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, feedback, "Feedback submitted successfully")
}

// ListByGuide returns all feedback for a guide with author names joined.
func (h *FeedbackHandler) ListByGuide(c echo.Context) error {
	guideID, err := uuid.Parse(c.Param("guideId"))
	if err != nil {
		return domainerrors.ErrGuideNotFound.WrapMessage("malformed guide id")
	}

	entries, err := h.uc.ListByGuide(c.Request().Context(), guideID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Feedback retrieved successfully")
}
