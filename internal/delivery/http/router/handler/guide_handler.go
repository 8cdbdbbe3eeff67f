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

// GuideHandler holds dependencies for guide CRUD and summary handlers.
type GuideHandler struct {
	uc usecase.GuideUsecase
}

// NewGuideHandler is the constructor for GuideHandler, injected by Fx.
func NewGuideHandler(uc usecase.GuideUsecase) *GuideHandler {
	return &GuideHandler{uc: uc}
}

// Create handles guide authoring.
func (h *GuideHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("user ID missing from context")
	}

	var input *usecase.CreateGuideInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guide input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	guide, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, guide, "Guide created successfully")
}

// List returns the caller's guides, newest first.
func (h *GuideHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("user ID missing from context")
	}

	guides, err := h.uc.ListOwned(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guides, "Guides retrieved successfully")
}

// Get returns a single owned guide.
func (h *GuideHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("user ID missing from context")
	}

	guideID, err := parseGuideID(c)
	if err != nil {
		return err
	}

	guide, err := h.uc.Get(c.Request().Context(), guideID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guide, "Guide retrieved successfully")
}

// Update wholesale-replaces the guide's title, description, and steps.
func (h *GuideHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("user ID missing from context")
	}

	guideID, err := parseGuideID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateGuideInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guide input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	guide, err := h.uc.Update(c.Request().Context(), guideID, userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guide, "Guide updated successfully")
}

// Delete removes the guide permanently.
func (h *GuideHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("user ID missing from context")
	}

	guideID, err := parseGuideID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), guideID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Guide removed"}, "Guide deleted successfully")
}

// Summarize returns the derived guide summary.
func (h *GuideHandler) Summarize(c echo.Context) error {
	guideID, err := parseGuideID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Summarize(c.Request().Context(), guideID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Summary generated successfully")
}

// parseGuideID reads the :id path parameter. A malformed ID cannot reference
// any stored guide, so it maps to not-found rather than bad-request.
func parseGuideID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrGuideNotFound.WrapMessage("malformed guide id")
	}

	return id, nil
}
