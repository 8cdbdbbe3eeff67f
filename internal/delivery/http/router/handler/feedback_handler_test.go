package handler

import (
	"net/http"
	"testing"

	"guideflow/internal/delivery/http/middleware"
	"guideflow/internal/domain/entity"
	mockUC "guideflow/internal/mocks/usecase"
	"guideflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackHandler_Create_Success(t *testing.T) {
	uc := &mockUC.MockFeedbackUsecase{}
	handler := NewFeedbackHandler(uc)

	userID := uuid.New()
	guideID := uuid.New()
	uc.On("Create", mock.Anything, userID, mock.AnythingOfType("*usecase.CreateFeedbackInput")).
		Return(&entity.Feedback{ID: uuid.New(), GuideID: guideID, AuthorID: userID, Rating: 5}, nil)

	c, rec := newTestContext(http.MethodPost, "/feedback",
		`{"guideId":"`+guideID.String()+`","rating":5,"comment":"Great"}`)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), guideID.String())
}

func TestFeedbackHandler_Create_InvalidRating(t *testing.T) {
	uc := &mockUC.MockFeedbackUsecase{}
	handler := NewFeedbackHandler(uc)

	guideID := uuid.New()
	c, _ := newTestContext(http.MethodPost, "/feedback",
		`{"guideId":"`+guideID.String()+`","rating":7}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := handler.Create(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestFeedbackHandler_ListByGuide_Success(t *testing.T) {
	uc := &mockUC.MockFeedbackUsecase{}
	handler := NewFeedbackHandler(uc)

	guideID := uuid.New()
	uc.On("ListByGuide", mock.Anything, guideID).
		Return([]*usecase.FeedbackEntry{
			{ID: uuid.New(), GuideID: guideID, AuthorName: "Test User", Rating: 4, Comment: "Helpful"},
		}, nil)

	c, rec := newTestContext(http.MethodGet, "/feedback/"+guideID.String(), "")
	c.Set(middleware.ContextKeyUserID, uuid.New())
	c.SetParamNames("guideId")
	c.SetParamValues(guideID.String())

	require.NoError(t, handler.ListByGuide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Test User")
}
