package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/handler"
	"github.com/MateusHenriVieira/intellidocs-frontend/mocks"
)

func TestPublicHandler_View(t *testing.T) {
	api := new(mocks.MockPublicAPI)
	h := handler.NewPublicHandler(api)

	api.On("PublicDocument", mock.Anything, "share-abc").Return(&domain.PublicDocument{
		Title: "Contrato 42", TotalPages: 1,
		Pages: []domain.PublicPage{{PageNumber: 1, ImageURL: "http://api/static/42-1.png"}},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/view/share-abc", nil)
	c.Params = gin.Params{{Key: "token", Value: "share-abc"}}

	h.View(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Contrato 42")
	api.AssertExpectations(t)
}

func TestPublicHandler_View_ExpiredLink(t *testing.T) {
	api := new(mocks.MockPublicAPI)
	h := handler.NewPublicHandler(api)

	api.On("PublicDocument", mock.Anything, "stale").Return(nil, domain.ErrLinkExpired)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/view/stale", nil)
	c.Params = gin.Params{{Key: "token", Value: "stale"}}

	h.View(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "LINK_EXPIRED")
	assert.NotContains(t, w.Body.String(), `"redirect":"/login"`, "no session to bounce")
}
