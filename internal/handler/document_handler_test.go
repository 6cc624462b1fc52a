package handler_test

import (
	"encoding/json"
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

func TestDocumentHandler_List(t *testing.T) {
	api := new(mocks.MockDocumentAPI)
	h := handler.NewDocumentHandler(api)

	api.On("Search", mock.Anything, "backend-token", "", domain.SearchFilters{}).
		Return([]domain.SearchResult{{DocID: 1, DocumentTitle: "Contrato 42"}}, nil)
	api.On("DocumentTypes", mock.Anything, "backend-token").
		Return([]string{"contrato", "alvará"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/documents", nil)
	withSession(c, domain.RoleGestor)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Contrato 42")
	assert.Contains(t, w.Body.String(), `"can_delete":true`)
	api.AssertExpectations(t)
}

func TestDocumentHandler_List_AlimentadorCannotDelete(t *testing.T) {
	api := new(mocks.MockDocumentAPI)
	h := handler.NewDocumentHandler(api)

	api.On("Search", mock.Anything, mock.Anything, "", domain.SearchFilters{}).
		Return([]domain.SearchResult{}, nil)
	api.On("DocumentTypes", mock.Anything, mock.Anything).Return([]string{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/documents", nil)
	withSession(c, domain.RoleAlimentador)

	h.List(c)

	assert.Contains(t, w.Body.String(), `"can_delete":false`)
}

func TestDocumentHandler_Delete_RoleGate(t *testing.T) {
	api := new(mocks.MockDocumentAPI)
	h := handler.NewDocumentHandler(api)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/documents/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	withSession(c, domain.RoleConsultor)

	h.Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	api.AssertNotCalled(t, "DeleteDocument")
}

func TestDocumentHandler_Delete_Success(t *testing.T) {
	api := new(mocks.MockDocumentAPI)
	h := handler.NewDocumentHandler(api)

	api.On("DeleteDocument", mock.Anything, "backend-token", int64(42)).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/documents/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	withSession(c, domain.RoleGestor)

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	api.AssertExpectations(t)
}

func TestDocumentHandler_Highlights(t *testing.T) {
	api := new(mocks.MockDocumentAPI)
	h := handler.NewDocumentHandler(api)

	api.On("PageMetadata", mock.Anything, "backend-token", int64(7), 2).Return([]domain.OCRWord{
		{Text: "Alvará", Box: [4]float64{100, 100, 200, 150}},
		{Text: "Municipal", Box: [4]float64{210, 100, 320, 150}},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/api/documents/7/pages/2/highlights?q=alvar%C3%A1&dw=500&dh=500&nw=1000&nh=1000", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}, {Key: "page", Value: "2"}}
	withSession(c, domain.RoleConsultor)

	h.Highlights(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Query string `json:"query"`
			Rects []struct {
				Left, Top, Width, Height float64
			} `json:"rects"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Rects, 1)
	assert.InDelta(t, 50, resp.Data.Rects[0].Left, 1e-9)
	assert.InDelta(t, 50, resp.Data.Rects[0].Top, 1e-9)
	assert.InDelta(t, 50, resp.Data.Rects[0].Width, 1e-9)
	assert.InDelta(t, 25, resp.Data.Rects[0].Height, 1e-9)
}

func TestDocumentHandler_Highlights_ShortQueryEmpty(t *testing.T) {
	api := new(mocks.MockDocumentAPI)
	h := handler.NewDocumentHandler(api)

	api.On("PageMetadata", mock.Anything, mock.Anything, int64(7), 1).
		Return([]domain.OCRWord{{Text: "ab", Box: [4]float64{0, 0, 10, 10}}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/api/documents/7/pages/1/highlights?q=ab&dw=500&dh=500&nw=1000&nh=1000", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}, {Key: "page", Value: "1"}}
	withSession(c, domain.RoleConsultor)

	h.Highlights(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rects":[]`)
}

func TestDocumentHandler_Highlights_UnloadedImageEmpty(t *testing.T) {
	api := new(mocks.MockDocumentAPI)
	h := handler.NewDocumentHandler(api)

	api.On("PageMetadata", mock.Anything, mock.Anything, int64(7), 1).
		Return([]domain.OCRWord{{Text: "alvará", Box: [4]float64{0, 0, 10, 10}}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	// nw/nh absent: natural size unknown, nothing to scale against.
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/api/documents/7/pages/1/highlights?q=alvar%C3%A1&dw=500&dh=500", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}, {Key: "page", Value: "1"}}
	withSession(c, domain.RoleConsultor)

	h.Highlights(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rects":[]`)
}

func TestDocumentHandler_Chat(t *testing.T) {
	api := new(mocks.MockDocumentAPI)
	h := handler.NewDocumentHandler(api)

	api.On("Chat", mock.Anything, "backend-token", int64(5), "Qual o valor do contrato?").
		Return(&domain.ChatReply{Reply: "R$ 120.000,00"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/documents/5/chat", map[string]string{
		"message": "Qual o valor do contrato?",
	})
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	withSession(c, domain.RoleConsultor)

	h.Chat(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "R$ 120.000,00")
}

func TestDocumentHandler_Share_DefaultsTo24Hours(t *testing.T) {
	api := new(mocks.MockDocumentAPI)
	h := handler.NewDocumentHandler(api)

	api.On("CreateShareLink", mock.Anything, "backend-token", int64(5), 24).
		Return(&domain.ShareLink{Token: "abc"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/documents/5/share", map[string]any{})
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	withSession(c, domain.RoleGestor)

	h.Share(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	api.AssertExpectations(t)
}

func TestDocumentHandler_InvalidID(t *testing.T) {
	api := new(mocks.MockDocumentAPI)
	h := handler.NewDocumentHandler(api)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/documents/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	withSession(c, domain.RoleAdmin)

	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
