package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// guardedEngine builds a minimal engine with a session in the store and
// the route guard in front of a probe handler.
func guardedEngine(t *testing.T, role domain.Role) (*gin.Engine, string) {
	t.Helper()

	store := session.NewMemoryStore()
	codec := session.NewCookieCodec("test-secret", "test")

	var cookie string
	if role != "" {
		s := session.New("tok", role, "Teste", time.Hour)
		assert.NoError(t, store.Put(context.Background(), s))
		var err error
		cookie, err = codec.Encode(s)
		assert.NoError(t, err)
	}

	r := gin.New()
	r.Use(middleware.SessionResolver(codec, store))
	r.Use(middleware.RouteGuard())
	r.NoRoute(func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, cookie
}

func request(r *gin.Engine, path, cookie string, json bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	if json {
		req.Header.Set("Accept", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouteGuard_AllowsPermittedRole(t *testing.T) {
	r, cookie := guardedEngine(t, domain.RoleGestor)
	w := request(r, "/users", cookie, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteGuard_RedirectsPageNavigation(t *testing.T) {
	r, cookie := guardedEngine(t, domain.RoleConsultor)
	w := request(r, "/upload", cookie, false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRouteGuard_NoSessionRedirectsToLogin(t *testing.T) {
	r, _ := guardedEngine(t, "")
	w := request(r, "/users", "", false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRouteGuard_FetchGetsJSONWithRedirect(t *testing.T) {
	r, cookie := guardedEngine(t, domain.RoleAlimentador)
	w := request(r, "/reports", cookie, true)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/"`)
}

func TestRouteGuard_UnauthenticatedFetchGets401(t *testing.T) {
	r, _ := guardedEngine(t, "")
	w := request(r, "/search", "", true)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)
}

func TestRouteGuard_StripsAPIPrefix(t *testing.T) {
	r, cookie := guardedEngine(t, domain.RoleAdmin)

	w := request(r, "/api/admin/tenants", cookie, true)
	assert.Equal(t, http.StatusForbidden, w.Code, "admin must not reach the tenant console")

	w = request(r, "/api/admin/departments", cookie, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteGuard_TamperedCookieMeansNoSession(t *testing.T) {
	r, cookie := guardedEngine(t, domain.RoleAdmin)
	w := request(r, "/users", cookie+"x", false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestSessionResolver_ExposesRole(t *testing.T) {
	store := session.NewMemoryStore()
	codec := session.NewCookieCodec("test-secret", "test")
	s := session.New("tok", domain.RoleGestor, "Teste", time.Hour)
	assert.NoError(t, store.Put(context.Background(), s))
	cookie, err := codec.Encode(s)
	assert.NoError(t, err)

	r := gin.New()
	r.Use(middleware.SessionResolver(codec, store))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, string(middleware.GetRole(c)))
	})

	w := request(r, "/whoami", cookie, false)
	assert.Equal(t, "gestor", w.Body.String())
}

func TestClearSession_DeletesFromStore(t *testing.T) {
	store := session.NewMemoryStore()
	codec := session.NewCookieCodec("test-secret", "test")
	s := session.New("tok", domain.RoleAdmin, "Teste", time.Hour)
	assert.NoError(t, store.Put(context.Background(), s))
	cookie, err := codec.Encode(s)
	assert.NoError(t, err)

	r := gin.New()
	r.Use(middleware.SessionResolver(codec, store))
	r.POST("/clear", func(c *gin.Context) {
		middleware.ClearSession(c)
		assert.Nil(t, middleware.GetSession(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/clear", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	_, err = store.Get(context.Background(), s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}
