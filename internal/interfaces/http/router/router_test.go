package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRegistrar struct {
	registered bool
}

func (s *stubRegistrar) RegisterRoutes(rg *gin.RouterGroup) {
	s.registered = true
	rg.GET("/stub", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func TestRouterSetupDefaultVersion(t *testing.T) {
	engine := gin.New()
	registrar := &stubRegistrar{}

	NewRouter(engine).Register(registrar).Setup()

	assert.True(t, registrar.registered)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/stub", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterSetupCustomVersion(t *testing.T) {
	engine := gin.New()

	NewRouter(engine, WithAPIVersion("v2")).Register(&stubRegistrar{}).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v2/stub", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/stub", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterMultipleRegistrars(t *testing.T) {
	engine := gin.New()
	first := &stubRegistrar{}
	second := &stubRegistrar{}

	NewRouter(engine).Register(first).Register(second).Setup()

	assert.True(t, first.registered)
	assert.True(t, second.registered)
}
