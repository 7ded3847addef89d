package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	partnerapp "github.com/stockroom/backend/internal/application/partner"
	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/interfaces/http/dto"
)

// MockCountryRepository implements partner.CountryRepository for testing
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) FindByID(ctx context.Context, id int64) (*partner.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Country), args.Error(1)
}

func (m *MockCountryRepository) FindByCode(ctx context.Context, code string) (*partner.Country, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Country), args.Error(1)
}

func (m *MockCountryRepository) FindAll(ctx context.Context) ([]partner.Country, error) {
	args := m.Called(ctx)
	return args.Get(0).([]partner.Country), args.Error(1)
}

func (m *MockCountryRepository) SaveAll(ctx context.Context, countries []partner.Country) error {
	args := m.Called(ctx, countries)
	return args.Error(0)
}

func (m *MockCountryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// stubCountryProvider returns a fixed country list.
type stubCountryProvider struct {
	countries []partner.Country
	err       error
}

func (p *stubCountryProvider) FetchAll(ctx context.Context) ([]partner.Country, error) {
	return p.countries, p.err
}

func setupCountryRouter(repo *MockCountryRepository, provider partnerapp.CountryProvider) *gin.Engine {
	service := partnerapp.NewCountryService(repo, provider, nil, nil)
	h := NewCountryHandler(service)

	router := gin.New()
	router.GET("/countries", h.List)
	router.GET("/countries/:id", h.GetByID)
	router.POST("/countries/import", h.Import)
	return router
}

func TestCountryHandlerList(t *testing.T) {
	repo := new(MockCountryRepository)
	router := setupCountryRouter(repo, &stubCountryProvider{})

	repo.On("Count", mock.Anything).Return(int64(2), nil)
	repo.On("FindAll", mock.Anything).Return([]partner.Country{
		{BaseEntity: shared.BaseEntity{ID: 1}, Name: "Brasil", Code: "BR"},
		{BaseEntity: shared.BaseEntity{ID: 2}, Name: "Portugal", Code: "PT"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/countries", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
}

func TestCountryHandlerListImportsWhenEmpty(t *testing.T) {
	repo := new(MockCountryRepository)
	provider := &stubCountryProvider{countries: []partner.Country{{Name: "Brasil", Code: "BR"}}}
	router := setupCountryRouter(repo, provider)

	repo.On("Count", mock.Anything).Return(int64(0), nil)
	repo.On("SaveAll", mock.Anything, provider.countries).Return(nil)
	repo.On("FindAll", mock.Anything).Return(provider.countries, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/countries", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestCountryHandlerGetByIDNotFound(t *testing.T) {
	repo := new(MockCountryRepository)
	router := setupCountryRouter(repo, &stubCountryProvider{})

	repo.On("FindByID", mock.Anything, int64(44)).Return(nil, shared.NotFoundWithID("Country", 44))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/countries/44", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCountryHandlerImport(t *testing.T) {
	repo := new(MockCountryRepository)
	provider := &stubCountryProvider{countries: []partner.Country{
		{Name: "Brasil", Code: "BR"},
		{Name: "Portugal", Code: "PT"},
	}}
	router := setupCountryRouter(repo, provider)

	repo.On("SaveAll", mock.Anything, provider.countries).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/countries/import", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), data["imported"])
}

func TestCountryHandlerImportProviderFailure(t *testing.T) {
	repo := new(MockCountryRepository)
	router := setupCountryRouter(repo, &stubCountryProvider{err: assert.AnError})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/countries/import", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	repo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}
