package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"trailpost/internal/config"
	"trailpost/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newRoutedApp wires the full route table with mock repositories so route
// precedence can be exercised end to end.
func newRoutedApp(t *testing.T) (*fiber.App, *Server, *MockBlogRepository, *MockBlogTagRepository) {
	t.Helper()

	blogRepo := new(MockBlogRepository)
	blogTagRepo := new(MockBlogTagRepository)

	s := &Server{
		config:         &config.Config{JWTSecret: "test-secret"},
		userRepo:       new(MockUserRepository),
		blogRepo:       blogRepo,
		campingRepo:    new(MockCampingRepository),
		blogTagRepo:    blogTagRepo,
		campingTagRepo: new(MockCampingTagRepository),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s, blogRepo, blogTagRepo
}

// MockCampingTagRepository is a mock of the CampingTagRepository interface
type MockCampingTagRepository struct {
	mock.Mock
}

func (m *MockCampingTagRepository) List(ctx context.Context, userID uint) ([]*models.CampingTag, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.CampingTag), args.Error(1)
}

func (m *MockCampingTagRepository) GetByID(ctx context.Context, id, userID uint) (*models.CampingTag, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CampingTag), args.Error(1)
}

func (m *MockCampingTagRepository) Save(ctx context.Context, tag *models.CampingTag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockCampingTagRepository) Delete(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func TestRouting_TagRoutesTakePrecedence(t *testing.T) {
	app, s, _, blogTagRepo := newRoutedApp(t)

	token, err := s.generateToken(1)
	require.NoError(t, err)

	// "/api/blog/tags" must hit the tag listing, not GET /api/blog/:id
	// with "tags" as the id
	blogTagRepo.On("List", mock.Anything, uint(1)).Return([]*models.BlogTag{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/blog/tags", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	blogTagRepo.AssertExpectations(t)
}

func TestRouting_ProtectedWithoutToken(t *testing.T) {
	app, _, _, _ := newRoutedApp(t)

	for _, path := range []string{"/api/blog", "/api/camping", "/api/blog/tags", "/api/user/me"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, _ := app.Test(req)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s must require auth", path)
	}
}

func TestLivenessCheck(t *testing.T) {
	s := &Server{}
	app := fiber.New()
	app.Get("/health/live", s.LivenessCheck)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "up", payload["status"])
}
