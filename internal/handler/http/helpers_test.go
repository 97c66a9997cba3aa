package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-estate-api/internal/config"
	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/internal/service"
	"github.com/MKhiriev/go-estate-api/models"
)

// ─────────────────────────────────────────────
// Mock: service.UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	getFn    func(ctx context.Context, id string) (models.User, error)
	listFn   func(ctx context.Context) ([]models.User, error)
	createFn func(ctx context.Context, user models.User) (models.User, error)
	updateFn func(ctx context.Context, id string, modified models.User) (models.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockUserService) GetUser(ctx context.Context, id string) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserService) UpdateUser(ctx context.Context, id string, modified models.User) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, modified)
	}
	return modified, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.PropertyService
// ─────────────────────────────────────────────

type mockPropertyService struct {
	getFn    func(ctx context.Context, id string) (models.Property, error)
	listFn   func(ctx context.Context) ([]models.Property, error)
	createFn func(ctx context.Context, property models.Property) (models.Property, error)
	updateFn func(ctx context.Context, id string, modified models.Property) (models.Property, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockPropertyService) GetProperty(ctx context.Context, id string) (models.Property, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Property{}, nil
}

func (m *mockPropertyService) ListProperties(ctx context.Context) ([]models.Property, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockPropertyService) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	if m.createFn != nil {
		return m.createFn(ctx, property)
	}
	return property, nil
}

func (m *mockPropertyService) UpdateProperty(ctx context.Context, id string, modified models.Property) (models.Property, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, modified)
	}
	return modified, nil
}

func (m *mockPropertyService) DeleteProperty(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version   string
	healthErr error
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) CheckHealth(_ context.Context) error {
	return m.healthErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig(policy string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{Version: "test-version", NotFoundPolicy: policy},
		Server: config.Server{
			MetricsDisabled: true,
		},
	}
}

// newRouter builds the full router around the given services. Missing
// services are replaced by zero-value mocks.
func newRouter(t *testing.T, svcs *service.Services, cfg *config.StructuredConfig) http.Handler {
	t.Helper()
	if svcs.UserService == nil {
		svcs.UserService = &mockUserService{}
	}
	if svcs.PropertyService == nil {
		svcs.PropertyService = &mockPropertyService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(svcs, cfg, logger.Nop()).Init()
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func newRequestWithContentType(method, path, body, contentType string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}

// panickingUserService panics on ListUsers.
type panickingUserService struct {
	*mockUserService
}

func (p *panickingUserService) ListUsers(context.Context) ([]models.User, error) {
	panic("boom")
}
