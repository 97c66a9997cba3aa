package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/internal/utils"
	"github.com/MKhiriev/go-estate-api/models"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 15 * time.Second

// HTTPClientConfig configures [NewHTTPServerAdapter].
type HTTPClientConfig struct {
	// Address is "host:port" or a full base URL.
	Address string
	Timeout time.Duration
	// Retries applies to idempotent requests only.
	Retries int
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It fails when cfg.Address is empty or not a valid URL.
func NewHTTPServerAdapter(cfg HTTPClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRequestTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout, cfg.Retries)
	client.SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host in %q", ErrInvalidAddress, raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// check maps a non-2xx answer to an error and logs it.
func (h *httpServerAdapter) check(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Msg("estate api returned an error")
	}
	return err
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	var health models.HealthResponse

	resp, err := h.request(ctx).SetResult(&health).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return err
	}
	if health.Status != models.HealthStatusUp {
		return fmt.Errorf("%w: status %q", ErrServerUnavailable, health.Status)
	}
	return nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return "", err
	}
	return resp.String(), nil
}

// getOne fetches a single resource into out. The legacy 200 null answer is
// reported as ErrNotFound.
func (h *httpServerAdapter) getOne(ctx context.Context, path string, out any) error {
	resp, err := h.request(ctx).SetResult(out).Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if err = h.check(resp); err != nil {
		return err
	}
	if isNullBody(resp) {
		return ErrNotFound
	}
	return nil
}

func (h *httpServerAdapter) send(ctx context.Context, method, path string, body, out any) error {
	resp, err := h.jsonRequest(ctx, body).SetResult(out).Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return h.check(resp)
}

func (h *httpServerAdapter) remove(ctx context.Context, path string) error {
	resp, err := h.request(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return h.check(resp)
}

func userPath(id string) string {
	return "/users/" + url.PathEscape(id)
}

func propertyPath(id string) string {
	return "/properties/" + url.PathEscape(id)
}

func (h *httpServerAdapter) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if err := h.getOne(ctx, userPath(id), &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	resp, err := h.request(ctx).SetResult(&users).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if err = h.check(resp); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User
	if err := h.send(ctx, resty.MethodPost, "/users", user, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, id string, user models.User) (models.User, error) {
	var updated models.User
	if err := h.send(ctx, resty.MethodPut, userPath(id), user, &updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, id string) error {
	return h.remove(ctx, userPath(id))
}

func (h *httpServerAdapter) GetProperty(ctx context.Context, id string) (models.Property, error) {
	var property models.Property
	if err := h.getOne(ctx, propertyPath(id), &property); err != nil {
		return models.Property{}, err
	}
	return property, nil
}

func (h *httpServerAdapter) ListProperties(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	resp, err := h.request(ctx).SetResult(&properties).Get("/properties")
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	if err = h.check(resp); err != nil {
		return nil, err
	}
	return properties, nil
}

func (h *httpServerAdapter) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	var created models.Property
	if err := h.send(ctx, resty.MethodPost, "/properties", property, &created); err != nil {
		return models.Property{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) UpdateProperty(ctx context.Context, id string, property models.Property) (models.Property, error) {
	var updated models.Property
	if err := h.send(ctx, resty.MethodPut, propertyPath(id), property, &updated); err != nil {
		return models.Property{}, err
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteProperty(ctx context.Context, id string) error {
	return h.remove(ctx, propertyPath(id))
}
