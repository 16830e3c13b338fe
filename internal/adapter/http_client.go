package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-storefront/models"
)

// HTTPClientConfig configures [NewHTTPClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpClient struct {
	client *resty.Client
}

// NewHTTPClient returns a [StorefrontClient] talking to cfg.BaseURL.
// An empty base URL defaults to the server's default listen address.
func NewHTTPClient(cfg HTTPClientConfig) (StorefrontClient, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpClient{client: cli}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host in %q", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpClient) Greeting(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return "", fmt.Errorf("greeting request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpClient) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	var user models.User
	err := h.doJSON(ctx, resty.MethodPost, "/users/signup", request, &user)
	return user, err
}

func (h *httpClient) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	var user models.User
	err := h.doJSON(ctx, resty.MethodPost, "/users/login", request, &user)
	return user, err
}

func (h *httpClient) ChangePassword(ctx context.Context, request models.ChangePasswordRequest) (models.UpdateResult, error) {
	var result models.UpdateResult
	err := h.doJSON(ctx, resty.MethodPut, "/users/"+url.PathEscape(request.ID)+"/update", request, &result)
	return result, err
}

func (h *httpClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := h.doJSON(ctx, resty.MethodGet, "/users", nil, &users)
	return users, err
}

func (h *httpClient) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := h.doJSON(ctx, resty.MethodGet, "/users/"+url.PathEscape(id), nil, &user)
	return user, err
}

func (h *httpClient) AddCard(ctx context.Context, upload models.CardUpload, filename string) (models.Card, error) {
	var card models.Card

	resp, err := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"name":        upload.Name,
			"description": upload.Description,
			"price":       strconv.FormatFloat(upload.Price, 'f', -1, 64),
			"quantity":    strconv.Itoa(upload.Quantity),
		}).
		SetMultipartField("image", filename, upload.ImageType, bytes.NewReader(upload.Image)).
		SetResult(&card).
		Post("/cards/add")
	if err != nil {
		return models.Card{}, fmt.Errorf("add card request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Card{}, err
	}

	return card, nil
}

func (h *httpClient) ListCards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	err := h.doJSON(ctx, resty.MethodGet, "/cards", nil, &cards)
	return cards, err
}

func (h *httpClient) GetCard(ctx context.Context, id string) (models.Card, error) {
	var card models.Card
	err := h.doJSON(ctx, resty.MethodGet, "/cards/"+url.PathEscape(id), nil, &card)
	return card, err
}

func (h *httpClient) DeleteCard(ctx context.Context, id string) (models.DeleteResult, error) {
	var result models.DeleteResult
	err := h.doJSON(ctx, resty.MethodDelete, "/cards/"+url.PathEscape(id), nil, &result)
	return result, err
}

func (h *httpClient) AddOrder(ctx context.Context, order models.Order) (models.Order, error) {
	var created models.Order
	err := h.doJSON(ctx, resty.MethodPost, "/orders/add", order, &created)
	return created, err
}

func (h *httpClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := h.doJSON(ctx, resty.MethodGet, "/orders", nil, &orders)
	return orders, err
}

func (h *httpClient) GetOrder(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	err := h.doJSON(ctx, resty.MethodGet, "/orders/"+url.PathEscape(id), nil, &order)
	return order, err
}

// doJSON sends body as JSON (when non-nil) and decodes a successful response
// into result.
func (h *httpClient) doJSON(ctx context.Context, method, path string, body, result any) error {
	req := h.client.R().
		SetContext(ctx).
		SetResult(result)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	return mapHTTPError(resp)
}
