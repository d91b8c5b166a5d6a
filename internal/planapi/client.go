// Package planapi клиент REST-сервиса тарифных планов.
//
// Сервис считается внешним и непрозрачным: клиент не различает 4xx, 5xx и
// таймауты, любая из этих ситуаций возвращается вызывающему как ошибка.
package planapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/magabrotheeeer/crime-gazette/internal/models"
)

// ErrUnexpectedStatus сервис ответил кодом вне диапазона 2xx.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Client клиент REST-сервиса планов.
//
// Пути строятся от baseURL: коллекция для List и Create, "/{id}" для Update
// и Delete. Ответ вне 2xx возвращается как ErrUnexpectedStatus, тело ошибки
// не разбирается. Повторных попыток нет.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *Metrics
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет http.Client, например в тестах.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMetrics включает сбор метрик по запросам.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient создаёт клиент для базового адреса вида
// http://localhost:5000/api/subscription.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List возвращает все неудалённые планы.
func (c *Client) List(ctx context.Context) ([]models.SubscriptionPlan, error) {
	const op = "planapi.List"
	var plans []models.SubscriptionPlan
	if err := c.do(ctx, op, http.MethodGet, "", nil, &plans); err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []models.SubscriptionPlan{}
	}
	return plans, nil
}

// Create создаёт план и возвращает его в виде, сохранённом сервисом.
func (c *Client) Create(ctx context.Context, payload models.PlanPayload) (*models.SubscriptionPlan, error) {
	const op = "planapi.Create"
	var plan models.SubscriptionPlan
	if err := c.do(ctx, op, http.MethodPost, "", payload, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Update заменяет поля плана id.
func (c *Client) Update(ctx context.Context, id string, payload models.PlanPayload) (*models.SubscriptionPlan, error) {
	const op = "planapi.Update"
	var plan models.SubscriptionPlan
	if err := c.do(ctx, op, http.MethodPut, "/"+url.PathEscape(id), payload, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Delete помечает план удалённым на стороне сервиса. Тело ответа игнорируется.
func (c *Client) Delete(ctx context.Context, id string) error {
	const op = "planapi.Delete"
	return c.do(ctx, op, http.MethodDelete, "/"+url.PathEscape(id), nil, nil)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.observe(method, err, time.Since(start))
	}()

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s: %w: %s", op, ErrUnexpectedStatus, resp.Status)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
