// Package resourcechanged posts change events for appointment resources to
// the downstream notification transport. A failure here is surfaced to the
// pipeline; an already-committed store write is never rolled back because of
// it.
package resourcechanged

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/registrydata/appointments-backend/internal/pkg/ctxutil"
	"github.com/registrydata/appointments-backend/internal/pkg/envutil"
	"github.com/registrydata/appointments-backend/internal/pkg/httpx"
	"github.com/registrydata/appointments-backend/internal/pkg/logger"
)

const changedResourceURI = "/private/resource-changed"

type Client interface {
	Notify(ctx context.Context, req Request) error
}

// Request describes one change event. Data carries the redacted officer
// payload; nil means the event has no body (fresh upserts are notified via
// the resource URI alone).
type Request struct {
	CompanyNumber string
	AppointmentID string
	Data          any
	IsDelete      bool
}

type event struct {
	Type        string `json:"type"`
	PublishedAt string `json:"published_at"`
}

type changedResource struct {
	ResourceURI  string `json:"resource_uri"`
	ResourceKind string `json:"resource_kind"`
	ContextID    string `json:"context_id,omitempty"`
	Data         any    `json:"data,omitempty"`
	DeletedData  any    `json:"deleted_data,omitempty"`
	Event        event  `json:"event"`
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

func ConfigFromEnv() Config {
	return Config{
		BaseURL:    envutil.String("RESOURCE_CHANGED_API_URL", "http://localhost:4081"),
		Timeout:    envutil.Duration("RESOURCE_CHANGED_TIMEOUT", 30*time.Second),
		MaxRetries: envutil.Int("RESOURCE_CHANGED_MAX_RETRIES", 3),
	}
}

func NewFromEnv(log *logger.Logger) (Client, error) {
	return New(log, ConfigFromEnv())
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("missing RESOURCE_CHANGED_API_URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	return &client{
		log:        log.With("client", "ResourceChangedClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "resource-changed: <nil error>"
	}
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = "<empty body>"
	}
	if len(msg) > 2000 {
		msg = msg[:2000] + "..."
	}
	return fmt.Sprintf("resource-changed http %d: %s", e.StatusCode, msg)
}

func (e *HTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

func (c *client) Notify(ctx context.Context, req Request) error {
	if c == nil || c.httpClient == nil {
		return fmt.Errorf("resource-changed client unavailable")
	}
	req.CompanyNumber = strings.TrimSpace(req.CompanyNumber)
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.CompanyNumber == "" || req.AppointmentID == "" {
		return fmt.Errorf("resource-changed: company number and appointment id required")
	}

	eventType := "changed"
	resource := changedResource{
		ResourceURI: fmt.Sprintf("/company/%s/appointments/%s", req.CompanyNumber, req.AppointmentID),
		ResourceKind: "company-officers",
		ContextID:   ctxutil.RequestID(ctx),
		Event: event{
			PublishedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}
	if req.IsDelete {
		eventType = "deleted"
		resource.DeletedData = req.Data
	} else {
		resource.Data = req.Data
	}
	resource.Event.Type = eventType

	body, err := json.Marshal(resource)
	if err != nil {
		return fmt.Errorf("resource-changed: marshal request: %w", err)
	}

	backoff := 500 * time.Millisecond
	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(httpx.JitterSleep(backoff)):
			}
			backoff *= 2
		}

		lastErr = c.post(ctx, body)
		if lastErr == nil {
			c.log.Debug("resource changed event published",
				"company_number", req.CompanyNumber,
				"appointment_id", req.AppointmentID,
				"event_type", eventType)
			return nil
		}
		if !httpx.IsRetryableError(lastErr) {
			break
		}
		c.log.Warn("resource changed publish failed, retrying",
			"attempt", attempt+1, "error", lastErr)
	}
	return lastErr
}

func (c *client) post(ctx context.Context, body []byte) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+changedResourceURI, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if rid := ctxutil.RequestID(ctx); rid != "" {
		httpReq.Header.Set("X-Request-Id", rid)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
}
