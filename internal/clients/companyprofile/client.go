// Package companyprofile reads the denormalized company fields carried on
// appointment documents. Not-found and unavailable failures are mapped
// straight through to the caller.
package companyprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/registrydata/appointments-backend/internal/apperr"
	"github.com/registrydata/appointments-backend/internal/pkg/ctxutil"
	"github.com/registrydata/appointments-backend/internal/pkg/envutil"
	"github.com/registrydata/appointments-backend/internal/pkg/logger"
)

type Client interface {
	GetProfile(ctx context.Context, companyNumber string) (*Profile, error)
}

type Profile struct {
	CompanyName   string `json:"company_name"`
	CompanyStatus string `json:"company_status"`
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func ConfigFromEnv() Config {
	return Config{
		BaseURL: envutil.String("COMPANY_PROFILE_API_URL", "http://localhost:4082"),
		Timeout: envutil.Duration("COMPANY_PROFILE_TIMEOUT", 10*time.Second),
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
		return nil, fmt.Errorf("missing COMPANY_PROFILE_API_URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		log:        log.With("client", "CompanyProfileClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

func (c *client) GetProfile(ctx context.Context, companyNumber string) (*Profile, error) {
	const op = "companyprofile.GetProfile"

	companyNumber = strings.TrimSpace(companyNumber)
	if companyNumber == "" {
		return nil, apperr.BadRequest(op, "company number required")
	}

	url := fmt.Sprintf("%s/company/%s", c.cfg.BaseURL, companyNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.Map(op, err)
	}
	if rid := ctxutil.RequestID(ctx); rid != "" {
		req.Header.Set("X-Request-Id", rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Unavailable(op, "company profile source unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperr.NotFound(op, fmt.Sprintf("company [%s] not found", companyNumber))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, apperr.Unavailable(op,
			fmt.Sprintf("company profile source returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))), nil)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, apperr.Unavailable(op, "malformed company profile response", err)
	}
	return &profile, nil
}
