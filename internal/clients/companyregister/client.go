// Package companyregister answers whether a register of a given type
// (directors, secretaries, llp_members) is legally held at the central
// registry for a company. Register views are gated on this.
package companyregister

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
	IsRegisterHeldAtRegistry(ctx context.Context, companyNumber, registerType string) (bool, error)
}

type register struct {
	RegisterMovedTo string `json:"register_moved_to"`
}

type registersResponse struct {
	Registers map[string]register `json:"registers"`
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func ConfigFromEnv() Config {
	return Config{
		BaseURL: envutil.String("COMPANY_REGISTER_API_URL", "http://localhost:4084"),
		Timeout: envutil.Duration("COMPANY_REGISTER_TIMEOUT", 10*time.Second),
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
		return nil, fmt.Errorf("missing COMPANY_REGISTER_API_URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		log:        log.With("client", "CompanyRegisterClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

func (c *client) IsRegisterHeldAtRegistry(ctx context.Context, companyNumber, registerType string) (bool, error) {
	const op = "companyregister.IsRegisterHeldAtRegistry"

	companyNumber = strings.TrimSpace(companyNumber)
	registerType = strings.TrimSpace(registerType)
	if companyNumber == "" || registerType == "" {
		return false, apperr.BadRequest(op, "company number and register type required")
	}

	url := fmt.Sprintf("%s/company/%s/registers", c.cfg.BaseURL, companyNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, apperr.Map(op, err)
	}
	if rid := ctxutil.RequestID(ctx); rid != "" {
		req.Header.Set("X-Request-Id", rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, apperr.Unavailable(op, "company register source unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, apperr.NotFound(op, fmt.Sprintf("registers for company [%s] not found", companyNumber))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return false, apperr.Unavailable(op,
			fmt.Sprintf("company register source returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))), nil)
	}

	var payload registersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, apperr.Unavailable(op, "malformed company register response", err)
	}

	reg, ok := payload.Registers[registerType]
	if !ok {
		return false, nil
	}
	return strings.EqualFold(reg.RegisterMovedTo, "public-register"), nil
}
