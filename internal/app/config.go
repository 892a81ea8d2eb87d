package app

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/registrydata/appointments-backend/internal/deltaversion"
	"github.com/registrydata/appointments-backend/internal/pkg/envutil"
	"github.com/registrydata/appointments-backend/internal/pkg/logger"
)

type Config struct {
	ServiceName             string
	Environment             string
	Version                 string
	Port                    string
	LogMode                 string
	AllowOrigins            []string
	DeltaAtEncoding         deltaversion.Encoding
	SortThresholdInternal   int
	SortThresholdExternal   int
	MaxItemsPerPageInternal int
}

// fileConfig is the optional yaml overlay; any zero field falls back to the
// environment-derived value. Deployment pipelines template this file while
// the environment carries secrets and endpoints.
type fileConfig struct {
	Port                    string   `yaml:"port"`
	LogMode                 string   `yaml:"log_mode"`
	AllowOrigins            []string `yaml:"allow_origins"`
	DeltaAtEncoding         string   `yaml:"delta_at_encoding"`
	SortThresholdInternal   *int     `yaml:"sort_threshold_internal"`
	SortThresholdExternal   *int     `yaml:"sort_threshold_external"`
	MaxItemsPerPageInternal *int     `yaml:"max_items_per_page_internal"`
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		ServiceName:             envutil.String("SERVICE_NAME", "appointments-backend"),
		Environment:             envutil.String("ENVIRONMENT", "development"),
		Version:                 envutil.String("SERVICE_VERSION", "dev"),
		Port:                    envutil.String("PORT", "8080"),
		LogMode:                 envutil.String("LOG_MODE", "development"),
		AllowOrigins:            splitCSV(envutil.String("ALLOW_ORIGINS", "*")),
		SortThresholdInternal:   envutil.Int("SORT_THRESHOLD_INTERNAL", -1),
		SortThresholdExternal:   envutil.Int("SORT_THRESHOLD_EXTERNAL", 500),
		MaxItemsPerPageInternal: envutil.Int("MAX_ITEMS_PER_PAGE_INTERNAL", 500),
	}

	encoding, err := parseEncoding(envutil.String("DELTA_AT_ENCODING", "string"))
	if err != nil {
		return Config{}, err
	}
	cfg.DeltaAtEncoding = encoding

	if path := envutil.String("CONFIG_FILE", ""); path != "" {
		if err := applyFileOverlay(&cfg, path); err != nil {
			return Config{}, err
		}
		log.Info("applied config overlay", "path", path)
	}
	return cfg, nil
}

func applyFileOverlay(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var overlay fileConfig
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if overlay.Port != "" {
		cfg.Port = overlay.Port
	}
	if overlay.LogMode != "" {
		cfg.LogMode = overlay.LogMode
	}
	if len(overlay.AllowOrigins) > 0 {
		cfg.AllowOrigins = overlay.AllowOrigins
	}
	if overlay.DeltaAtEncoding != "" {
		encoding, err := parseEncoding(overlay.DeltaAtEncoding)
		if err != nil {
			return err
		}
		cfg.DeltaAtEncoding = encoding
	}
	if overlay.SortThresholdInternal != nil {
		cfg.SortThresholdInternal = *overlay.SortThresholdInternal
	}
	if overlay.SortThresholdExternal != nil {
		cfg.SortThresholdExternal = *overlay.SortThresholdExternal
	}
	if overlay.MaxItemsPerPageInternal != nil {
		cfg.MaxItemsPerPageInternal = *overlay.MaxItemsPerPageInternal
	}
	return nil
}

func parseEncoding(raw string) (deltaversion.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "string", "":
		return deltaversion.EncodingString, nil
	case "instant":
		return deltaversion.EncodingInstant, nil
	default:
		return 0, fmt.Errorf("unknown delta_at encoding %q", raw)
	}
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
