package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "LOGINTPACK_"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// LoadFile loads the YAML file at path, then applies environment overrides.
// An empty path skips the file.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (LOGINTPACK_CODEC_LOG_MAX, LOGINTPACK_LOG_LEVEL, ...)
//  2. YAML config file
//  3. Default()
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Load(nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s is larger than %d bytes", path, maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Load(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Load loads YAML content, which may be empty, then applies environment
// overrides on top and validates the result.
//
// Environment variables drop the prefix and split into section and field on the
// first underscore:
//
//	LOGINTPACK_CODEC_LOG_MAX        -> codec.log_max
//	LOGINTPACK_SHOWERSHAPE_JET_PT_THRESHOLD -> showershape.jet_pt_threshold
func Load(content []byte) (*Config, error) {
	k := koanf.New(".")

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// keys that are absent keep their default value
	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}

	return section + "." + field
}
