// Package config loads sinphase settings from an optional YAML file and
// SINPHASE_ environment variables, the latter taking precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/ib-77/sinphase/pkg/batch"
	"github.com/ib-77/sinphase/pkg/sinphase"
	"github.com/ib-77/sinphase/pkg/sinphase/signature"
)

const (
	DefaultPath = "sinphase.yaml"
	EnvPrefix   = "SINPHASE_"
)

type Config struct {
	TrustLevel string          `koanf:"trust_level"`
	Signature  SignatureConfig `koanf:"signature"`
	Audit      AuditConfig     `koanf:"audit"`
	Batch      BatchConfig     `koanf:"batch"`
	Log        LogConfig       `koanf:"log"`
}

type SignatureConfig struct {
	Scheme string `koanf:"scheme"` // placeholder, hmac
	Key    string `koanf:"key"`    // hex, hmac only
}

type AuditConfig struct {
	Capacity int `koanf:"capacity"` // 0 = unbounded
}

type BatchConfig struct {
	Workers int  `koanf:"workers"`
	Certify bool `koanf:"certify"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

var defaults = map[string]interface{}{
	"trust_level":      "comprehensive",
	"signature.scheme": "placeholder",
	"audit.capacity":   0,
	"batch.workers":    batch.DefaultWorkers,
	"batch.certify":    true,
	"log.level":        "info",
}

// Load reads path (a missing file is fine) and then the environment, e.g.
// SINPHASE_SIGNATURE__KEY sets signature.key.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, v := range defaults {
		if err := k.Set(key, v); err != nil {
			return nil, err
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := sinphase.ParseTrustLevel(c.TrustLevel); err != nil {
		return fmt.Errorf("trust_level: %w", err)
	}
	if _, err := signature.Parse(c.Signature.Scheme, c.Signature.Key); err != nil {
		return fmt.Errorf("signature: %w", err)
	}
	if c.Audit.Capacity < 0 {
		return fmt.Errorf("audit.capacity must not be negative, got %d", c.Audit.Capacity)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func (c *Config) Trust() sinphase.TrustLevel {
	l, _ := sinphase.ParseTrustLevel(c.TrustLevel)
	return l
}

func (c *Config) Scheme() (signature.Scheme, error) {
	return signature.Parse(c.Signature.Scheme, c.Signature.Key)
}

// EngineOptions turns the configuration into options for sinphase.New.
func (c *Config) EngineOptions(logger *zap.Logger) ([]sinphase.Option, error) {
	scheme, err := c.Scheme()
	if err != nil {
		return nil, err
	}
	return []sinphase.Option{
		sinphase.WithVerifier(scheme),
		sinphase.WithAuditCapacity(c.Audit.Capacity),
		sinphase.WithLogger(logger),
	}, nil
}
