package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/store"
)

const defaultAddress = "localhost:50051"

// Config is the server configuration, loaded from an optional YAML file
// and overridable through DHM_* environment variables.
type Config struct {
	Address string    `yaml:"address"`
	Debug   string    `yaml:"debug_address"` // /healthz and /metrics; empty disables
	TLS     TLSConfig `yaml:"tls"`
	Log     LogConfig `yaml:"log"`

	// Supervision timing. Zero values fall back to the defaults below.
	ReadinessGraceMs int `yaml:"readiness_grace_ms"`
	StopGraceMs      int `yaml:"stop_grace_ms"`
	SweepIntervalMs  int `yaml:"sweep_interval_ms"`

	// Hands registered at startup, in addition to whatever RegisterHand
	// adds at runtime.
	Hands []HandConfig `yaml:"hands"`
}

// TLSConfig holds PEM material for mTLS. When Enabled is false the server
// listens in plaintext and per-client ownership checks are skipped.
type TLSConfig struct {
	Enabled bool   `yaml:"enabled"`
	Key     string `yaml:"key"`
	Cert    string `yaml:"cert"`
	CACert  string `yaml:"ca_cert"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// HandConfig mirrors a RegisterHand request in the config file.
type HandConfig struct {
	Side    string   `yaml:"side"`
	Arm     string   `yaml:"arm"`
	Hand    string   `yaml:"hand"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

const (
	defaultReadinessGrace = 500 * time.Millisecond
	defaultStopGrace      = 5 * time.Second
	defaultSweepInterval  = 50 * time.Millisecond
)

// LoadConfig reads the YAML file at path (skipped when path is empty) and
// applies environment overrides on top.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if strings.TrimSpace(cfg.Address) == "" {
		cfg.Address = defaultAddress
	}
	if cfg.TLS.Enabled && (cfg.TLS.Key == "" || cfg.TLS.Cert == "" || cfg.TLS.CACert == "") {
		return nil, fmt.Errorf("tls enabled but key, cert or ca_cert is missing")
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DHM_ADDRESS"); v != "" {
		c.Address = v
	}
	if v := os.Getenv("DHM_DEBUG_ADDRESS"); v != "" {
		c.Debug = v
	}
	if v := os.Getenv("DHM_TLS_KEY"); v != "" {
		c.TLS.Key = v
		c.TLS.Enabled = true
	}
	if v := os.Getenv("DHM_TLS_CERT"); v != "" {
		c.TLS.Cert = v
		c.TLS.Enabled = true
	}
	if v := os.Getenv("DHM_CA_TLS_CERT"); v != "" {
		c.TLS.CACert = v
		c.TLS.Enabled = true
	}
	if v := os.Getenv("DHM_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) ReadinessGrace() time.Duration {
	if c.ReadinessGraceMs > 0 {
		return time.Duration(c.ReadinessGraceMs) * time.Millisecond
	}
	return defaultReadinessGrace
}

func (c *Config) StopGrace() time.Duration {
	if c.StopGraceMs > 0 {
		return time.Duration(c.StopGraceMs) * time.Millisecond
	}
	return defaultStopGrace
}

func (c *Config) SweepInterval() time.Duration {
	if c.SweepIntervalMs > 0 {
		return time.Duration(c.SweepIntervalMs) * time.Millisecond
	}
	return defaultSweepInterval
}

// StoreConfig converts a HandConfig to an inventory entry.
func (h HandConfig) StoreConfig() (store.Config, error) {
	cfg := store.Config{
		Command: lib.Command{Command: h.Command, Args: h.Args},
	}
	switch strings.ToUpper(h.Side) {
	case "LEFT":
		cfg.Side = store.SideLeft
	case "RIGHT":
		cfg.Side = store.SideRight
	default:
		return store.Config{}, fmt.Errorf("unknown side %q", h.Side)
	}
	switch strings.ToUpper(h.Arm) {
	case "PIPER":
		cfg.Arm = store.ArmPiper
	case "NOVA":
		cfg.Arm = store.ArmNova
	default:
		return store.Config{}, fmt.Errorf("unknown arm type %q", h.Arm)
	}
	switch strings.ToUpper(h.Hand) {
	case "INSPIRE":
		cfg.Hand = store.HandInspire
	case "DH":
		cfg.Hand = store.HandDH
	default:
		return store.Config{}, fmt.Errorf("unknown hand type %q", h.Hand)
	}
	return cfg, nil
}
