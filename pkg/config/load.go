package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	Token          string `toml:"token"`
	UserAgent      string `toml:"user_agent"`
	Debug          bool   `toml:"debug"`
	ConnectTimeout string `toml:"connect_timeout"`
	RequestTimeout string `toml:"request_timeout"`
}

// FromFile loads a Config from a TOML file. Durations are written in Go
// syntax ("30s", "2m"); keys absent from the file keep their zero value, so
// Timeouts.WithDefaults still applies afterwards. The result is not
// validated; call Validate on it.
func FromFile(path string) (*Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := &Config{}

	if meta.IsDefined("token") {
		cfg.Token = strings.TrimSpace(raw.Token)
	}

	if meta.IsDefined("user_agent") {
		cfg.UserAgent = strings.TrimSpace(raw.UserAgent)
	}

	if meta.IsDefined("debug") {
		cfg.Debug = raw.Debug
	}

	if meta.IsDefined("connect_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ConnectTimeout))
		if err != nil {
			return nil, fmt.Errorf("parse connect_timeout: %w", err)
		}
		cfg.Timeouts.Connect = d
	}

	if meta.IsDefined("request_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.RequestTimeout))
		if err != nil {
			return nil, fmt.Errorf("parse request_timeout: %w", err)
		}
		cfg.Timeouts.Request = d
	}

	return cfg, nil
}
