// Package config assembles process configuration.
//
// Settings are layered, later layers winning:
//
//  1. built-in defaults
//  2. an optional YAML file
//  3. environment variables (PORT, LOG_LEVEL, GRAMMAR_FILE)
//  4. command line flags, applied by the caller
//
// A configuration file looks like:
//
//	paths:
//	  specification: /etc/coapi/grammar.yaml
//	kubeconfig: ""
//	server:
//	  port: 8080
//	  rateLimit: 100
//	  rateLimitBurst: 200
//	  maxBodyBytes: 4194304
//	  readTimeout: 10s
//	  logLevel: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coapi/validator/pkg/server"
)

// EnvGrammarFile overrides the grammar location.
const EnvGrammarFile = "GRAMMAR_FILE"

// Config is the complete process configuration.
type Config struct {
	// GrammarLocation is a file path or cm://namespace/name[/key].
	GrammarLocation string

	// Kubeconfig is used for cm:// locations. Empty means discovery.
	Kubeconfig string

	Server *server.Config
}

type fileConfig struct {
	Paths struct {
		Specification string `yaml:"specification"`
	} `yaml:"paths"`
	Kubeconfig string         `yaml:"kubeconfig"`
	Server     *server.Config `yaml:"server"`
}

// Default returns the built-in configuration with environment overrides.
func Default() *Config {
	cfg := &Config{Server: server.DefaultConfig()}
	cfg.applyEnv()
	return cfg
}

// Load builds the configuration from defaults, the file at path (skipped
// when path is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{Server: server.DefaultConfig()}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.merge(data); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) merge(data []byte) error {
	fc := fileConfig{Server: c.Server}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if fc.Paths.Specification != "" {
		c.GrammarLocation = fc.Paths.Specification
	}
	if fc.Kubeconfig != "" {
		c.Kubeconfig = fc.Kubeconfig
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.ApplyEnv()
	if loc := os.Getenv(EnvGrammarFile); loc != "" {
		c.GrammarLocation = loc
	}
}

// Validate reports configuration the service cannot start with.
func (c *Config) Validate() error {
	if c.GrammarLocation == "" {
		return fmt.Errorf("grammar location is required (flag --grammar, %s or paths.specification)", EnvGrammarFile)
	}
	if c.Server == nil {
		return fmt.Errorf("server configuration is missing")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("port must be positive, got %d", c.Server.Port)
	}
	return c.Server.Validate()
}
