// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Environment variables / defaults only (no file)
//
// Unlike a service with external dependencies there is nothing here
// that must be provided: every value has a sane default, so the server
// boots with no config file at all.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure. Every field maps to a key
// in the YAML file and can be overridden by the corresponding
// environment variable.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// HTTPServer is embedded so its fields promote onto Config.
	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	// Addr is the TCP address the server listens on.
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-default:"0.0.0.0:8000"`
}

// MustLoad reads, validates, and returns the application config.
// Functions prefixed with "Must" are allowed to fatal on failure:
// if this returns, the config is valid.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	// No file given: environment variables and defaults are enough.
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}
		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
