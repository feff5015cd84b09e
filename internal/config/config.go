// Package config handles loading and parsing configuration for the
// peoplegen commands. It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// When neither is provided the config is built from environment variables
// and defaults, which makes a bare run behave exactly like the original
// generator (100,000 rows into people.csv).
package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the yaml file and can be overridden
// by the corresponding environment variable.
type Config struct {
	// Rows is the number of data rows to generate
	Rows int64 `yaml:"rows" env:"PEOPLEGEN_ROWS" env-default:"100000" validate:"gte=1"`

	// Out is the path of the generated csv file
	Out string `yaml:"out" env:"PEOPLEGEN_OUT" env-default:"people.csv" validate:"required"`

	// Seed fixes the random seed which makes runs reproducible
	// A negative value means the process wide unseeded source is used
	Seed int64 `yaml:"seed" env:"PEOPLEGEN_SEED" env-default:"-1"`

	// Addr is the TCP address the peoplegend server listens on
	Addr string `yaml:"address" env:"PEOPLEGEN_ADDR" env-default:":8888" validate:"required"`
}

// Seeded reports whether a fixed random seed was configured
func (cfg *Config) Seeded() bool {
	return cfg.Seed >= 0
}

// MustLoad reads, validates, and returns the config.
// If this function returns, the config is valid - any failure is fatal.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration yaml file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

// Load builds the config from the yaml file at path, falling back to
// environment variables and defaults when path is empty
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
