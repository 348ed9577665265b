// Package config handles loading and validating application configuration.
//
// Sources, in priority order:
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Plain environment variables with built-in defaults
//
// A .env file in the working directory, when present, is loaded into the
// process environment before any of the above is consulted. Values already
// set in the environment win over the file.
//
// Unlike a server, the tool runs fine with no configuration at all: every
// field has a default that reproduces the standard "SV001" numbering with
// an in-memory store.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Storage drivers accepted in Storage.Driver.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// DotEnvFile is the optional env file read by MustLoad.
const DotEnvFile = ".env"

// Config is the root configuration structure.
// Every field maps to a key in the YAML file and can be overridden by the
// corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-default:"prod" validate:"required,oneof=dev staging prod"`

	ID      ID      `yaml:"id"`
	Storage Storage `yaml:"storage"`
}

// ID configures student id generation: Prefix followed by the sequence
// number left-padded with zeros to Width digits.
type ID struct {
	Prefix string `yaml:"prefix" env:"ID_PREFIX" env-default:"SV" validate:"required"`
	Width  int    `yaml:"width" env:"ID_WIDTH" env-default:"3" validate:"min=1,max=18"`
}

// Storage selects the student store backend.
type Storage struct {
	// Driver is "memory" or "sqlite".
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory" validate:"required,oneof=memory sqlite"`

	// Path is the SQLite data source name. Ignored by the memory driver.
	// Records go to a temporary table, so a file database is opened but
	// its existing tables are left untouched and nothing is written to it.
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:":memory:" validate:"required"`
}

// MustLoad resolves the config path, reads, validates, and returns the
// application config. It exits the process on any failure, so callers do
// not need to check an error.
func MustLoad() *Config {
	if err := loadDotEnv(DotEnvFile); err != nil {
		log.Fatalf("cannot load %s: %s", DotEnvFile, err.Error())
	}

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", configPath)
		}
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return cfg
}

// Load reads the YAML file at path, or only the environment when path is
// empty, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv loads path into the environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if errors.As(err, &validateErrs) {
		return validationError(validateErrs)
	}
	return err
}

// validationError joins the field errors into one readable error.
func validationError(errs validator.ValidationErrors) error {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Namespace()))
		case "oneof":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be one of [%s]", e.Namespace(), e.Param()))
		case "min":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at least %s", e.Namespace(), e.Param()))
		case "max":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at most %s", e.Namespace(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Namespace()))
		}
	}

	return errors.New(strings.Join(errMessages, ", "))
}
