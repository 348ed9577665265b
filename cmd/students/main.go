// main is the entry point of the students console tool.
//
// STARTUP SEQUENCE:
//  1. Load configuration (optional YAML file, .env, environment defaults)
//  2. Initialise the logger (stderr, so stdout carries only records)
//  3. Open the configured student store
//  4. Wire view → controller → registration service → store
//  5. Read records from stdin, print them to stdout, exit
//
// RUNNING:
//
//	go run ./cmd/students < students.txt
//
// or with a config file:
//
//	go run ./cmd/students --config=config/local.yaml < students.txt
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/aanand-mishra/students-cli/internal/config"
	"github.com/aanand-mishra/students-cli/internal/console/view"
	controller "github.com/aanand-mishra/students-cli/internal/controller/student"
	service "github.com/aanand-mishra/students-cli/internal/service/student"
	"github.com/aanand-mishra/students-cli/internal/storage"
	"github.com/aanand-mishra/students-cli/internal/storage/memory"
	"github.com/aanand-mishra/students-cli/internal/storage/sqlite"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env, os.Stderr).With(
		slog.String("run_id", uuid.NewString()),
	)

	log.Debug("starting students",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)

	if err := run(cfg, log, os.Stdin, os.Stdout); err != nil {
		log.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run owns every component for the lifetime of one session. The store is
// closed on return, whatever the outcome.
func run(cfg *config.Config, log *slog.Logger, in io.Reader, out io.Writer) (err error) {
	store, err := newStorage(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	registrar := service.NewRegistrar(store, service.NewIDGenerator(cfg.ID))
	v := view.New(controller.NewController(registrar), log)

	return v.Run(in, out)
}

// newStorage opens the backend named by cfg.Storage.Driver.
func newStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		db, err := sqlite.New(cfg)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// setupLogger builds the session logger. It writes to w, which main sets
// to stderr: stdout is reserved for student records, so logs never mix into
// output that may be piped into another tool.
//
// prod logs JSON at INFO, staging logs JSON at DEBUG, and dev (or any
// unrecognised env) logs human-readable text at DEBUG.
func setupLogger(env string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	switch env {
	case "prod":
		opts.Level = slog.LevelInfo
		return slog.New(slog.NewJSONHandler(w, opts))
	case "staging":
		return slog.New(slog.NewJSONHandler(w, opts))
	default:
		return slog.New(slog.NewTextHandler(w, opts))
	}
}
