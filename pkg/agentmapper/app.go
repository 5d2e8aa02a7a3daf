package agentmapper

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentmapper/agentmapper/pkg/logger"
	"github.com/agentmapper/agentmapper/pkg/store"
	"github.com/agentmapper/agentmapper/pkg/store/remote"
)

// Config holds application configuration, read from the environment with
// sensible defaults for local use.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// StateFile is the path of the workshop snapshot on disk.
	StateFile string
	// Remote holds the cloud backend connection parameters. Leaving it
	// unconfigured keeps the application fully local.
	Remote remote.Config
	// LogLevel is the minimum log level in string form.
	LogLevel string
}

// ConfigFromEnv builds the configuration from environment variables.
func ConfigFromEnv() *Config {
	return &Config{
		Addr:      getEnv("AGENTMAPPER_ADDR", ":8080"),
		StateFile: getEnv("AGENTMAPPER_STATE_FILE", "agentmapper-state.json"),
		Remote:    remote.ConfigFromEnv(),
		LogLevel:  getEnv("AGENTMAPPER_LOG_LEVEL", "info"),
	}
}

// App holds the application state: the workshop store, the cloud client and
// the root logger.
type App struct {
	store  *store.Store
	remote *remote.Client
	config *Config
	log    zerolog.Logger
}

// New creates the application: it opens the cloud client (which stays inert
// when unconfigured), wires the file-backed store, and restores any snapshot
// already on disk.
func New(config *Config) (*App, error) {
	logData, err := logger.New().WithLevel(config.LogLevel).Make()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	log := logData.Logger.With().Str("component", "agentmapper").Logger()

	cloud, err := remote.New(config.Remote)
	if err != nil {
		return nil, fmt.Errorf("failed to open cloud backend: %w", err)
	}
	if config.Remote.Configured() {
		log.Info().Msg("cloud backend configured")
	} else {
		log.Info().Msg("running local-only, cloud backend not configured")
	}

	storage, err := store.NewFileStorage(config.StateFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open state file: %w", err)
	}
	st := store.New(storage,
		store.WithCloud(cloud),
		store.WithLogger(log),
	)
	if err := st.Restore(); err != nil {
		return nil, fmt.Errorf("failed to restore workshop state: %w", err)
	}

	return &App{
		store:  st,
		remote: cloud,
		config: config,
		log:    log,
	}, nil
}

// Close releases the application's resources.
func (a *App) Close() error {
	return a.remote.Close()
}

// Store returns the underlying workshop store, useful for tests.
func (a *App) Store() *store.Store {
	return a.store
}

// getEnv retrieves an environment variable value with a fallback default.
// An empty variable counts as unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
