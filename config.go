package imgtools

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Backend selects the cascade classifier implementation.
type Backend string

const (
	// BackendPigo runs pigo binary cascades in pure Go.
	BackendPigo Backend = "pigo"
	// BackendOpenCV runs OpenCV Haar/LBP XML cascades. It needs the gocv build tag.
	BackendOpenCV Backend = "opencv"
)

// Environment variables read by LoadConfig.
const (
	EnvModelPath = "IMGTOOLS_MODEL_PATH"
	EnvBackend   = "IMGTOOLS_BACKEND"
	EnvLogLevel  = "IMGTOOLS_LOG_LEVEL"
)

// Config holds the deployment time settings of the package.
type Config struct {
	ModelPath string
	Backend   Backend
	LogLevel  string
}

// LoadConfig reads the configuration from the environment, falling back to defaults.
func LoadConfig() Config {
	return Config{
		ModelPath: getEnv(EnvModelPath, ""),
		Backend:   Backend(strings.ToLower(getEnv(EnvBackend, string(BackendPigo)))),
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, "info")),
	}
}

// Validate checks the backend and the log level.
func (c Config) Validate() error {
	switch c.Backend {
	case "", BackendPigo, BackendOpenCV:
	default:
		return fmt.Errorf("unknown classifier backend: %q", c.Backend)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c Config) backend() Backend {
	if c.Backend == "" {
		return BackendPigo
	}
	return c.Backend
}

var (
	initOnce sync.Once
	initErr  error

	mu             sync.RWMutex
	pkgLogger      = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	defaultBackend = BackendPigo
)

// Init performs the process wide initialization. It should be called once at
// process start; only the first call has an effect and later calls return
// the result of the first one. Operations work without Init, using the pigo
// backend and info level logging.
func Init(cfg Config) error {
	initOnce.Do(func() {
		initErr = initialize(cfg)
	})
	return initErr
}

// initialize applies cfg to the package state. Nothing is changed when it
// fails.
func initialize(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := parseLevel(cfg.LogLevel)
	if cfg.backend() == BackendOpenCV {
		if err := initOpenCV(); err != nil {
			return err
		}
	}

	mu.Lock()
	pkgLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	defaultBackend = cfg.backend()
	mu.Unlock()

	logger().Debug("imgtools initialized", "backend", cfg.backend(), "level", level)
	return nil
}

// SetLogger replaces the package logger.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	pkgLogger = l
	mu.Unlock()
}

func logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return pkgLogger
}

func processBackend() Backend {
	mu.RLock()
	defer mu.RUnlock()
	return defaultBackend
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level: %q", s)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
