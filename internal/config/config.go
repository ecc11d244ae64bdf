package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/icarogtavares/counter-strike/internal/platform/logging"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Config stores runtime configuration for the dataset loader.
type Config struct {
	AppEnv      string
	ServiceName string

	// CorpusGlob selects the JSON shard files; empty runs on the built-in
	// seed corpus.
	CorpusGlob       string
	CorpusMaxWorkers int

	LoadWindow       time.Duration
	GracePeriod      time.Duration
	HveMod           float64
	NthHighest       int
	VersionTimestamp int64

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	corpusMaxWorkers, err := getEnvAsInt("CORPUS_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse CORPUS_MAX_WORKERS: %w", err)
	}
	if corpusMaxWorkers < 1 {
		return Config{}, fmt.Errorf("CORPUS_MAX_WORKERS must be >= 1")
	}

	loadWindow, err := time.ParseDuration(getEnv("LOAD_WINDOW", "4320h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOAD_WINDOW: %w", err)
	}
	if loadWindow <= 0 {
		return Config{}, fmt.Errorf("LOAD_WINDOW must be > 0")
	}

	gracePeriod, err := time.ParseDuration(getEnv("GRACE_PERIOD", "720h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GRACE_PERIOD: %w", err)
	}
	if gracePeriod < 0 {
		return Config{}, fmt.Errorf("GRACE_PERIOD must be >= 0")
	}
	if gracePeriod >= loadWindow {
		return Config{}, fmt.Errorf("GRACE_PERIOD must be shorter than LOAD_WINDOW")
	}

	hveMod, err := getEnvAsFloat("HVE_MOD", 1.0)
	if err != nil {
		return Config{}, fmt.Errorf("parse HVE_MOD: %w", err)
	}
	if hveMod <= 0 {
		return Config{}, fmt.Errorf("HVE_MOD must be > 0")
	}

	nthHighest, err := getEnvAsInt("NTH_HIGHEST", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse NTH_HIGHEST: %w", err)
	}
	if nthHighest < 0 {
		return Config{}, fmt.Errorf("NTH_HIGHEST must be >= 0")
	}

	versionTimestamp, err := getEnvAsInt64("VERSION_TIMESTAMP", -1)
	if err != nil {
		return Config{}, fmt.Errorf("parse VERSION_TIMESTAMP: %w", err)
	}

	return Config{
		AppEnv:           appEnv,
		ServiceName:      getEnv("SERVICE_NAME", "counter-strike-loader"),
		CorpusGlob:       strings.TrimSpace(getEnv("CORPUS_GLOB", "")),
		CorpusMaxWorkers: corpusMaxWorkers,
		LoadWindow:       loadWindow,
		GracePeriod:      gracePeriod,
		HveMod:           hveMod,
		NthHighest:       nthHighest,
		VersionTimestamp: versionTimestamp,
		LogLevel:         parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s", v, EnvDev, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func getEnvAsInt64(key string, fallback int64) (int64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseInt(value, 10, 64)
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseFloat(value, 64)
}
