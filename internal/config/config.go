package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	ExposeErrorDetails         bool
	CORSAllowedOrigins         []string
	GraphQLMaxParallelism      int
	GraphQLMaxDepth            int
	GraphQLBatchWorkers        int
	GraphQLBatchMaxSize        int
	DataLoaderWait             time.Duration
	DataLoaderMaxBatch         int
	MetricsEnabled             bool
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	LogLevel                   logging.Level
}

const defaultPort = "4000"

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load() (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	return fromEnv()
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

func fromEnv() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	exposeDefault := "true"
	if appEnv == EnvProd {
		exposeDefault = "false"
	}
	exposeErrorDetails, err := strconv.ParseBool(getEnv("APP_EXPOSE_ERROR_DETAILS", exposeDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_EXPOSE_ERROR_DETAILS: %w", err)
	}

	httpAddr := strings.TrimSpace(getEnv("APP_HTTP_ADDR", ""))
	if httpAddr == "" {
		port := strings.TrimSpace(getEnv("PORT", defaultPort))
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return Config{}, fmt.Errorf("parse PORT: %w", err)
		}
		httpAddr = ":" + port
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	maxParallelism, err := getEnvAsInt("GRAPHQL_MAX_PARALLELISM", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse GRAPHQL_MAX_PARALLELISM: %w", err)
	}
	if maxParallelism < 1 {
		return Config{}, fmt.Errorf("GRAPHQL_MAX_PARALLELISM must be >= 1")
	}
	maxDepth, err := getEnvAsInt("GRAPHQL_MAX_DEPTH", 12)
	if err != nil {
		return Config{}, fmt.Errorf("parse GRAPHQL_MAX_DEPTH: %w", err)
	}
	if maxDepth < 0 {
		return Config{}, fmt.Errorf("GRAPHQL_MAX_DEPTH must be >= 0")
	}
	batchWorkers, err := getEnvAsInt("GRAPHQL_BATCH_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse GRAPHQL_BATCH_WORKERS: %w", err)
	}
	if batchWorkers < 1 {
		return Config{}, fmt.Errorf("GRAPHQL_BATCH_WORKERS must be >= 1")
	}
	batchMaxSize, err := getEnvAsInt("GRAPHQL_BATCH_MAX_SIZE", 20)
	if err != nil {
		return Config{}, fmt.Errorf("parse GRAPHQL_BATCH_MAX_SIZE: %w", err)
	}
	if batchMaxSize < 1 {
		return Config{}, fmt.Errorf("GRAPHQL_BATCH_MAX_SIZE must be >= 1")
	}

	loaderWait, err := time.ParseDuration(getEnv("DATALOADER_WAIT", "2ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DATALOADER_WAIT: %w", err)
	}
	if loaderWait <= 0 {
		return Config{}, fmt.Errorf("DATALOADER_WAIT must be > 0")
	}
	loaderMaxBatch, err := getEnvAsInt("DATALOADER_MAX_BATCH", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse DATALOADER_MAX_BATCH: %w", err)
	}
	if loaderMaxBatch < 1 {
		return Config{}, fmt.Errorf("DATALOADER_MAX_BATCH must be >= 1")
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "sports-league-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   httpAddr,
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		ExposeErrorDetails:         exposeErrorDetails,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		GraphQLMaxParallelism:      maxParallelism,
		GraphQLMaxDepth:            maxDepth,
		GraphQLBatchWorkers:        batchWorkers,
		GraphQLBatchMaxSize:        batchMaxSize,
		DataLoaderWait:             loaderWait,
		DataLoaderMaxBatch:         loaderMaxBatch,
		MetricsEnabled:             metricsEnabled,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
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

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
