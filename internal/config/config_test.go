package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_HTTP_ADDR", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":4000" {
		t.Fatalf("expected default addr :4000, got %q", cfg.HTTPAddr)
	}
	if cfg.GraphQLMaxParallelism != 10 || cfg.GraphQLMaxDepth != 12 {
		t.Fatalf("unexpected graphql limits: parallelism=%d depth=%d", cfg.GraphQLMaxParallelism, cfg.GraphQLMaxDepth)
	}
	if cfg.DataLoaderWait != 2*time.Millisecond || cfg.DataLoaderMaxBatch != 100 {
		t.Fatalf("unexpected dataloader config: wait=%s max=%d", cfg.DataLoaderWait, cfg.DataLoaderMaxBatch)
	}
	if !cfg.MetricsEnabled {
		t.Fatalf("expected MetricsEnabled=true by default")
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected timeouts: read=%s write=%s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
}

func TestLoad_HTTPAddr(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("port", func(t *testing.T) {
		t.Setenv("APP_HTTP_ADDR", "")
		t.Setenv("PORT", "8088")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.HTTPAddr != ":8088" {
			t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
		}
	})

	t.Run("explicit addr wins", func(t *testing.T) {
		t.Setenv("APP_HTTP_ADDR", "127.0.0.1:9000")
		t.Setenv("PORT", "8088")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.HTTPAddr != "127.0.0.1:9000" {
			t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("APP_HTTP_ADDR", "")
		t.Setenv("PORT", "http")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-numeric PORT")
		}
	})
}

func TestLoad_ErrorDetailsByEnv(t *testing.T) {
	t.Run("prod hides error details by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("APP_EXPOSE_ERROR_DETAILS", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ExposeErrorDetails {
			t.Fatalf("expected ExposeErrorDetails=false in prod by default")
		}
	})

	t.Run("dev exposes error details by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("APP_EXPOSE_ERROR_DETAILS", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.ExposeErrorDetails {
			t.Fatalf("expected ExposeErrorDetails=true in dev by default")
		}
	})

	t.Run("explicit override", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("APP_EXPOSE_ERROR_DETAILS", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.ExposeErrorDetails {
			t.Fatalf("expected ExposeErrorDetails=true when set explicitly")
		}
	})
}


// baseEnv pins the variables every case depends on so the host environment
// cannot leak into a test.
func baseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("APP_HTTP_ADDR", "")
}

func TestLoad_RejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown app env", env: map[string]string{"APP_ENV": "invalid"}},
		{name: "bad port", env: map[string]string{"PORT": "http"}},
		{name: "uptrace without dsn", env: map[string]string{"UPTRACE_ENABLED": "true", "UPTRACE_DSN": ""}},
		{name: "pyroscope without server", env: map[string]string{"PYROSCOPE_ENABLED": "true", "PYROSCOPE_SERVER_ADDRESS": ""}},
		{name: "zero parallelism", env: map[string]string{"GRAPHQL_MAX_PARALLELISM": "0"}},
		{name: "negative depth", env: map[string]string{"GRAPHQL_MAX_DEPTH": "-1"}},
		{name: "zero batch workers", env: map[string]string{"GRAPHQL_BATCH_WORKERS": "0"}},
		{name: "non-numeric batch size", env: map[string]string{"GRAPHQL_BATCH_MAX_SIZE": "x"}},
		{name: "zero loader wait", env: map[string]string{"DATALOADER_WAIT": "0s"}},
		{name: "zero loader batch", env: map[string]string{"DATALOADER_MAX_BATCH": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %v", tt.env)
			}
		})
	}
}

func TestLoad_DerivedSettings(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg Config)
	}{
		{
			name: "uptrace dsn from otlp headers",
			env: map[string]string{
				"UPTRACE_ENABLED":            "true",
				"UPTRACE_DSN":                "",
				"OTEL_EXPORTER_OTLP_HEADERS": `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`,
			},
			check: func(t *testing.T, cfg Config) {
				if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
					t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
				}
			},
		},
		{
			name: "pprof addr default",
			env:  map[string]string{"PPROF_ENABLED": "true", "PPROF_ADDR": "  "},
			check: func(t *testing.T, cfg Config) {
				if cfg.PprofAddr != ":6060" {
					t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
				}
			},
		},
		{
			name: "pyroscope app name from service name",
			env: map[string]string{
				"APP_SERVICE_NAME":         "sports-league-api-test",
				"PYROSCOPE_ENABLED":        "true",
				"PYROSCOPE_SERVER_ADDRESS": "http://localhost:4040",
				"PYROSCOPE_APP_NAME":       "",
			},
			check: func(t *testing.T, cfg Config) {
				if cfg.PyroscopeAppName != "sports-league-api-test" {
					t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
				}
			},
		},
		{
			name: "cors wildcard default",
			env:  map[string]string{"CORS_ALLOWED_ORIGINS": ""},
			check: func(t *testing.T, cfg Config) {
				if !slices.Equal(cfg.CORSAllowedOrigins, []string{"*"}) {
					t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
				}
			},
		},
		{
			name: "cors origin list",
			env:  map[string]string{"CORS_ALLOWED_ORIGINS": " https://a.example.com, http://localhost:5173 "},
			check: func(t *testing.T, cfg Config) {
				want := []string{"https://a.example.com", "http://localhost:5173"}
				if !slices.Equal(cfg.CORSAllowedOrigins, want) {
					t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowedOrigins)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			cfg, err := Load()
			if err != nil {
				t.Fatalf("load config: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "SPORTS_LEAGUE_DOTENV_PROBE"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("load env file: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Fatalf("unexpected %s: %q", key, got)
	}

	if err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

