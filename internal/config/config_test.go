package config

import (
	"os"
	"strings"
	"testing"
)

// configVars lists every variable LoadConfig reads
var configVars = []string{
	"APP_ENV", "APP_PORT", "APP_HOST", "LOG_LEVEL",
	"DB_DRIVER", "DB_PATH", "DATABASE_URL", "DB_URI", "DB_HOST", "DB_PORT",
	"DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE", "DB_SEED",
}

// clearConfigEnv blanks every config variable for the duration of the test
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, v := range configVars {
		t.Setenv(v, "")
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// Setup: set environment variable if provided
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key) // cleanup after test
			} else {
				os.Unsetenv(tt.key) // ensure it's not set
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TYPED_INT", "42")
	t.Setenv("TYPED_BOOL", "false")
	t.Setenv("TYPED_BAD_BOOL", "maybe")

	if got := GetEnvAsType("TYPED_INT", 7); got != 42 {
		t.Errorf("GetEnvAsType(int) = %d, expected 42", got)
	}
	if got := GetEnvAsType("TYPED_BOOL", true); got != false {
		t.Errorf("GetEnvAsType(bool) = %t, expected false", got)
	}
	if got := GetEnvAsType("TYPED_BAD_BOOL", true); got != true {
		t.Errorf("GetEnvAsType(bool) with invalid value = %t, expected default true", got)
	}
	if got := GetEnvAsType("TYPED_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnvAsType(string) = %s, expected fallback", got)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("DB_PATH", "/tmp/pizzas.db")
		t.Setenv("DB_SEED", "false")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected 0.0.0.0", config.Host)
		}
		if config.LogLevel != "warn" {
			t.Errorf("LogLevel = %s, expected warn", config.LogLevel)
		}
		if config.DBPath != "/tmp/pizzas.db" {
			t.Errorf("DBPath = %s, expected /tmp/pizzas.db", config.DBPath)
		}
		if config.SeedDatabase {
			t.Error("SeedDatabase should be false")
		}
		if config.Address() != "0.0.0.0:9000" {
			t.Errorf("Address() = %s, expected 0.0.0.0:9000", config.Address())
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with invalid log level", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("LOG_LEVEL", "loud")

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when LOG_LEVEL is invalid")
		}
	})

	t.Run("should fail with unsupported driver", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("DB_DRIVER", "oracle")

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when DB_DRIVER is unsupported")
		}
	})

	t.Run("database url selects postgres", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("DATABASE_URL", "postgres://pizza:secret@db:5432/pizzas?sslmode=disable")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}
		if config.DBDriver != "postgres" {
			t.Errorf("DBDriver = %s, expected postgres", config.DBDriver)
		}
		if strings.Contains(config.String(), "secret") {
			t.Errorf("String() leaked the database password: %s", config.String())
		}
	})

	t.Run("should fail with malformed database url", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("DATABASE_URL", "not a url")

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when DATABASE_URL is malformed")
		}
	})

	t.Run("db uri with sqlite scheme selects sqlite path", func(t *testing.T) {
		testCases := []struct {
			uri  string
			path string
		}{
			{uri: "sqlite:///app.db", path: "app.db"},
			{uri: "sqlite:////var/lib/pizzas/app.db", path: "/var/lib/pizzas/app.db"},
		}
		for _, tc := range testCases {
			clearConfigEnv(t)
			t.Setenv("DB_URI", tc.uri)

			config, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() returned error for %s: %v", tc.uri, err)
			}
			if config.DBDriver != "sqlite" {
				t.Errorf("DBDriver = %s, expected sqlite for %s", config.DBDriver, tc.uri)
			}
			if config.DBPath != tc.path {
				t.Errorf("DBPath = %s, expected %s", config.DBPath, tc.path)
			}
		}
	})

	t.Run("db uri with postgres scheme selects postgres", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("DB_URI", "postgresql+psycopg2://pizza:secret@db:5432/pizzas")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}
		if config.DBDriver != "postgres" {
			t.Errorf("DBDriver = %s, expected postgres", config.DBDriver)
		}
		if config.DatabaseURL != "postgresql://pizza:secret@db:5432/pizzas" {
			t.Errorf("DatabaseURL = %s, expected the driver suffix to be dropped", config.DatabaseURL)
		}
	})

	t.Run("database url takes precedence over db uri", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("DATABASE_URL", "postgres://pizza@db:5432/pizzas")
		t.Setenv("DB_URI", "sqlite:///app.db")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}
		if config.DBDriver != "postgres" {
			t.Errorf("DBDriver = %s, expected postgres", config.DBDriver)
		}
	})

	t.Run("should fail with unsupported database url scheme", func(t *testing.T) {
		for _, uri := range []string{"mysql://root@db/pizzas", "sqlite://"} {
			clearConfigEnv(t)
			t.Setenv("DB_URI", uri)

			if _, err := LoadConfig(); err == nil {
				t.Errorf("LoadConfig() should return error for DB_URI %s", uri)
			}
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		clearConfigEnv(t)

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		if config.Port != 5555 {
			t.Errorf("Port = %d, expected default 5555", config.Port)
		}
		if config.Host != "localhost" {
			t.Errorf("Host = %s, expected default localhost", config.Host)
		}
		if config.Environment != "development" {
			t.Errorf("Environment = %s, expected default development", config.Environment)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug for development", config.LogLevel)
		}
		if config.DBDriver != "sqlite" {
			t.Errorf("DBDriver = %s, expected default sqlite", config.DBDriver)
		}
		if !config.SeedDatabase {
			t.Error("SeedDatabase should default to true")
		}
	})
}

func TestDefaultLogLevel(t *testing.T) {
	cases := map[string]string{
		"development": "debug",
		"production":  "error",
		"staging":     "info",
	}
	for env, want := range cases {
		if got := DefaultLogLevel(env); got != want {
			t.Errorf("DefaultLogLevel(%s) = %s, expected %s", env, got, want)
		}
	}
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
