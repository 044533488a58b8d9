package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_APIKeyWithoutBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.Analysis.APIKey = "test-key"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when api_key is set without base_url")
	}
}

func TestValidate_TopKBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Search.DefaultTopK = 200
	cfg.Search.MaxTopK = 100

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when default_top_k exceeds max_top_k")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.Search.DefaultTopK != 10 {
		t.Errorf("expected default top_k 10, got %d", cfg.Search.DefaultTopK)
	}
	if cfg.Pagination.DefaultPageSize != 10 {
		t.Errorf("expected default page size 10, got %d", cfg.Pagination.DefaultPageSize)
	}
	if cfg.Analysis.TruncateChars != 15000 {
		t.Errorf("expected truncate_chars 15000, got %d", cfg.Analysis.TruncateChars)
	}
	if cfg.Storage.KeyPrefix != "docintel:" {
		t.Errorf("expected key prefix docintel:, got %q", cfg.Storage.KeyPrefix)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("DOCINTEL_TEST_KEY", "secret")
	defer os.Unsetenv("DOCINTEL_TEST_KEY")

	in := []byte("api_key: ${DOCINTEL_TEST_KEY}\nmodel: ${DOCINTEL_TEST_MODEL:-gpt-4o-mini}\n")
	out := string(expandEnvVars(in))

	want := "api_key: secret\nmodel: gpt-4o-mini\n"
	if out != want {
		t.Fatalf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}

func TestGetEnv_Default(t *testing.T) {
	os.Unsetenv("ENV")
	if env := GetEnv(); env != "local" {
		t.Fatalf("expected local, got %q", env)
	}
}
