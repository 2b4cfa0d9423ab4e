package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.UseDemo {
		t.Error("UseDemo = false, want true by default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path keeps defaults", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.UseDemo {
			t.Error("UseDemo = false, want true")
		}
	})

	t.Run("reads YAML fields", func(t *testing.T) {
		path := writeConfig(t, `
identifier: trader@example.com
api_key: key-123
api_password: pass-456
use_demo: false
log:
  level: debug
  file: logs/captest.log
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Identifier != "trader@example.com" {
			t.Errorf("Identifier = %q, want trader@example.com", cfg.Identifier)
		}
		if cfg.APIKey != "key-123" {
			t.Errorf("APIKey = %q, want key-123", cfg.APIKey)
		}
		if cfg.UseDemo {
			t.Error("UseDemo = true, want false")
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
		}
	})

	t.Run("use_demo absent stays true", func(t *testing.T) {
		path := writeConfig(t, "identifier: a\napi_key: b\napi_password: c\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.UseDemo {
			t.Error("UseDemo = false, want default true when key absent")
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "identifier: from-file\napi_key: file-key\napi_password: file-pass\n")
		t.Setenv("CAPITAL_IDENTIFIER", "from-env")
		t.Setenv("CAPITAL_API_KEY", "env-key")
		t.Setenv("CAPITAL_USE_DEMO", "false")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Identifier != "from-env" {
			t.Errorf("Identifier = %q, want from-env", cfg.Identifier)
		}
		if cfg.APIKey != "env-key" {
			t.Errorf("APIKey = %q, want env-key", cfg.APIKey)
		}
		if cfg.APIPassword != "file-pass" {
			t.Errorf("APIPassword = %q, want file-pass", cfg.APIPassword)
		}
		if cfg.UseDemo {
			t.Error("UseDemo = true, want false from env")
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("invalid YAML errors", func(t *testing.T) {
		path := writeConfig(t, "identifier: [unterminated")
		if _, err := Load(path); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{Identifier: "a", APIKey: "b", APIPassword: "c"}, false},
		{"missing identifier", Config{APIKey: "b", APIPassword: "c"}, true},
		{"missing api key", Config{Identifier: "a", APIPassword: "c"}, true},
		{"missing password", Config{Identifier: "a", APIKey: "b"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
