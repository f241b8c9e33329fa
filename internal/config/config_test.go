package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Root != "." {
		t.Errorf("Root = %q, want %q", cfg.Root, ".")
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want %q", cfg.Format, "console")
	}
	if cfg.FailOn != "error" {
		t.Errorf("FailOn = %q, want %q", cfg.FailOn, "error")
	}
	if cfg.MinScore != 0 {
		t.Errorf("MinScore = %d, want 0", cfg.MinScore)
	}
}

func TestLoadConfigRootOverride(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("/tmp/shop")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Root != "/tmp/shop" {
		t.Errorf("Root = %q, want %q", cfg.Root, "/tmp/shop")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid defaults", Config{Format: "console", FailOn: "error"}, false},
		{"json format", Config{Format: "json", FailOn: "warning"}, false},
		{"bad format", Config{Format: "xml", FailOn: "error"}, true},
		{"bad fail-on", Config{Format: "console", FailOn: "good"}, true},
		{"min score too high", Config{Format: "console", FailOn: "error", MinScore: 101}, true},
		{"min score negative", Config{Format: "console", FailOn: "error", MinScore: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
