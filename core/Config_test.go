package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProperties(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "properties"), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "properties", env+".properties")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero court", func(c *Config) { c.CourtWidth = 0 }, "COURT_WIDTH"},
		{"negative speed", func(c *Config) { c.PaddleSpeed = -1 }, "PADDLE_SPEED"},
		{"no acceleration", func(c *Config) { c.AccelerationFactor = 1 }, "ACCELERATION_FACTOR"},
		{"no winning score", func(c *Config) { c.WinningScore = 0 }, "WINNING_SCORE"},
		{"tall paddle", func(c *Config) { c.PaddleHeight = 601 }, "court height"},
		{"wide paddles", func(c *Config) { c.PaddleInset = 390 }, "overlap"},
	}

	for _, c := range cases {
		cfg := DefaultConfig()
		c.mutate(&cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: expected error mentioning %q, got %v", c.name, c.want, err)
		}
	}
}

func TestReadProperties(t *testing.T) {
	dir := writeProperties(t, "dev", "COURT_WIDTH=1024\nCOURT_HEIGHT=768\nWINNING_SCORE=5\nACCELERATION_FACTOR=1.1\n")

	cfg, err := ReadProperties(dir, "dev")
	if err != nil {
		t.Fatalf("ReadProperties: %v", err)
	}

	want := DefaultConfig()
	want.CourtWidth = 1024
	want.CourtHeight = 768
	want.WinningScore = 5
	want.AccelerationFactor = 1.1
	if cfg != want {
		t.Fatalf("got %+v\nwant %+v", cfg, want)
	}
}

func TestReadPropertiesErrors(t *testing.T) {
	if _, err := ReadProperties(t.TempDir(), "missing"); err == nil {
		t.Fatalf("expected error for missing file")
	}

	dir := writeProperties(t, "bad", "PADDLE_SPEED=fast\n")
	if _, err := ReadProperties(dir, "bad"); err == nil || !strings.Contains(err.Error(), "PADDLE_SPEED") {
		t.Fatalf("expected PADDLE_SPEED parse error, got %v", err)
	}

	dir = writeProperties(t, "invalid", "ACCELERATION_FACTOR=0.9\n")
	if _, err := ReadProperties(dir, "invalid"); err == nil {
		t.Fatalf("expected validation error")
	}
}
