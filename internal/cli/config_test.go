package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wordhaze/wordhaze/pkg/errors"
	"github.com/wordhaze/wordhaze/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordhaze.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
width = 800
height = 400
margin = 0
prefer_horizontal = 0.95
ranks_only = true
max_font_size = 120
seed = 7
font = "DejaVuSans"
stopwords = "stop.txt"
min_count = 1
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	opts := pipeline.NewOptions()
	cfg.apply(&opts)

	if opts.Width != 800 || opts.Height != 400 {
		t.Errorf("dimensions = %dx%d, want 800x400", opts.Width, opts.Height)
	}
	if opts.Margin != 0 {
		t.Errorf("margin = %d, want 0", opts.Margin)
	}
	if opts.PreferHorizontal != 0.95 {
		t.Errorf("prefer_horizontal = %g, want 0.95", opts.PreferHorizontal)
	}
	if !opts.RanksOnly {
		t.Error("ranks_only not applied")
	}
	if opts.MaxFontSize != 120 {
		t.Errorf("max_font_size = %d, want 120", opts.MaxFontSize)
	}
	if opts.Seed != 7 {
		t.Errorf("seed = %d, want 7", opts.Seed)
	}
	if opts.Font != "DejaVuSans" {
		t.Errorf("font = %q, want DejaVuSans", opts.Font)
	}
	if opts.StopwordPath != "stop.txt" {
		t.Errorf("stopwords = %q, want stop.txt", opts.StopwordPath)
	}
	if opts.MinCount != 1 {
		t.Errorf("min_count = %d, want 1", opts.MinCount)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `width = 800`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	opts := pipeline.NewOptions()
	cfg.apply(&opts)

	if opts.Width != 800 {
		t.Errorf("width = %d, want 800", opts.Width)
	}
	if opts.Height != pipeline.DefaultHeight {
		t.Errorf("height = %d, want default %d", opts.Height, pipeline.DefaultHeight)
	}
	if opts.Seed != pipeline.DefaultSeed {
		t.Errorf("seed = %d, want default %d", opts.Seed, pipeline.DefaultSeed)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, `widht = 800`)

	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, `width = [not toml`)

	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}
