package ebitenui

import "testing"

func TestRunConfigDefaults(t *testing.T) {
	var cfg RunConfig
	cfg.applyDefaults()
	if cfg.Title != "arbor" || cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("window = %q %dx%d", cfg.Title, cfg.Width, cfg.Height)
	}
	if cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", cfg.ScreenshotDir, "screenshots")
	}

	cfg = RunConfig{Title: "demo", Width: 320, Height: 200, ScreenshotDir: "out"}
	cfg.applyDefaults()
	if cfg.Title != "demo" || cfg.Width != 320 || cfg.Height != 200 || cfg.ScreenshotDir != "out" {
		t.Errorf("explicit values overwritten: %+v", cfg)
	}
}
