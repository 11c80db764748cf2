package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Storage.Dir != "./videos" {
		t.Errorf("Storage.Dir = %q, want ./videos", cfg.Storage.Dir)
	}
	if cfg.Fetch.Timeout != 120*time.Second {
		t.Errorf("Fetch.Timeout = %s, want 120s", cfg.Fetch.Timeout)
	}
	if cfg.Transcode.Timeout != 120*time.Second {
		t.Errorf("Transcode.Timeout = %s, want 120s", cfg.Transcode.Timeout)
	}
	if cfg.Transcode.FFmpegPath != "ffmpeg" {
		t.Errorf("Transcode.FFmpegPath = %q, want ffmpeg", cfg.Transcode.FFmpegPath)
	}
	if cfg.Cleanup.Interval != 30*time.Minute {
		t.Errorf("Cleanup.Interval = %s, want 30m", cfg.Cleanup.Interval)
	}
	if cfg.Cleanup.Retention != time.Hour {
		t.Errorf("Cleanup.Retention = %s, want 1h", cfg.Cleanup.Retention)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("STORAGE_DIR", "/data/videos")
	t.Setenv("CLEANUP_RETENTION", "15m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("Server.Port = %q, want 9999", cfg.Server.Port)
	}
	if cfg.Storage.Dir != "/data/videos" {
		t.Errorf("Storage.Dir = %q, want /data/videos", cfg.Storage.Dir)
	}
	if cfg.Cleanup.Retention != 15*time.Minute {
		t.Errorf("Cleanup.Retention = %s, want 15m", cfg.Cleanup.Retention)
	}
}
