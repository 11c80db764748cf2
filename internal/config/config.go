package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Fetch     FetchConfig
	Transcode TranscodeConfig
	Cleanup   CleanupConfig
}

type ServerConfig struct {
	Port     string
	BaseURL  string // public base for returned video URLs
	LogLevel string
}

type StorageConfig struct {
	Dir string
}

type FetchConfig struct {
	Timeout time.Duration
}

type TranscodeConfig struct {
	FFmpegPath string
	Timeout    time.Duration
	TempDir    string // empty means os.TempDir()
}

type CleanupConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variables
	viper.AutomaticEnv()

	// Bind environment variables with underscores to nested config keys
	_ = viper.BindEnv("server.port", "SERVER_PORT")
	_ = viper.BindEnv("server.base_url", "BASE_URL")
	_ = viper.BindEnv("server.log_level", "LOG_LEVEL")
	_ = viper.BindEnv("storage.dir", "STORAGE_DIR")
	_ = viper.BindEnv("fetch.timeout", "FETCH_TIMEOUT")
	_ = viper.BindEnv("transcode.ffmpeg_path", "FFMPEG_PATH")
	_ = viper.BindEnv("transcode.timeout", "TRANSCODE_TIMEOUT")
	_ = viper.BindEnv("transcode.temp_dir", "TEMP_DIR")
	_ = viper.BindEnv("cleanup.interval", "CLEANUP_INTERVAL")
	_ = viper.BindEnv("cleanup.retention", "CLEANUP_RETENTION")

	// Defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.base_url", "http://localhost:8080")
	viper.SetDefault("server.log_level", "info")
	viper.SetDefault("storage.dir", "./videos")
	viper.SetDefault("fetch.timeout", "120s")
	viper.SetDefault("transcode.ffmpeg_path", "ffmpeg")
	viper.SetDefault("transcode.timeout", "120s")
	viper.SetDefault("transcode.temp_dir", "")
	viper.SetDefault("cleanup.interval", "30m")
	viper.SetDefault("cleanup.retention", "1h")

	// Try to read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Port:     viper.GetString("server.port"),
			BaseURL:  viper.GetString("server.base_url"),
			LogLevel: viper.GetString("server.log_level"),
		},
		Storage: StorageConfig{
			Dir: viper.GetString("storage.dir"),
		},
		Fetch: FetchConfig{
			Timeout: viper.GetDuration("fetch.timeout"),
		},
		Transcode: TranscodeConfig{
			FFmpegPath: viper.GetString("transcode.ffmpeg_path"),
			Timeout:    viper.GetDuration("transcode.timeout"),
			TempDir:    viper.GetString("transcode.temp_dir"),
		},
		Cleanup: CleanupConfig{
			Interval:  viper.GetDuration("cleanup.interval"),
			Retention: viper.GetDuration("cleanup.retention"),
		},
	}

	return cfg, nil
}
