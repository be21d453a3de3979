// Package config holds the YAML configuration for both binaries. A missing
// config file falls back to Default().
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Logger LoggerConfig `yaml:"logger"`
	Global GlobalConfig `yaml:"global"`
	Local  LocalConfig  `yaml:"local"`
	ZK     ZKConfig     `yaml:"zookeeper"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// GlobalConfig describes the Global endpoint: the one authoritative store
// the whole cluster talks to. Its identity is configuration, never hidden
// process state.
type GlobalConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	HTTPPort   string `yaml:"http_port"`
	ChunkBytes int    `yaml:"chunk_bytes"`
}

type LocalConfig struct {
	Addr           string        `yaml:"addr"`
	GlobalAddr     string        `yaml:"global_addr"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	SyncInterval   time.Duration `yaml:"sync_interval"`
}

// ZKConfig enables ZooKeeper discovery of the Global endpoint when servers
// are configured; otherwise the static addresses above are used.
type ZKConfig struct {
	Servers  []string `yaml:"servers"`
	RootPath string   `yaml:"root_path"`
}

// Default returns a baseline development config.
func Default() Config {
	return Config{
		Logger: LoggerConfig{
			Level: "INFO",
			JSON:  false,
		},
		Global: GlobalConfig{
			ListenAddr: "127.0.0.1:50051",
			HTTPPort:   "8080",
			ChunkBytes: 1 << 20,
		},
		Local: LocalConfig{
			Addr:           "127.0.0.1:50052",
			GlobalAddr:     "127.0.0.1:50051",
			RequestTimeout: 3 * time.Second,
			SyncInterval:   5 * time.Second,
		},
		ZK: ZKConfig{
			RootPath: "/dstore",
		},
	}
}

// Load reads a YAML config from path. A missing file yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("config file not found, using default config", "path", path)
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// InitLogger configures the global slog.Logger (JSON or text).
func InitLogger(cfg *Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logger.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Logger.JSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
