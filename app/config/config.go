// Package config loads quillpad settings from an optional .env file, an
// optional quillpad.yaml and QUILLPAD_* environment variables, in rising
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"quillpad/app/validation"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "QUILLPAD"
	configName = "quillpad"

	DefaultDataDir  = "data/blog"
	DefaultLogLevel = "info"
)

// Config holds the resolved settings.
type Config struct {
	DataDir        string
	PerPage        int
	LogLevel       string
	LogDevelopment bool
	RedisAddr      string
	RedisTTL       time.Duration
}

// Options controls where Load looks for its inputs.
type Options struct {
	// ConfigFile is an explicit YAML file. It must exist when set.
	ConfigFile string
	// EnvFile is the dotenv file to load. Empty means ".env"; a missing
	// file is ignored.
	EnvFile string
	// SearchPaths are searched for quillpad.yaml when ConfigFile is empty.
	SearchPaths []string
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load environment file %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetDefault("data.dir", DefaultDataDir)
	v.SetDefault("blog.per_page", validation.DefaultPerPage)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.development", false)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.ttl", "10m")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		paths := opts.SearchPaths
		if len(paths) == 0 {
			paths = []string{"."}
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		DataDir:        v.GetString("data.dir"),
		PerPage:        v.GetInt("blog.per_page"),
		LogLevel:       v.GetString("log.level"),
		LogDevelopment: v.GetBool("log.development"),
		RedisAddr:      v.GetString("redis.addr"),
		RedisTTL:       v.GetDuration("redis.ttl"),
	}
	if cfg.PerPage < 1 {
		return nil, fmt.Errorf("blog.per_page must be positive, got %d", cfg.PerPage)
	}
	return cfg, nil
}
