package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/drakos74/autoop/internal/feature"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	path = "infra/config"
	// PortEnv overrides the configured server port.
	PortEnv = "AUTOOP_PORT"
)

// Config is the application configuration.
type Config struct {
	Server   Server         `json:"server" yaml:"server"`
	Log      Log            `json:"log" yaml:"log"`
	Features feature.Config `json:"features" yaml:"features"`
}

// Server configures the http api.
type Server struct {
	Name  string `json:"name" yaml:"name"`
	Port  int    `json:"port" yaml:"port"`
	Debug bool   `json:"debug" yaml:"debug"`
}

// Log configures the global logger.
type Log struct {
	Level string `json:"level" yaml:"level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Server: Server{
			Name: "autoop",
			Port: 6080,
		},
		Log: Log{
			Level: zerolog.InfoLevel.String(),
		},
		Features: feature.DefaultConfig(),
	}
}

// Load decodes the json or yaml file at the given path into the value.
func Load(fileName string, v interface{}) error {
	b, err := ioutil.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("could not load config '%s': %w", fileName, err)
	}

	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".json":
		err = json.Unmarshal(b, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	default:
		return fmt.Errorf("unknown config format '%s' for '%s'", ext, fileName)
	}
	if err != nil {
		return fmt.Errorf("could not unmarshal config '%s': %w", fileName, err)
	}

	log.Info().Str("config", fileName).Msg("loaded config")
	return nil
}

// MustLoad loads the config for the given key from the default config directory.
func MustLoad(key string, v interface{}) {
	err := Load(fmt.Sprintf("%s/%s.yaml", path, key), v)
	if err != nil {
		panic(err.Error())
	}
}

// New loads the application config from the given file on top of the defaults.
// An empty file name results in the default config.
func New(fileName string) (Config, error) {
	cfg := Default()
	if fileName != "" {
		if err := Load(fileName, &cfg); err != nil {
			return Config{}, err
		}
	}
	if p := os.Getenv(PortEnv); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return Config{}, fmt.Errorf("invalid port '%s' in %s: %w", p, PortEnv, err)
		}
		cfg.Server.Port = port
	}
	return cfg, nil
}

// Apply sets the global log level.
func (c Config) Apply() error {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", c.Log.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}
