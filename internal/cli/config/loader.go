package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "PULSE_"

// DefaultEnvFile is the dotenv file looked up in the working directory.
const DefaultEnvFile = ".env"

// Loader loads configuration from multiple sources.
type Loader struct {
	k          *koanf.Koanf
	envPrefix  string
	envFile    string
	configFile string
}

// Option configures the Loader.
type Option func(*Loader)

// WithConfigFile sets the YAML config file path. Empty means the
// default path, and a missing file at the default path is not an error.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.configFile = path
	}
}

// WithEnvFile sets the dotenv file path.
func WithEnvFile(path string) Option {
	return func(l *Loader) {
		l.envFile = path
	}
}

// NewLoader creates a configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: EnvPrefix,
		envFile:   DefaultEnvFile,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load loads configuration from all sources and returns the merged
// result. Missing optional files are skipped silently.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	configFile := l.configFile
	if configFile == "" {
		configFile = DefaultConfigPath()
	}
	if fileExists(configFile) {
		if err := l.k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configFile, err)
		}
	}

	if fileExists(l.envFile) {
		parser := dotenv.ParserEnv(l.envPrefix, ".", l.transform)
		if err := l.k.Load(file.Provider(l.envFile), parser); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", l.envFile, err)
		}
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", l.transform), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if err := l.k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// transform maps PULSE_ORG_ID to the flat key "org_id".
func (l *Loader) transform(s string) string {
	s = strings.TrimPrefix(s, l.envPrefix)
	return strings.ToLower(s)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
