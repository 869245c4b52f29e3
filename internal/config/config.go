package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var Config *ServerConfig

// ServerConfig is a struct that contains configuration values for the mock server.
type ServerConfig struct {
	// AllowedOrigins is a list of URLs that the server will accept requests from.
	AllowedOrigins []string `yaml:"allowed_origins"`
	// Token is the web service token clients must send as wstoken. If empty, one is generated at startup.
	Token string `yaml:"token"`
	// FixturesDir is the directory holding recorded responses, one file per web service function.
	FixturesDir string `yaml:"fixtures_dir"`
	// Port is the port the server should run on.
	Port int `yaml:"port"`
}

func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		FixturesDir:    "fixtures",
		Port:           8080,
	}
}

func init() {
	log.Println("🙂️ No configuration provided. Using the default configuration.")
	Config = DefaultConfig()
}

// LoadConfig builds a configuration from the defaults, the YAML file at path (skipped when path is
// empty or the file does not exist) and MDLMOCK_* environment variables, in that order. The result
// replaces Config.
func LoadConfig(path string) (*ServerConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Printf("🙂️ No configuration file at %s. Using defaults and environment.\n", path)
		case err != nil:
			return nil, fmt.Errorf("error reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("error parsing config file: %w", err)
			}
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	Config = cfg
	return cfg, nil
}

func applyEnv(cfg *ServerConfig) error {
	if v, ok := os.LookupEnv("MDLMOCK_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MDLMOCK_PORT: %w", err)
		}
		cfg.Port = port
	}
	if v, ok := os.LookupEnv("MDLMOCK_TOKEN"); ok {
		cfg.Token = v
	}
	if v, ok := os.LookupEnv("MDLMOCK_FIXTURES_DIR"); ok {
		cfg.FixturesDir = v
	}
	if v, ok := os.LookupEnv("MDLMOCK_ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.FixturesDir == "" {
		return errors.New("fixtures_dir must be set")
	}
	return nil
}
