package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/opencarbon/carbondesk/internal/utils"
)

var (
	home, _           = os.UserHomeDir()
	DefaultConfigPath = filepath.Join(home, ".carbondesk", "config.json")
	DefaultTokenPath  = filepath.Join(home, ".carbondesk", "session.token")
	DefaultServerURL  = "https://api.carbondesk.earth"
)

type Config struct {
	ServerURL string `json:"server_url"`
	Email     string `json:"email"`
	TokenPath string `json:"token_path,omitempty"`
	Path      string `json:"-"`
}

func (c *Config) Save(path string) error {
	if err := utils.EnsureParent(path); err != nil {
		return err
	}

	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.Path = path
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = DefaultTokenPath
	}

	return &cfg, nil
}
