/*
Package config manages the TOML config for predtext.

The file has three tables: [dict] describes the word source, [cli] the
interactive predictor and [server] the IPC limits. Missing files are created
with defaults; malformed files are salvaged table by table, and anything that
cannot be read falls back to the built-in defaults.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/predtext/internal/utils"
	"github.com/charmbracelet/log"
)

const appName = "predtext"

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
	Server ServerConfig `toml:"server"`
}

// DictConfig describes the dictionary file.
type DictConfig struct {
	Path      string `toml:"path"`
	Encoding  string `toml:"encoding"`
	Format    string `toml:"format"`
	Normalize bool   `toml:"normalize"`
}

// CliConfig holds interactive predictor options.
type CliConfig struct {
	Limit       int    `toml:"limit"`
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	Filter      bool   `toml:"filter"`
}

// ServerConfig has IPC server limits.
type ServerConfig struct {
	MaxLimit  int `toml:"max_limit"`
	MinPrefix int `toml:"min_prefix"`
	MaxPrefix int `toml:"max_prefix"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:      "word-popularity.txt",
			Encoding:  "utf-8",
			Format:    "ranked",
			Normalize: true,
		},
		CLI: CliConfig{
			Limit:  5,
			Prompt: "> ",
			Filter: true,
		},
		Server: ServerConfig{
			MaxLimit:  64,
			MinPrefix: 1,
			MaxPrefix: 60,
		},
	}
}

// GetDefaultConfigPath returns [UserConfigDir]/predtext/config.toml, or a
// path next to the executable when the config dir is not writable.
func GetDefaultConfigPath() (string, error) {
	dir := utils.ConfigDir(appName)
	if utils.IsWritableDir(dir) {
		return filepath.Join(dir, "config.toml"), nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(execDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/predtext/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customPath string) (*Config, string, error) {
	if customPath != "" {
		if utils.FileExists(customPath) {
			cfg, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return cfg, customPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using built-in defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their
// defaults.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		cfg = tryPartialParse(configPath)
	}
	cfg.Validate()
	return cfg, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}

// Validate resets values that would make the predictor unusable.
func (c *Config) Validate() {
	def := DefaultConfig()

	if c.CLI.Limit < 1 {
		log.Warnf("cli.limit must be positive, got %d. Using %d", c.CLI.Limit, def.CLI.Limit)
		c.CLI.Limit = def.CLI.Limit
	}
	if c.Server.MaxLimit < 1 {
		log.Warnf("server.max_limit must be positive, got %d. Using %d", c.Server.MaxLimit, def.Server.MaxLimit)
		c.Server.MaxLimit = def.Server.MaxLimit
	}
	if c.Server.MinPrefix < 1 {
		log.Warnf("server.min_prefix must be at least 1, got %d", c.Server.MinPrefix)
		c.Server.MinPrefix = def.Server.MinPrefix
	}
	if c.Server.MaxPrefix < c.Server.MinPrefix {
		log.Warnf("server.max_prefix (%d) is below min_prefix (%d)", c.Server.MaxPrefix, c.Server.MinPrefix)
		c.Server.MaxPrefix = max(def.Server.MaxPrefix, c.Server.MinPrefix)
	}
	if c.Dict.Encoding == "" {
		c.Dict.Encoding = def.Dict.Encoding
	}
	if c.Dict.Format == "" {
		c.Dict.Format = def.Dict.Format
	}
}

// tryPartialParse salvages every well-typed key of a config file whose typed
// decode failed.
func tryPartialParse(configPath string) *Config {
	cfg := DefaultConfig()

	data, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return cfg
	}

	if section, ok := utils.ExtractSection(data, "dict"); ok {
		extractDictConfig(section, &cfg.Dict)
	}
	if section, ok := utils.ExtractSection(data, "cli"); ok {
		extractCliConfig(section, &cfg.CLI)
	}
	if section, ok := utils.ExtractSection(data, "server"); ok {
		extractServerConfig(section, &cfg.Server)
	}
	return cfg
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractString(data, "encoding"); ok {
		dict.Encoding = val
	}
	if val, ok := utils.ExtractString(data, "format"); ok {
		dict.Format = val
	}
	if val, ok := utils.ExtractBool(data, "normalize"); ok {
		dict.Normalize = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "limit"); ok {
		cli.Limit = val
	}
	if val, ok := utils.ExtractString(data, "prompt"); ok {
		cli.Prompt = val
	}
	if val, ok := utils.ExtractString(data, "history_file"); ok {
		cli.HistoryFile = val
	}
	if val, ok := utils.ExtractBool(data, "filter"); ok {
		cli.Filter = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "min_prefix"); ok {
		server.MinPrefix = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
}

// DisplayPath returns the absolute path of a loaded config file, or a marker
// when only built-in defaults are in use.
func DisplayPath(configPath string) string {
	if configPath == "" {
		return "built-in defaults"
	}
	if abs, err := filepath.Abs(configPath); err == nil {
		return abs
	}
	return configPath
}
