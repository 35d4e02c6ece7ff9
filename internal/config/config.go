package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"czjira/internal/core"
)

const (
	FileName      = ".czjira.json"
	EnvConfig     = "CZJIRA_CONFIG"
	EnvWidth      = "CZJIRA_MAX_LINE_WIDTH"
	EnvDraftDB    = "CZJIRA_DRAFT_DB"
	EnvDebug      = "DEBUG"
	EnvAccessible = "ACCESSIBLE"
)

type Config struct {
	Types        []core.TypeChoice `json:"types"`
	MaxLineWidth int               `json:"max_line_width"`
	DraftDB      string            `json:"draft_db"`
	Debug        bool              `json:"-"`

	// Accessible asks questions as plain line prompts for screen readers.
	Accessible bool `json:"accessible"`

	// Path is the file the config was read from, empty for defaults.
	Path string `json:"-"`
}

// DefaultTypes is the conventional-commit type list, in menu order.
func DefaultTypes() []core.TypeChoice {
	return []core.TypeChoice{
		{Key: "feat", Description: "A new feature"},
		{Key: "fix", Description: "A bug fix"},
		{Key: "docs", Description: "Documentation only changes"},
		{Key: "style", Description: "Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc)"},
		{Key: "refactor", Description: "A code change that neither fixes a bug nor adds a feature"},
		{Key: "perf", Description: "A code change that improves performance"},
		{Key: "test", Description: "Adding missing tests or correcting existing tests"},
		{Key: "build", Description: "Changes that affect the build system or external dependencies"},
		{Key: "ci", Description: "Changes to our CI configuration files and scripts"},
		{Key: "chore", Description: "Other changes that don't modify src or test files"},
		{Key: "revert", Description: "Reverts a previous commit"},
	}
}

func Default() Config {
	return Config{
		Types:        DefaultTypes(),
		MaxLineWidth: core.MaxLineWidth,
	}
}

// Load reads a JSON config file. A missing file yields the defaults; fields
// left out of the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := json.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	for i, t := range file.Types {
		if t.Key == "" {
			return Config{}, fmt.Errorf("parse config %s: type %d has no key", path, i)
		}
	}
	if len(file.Types) > 0 {
		cfg.Types = file.Types
	}
	if file.MaxLineWidth > 0 {
		cfg.MaxLineWidth = file.MaxLineWidth
	}
	if file.DraftDB != "" {
		cfg.DraftDB = file.DraftDB
	}
	cfg.Path = path

	return cfg, nil
}

// Resolve picks the config file (flag, $CZJIRA_CONFIG, <repoRoot>/.czjira.json,
// ~/.config/czjira/config.json), loads it and applies env overrides.
func Resolve(flagPath, repoRoot string) (Config, error) {
	path := findConfig(flagPath, repoRoot)

	var (
		cfg Config
		err error
	)
	if path == "" {
		cfg = Default()
	} else {
		cfg, err = Load(path)
		if err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DraftDB == "" {
		cfg.DraftDB, err = defaultDraftDB()
		if err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func findConfig(flagPath, repoRoot string) string {
	if flagPath != "" {
		return flagPath
	}
	if v := os.Getenv(EnvConfig); v != "" {
		return v
	}

	var candidates []string
	if repoRoot != "" {
		candidates = append(candidates, filepath.Join(repoRoot, FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "czjira", "config.json"))
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", EnvWidth, v)
		}
		cfg.MaxLineWidth = n
	}
	if v := os.Getenv(EnvDraftDB); v != "" {
		cfg.DraftDB = v
	}
	cfg.Debug = os.Getenv(EnvDebug) != ""
	if os.Getenv(EnvAccessible) != "" {
		cfg.Accessible = true
	}
	return nil
}

func defaultDraftDB() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".czjira", "drafts.db"), nil
}
