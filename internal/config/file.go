package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/philologus/philologus-desktop/internal/browser"
	"github.com/philologus/philologus-desktop/internal/platform"
)

// Config file and environment names
const (
	ConfigFileName = "config.toml"
	EnvFileName    = ".env"

	EnvEndpoint   = "PHILOLOGUS_ENDPOINT"
	EnvHomeURL    = "PHILOLOGUS_HOME_URL"
	EnvLexicon    = "PHILOLOGUS_LEXICON"
	EnvDebounceMs = "PHILOLOGUS_DEBOUNCE_MS"
	EnvTimeoutSec = "PHILOLOGUS_TIMEOUT_SEC"
	EnvLanguage   = "PHILOLOGUS_LANGUAGE"
)

// Defaults are the values used when a preference has never been saved
type Defaults struct {
	Endpoint       string
	HomeURL        string
	Lexicon        Lexicon
	DebounceMillis int
	TimeoutSeconds int
	Language       string
}

type fileConfig struct {
	Lookup struct {
		Endpoint   string `toml:"endpoint"`
		Lexicon    string `toml:"lexicon"`
		DebounceMs *int   `toml:"debounce_ms"`
		TimeoutSec *int   `toml:"timeout_sec"`
	} `toml:"lookup"`
	Browser struct {
		HomeURL string `toml:"home_url"`
	} `toml:"browser"`
	UI struct {
		Language string `toml:"language"`
	} `toml:"ui"`
}

// BuiltinDefaults returns the compiled-in defaults
func BuiltinDefaults() Defaults {
	return Defaults{
		Endpoint:       DefaultEndpoint,
		HomeURL:        DefaultHomeURL,
		Lexicon:        DefaultLexicon,
		DebounceMillis: DefaultDebounceMillis,
		TimeoutSeconds: DefaultTimeoutSeconds,
		Language:       DefaultLanguage,
	}
}

// DefaultConfigPath returns the default location of the TOML config file
func DefaultConfigPath() (string, error) {
	dir, err := platform.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LoadDefaults resolves defaults from built-ins, then the TOML file at path, then the environment.
// A missing file is not an error. An empty path skips the file layer.
func LoadDefaults(path string) (Defaults, error) {
	defaults := BuiltinDefaults()

	if path != "" {
		if err := defaults.applyFile(path); err != nil {
			return defaults, err
		}
	}

	if err := godotenv.Load(EnvFileName); err != nil && !errors.Is(err, os.ErrNotExist) {
		return defaults, fmt.Errorf("failed to load %s: %w", EnvFileName, err)
	}
	if err := defaults.applyEnv(); err != nil {
		return defaults, err
	}

	return defaults.normalized(), nil
}

func (d *Defaults) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}

	if cfg.Lookup.Endpoint != "" {
		d.Endpoint = cfg.Lookup.Endpoint
	}
	if cfg.Lookup.Lexicon != "" {
		d.Lexicon = Lexicon(cfg.Lookup.Lexicon)
	}
	if cfg.Lookup.DebounceMs != nil {
		d.DebounceMillis = *cfg.Lookup.DebounceMs
	}
	if cfg.Lookup.TimeoutSec != nil {
		d.TimeoutSeconds = *cfg.Lookup.TimeoutSec
	}
	if cfg.Browser.HomeURL != "" {
		d.HomeURL = cfg.Browser.HomeURL
	}
	if cfg.UI.Language != "" {
		d.Language = cfg.UI.Language
	}
	return nil
}

func (d *Defaults) applyEnv() error {
	if v := os.Getenv(EnvEndpoint); v != "" {
		d.Endpoint = v
	}
	if v := os.Getenv(EnvHomeURL); v != "" {
		d.HomeURL = v
	}
	if v := os.Getenv(EnvLexicon); v != "" {
		d.Lexicon = Lexicon(v)
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		d.Language = v
	}
	if v := os.Getenv(EnvDebounceMs); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDebounceMs, err)
		}
		d.DebounceMillis = ms
	}
	if v := os.Getenv(EnvTimeoutSec); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeoutSec, err)
		}
		d.TimeoutSeconds = sec
	}
	return nil
}

// normalized clamps numeric values and replaces an unknown lexicon with the default
func (d Defaults) normalized() Defaults {
	if !d.Lexicon.IsValid() {
		d.Lexicon = DefaultLexicon
	}
	if browser.ValidateURL(d.Endpoint) != nil {
		d.Endpoint = DefaultEndpoint
	}
	if browser.ValidateURL(d.HomeURL) != nil {
		d.HomeURL = DefaultHomeURL
	}
	if d.Language == "" {
		d.Language = DefaultLanguage
	}
	d.DebounceMillis = clampDebounce(d.DebounceMillis)
	d.TimeoutSeconds = clampTimeout(d.TimeoutSeconds)
	return d
}

// EncodeTOML renders d in the config file layout
func (d Defaults) EncodeTOML() ([]byte, error) {
	var cfg fileConfig
	debounce, timeout := d.DebounceMillis, d.TimeoutSeconds
	cfg.Lookup.Endpoint = d.Endpoint
	cfg.Lookup.Lexicon = string(d.Lexicon)
	cfg.Lookup.DebounceMs = &debounce
	cfg.Lookup.TimeoutSec = &timeout
	cfg.Browser.HomeURL = d.HomeURL
	cfg.UI.Language = d.Language

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode TOML: %w", err)
	}
	return data, nil
}
