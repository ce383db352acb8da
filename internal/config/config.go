// Package config loads CLI settings from defaults, an optional YAML file,
// a .env file, and DCMETA_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/reoring/dcmeta"
	"github.com/reoring/dcmeta/internal/render"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when no path is given.
const DefaultFile = "dcmeta.yaml"

// Environment variable names.
const (
	EnvNamespace  = "DCMETA_NAMESPACE"
	EnvLanguage   = "DCMETA_LANGUAGE"
	EnvStrictLang = "DCMETA_STRICT_LANGUAGE"
	EnvFormat     = "DCMETA_FORMAT"
	EnvMessages   = "DCMETA_MESSAGES"
)

// Config holds the CLI settings.
type Config struct {
	Namespace      string `yaml:"namespace"`
	Language       bool   `yaml:"language"`
	StrictLanguage bool   `yaml:"strict_language"`
	Format         string `yaml:"format"`
	// Messages selects the issue message language ("en" or "ja").
	Messages string `yaml:"messages"`
	// IncludeUnrecognized also prints elements that did not classify.
	IncludeUnrecognized bool `yaml:"include_unrecognized"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Namespace: dcmeta.NamespacePrefix.String(),
		Format:    string(render.FormatJSON),
		Messages:  "en",
	}
}

// Loader reads configuration through an afero filesystem so tests can use
// an in-memory one.
type Loader struct {
	Fs     afero.Fs
	Getenv func(string) string
	Logger *slog.Logger
}

// NewLoader returns a Loader backed by the OS filesystem and environment.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{Fs: afero.NewOsFs(), Getenv: os.Getenv, Logger: logger}
}

// Load builds the configuration. An explicit path must exist; the default
// file and .env are optional.
func (l *Loader) Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := l.loadFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	} else {
		l.Logger.Debug("config file loaded", "path", path)
	}

	env, err := l.dotenv()
	if err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg, func(k string) string {
		if v := l.Getenv(k); v != "" {
			return v
		}
		return env[k]
	}); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (l *Loader) loadFile(path string, cfg *Config) error {
	b, err := afero.ReadFile(l.Fs, path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (l *Loader) dotenv() (map[string]string, error) {
	f, err := l.Fs.Open(".env")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening .env: %w", err)
	}
	defer f.Close()
	env, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing .env: %w", err)
	}
	l.Logger.Debug(".env loaded", "keys", len(env))
	return env, nil
}

func applyEnv(cfg *Config, get func(string) string) error {
	if v := get(EnvNamespace); v != "" {
		cfg.Namespace = v
	}
	if v := get(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := get(EnvMessages); v != "" {
		cfg.Messages = v
	}
	for key, dst := range map[string]*bool{EnvLanguage: &cfg.Language, EnvStrictLang: &cfg.StrictLanguage} {
		v := get(key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
	}
	return nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if _, err := dcmeta.ParseNamespaceMatch(c.Namespace); err != nil {
		return fmt.Errorf("namespace: %w", err)
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	switch c.Messages {
	case "", "en", "ja":
	default:
		return fmt.Errorf("messages: unsupported language %q", c.Messages)
	}
	return nil
}

// ClassifierOptions converts the settings into dcmeta options.
func (c Config) ClassifierOptions(logger *slog.Logger) []dcmeta.Option {
	m, _ := dcmeta.ParseNamespaceMatch(c.Namespace)
	return []dcmeta.Option{
		dcmeta.WithNamespaceMatch(m),
		dcmeta.WithLanguage(c.Language),
		dcmeta.WithStrictLanguage(c.StrictLanguage),
		dcmeta.WithLogger(logger),
	}
}
