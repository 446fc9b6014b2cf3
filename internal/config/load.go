package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/gabapcia/walletwatch/internal/pkg/validator"
)

// EnvPrefix prefixes the environment overrides read by Load.
const EnvPrefix = "walletwatch"

// ErrNotFound is returned by Load when the configuration file does not exist.
var ErrNotFound = errors.New("config file not found")

// envRef matches ${VAR} and ${VAR:-default}.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// overrides are process-level settings that win over the file.
type overrides struct {
	LogLevel         *string `envconfig:"LOG_LEVEL"`
	ServerHost       *string `envconfig:"SERVER_HOST"`
	ServerPort       *int    `envconfig:"SERVER_PORT"`
	ServerSecret     *string `envconfig:"SERVER_SECRET"`
	StorageType      *string `envconfig:"STORAGE_TYPE"`
	StoragePath      *string `envconfig:"STORAGE_PATH"`
	StorageURL       *string `envconfig:"STORAGE_URL"`
	TelemetryEnabled *bool   `envconfig:"TELEMETRY_ENABLED"`
}

// platformOverrides are unprefixed variables set by hosting platforms. The
// prefixed overrides win over them.
type platformOverrides struct {
	Port *int `envconfig:"PORT"`
}

func (o overrides) apply(c *Config) {
	set(&c.Log.Level, o.LogLevel)
	set(&c.Server.Host, o.ServerHost)
	set(&c.Server.Port, o.ServerPort)
	set(&c.Server.Secret, o.ServerSecret)
	set(&c.Storage.Type, o.StorageType)
	set(&c.Storage.Path, o.StoragePath)
	set(&c.Storage.URL, o.StorageURL)
	set(&c.Telemetry.Enabled, o.TelemetryEnabled)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// expandEnv replaces every environment reference in s. As in the shell, the
// default applies when the variable is unset or empty.
func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		m := envRef.FindStringSubmatch(ref)
		if v := os.Getenv(m[1]); v != "" {
			return v
		}
		return m[2]
	})
}

// expandNode expands environment references in every scalar of the tree.
func expandNode(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.Tag != "!!binary" {
		expanded := expandEnv(n.Value)
		if expanded != n.Value {
			n.Value = expanded
			// re-resolve so "${PORT:-8080}" can decode into an int
			n.Tag = ""
			n.Style = 0
		}
	}

	for _, child := range n.Content {
		expandNode(child)
	}
}

// Parse decodes a configuration document over the built-in defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := base()

	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if root.Kind != 0 {
		expandNode(&root)
		if err := root.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Load reads the configuration at path. A .env file in the working
// directory is loaded first when present, then WALLETWATCH_* overrides are
// applied and the result is validated.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return Config{}, err
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, err
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, Validate(cfg)
}

// ApplyEnv applies WALLETWATCH_* overrides to cfg. PORT is honored as a
// fallback for WALLETWATCH_SERVER_PORT.
func ApplyEnv(cfg *Config) error {
	var p platformOverrides
	if err := envconfig.Process("", &p); err != nil {
		return fmt.Errorf("read environment overrides: %w", err)
	}
	set(&cfg.Server.Port, p.Port)

	var o overrides
	if err := envconfig.Process(EnvPrefix, &o); err != nil {
		return fmt.Errorf("read environment overrides: %w", err)
	}

	o.apply(cfg)
	return nil
}

// Validate checks field rules and cross-field constraints.
func Validate(cfg Config) error {
	if err := validator.Validate(cfg); err != nil {
		return err
	}

	seen := make(map[string]bool, len(cfg.Chains))
	for _, chain := range cfg.Chains {
		if seen[chain.Name] {
			return fmt.Errorf("%w: chain %q configured more than once", validator.ErrValidation, chain.Name)
		}
		seen[chain.Name] = true
	}

	if cfg.Storage.Type != "badger" && cfg.Storage.URL == "" {
		return fmt.Errorf("%w: storage %q requires url", validator.ErrValidation, cfg.Storage.Type)
	}

	return nil
}
