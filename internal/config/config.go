package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/kevin-labs/create-kevin-app/internal/branding"
	"github.com/kevin-labs/create-kevin-app/internal/project"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyDefaultName      = "default_name"
	KeyDefaultTheme     = "default_theme"
	KeyInstallExtra     = "install_extra"
	KeyExtraDependency  = "extra_dependency"
	KeyWriteReadme      = "write_readme"
	KeyCleanupOnFailure = "cleanup_on_failure"
	KeyBanner           = "banner"
	KeyPreviewReadme    = "preview_readme"
	KeyVerbose          = "verbose"
)

var defaults = map[string]any{
	KeyDefaultName:      "mon-projet-next",
	KeyDefaultTheme:     string(project.ThemeLight),
	KeyInstallExtra:     true,
	KeyExtraDependency:  "axios",
	KeyWriteReadme:      true,
	KeyCleanupOnFailure: false,
	KeyBanner:           true,
	KeyPreviewReadme:    false,
	KeyVerbose:          false,
}

// Settings is the resolved configuration for one run.
type Settings struct {
	DefaultName      string
	DefaultTheme     project.Theme
	InstallExtra     bool
	ExtraDependency  string
	WriteReadme      bool
	CleanupOnFailure bool
	Banner           bool
	PreviewReadme    bool
	Verbose          bool
}

// Dir returns the path to the config directory (~/.create-kevin-app/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Keys returns the known setting keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKey reports whether key is a known setting.
func IsKey(key string) bool {
	_, ok := defaults[key]
	return ok
}

// EnvVar returns the environment variable that overrides key, e.g.
// CKA_CLEANUP_ON_FAILURE.
func EnvVar(key string) string {
	return branding.EnvVar(key)
}

// Load initializes Viper to read from the config file and environment.
// A malformed config file is an error; a missing one is not.
func Load() error {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	for _, k := range Keys() {
		if err := viper.BindEnv(k, EnvVar(k)); err != nil {
			return fmt.Errorf("binding %s: %w", EnvVar(k), err)
		}
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key as a string. Returns empty string if
// not set.
func Get(key string) string {
	return viper.GetString(key)
}

// All returns every known key with its resolved value.
func All() map[string]string {
	out := make(map[string]string, len(defaults))
	for _, k := range Keys() {
		out[k] = viper.GetString(k)
	}
	return out
}

// Current resolves the typed settings.
func Current() (*Settings, error) {
	theme, err := project.ParseTheme(viper.GetString(KeyDefaultTheme))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", KeyDefaultTheme, err)
	}
	dep := strings.TrimSpace(viper.GetString(KeyExtraDependency))
	if dep == "" {
		return nil, fmt.Errorf("config %s must not be empty", KeyExtraDependency)
	}
	return &Settings{
		DefaultName:      viper.GetString(KeyDefaultName),
		DefaultTheme:     theme,
		InstallExtra:     viper.GetBool(KeyInstallExtra),
		ExtraDependency:  dep,
		WriteReadme:      viper.GetBool(KeyWriteReadme),
		CleanupOnFailure: viper.GetBool(KeyCleanupOnFailure),
		Banner:           viper.GetBool(KeyBanner),
		PreviewReadme:    viper.GetBool(KeyPreviewReadme),
		Verbose:          viper.GetBool(KeyVerbose),
	}, nil
}

// Set validates a config key-value pair and saves it to the config file.
// Only keys already in the file and the one being set are written; defaults
// and environment overrides stay out of the file.
func Set(key, value string) error {
	v, err := coerce(key, value)
	if err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, v)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, v)
	return nil
}

func coerce(key, value string) (any, error) {
	def, ok := defaults[key]
	if !ok {
		return nil, fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	switch def.(type) {
	case bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("config %s expects true or false, got %q", key, value)
		}
		return b, nil
	}
	switch key {
	case KeyDefaultTheme:
		theme, err := project.ParseTheme(value)
		if err != nil {
			return nil, err
		}
		return string(theme), nil
	case KeyExtraDependency, KeyDefaultName:
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("config %s must not be empty", key)
		}
	}
	return value, nil
}
