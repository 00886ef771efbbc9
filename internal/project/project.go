package project

import (
	"fmt"
	"strings"
)

// Theme is the default display theme recorded in the generated README.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Themes lists the supported themes in prompt order.
var Themes = []Theme{ThemeLight, ThemeDark}

// Label returns the operator-facing name of the theme.
func (t Theme) Label() string {
	switch t {
	case ThemeDark:
		return "sombre"
	default:
		return "clair"
	}
}

// ParseTheme accepts a theme identifier ("light", "dark") or its label
// ("clair", "sombre"), case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "clair":
		return ThemeLight, nil
	case "dark", "sombre":
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("unknown theme %q: must be one of light, dark", s)
	}
}

// Config is collected once per run and not modified afterwards.
type Config struct {
	Name                   string
	Theme                  Theme
	InstallExtraDependency bool
}

// New returns a Config with the given name and the default theme and
// dependency choice.
func New(name string) *Config {
	return &Config{
		Name:                   name,
		Theme:                  ThemeLight,
		InstallExtraDependency: true,
	}
}

// Validate reports configuration errors that would make the generator
// invocation meaningless. Directory-name rules are left to the generator.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if _, err := ParseTheme(string(c.Theme)); err != nil {
		return err
	}
	return nil
}
