// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild. Go's //go:embed
// bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	GeneratorPackage string `yaml:"generator_package"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:          "create-kevin-app",
			DisplayName:      "create-kevin-app",
			Description:      "Génère un projet Next.js prêt à coder",
			HomeDir:          ".create-kevin-app",
			EnvPrefix:        "CKA",
			GeneratorPackage: "create-next-app@latest",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-kevin-app").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the name printed in the banner.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".create-kevin-app").
func HomeDir() string { load(); return defaults.HomeDir }

// GeneratorPackage returns the npm package specifier handed to npx to create the
// base project (e.g., "create-next-app@latest").
func GeneratorPackage() string { load(); return defaults.GeneratorPackage }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "CKA_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
