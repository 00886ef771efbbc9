package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kevin-labs/create-kevin-app/internal/branding"
	"github.com/kevin-labs/create-kevin-app/internal/pkgmanager"
	"github.com/kevin-labs/create-kevin-app/internal/project"
)

//go:embed templates/*.tmpl
var scaffoldFS embed.FS

// ReadmeFileName is the file rendered by RenderReadme.
const ReadmeFileName = "README.md"

// baseLibraries are always present in a generated project.
var baseLibraries = []string{"Next.js", "Tailwind CSS", "TypeScript"}

// ReadmeData holds all template variables available to the README template.
type ReadmeData struct {
	Name      string   // e.g., "mon-projet-next"
	Theme     string   // operator-facing theme label, e.g., "sombre"
	Libraries []string // e.g., Next.js, Tailwind CSS, TypeScript, Axios
	Generator string   // CLI name credited in the README
	Manager   pkgmanager.Manager
}

// RunCommand returns the package manager invocation for a manifest script.
func (d *ReadmeData) RunCommand(script string) string {
	return strings.Join(d.Manager.RunScript(script), " ")
}

// NewReadmeData creates a ReadmeData with derived fields populated. The
// extra dependency is listed, title-cased, only when the operator chose to
// install it.
func NewReadmeData(cfg *project.Config, dependency string, pm pkgmanager.Manager) *ReadmeData {
	libs := append([]string(nil), baseLibraries...)
	if cfg.InstallExtraDependency && dependency != "" {
		libs = append(libs, DisplayName(dependency))
	}
	if pm == "" {
		pm = pkgmanager.NPM
	}

	return &ReadmeData{
		Name:      cfg.Name,
		Theme:     cfg.Theme.Label(),
		Libraries: libs,
		Generator: branding.CLIName(),
		Manager:   pm,
	}
}

// DisplayName turns an npm package name into a title for humans
// ("axios" → "Axios", "@tanstack/react-query" → "React Query").
func DisplayName(pkg string) string {
	if i := strings.LastIndex(pkg, "/"); i >= 0 {
		pkg = pkg[i+1:]
	}
	pkg = strings.NewReplacer("-", " ", "_", " ").Replace(pkg)
	return cases.Title(language.Und).String(pkg)
}

// RenderReadme executes the embedded README template.
func RenderReadme(data *ReadmeData) ([]byte, error) {
	return render("README.md.tmpl", data)
}

func render(name string, data any) ([]byte, error) {
	tmplBytes, err := scaffoldFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
