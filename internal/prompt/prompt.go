package prompt

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/kevin-labs/create-kevin-app/internal/project"
)

// DefaultProjectName is used when the operator enters nothing.
const DefaultProjectName = "mon-projet-next"

// Prompter asks single questions.
type Prompter interface {
	Input(message, def string) (string, error)
	Select(message string, options []string, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

// Defaults pre-fills the answers. The zero value proposes the default
// project name, the light theme and installing Axios.
type Defaults struct {
	Name            string
	Theme           project.Theme
	SkipExtra       bool   // propose "no" for the extra dependency
	DependencyLabel string // e.g. "Axios"
}

// New returns a survey-backed prompter when both streams are terminals and a
// line-based one otherwise.
func New(in, out *os.File) Prompter {
	if term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd())) {
		return &SurveyPrompter{In: in, Out: out, Err: os.Stderr}
	}
	return NewLinePrompter(in, out)
}

// Ask runs the fixed question sequence: project name, theme, and whether to
// install the extra dependency. Answers are only coerced to their types;
// the project name is validated later by the generator.
func Ask(p Prompter, d Defaults) (*project.Config, error) {
	if d.Name == "" {
		d.Name = DefaultProjectName
	}
	if d.Theme == "" {
		d.Theme = project.ThemeLight
	}
	if d.DependencyLabel == "" {
		d.DependencyLabel = "Axios"
	}

	name, err := p.Input("Nom du projet :", d.Name)
	if err != nil {
		return nil, fmt.Errorf("asking project name: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = d.Name
	}

	labels := make([]string, len(project.Themes))
	for i, t := range project.Themes {
		labels[i] = t.Label()
	}
	label, err := p.Select("Choisis un thème par défaut :", labels, d.Theme.Label())
	if err != nil {
		return nil, fmt.Errorf("asking theme: %w", err)
	}
	theme, err := project.ParseTheme(label)
	if err != nil {
		return nil, err
	}

	install, err := p.Confirm(fmt.Sprintf("Souhaites-tu installer %s ?", d.DependencyLabel), !d.SkipExtra)
	if err != nil {
		return nil, fmt.Errorf("asking extra dependency: %w", err)
	}

	return &project.Config{
		Name:                   name,
		Theme:                  theme,
		InstallExtraDependency: install,
	}, nil
}
