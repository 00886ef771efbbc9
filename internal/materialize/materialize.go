package materialize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevin-labs/create-kevin-app/internal/branding"
	"github.com/kevin-labs/create-kevin-app/internal/fsutil"
	"github.com/kevin-labs/create-kevin-app/internal/manifest"
	"github.com/kevin-labs/create-kevin-app/internal/pkgmanager"
	"github.com/kevin-labs/create-kevin-app/internal/project"
	"github.com/kevin-labs/create-kevin-app/internal/runner"
	"github.com/kevin-labs/create-kevin-app/internal/scaffold"
	"github.com/kevin-labs/create-kevin-app/internal/ui"
)

// State is a position in the materialization pipeline.
type State string

// Pipeline states, in execution order.
const (
	StateIdle                 State = "Idle"
	StateGenerating           State = "Generating"
	StatePatchingConfig       State = "PatchingConfig"
	StatePatchingManifest     State = "PatchingManifest"
	StateInstallingDependency State = "InstallingDependency"
	StateWritingReadme        State = "WritingReadme"
	StateSucceeded            State = "Succeeded"
	StateFailed               State = "Failed"
)

// DefaultDependency is installed when the operator accepts the extra
// dependency and no other package is configured.
const DefaultDependency = "axios"

// GeneratorArgs returns the npx argv for the project generator. It depends
// only on the project name.
func GeneratorArgs(name string) []string {
	return []string{
		branding.GeneratorPackage(),
		name,
		"--app",
		"--eslint",
		"--tailwind",
		"--ts",
		"--src-dir",
		"--import-alias",
		"@/*",
		"--turbo",
	}
}

// Options tunes the pipeline. The zero value writes the README, installs
// axios when asked, and never removes anything on failure.
type Options struct {
	// WorkDir is where the project directory is created. Empty means the
	// current directory.
	WorkDir string

	// Dependency is the package added when the config asks for it.
	Dependency string

	// SkipReadme disables the README step.
	SkipReadme bool

	// CleanupOnFailure removes the project directory after a failed run,
	// but only if the directory did not exist before the run started.
	CleanupOnFailure bool
}

// StepError reports which state the pipeline failed in.
type StepError struct {
	State State
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.State, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Result describes a finished run, successful or not.
type Result struct {
	ProjectDir     string
	States         []State // visited states, starting with Idle
	PackageManager pkgmanager.Manager
	Readme         []byte // rendered README, nil if the step did not run
	CleanedUp      bool
}

// Final returns the terminal state of the run.
func (r *Result) Final() State {
	if len(r.States) == 0 {
		return StateIdle
	}
	return r.States[len(r.States)-1]
}

// Materializer creates and patches a new project directory.
type Materializer struct {
	Runner   runner.Runner
	Reporter *ui.Reporter
	Options  Options

	// OnTransition, if set, is called on every state change.
	OnTransition func(from, to State)
}

// New returns a Materializer with the given runner and reporter.
func New(r runner.Runner, rep *ui.Reporter, opts Options) *Materializer {
	return &Materializer{Runner: r, Reporter: rep, Options: opts}
}

// step is one stage of the pipeline.
type step struct {
	state   State
	message string
	enabled bool
	run     func(ctx context.Context) error
}

// Run executes the pipeline for cfg. Steps run strictly in order; the first
// failure stops the run and earlier effects stay in place, unless
// CleanupOnFailure applies. The returned Result is never nil.
func (m *Materializer) Run(ctx context.Context, cfg *project.Config) (*Result, error) {
	res := &Result{States: []State{StateIdle}}
	current := StateIdle
	transition := func(to State) {
		if m.OnTransition != nil {
			m.OnTransition(current, to)
		}
		current = to
		res.States = append(res.States, to)
	}

	if err := cfg.Validate(); err != nil {
		transition(StateFailed)
		return res, &StepError{State: StateIdle, Err: err}
	}

	projectDir := filepath.Join(m.Options.WorkDir, cfg.Name)
	res.ProjectDir = projectDir
	existedBefore := fsutil.DirExists(projectDir)

	dependency := m.Options.Dependency
	if dependency == "" {
		dependency = DefaultDependency
	}

	if strings.EqualFold(cfg.Name, "next-fun") {
		m.Reporter.Fun("🎉 Wow, tu as choisi un nom super fun ! Prépare-toi à un projet génial 😎")
	}

	steps := []step{
		{
			state:   StateGenerating,
			message: fmt.Sprintf("Création de %s... 🚀", cfg.Name),
			enabled: true,
			run: func(ctx context.Context) error {
				return m.generate(ctx, cfg.Name)
			},
		},
		{
			state:   StatePatchingConfig,
			message: "Ajout de la configuration Prettier... 🖌️",
			enabled: true,
			run: func(context.Context) error {
				return writeFormatterConfig(projectDir)
			},
		},
		{
			state:   StatePatchingManifest,
			message: "Ajout du script format dans package.json... 📦",
			enabled: true,
			run: func(context.Context) error {
				return manifest.PatchFile(filepath.Join(projectDir, manifest.PackageFileName),
					manifest.FormatScriptName, manifest.FormatScriptCommand)
			},
		},
		{
			state:   StateInstallingDependency,
			message: fmt.Sprintf("Installation de %s... 🔌", scaffold.DisplayName(dependency)),
			enabled: cfg.InstallExtraDependency,
			run: func(ctx context.Context) error {
				pm, err := m.install(ctx, projectDir, dependency)
				res.PackageManager = pm
				return err
			},
		},
		{
			state:   StateWritingReadme,
			message: "Génération du README.md... 📄",
			enabled: !m.Options.SkipReadme,
			run: func(context.Context) error {
				if res.PackageManager == "" {
					res.PackageManager = detectOrDefault(projectDir)
				}
				readme, err := writeReadme(projectDir, cfg, dependency, res.PackageManager)
				res.Readme = readme
				return err
			},
		},
	}

	for _, s := range steps {
		if !s.enabled {
			m.Reporter.Debugf("skipping %s", s.state)
			continue
		}
		if err := ctx.Err(); err != nil {
			return m.fail(res, transition, s.state, err, existedBefore)
		}

		transition(s.state)
		m.Reporter.Step("%s", s.message)
		if err := s.run(ctx); err != nil {
			return m.fail(res, transition, s.state, err, existedBefore)
		}
	}

	if res.PackageManager == "" {
		res.PackageManager = detectOrDefault(projectDir)
	}
	transition(StateSucceeded)
	return res, nil
}

// fail moves the run to Failed and applies the cleanup policy.
func (m *Materializer) fail(res *Result, transition func(State), state State, err error, existedBefore bool) (*Result, error) {
	transition(StateFailed)
	m.Reporter.Failure("Échec à l'étape %s : %v", state, err)

	if m.Options.CleanupOnFailure && !existedBefore && fsutil.DirExists(res.ProjectDir) {
		if rmErr := os.RemoveAll(res.ProjectDir); rmErr != nil {
			m.Reporter.Warn("Impossible de supprimer %s : %v", res.ProjectDir, rmErr)
		} else {
			res.CleanedUp = true
			m.Reporter.Warn("Dossier partiel %s supprimé", res.ProjectDir)
		}
	}
	return res, &StepError{State: state, Err: err}
}

func (m *Materializer) generate(ctx context.Context, name string) error {
	cmd := runner.Command{Name: "npx", Args: GeneratorArgs(name), Dir: m.Options.WorkDir}
	m.Reporter.Debugf("running %s", cmd)
	if err := m.Runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("generating project: %w", err)
	}
	return nil
}

func (m *Materializer) install(ctx context.Context, projectDir, dependency string) (pkgmanager.Manager, error) {
	pm, err := pkgmanager.Detect(projectDir)
	if err != nil {
		return "", err
	}
	argv := pm.AddCommand(dependency)
	cmd := runner.Command{Name: argv[0], Args: argv[1:], Dir: projectDir}
	m.Reporter.Debugf("running %s", cmd)
	if err := m.Runner.Run(ctx, cmd); err != nil {
		return pm, fmt.Errorf("installing %s: %w", dependency, err)
	}
	return pm, nil
}

func writeFormatterConfig(projectDir string) error {
	data, err := manifest.MarshalPrettierConfig()
	if err != nil {
		return err
	}
	path := filepath.Join(projectDir, manifest.PrettierFileName)
	if err := fsutil.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("writing formatter config: %w", err)
	}
	return nil
}

func writeReadme(projectDir string, cfg *project.Config, dependency string, pm pkgmanager.Manager) ([]byte, error) {
	data, err := scaffold.RenderReadme(scaffold.NewReadmeData(cfg, dependency, pm))
	if err != nil {
		return nil, err
	}
	path := filepath.Join(projectDir, scaffold.ReadmeFileName)
	if err := fsutil.WriteFileAtomic(path, data, 0644); err != nil {
		return nil, fmt.Errorf("writing README: %w", err)
	}
	return data, nil
}

func detectOrDefault(projectDir string) pkgmanager.Manager {
	pm, err := pkgmanager.Detect(projectDir)
	if err != nil {
		return pkgmanager.NPM
	}
	return pm
}

// IsStepError reports whether err came from a pipeline step and returns it.
func IsStepError(err error) (*StepError, bool) {
	var se *StepError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
