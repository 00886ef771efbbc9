package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kevin-labs/create-kevin-app/internal/branding"
	"github.com/kevin-labs/create-kevin-app/internal/config"
	"github.com/kevin-labs/create-kevin-app/internal/materialize"
	"github.com/kevin-labs/create-kevin-app/internal/prompt"
	"github.com/kevin-labs/create-kevin-app/internal/runner"
	"github.com/kevin-labs/create-kevin-app/internal/scaffold"
	"github.com/kevin-labs/create-kevin-app/internal/ui"
)

// Replaced in tests.
var (
	newPrompter = func(cmd *cobra.Command) prompt.Prompter {
		return prompt.New(os.Stdin, os.Stdout)
	}
	newRunner = func(cmd *cobra.Command) runner.Runner {
		return &runner.ExecRunner{}
	}
)

func runCreate(cmd *cobra.Command, args []string) error {
	settings, err := config.Current()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rep := ui.NewReporter(out, cmd.ErrOrStderr())
	rep.Verbose = settings.Verbose

	if settings.Banner {
		ui.Banner(out, branding.DisplayName(), branding.Description())
	}

	cfg, err := prompt.Ask(newPrompter(cmd), prompt.Defaults{
		Name:            settings.DefaultName,
		Theme:           settings.DefaultTheme,
		SkipExtra:       !settings.InstallExtra,
		DependencyLabel: scaffold.DisplayName(settings.ExtraDependency),
	})
	if err != nil {
		return err
	}

	m := materialize.New(newRunner(cmd), rep, materialize.Options{
		Dependency:       settings.ExtraDependency,
		SkipReadme:       !settings.WriteReadme,
		CleanupOnFailure: settings.CleanupOnFailure,
	})
	m.OnTransition = func(from, to materialize.State) {
		rep.Debugf("%s -> %s", from, to)
	}

	res, err := m.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	rep.Success("Projet créé avec succès !")
	rep.Hint("\n📁 cd %s", cfg.Name)
	rep.Hint("🚀 %s", strings.Join(res.PackageManager.RunScript("dev"), " "))
	rep.Info("\n✨ Amuse-toi bien avec ton projet Next.js stylé 😎")

	if settings.PreviewReadme && res.Readme != nil {
		rep.Info("")
		if err := ui.PreviewMarkdown(out, res.Readme, string(cfg.Theme)); err != nil {
			rep.Warn("%v", err)
		}
	}
	return nil
}
