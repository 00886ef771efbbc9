package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kevin-labs/create-kevin-app/internal/branding"
	"github.com/kevin-labs/create-kevin-app/internal/config"
	"github.com/kevin-labs/create-kevin-app/internal/materialize"
	"github.com/kevin-labs/create-kevin-app/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagPreview  bool
	flagCleanup  bool
	flagNoBanner bool
	flagVerbose  bool
)

func init() {
	rootCmd.Flags().BoolVar(&flagPreview, "preview", false, "Render the generated README in the terminal")
	rootCmd.Flags().BoolVar(&flagCleanup, "cleanup-on-failure", false, "Remove the project directory if creation fails")
	rootCmd.Flags().BoolVar(&flagNoBanner, "no-banner", false, "Do not print the banner")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the commands being run")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` asks for a project name, a default theme and whether to add
an HTTP client, then generates a Next.js app (App Router, TypeScript, Tailwind,
ESLint) with a Prettier config, a format script and a README.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runCreate,
}

// loadConfig reads the config file and lets explicitly set flags override it.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.Load(); err != nil {
		return err
	}

	bindings := map[string]string{
		config.KeyPreviewReadme:    "preview",
		config.KeyCleanupOnFailure: "cleanup-on-failure",
		config.KeyVerbose:          "verbose",
	}
	for key, name := range bindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	if flagNoBanner {
		viper.Set(config.KeyBanner, false)
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags. Any
// error not already reported by the pipeline is printed once.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		if _, reported := materialize.IsStepError(err); !reported {
			ui.NewReporter(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).Failure("%v", err)
		}
	}
	return err
}
