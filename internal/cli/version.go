package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/kevin-labs/create-kevin-app/internal/branding"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

// buildInfo is what `version` reports about this binary.
type buildInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Generator string `json:"generator"`
	Platform  string `json:"platform"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Name:      branding.CLIName(),
		Version:   buildVersion,
		Commit:    buildCommit,
		Date:      buildDate,
		Generator: branding.GeneratorPackage(),
		Platform:  fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}
}

func (b buildInfo) write(w io.Writer, short, asJSON bool) error {
	switch {
	case short:
		_, err := fmt.Fprintln(w, b.Version)
		return err
	case asJSON:
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling version info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s (commit %s, built %s)\ngenerator: %s\nplatform:  %s\n",
		b.Name, b.Version, b.Commit, b.Date, b.Generator, b.Platform)
	return err
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return currentBuild().write(cmd.OutOrStdout(), versionShort, versionJSON)
	},
}
