package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kevin-labs/create-kevin-app/internal/config"
	"github.com/kevin-labs/create-kevin-app/internal/toolchain"
)

// Replaced in tests.
var doctorProbe = toolchain.DefaultProbe

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that node, npx and npm are ready",
	Long:  `Run diagnostic checks on the Node.js toolchain the project generator needs.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Runtime check:")
		checks := toolchain.Run(cmd.Context(), doctorProbe())
		for _, c := range checks {
			printCheck(out, c)
		}

		fmt.Fprintln(out, "Config check:")
		if _, err := config.Current(); err != nil {
			fmt.Fprintf(out, "  [WARN] %v\n", err)
		} else {
			fmt.Fprintf(out, "  [ OK ] %s\n", config.FilePath())
		}

		if !toolchain.OK(checks) {
			return fmt.Errorf("toolchain check failed")
		}
		return nil
	},
}

func printCheck(w io.Writer, c toolchain.Check) {
	tag := "[ OK ]"
	switch c.Status {
	case toolchain.StatusMissing:
		tag = "[MISS]"
	case toolchain.StatusWarn:
		tag = "[WARN]"
	}
	if c.Detail != "" {
		fmt.Fprintf(w, "  %s %s: %s\n", tag, c.Name, c.Detail)
		return
	}
	line := fmt.Sprintf("  %s %s found at %s", tag, c.Name, c.Path)
	if c.Version != "" {
		line += " (" + c.Version + ")"
	}
	fmt.Fprintln(w, line)
}
