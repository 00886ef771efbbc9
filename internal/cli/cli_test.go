package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kevin-labs/create-kevin-app/internal/materialize"
	"github.com/kevin-labs/create-kevin-app/internal/prompt"
	"github.com/kevin-labs/create-kevin-app/internal/runner"
	"github.com/kevin-labs/create-kevin-app/internal/toolchain"
)

// reset isolates HOME and the working directory and clears flag and Viper
// state left over from a previous execution.
func reset(t *testing.T) string {
	t.Helper()
	color.NoColor = true

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	work := t.TempDir()
	t.Chdir(work)

	viper.Reset()
	t.Cleanup(viper.Reset)

	flagPreview, flagCleanup, flagNoBanner, flagVerbose = false, false, false, false
	versionShort, versionJSON = false, false
	clearChanged := func(c *cobra.Command) {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		c.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
	clearChanged(rootCmd)
	for _, c := range rootCmd.Commands() {
		clearChanged(c)
	}
	return work
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// stubCreate replaces the prompter and runner used by the create flow.
func stubCreate(t *testing.T, answers string, r runner.Runner) {
	t.Helper()
	origPrompter, origRunner := newPrompter, newRunner
	newPrompter = func(*cobra.Command) prompt.Prompter {
		return prompt.NewLinePrompter(strings.NewReader(answers), io.Discard)
	}
	newRunner = func(*cobra.Command) runner.Runner { return r }
	t.Cleanup(func() {
		newPrompter, newRunner = origPrompter, origRunner
	})
}

type generatorStub struct {
	fail  error
	calls []runner.Command
}

func (g *generatorStub) Run(_ context.Context, c runner.Command) error {
	g.calls = append(g.calls, c)
	if c.Name != "npx" {
		return nil
	}
	dir := filepath.Join(c.Dir, c.Args[1])
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"demo","scripts":{"dev":"next dev"}}`), 0644); err != nil {
		return err
	}
	return g.fail
}

func TestVersion(t *testing.T) {
	reset(t)
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"

	t.Run("short", func(t *testing.T) {
		out, _, err := execute(t, "version", "--short")
		if err != nil {
			t.Fatalf("version --short: %v", err)
		}
		if out != "1.2.3\n" {
			t.Errorf("output = %q, want %q", out, "1.2.3\n")
		}
	})

	t.Run("json", func(t *testing.T) {
		versionShort = false
		out, _, err := execute(t, "version", "--json")
		if err != nil {
			t.Fatalf("version --json: %v", err)
		}
		var info map[string]string
		if err := json.Unmarshal([]byte(out), &info); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if info["commit"] != "abc123" {
			t.Errorf("commit = %q, want abc123", info["commit"])
		}
		if info["generator"] != "create-next-app@latest" {
			t.Errorf("generator = %q, want create-next-app@latest", info["generator"])
		}
		if !strings.Contains(info["platform"], runtime.GOOS) {
			t.Errorf("platform = %q, want it to name %s", info["platform"], runtime.GOOS)
		}
	})

	t.Run("plain", func(t *testing.T) {
		versionShort, versionJSON = false, false
		out, _, err := execute(t, "version")
		if err != nil {
			t.Fatalf("version: %v", err)
		}
		for _, want := range []string{"create-kevin-app 1.2.3 (commit abc123, built 2026-01-01)", "generator: create-next-app@latest"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("rejects arguments", func(t *testing.T) {
		versionShort, versionJSON = false, false
		if _, _, err := execute(t, "version", "extra"); err == nil {
			t.Error("version with an argument should fail")
		}
	})
}

func TestConfigCommands(t *testing.T) {
	reset(t)

	if _, _, err := execute(t, "config", "set", "default_theme", "sombre"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	out, _, err := execute(t, "config", "get", "default_theme")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(out) != "dark" {
		t.Errorf("config get default_theme = %q, want dark", out)
	}

	out, _, err = execute(t, "config", "list")
	if err != nil {
		t.Fatalf("config list: %v", err)
	}
	for _, want := range []string{"default_theme = dark", "extra_dependency = axios", "cleanup_on_failure = false", "(CKA_BANNER)"} {
		if !strings.Contains(out, want) {
			t.Errorf("config list missing %q:\n%s", want, out)
		}
	}

	if _, _, err := execute(t, "config", "get", "bogus"); err == nil {
		t.Error("config get bogus should fail")
	}
}

func TestDoctor(t *testing.T) {
	reset(t)
	orig := doctorProbe
	t.Cleanup(func() { doctorProbe = orig })

	doctorProbe = func() toolchain.Probe {
		return toolchain.Probe{
			LookPath: func(name string) (string, error) {
				if name == "npx" {
					return "", errors.New("not found")
				}
				return "/usr/bin/" + name, nil
			},
			Version: func(context.Context, string) (string, error) { return "v20.11.1", nil },
		}
	}

	out, _, err := execute(t, "doctor")
	if err == nil {
		t.Fatal("doctor should fail when npx is missing")
	}
	if !strings.Contains(out, "[ OK ] node found at /usr/bin/node (v20.11.1)") {
		t.Errorf("missing node line:\n%s", out)
	}
	if !strings.Contains(out, "[MISS] npx") {
		t.Errorf("missing npx line:\n%s", out)
	}
}

func TestCreate_Success(t *testing.T) {
	work := reset(t)
	gen := &generatorStub{}
	stubCreate(t, "demo\n2\no\n", gen)

	out, _, err := execute(t, "--no-banner")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(gen.calls) != 2 {
		t.Fatalf("got %d commands, want generator + install: %v", len(gen.calls), gen.calls)
	}
	if got := gen.calls[1].String(); got != "npm install axios" {
		t.Errorf("install command = %q, want %q", got, "npm install axios")
	}

	readme, err := os.ReadFile(filepath.Join(work, "demo", "README.md"))
	if err != nil {
		t.Fatalf("reading README: %v", err)
	}
	for _, want := range []string{"# demo", "sombre", "Axios"} {
		if !strings.Contains(string(readme), want) {
			t.Errorf("README missing %q", want)
		}
	}

	for _, want := range []string{"cd demo", "npm run dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing hint %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "╭") {
		t.Errorf("banner printed with --no-banner:\n%s", out)
	}
}

func TestCreate_FailureCleansUpWhenAsked(t *testing.T) {
	work := reset(t)
	gen := &generatorStub{fail: &runner.ExitError{Command: runner.Command{Name: "npx"}, Code: 1}}
	stubCreate(t, "demo\n1\nn\n", gen)

	_, errOut, err := execute(t, "--no-banner", "--cleanup-on-failure")
	if _, ok := materialize.IsStepError(err); !ok {
		t.Fatalf("error = %v, want a step error", err)
	}
	if _, statErr := os.Stat(filepath.Join(work, "demo")); !os.IsNotExist(statErr) {
		t.Error("project dir kept despite --cleanup-on-failure")
	}
	if strings.Count(errOut, "✖") != 1 {
		t.Errorf("failure should be reported once, got:\n%s", errOut)
	}
}

func TestExecute_ReportsErrorsOnce(t *testing.T) {
	reset(t)
	var out, errOut bytes.Buffer
	rootCmd.SetArgs([]string{"config", "set", "banner", "maybe"})
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	if err := Execute("dev", "none", "unknown"); err == nil {
		t.Fatal("Execute should fail for an invalid value")
	}
	if strings.Count(errOut.String(), "✖") != 1 {
		t.Errorf("error should be printed once, got:\n%s", errOut.String())
	}
}
