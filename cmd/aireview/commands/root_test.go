package commands

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/irahardianto/aireview/internal/engine/config"
)

func TestRootCommand_Help(t *testing.T) {
	output, err := executeRoot(t, "--help")
	if err != nil {
		t.Fatalf("root --help returned error: %v", err)
	}

	assertContains(t, output, "aireview")
	assertContains(t, output, "OPENAI_API_KEY")
	assertContains(t, output, "AI_REVIEW_MODEL")
}

func TestVersionCommand(t *testing.T) {
	output, err := executeRoot(t, "version")
	if err != nil {
		t.Fatalf("version command returned error: %v", err)
	}
	assertContains(t, output, "aireview dev")
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := map[string]bool{
		"install":   false,
		"uninstall": false,
		"version":   false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := expected[cmd.Use]; ok {
			expected[cmd.Use] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("expected subcommand %q to be registered, but it was not", name)
		}
	}
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"verbose", "log-json", "no-color"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected global flag --%s to be registered", name)
		}
	}
	if rootCmd.Flags().Lookup("sarif") == nil {
		t.Error("expected --sarif flag on the root command")
	}
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	if _, err := executeRoot(t, "review-everything"); err == nil {
		t.Fatal("expected error for unexpected argument")
	}
}

// executeRoot runs the root command with args and returns what it wrote to stdout.
// Flag values survive between Execute calls, so they are reset first.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
	}
	flagVerbose, flagLogJSON, flagNoColor, flagSARIF = false, false, false, ""

	stdout := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

// chdirTemp moves into a fresh directory with an isolated HOME for the test.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting cwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	t.Setenv("HOME", dir)
	t.Setenv("AI_REVIEW_PROVIDER", "")
	t.Setenv("AI_REVIEW_MODEL", "")
	return dir
}

func TestRootCommand_MissingAPIKey(t *testing.T) {
	chdirTemp(t)
	t.Setenv("OPENAI_API_KEY", "")

	stdout, err := executeRoot(t)
	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if stdout != "" {
		t.Errorf("expected nothing on stdout, got %q", stdout)
	}
}

// TestSmoke_NoStagedChanges runs the whole command in a fresh repository: it must
// exit cleanly without contacting the API.
func TestSmoke_NoStagedChanges(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := chdirTemp(t)
	run(t, dir, "git", "init")
	t.Setenv("OPENAI_API_KEY", "sk-never-used")
	t.Setenv("OPENAI_BASE_URL", "http://127.0.0.1:1/v1")

	stdout, err := executeRoot(t)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	assertContains(t, stdout, "No staged changes to review.")
}

// TestSmoke_DotEnvCredential checks that a .env file in the working directory supplies the key.
func TestSmoke_DotEnvCredential(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := chdirTemp(t)
	run(t, dir, "git", "init")
	t.Setenv("OPENAI_API_KEY", "")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENAI_API_KEY=sk-from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	stdout, err := executeRoot(t)
	if err != nil {
		t.Fatalf("expected .env credential to be accepted, got %v", err)
	}
	assertContains(t, stdout, "No staged changes to review.")
}

// TestSmoke_InstallAndUninstall verifies the hook lifecycle in a real git repo.
func TestSmoke_InstallAndUninstall(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := chdirTemp(t)
	run(t, dir, "git", "init")

	if _, err := executeRoot(t, "install"); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	hookPath := filepath.Join(dir, ".git", "hooks", "pre-commit")
	data, err := os.ReadFile(hookPath)
	if err != nil {
		t.Fatalf("expected hook to be installed: %v", err)
	}
	assertContains(t, string(data), "exec aireview")

	if _, err := executeRoot(t, "uninstall"); err != nil {
		t.Fatalf("uninstall failed: %v", err)
	}
	if _, err := os.Stat(hookPath); !os.IsNotExist(err) {
		t.Error("expected pre-commit hook to be removed after uninstall")
	}
}

// run executes a command in the given directory and fails the test on error.
func run(t *testing.T, dir, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s %s failed: %v\n%s", name, strings.Join(args, " "), err, out)
	}
}

func assertContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("expected output to contain %q, got:\n%s", substr, output)
	}
}
