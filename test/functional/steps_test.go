package functional

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// aCleanLauncherEnvironment is a no-op because the Before hook already sets
// up the environment. This step exists so feature files read naturally.
func aCleanLauncherEnvironment(ctx context.Context) (context.Context, error) {
	return ctx, nil
}

// theInstallationDirectoryIsSet points the launcher at a directory inside
// the scenario home.
func theInstallationDirectoryIsSet(ctx context.Context) (context.Context, error) {
	state := getState(ctx)
	installDir := filepath.Join(state.homeDir, "install")
	return iRun(ctx, "lantern config install-dir "+installDir)
}

// aDownloadedVersion fakes a downloaded version by creating its directory.
func aDownloadedVersion(ctx context.Context, version, folder string) (context.Context, error) {
	state := getState(ctx)
	dir := filepath.Join(state.homeDir, "install", "versions", folder, version)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ctx, err
	}
	return ctx, nil
}

// iRun executes a command string, replacing "lantern" with the test binary path.
func iRun(ctx context.Context, command string) (context.Context, error) {
	state := getState(ctx)
	if state == nil {
		return ctx, fmt.Errorf("no test state; is the Before hook running?")
	}

	args := strings.Fields(command)
	if len(args) > 0 && args[0] == "lantern" {
		args[0] = state.binPath
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = filepath.Dir(state.binPath)
	cmd.Env = append(os.Environ(), "LANTERN_HOME="+state.homeDir)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	state.stdout = stdout.String()
	state.stderr = stderr.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			state.exitCode = exitErr.ExitCode()
		} else {
			return ctx, fmt.Errorf("command execution failed: %w", err)
		}
	} else {
		state.exitCode = 0
	}

	return ctx, nil
}

func theExitCodeIs(ctx context.Context, expected int) error {
	state := getState(ctx)
	if state.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nstdout: %s\nstderr: %s",
			expected, state.exitCode, state.stdout, state.stderr)
	}
	return nil
}

func theExitCodeIsNot(ctx context.Context, notExpected int) error {
	state := getState(ctx)
	if state.exitCode == notExpected {
		return fmt.Errorf("expected exit code to not be %d\nstdout: %s\nstderr: %s",
			notExpected, state.stdout, state.stderr)
	}
	return nil
}

func theOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	if !strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theOutputDoesNotContain(ctx context.Context, text string) error {
	state := getState(ctx)
	if strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout not to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theErrorOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	if !strings.Contains(state.stderr, text) {
		return fmt.Errorf("expected stderr to contain %q, got:\n%s", text, state.stderr)
	}
	return nil
}

func theSettingsFileExists(ctx context.Context) error {
	state := getState(ctx)
	path := filepath.Join(state.homeDir, "settings.json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("expected settings file %q to exist", path)
	}
	return nil
}

func theVersionDirectoryDoesNotExist(ctx context.Context, version, folder string) error {
	state := getState(ctx)
	dir := filepath.Join(state.homeDir, "install", "versions", folder, version)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("expected version directory %q not to exist", dir)
	}
	return nil
}
