package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// execute runs the root command with args against a scripted input.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// writeSettings stores a YAML settings file that keeps logs inside the test dir.
func writeSettings(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	body += "\nlog_file: " + filepath.Join(dir, "app.log") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"--version"}} {
		out, err := execute(t, "", args...)
		require.NoError(t, err)
		assert.Contains(t, out, config.AppName)
		assert.Contains(t, out, config.Version)
	}
}

func TestParseClock(t *testing.T) {
	clock, err := parseClock("")
	require.NoError(t, err)
	assert.IsType(t, engine.RealClock{}, clock)

	clock, err = parseClock("10.06.2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), clock.Now())

	_, err = parseClock("2024-06-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrTodayFlag)
}

func TestSession(t *testing.T) {
	cfg := writeSettings(t, "language: en")
	input := "add John 0123456789\nadd birthday John 15.06.1990\nbirthdays\nexit\n"

	out, err := execute(t, input, "--config", cfg, "--today", "10.06.2024")
	require.NoError(t, err)

	assert.Contains(t, out, "Welcome to the assistant bot!")
	assert.Contains(t, out, "John birthday is on 17.06.2024.")
	assert.True(t, strings.HasSuffix(out, "Good bye!\n"))
}

func TestLanguageFlagOverridesSettings(t *testing.T) {
	cfg := writeSettings(t, "language: en")

	out, err := execute(t, "hello\n", "--config", cfg, "--lang", "fr")
	require.NoError(t, err)
	assert.Contains(t, out, "Comment puis-je vous aider ?")
}

func TestInvalidInvocations(t *testing.T) {
	cfg := writeSettings(t, "language: en")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Unsupported language", []string{"--config", cfg, "--lang", "de"}, config.ErrLanguage},
		{"Bad today", []string{"--config", cfg, "--today", "tomorrow"}, config.ErrTodayFlag},
		{"Missing settings file", []string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}, config.ErrConfigRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExecuteRoot_ReportsFailureOnStderr(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := writeSettings(t, "language: en")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"After logging setup", []string{"--config", cfg, "--today", "tomorrow"}, config.ErrTodayFlag},
		{"Before logging setup", []string{"--config", cfg, "--lang", "de"}, config.ErrLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			cmd := newRootCmd(strings.NewReader(""), &out)
			cmd.SetArgs(tt.args)
			cmd.SetErr(&errOut)

			code := executeRoot(context.Background(), cmd)

			assert.Equal(t, config.ExitCodeError, code)
			assert.Contains(t, errOut.String(), config.ErrAppFailed)
			assert.Contains(t, errOut.String(), tt.want)
			assert.NotContains(t, out.String(), tt.want, "Stdout carries the conversation only")
		})
	}
}

func TestExecuteRoot_Success(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &out)
	cmd.SetArgs([]string{"version"})
	cmd.SetErr(&errOut)

	assert.Equal(t, config.ExitCodeSuccess, executeRoot(context.Background(), cmd))
	assert.Empty(t, errOut.String())
}
