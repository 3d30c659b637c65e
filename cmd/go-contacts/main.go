package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
	"github.com/tartampluch/go-contacts/internal/ui"
	"gopkg.in/natefinch/lumberjack.v2"
)

// main is the application entry point.
// It delegates execution to runMain so that deferred calls (closing the log
// file, releasing the signal context) run before the process terminates.
func main() {
	os.Exit(runMain())
}

// runMain wires signal handling around the root command and maps its
// outcome to an exit code.
func runMain() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return executeRoot(ctx, newRootCmd(os.Stdin, os.Stdout))
}

// executeRoot runs cmd and maps its outcome to an exit code. Failures are
// always printed on the command's error stream, whatever the log sinks are.
func executeRoot(ctx context.Context, cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), config.MsgErrorOutput, config.ErrAppFailed, err)
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

// options collects the raw command-line flags.
type options struct {
	showVersion bool
	debug       bool
	language    string
	configPath  string
	today       string
}

// newRootCmd builds the CLI. Input and output are injected so the command
// can be driven from tests.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           config.CommandName,
		Short:         config.CmdShort,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.showVersion {
				printVersion(out)
				return nil
			}
			settings, err := resolveSettings(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), settings, opts.today, in, out)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.showVersion, config.FlagVersion, false, config.FlagDescVersion)
	flags.BoolVar(&opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	flags.StringVar(&opts.language, config.FlagLanguage, config.DefaultLanguage, config.FlagDescLanguage)
	flags.StringVar(&opts.configPath, config.FlagConfig, "", config.FlagDescConfig)
	flags.StringVar(&opts.today, config.FlagToday, "", config.FlagDescToday)

	cmd.AddCommand(&cobra.Command{
		Use:   config.FlagVersion,
		Short: config.CmdVersionShort,
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			printVersion(out)
		},
	})

	return cmd
}

// resolveSettings loads the settings file and applies the flags that were
// set explicitly on the command line.
func resolveSettings(cmd *cobra.Command, opts *options) (config.Settings, error) {
	settings, err := config.LoadSettings(opts.configPath)
	if err != nil {
		return settings, err
	}

	flags := cmd.Flags()
	if flags.Changed(config.FlagDebug) {
		settings.Debug = opts.debug
	}
	if flags.Changed(config.FlagLanguage) {
		settings.Language = opts.language
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("%s: %w", config.ErrConfigInvalid, err)
	}
	return settings, nil
}

// run sets up logging, wires the engine into the console and blocks until
// the session ends.
func run(ctx context.Context, settings config.Settings, today string, in io.Reader, out io.Writer) error {
	logCloser := setupLogging(settings.LogFile, settings.Debug)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	logStartupInfo()
	slog.Debug(config.MsgSettingsLoaded,
		config.LogKeyComponent, config.CompConfig,
		config.LogKeyLang, settings.Language,
	)

	clock, err := parseClock(today)
	if err != nil {
		return err
	}

	gen := &engine.Generator{
		Clock:           clock,
		ReminderTrigger: settings.ReminderTrigger(),
	}
	app := ui.NewContactsApp(in, out, gen, settings.Language)

	if err := app.Run(ctx); err != nil {
		return err
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return nil
}

// parseClock returns the real clock, or a fixed one when --today is given.
func parseClock(today string) (engine.Clock, error) {
	if today == "" {
		return engine.RealClock{}, nil
	}
	b, err := engine.ParseBirthday(today)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrTodayFlag, err)
	}
	return engine.FixedClock{Time: b.Time()}, nil
}

// printVersion outputs the build information.
func printVersion(out io.Writer) {
	fmt.Fprintf(out, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
// Stdout carries the conversation, so logs go to a rotating file and, in
// debug mode only, to stderr as well.
func setupLogging(logPath string, debugMode bool) io.Closer {
	var writers []io.Writer
	var closer io.Closer

	if debugMode {
		writers = append(writers, os.Stderr)
	}

	if logPath == "" {
		p, err := getLogFilePath()
		if err != nil {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrCacheDir, err)
		}
		logPath = p
	}
	if logPath != "" {
		lj := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    config.LogMaxSizeMB,
			MaxBackups: config.LogMaxBackups,
			MaxAge:     config.LogMaxAgeDays,
		}
		writers = append(writers, lj)
		closer = lj
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	return closer
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
