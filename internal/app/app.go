// Package app dispatches suno commands and assembles the assistant runtime.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/rbright/suno/internal/audio"
	"github.com/rbright/suno/internal/cli"
	"github.com/rbright/suno/internal/config"
	"github.com/rbright/suno/internal/doctor"
	"github.com/rbright/suno/internal/ipc"
	"github.com/rbright/suno/internal/locale"
	"github.com/rbright/suno/internal/logging"
	"github.com/rbright/suno/internal/version"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Runner holds the process streams. Logger overrides the JSONL file logger
// in tests.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return Runner{Stdout: stdout, Stderr: stderr}.Execute(ctx, args)
}

// fail prints an error line and returns code.
func (r Runner) fail(code int, format string, args ...any) int {
	fmt.Fprintf(r.Stderr, "error: "+format+"\n", args...)
	return code
}

// Execute runs one command and returns the process exit code.
func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	switch {
	case err != nil:
		fmt.Fprintf(r.Stderr, "error: %v\n\n%s", err, cli.HelpText("suno"))
		return exitUsage
	case parsed.ShowHelp:
		fmt.Fprint(r.Stdout, cli.HelpText("suno"))
		return exitOK
	case parsed.Command == cli.CommandVersion:
		fmt.Fprintln(r.Stdout, version.String())
		return exitOK
	}
	if parsed.Locale != "" {
		if _, err := locale.Lookup(parsed.Locale); err != nil {
			return r.fail(exitUsage, "%v", err)
		}
	}

	env, err := r.prepare(parsed)
	if err != nil {
		return r.fail(exitError, "%v", err)
	}
	defer env.close()

	switch parsed.Command {
	case cli.CommandRun:
		return r.commandRun(ctx, env.cfg.Config, env.logger)
	case cli.CommandDoctor:
		report := doctor.Run(env.cfg)
		fmt.Fprintln(r.Stdout, report.String())
		if !report.OK() {
			return exitError
		}
		return exitOK
	case cli.CommandDevices:
		return r.commandDevices(ctx)
	case cli.CommandStatus:
		return r.commandStatus(ctx)
	case cli.CommandSleep:
		return r.forwardOrFail(ctx, ipc.CommandSleep)
	case cli.CommandClock:
		return r.commandClock(env.cfg.Config.RTC)
	case cli.CommandClockSet:
		return r.commandClockSet(env.cfg.Config.RTC, env.logger)
	}
	return r.fail(exitUsage, "unsupported command %q", parsed.Command)
}

// environment is what every non-trivial command needs: the loaded config
// and an open logger.
type environment struct {
	cfg    config.Loaded
	logger *slog.Logger
	close  func()
}

// prepare resolves the config path, exports suno.env, opens the log and
// loads the config, in that order so the env file can steer logging.
func (r Runner) prepare(parsed cli.Parsed) (environment, error) {
	path, err := config.ResolvePath(parsed.ConfigPath)
	if err != nil {
		return environment{}, err
	}
	if err := loadEnvFile(config.EnvPath(path)); err != nil {
		return environment{}, err
	}

	var opts logging.Options
	if parsed.Command == cli.CommandRun {
		opts.Mirror = r.Stderr
	}
	logs, err := logging.New(opts)
	if err != nil {
		return environment{}, fmt.Errorf("setup logging: %w", err)
	}
	env := environment{logger: r.Logger, close: func() { _ = logs.Close() }}
	if env.logger == nil {
		env.logger = logs.Logger
	}

	env.cfg, err = config.Load(path)
	if err != nil {
		env.logger.Error("load config failed", "error", err.Error())
		env.close()
		return environment{}, err
	}
	if parsed.Locale != "" {
		env.cfg.Config.Assistant.Locale = parsed.Locale
	}
	for _, w := range env.cfg.Warnings {
		if w.Line > 0 {
			fmt.Fprintf(r.Stderr, "warning: line %d: %s\n", w.Line, w.Message)
		} else {
			fmt.Fprintf(r.Stderr, "warning: %s\n", w.Message)
		}
		env.logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}

	env.logger.Info("command start",
		"command", parsed.Command,
		"config", env.cfg.Path,
		"format", env.cfg.Format(),
		"locale", env.cfg.Config.Assistant.Locale,
		"log", logs.Path,
	)
	return env, nil
}

// loadEnvFile exports suno.env next to the config. Variables already in the
// environment win.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %q: %w", path, err)
}

func (r Runner) commandDevices(ctx context.Context) int {
	devices, err := audio.ListDevices(ctx)
	if err != nil {
		return r.fail(exitError, "%v", err)
	}
	if len(devices) == 0 {
		fmt.Fprintln(r.Stdout, "no audio devices found")
		return exitError
	}

	yesNo := map[bool]string{true: "yes", false: "no"}
	w := tabwriter.NewWriter(r.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tDESCRIPTION\tSTATE\tAVAILABLE\tMUTED")
	for _, d := range devices {
		mark := ""
		if d.Default {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", mark, d.ID, d.Description, d.State, yesNo[d.Available], yesNo[d.Muted])
	}
	if err := w.Flush(); err != nil {
		return r.fail(exitError, "write device list: %v", err)
	}
	return exitOK
}
