// Package cli parses suno's command line.
package cli

import (
	"errors"
	"fmt"
	"strings"
)

type Command string

const (
	CommandRun      Command = "run"
	CommandStatus   Command = "status"
	CommandSleep    Command = "sleep"
	CommandDevices  Command = "devices"
	CommandDoctor   Command = "doctor"
	CommandClock    Command = "clock"
	CommandClockSet Command = "clock-set"
	CommandVersion  Command = "version"
	CommandHelp     Command = "help"
)

// commands is ordered as printed in the help text.
var commands = []struct {
	name    Command
	summary string
}{
	{CommandRun, "Listen for the wake word and hold conversations until interrupted"},
	{CommandStatus, "Print the running assistant's state"},
	{CommandSleep, "Ask the running assistant to go to sleep"},
	{CommandDevices, "List available input devices"},
	{CommandDoctor, "Run configuration and environment checks"},
	{CommandClock, "Print the hardware clock reading"},
	{CommandClockSet, "Write the system time to the hardware clock"},
	{CommandVersion, "Print version information"},
	{CommandHelp, "Show this help"},
}

func lookupCommand(name string) (Command, bool) {
	for _, c := range commands {
		if string(c.name) == name {
			return c.name, true
		}
	}
	return "", false
}

type Parsed struct {
	Command    Command
	ConfigPath string
	Locale     string
	ShowHelp   bool
}

// Parse reads global flags followed by at most one trailing command.
// With no command the result asks for help.
func Parse(args []string) (Parsed, error) {
	parsed := Parsed{Command: CommandHelp, ShowHelp: true}

	// value consumes the argument following a flag.
	value := func(i int) (string, bool) {
		if i+1 >= len(args) || strings.TrimSpace(args[i+1]) == "" {
			return "", false
		}
		return args[i+1], true
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			parsed.Command, parsed.ShowHelp = CommandHelp, true
		case arg == "--version":
			parsed.Command, parsed.ShowHelp = CommandVersion, false
		case arg == "--config":
			path, ok := value(i)
			if !ok {
				return Parsed{}, errors.New("--config requires a path")
			}
			parsed.ConfigPath = path
			i++
		case arg == "--locale":
			code, ok := value(i)
			if !ok {
				return Parsed{}, errors.New("--locale requires a language code")
			}
			parsed.Locale = strings.ToLower(strings.TrimSpace(code))
			i++
		case strings.HasPrefix(arg, "-"):
			return Parsed{}, fmt.Errorf("unknown flag: %s", arg)
		default:
			cmd, ok := lookupCommand(arg)
			if !ok {
				return Parsed{}, fmt.Errorf("unknown command: %s", arg)
			}
			if rest := args[i+1:]; len(rest) > 0 {
				return Parsed{}, fmt.Errorf("unexpected arguments after command %q: %s", arg, strings.Join(rest, " "))
			}
			parsed.Command, parsed.ShowHelp = cmd, cmd == CommandHelp
		}
	}

	return parsed, nil
}

func HelpText(binaryName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage:\n  %s [--config PATH] [--locale CODE] <command>\n\nCommands:\n", binaryName)
	for _, c := range commands {
		fmt.Fprintf(&b, "  %-11s %s\n", c.name, c.summary)
	}
	b.WriteString(`
Flags:
  --config PATH   Config file path (default: $XDG_CONFIG_HOME/suno/config.jsonc)
  --locale CODE   Override assistant.locale (hi, en)
  -h, --help      Show help
  --version       Show version
`)
	return b.String()
}
