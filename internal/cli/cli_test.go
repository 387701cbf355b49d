package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaultsToHelp(t *testing.T) {
	parsed, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Parsed{Command: CommandHelp, ShowHelp: true}, parsed)
}

func TestParseAcceptsEveryCommand(t *testing.T) {
	for _, c := range commands {
		t.Run(string(c.name), func(t *testing.T) {
			parsed, err := Parse([]string{string(c.name)})
			require.NoError(t, err)
			require.Equal(t, c.name, parsed.Command)
			require.Equal(t, c.name == CommandHelp, parsed.ShowHelp)
		})
	}
}

func TestParseGlobalFlags(t *testing.T) {
	tests := map[string]struct {
		args []string
		want Parsed
	}{
		"config before run": {
			args: []string{"--config", "/etc/suno/pi.jsonc", "run"},
			want: Parsed{Command: CommandRun, ConfigPath: "/etc/suno/pi.jsonc"},
		},
		"locale is normalized": {
			args: []string{"--locale", " EN ", "sleep"},
			want: Parsed{Command: CommandSleep, Locale: "en"},
		},
		"both flags with clock-set": {
			args: []string{"--locale", "hi", "--config", "cfg.yaml", "clock-set"},
			want: Parsed{Command: CommandClockSet, ConfigPath: "cfg.yaml", Locale: "hi"},
		},
		"version flag": {
			args: []string{"--version"},
			want: Parsed{Command: CommandVersion},
		},
		"short help wins over earlier command-less flags": {
			args: []string{"--config", "x.jsonc", "-h"},
			want: Parsed{Command: CommandHelp, ConfigPath: "x.jsonc", ShowHelp: true},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			parsed, err := Parse(tc.args)
			require.NoError(t, err)
			require.Equal(t, tc.want, parsed)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]struct {
		args    []string
		wantErr string
	}{
		"flag after command":  {[]string{"status", "--config", "/tmp/cfg"}, `unexpected arguments after command "status": --config /tmp/cfg`},
		"extra word":          {[]string{"doctor", "extra"}, "unexpected arguments"},
		"missing config path": {[]string{"--config"}, "--config requires a path"},
		"blank config path":   {[]string{"--config", "  ", "run"}, "--config requires a path"},
		"missing locale":      {[]string{"--locale"}, "requires a language code"},
		"unknown flag":        {[]string{"--bogus"}, "unknown flag: --bogus"},
		"unknown command":     {[]string{"wake"}, "unknown command: wake"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tc.args)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestHelpTextListsCommandsInOrder(t *testing.T) {
	text := HelpText("suno")
	require.True(t, strings.HasPrefix(text, "Usage:\n  suno [--config PATH] [--locale CODE] <command>"))
	require.Contains(t, text, "--locale CODE   Override assistant.locale")

	last := -1
	for _, c := range commands {
		idx := strings.Index(text, "  "+string(c.name)+" ")
		require.Greater(t, idx, last, "command %s out of order", c.name)
		last = idx
	}
}
