// Package doctor runs readiness diagnostics for config, audio, speech, and
// the device's GPIO wiring.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rbright/suno/internal/asr"
	"github.com/rbright/suno/internal/audio"
	"github.com/rbright/suno/internal/config"
	"github.com/rbright/suno/internal/locale"
)

// Check is one diagnostic outcome.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

func pass(name, format string, args ...any) Check {
	return Check{Name: name, Pass: true, Message: fmt.Sprintf(format, args...)}
}

func fail(name, format string, args ...any) Check {
	return Check{Name: name, Message: fmt.Sprintf(format, args...)}
}

// Report is what `suno doctor` prints, one line per check.
type Report struct {
	Checks []Check
}

func (r Report) OK() bool {
	return !slices.ContainsFunc(r.Checks, func(c Check) bool { return !c.Pass })
}

func (r Report) String() string {
	lines := make([]string, len(r.Checks))
	for i, c := range r.Checks {
		status := "FAIL"
		if c.Pass {
			status = "OK"
		}
		lines[i] = fmt.Sprintf("[%s] %s: %s", status, c.Name, c.Message)
	}
	return strings.Join(lines, "\n")
}

// Run checks everything `suno run` will open, in the same order. Hardware
// checks are skipped for disabled peripherals.
func Run(loaded config.Loaded) Report {
	cfg := loaded.Config
	speechArgv := cfg.Speech.Command.ExpandedArgv()

	probes := []func() Check{
		func() Check { return checkConfig(loaded) },
		func() Check { return checkLocale(cfg.Assistant.Locale) },
		func() Check {
			return checkEnv("XDG_RUNTIME_DIR", func(v string) bool {
				return strings.TrimSpace(v) != "" || strings.TrimSpace(os.Getenv("PULSE_SERVER")) != ""
			}, "pulse runtime directory available", "XDG_RUNTIME_DIR and PULSE_SERVER are both empty")
		},
		func() Check { return checkCommand(speechArgv, "speech.command") },
	}
	if voice := flagValue(speechArgv, "--model", "-m"); voice != "" {
		probes = append(probes, func() Check { return checkPath("speech.voice", voice, false) })
	}
	if len(cfg.Speech.Play.Argv) > 0 {
		probes = append(probes, func() Check { return checkCommand(cfg.Speech.Play.ExpandedArgv(), "speech.play_command") })
	}
	probes = append(probes,
		func() Check { return checkRecognizer(cfg.Recognizer) },
		func() Check { return checkAudioSelection(cfg) },
	)
	if cfg.Light.Enable {
		probes = append(probes, func() Check { return checkGPIOChip("light.chip", cfg.Light.Chip) })
	}
	if cfg.RTC.Backend == config.RTCDS1302 {
		probes = append(probes, func() Check { return checkGPIOChip("rtc.chip", cfg.RTC.Chip) })
	}
	probes = append(probes, func() Check { return checkProfile(cfg.Profile) })

	report := Report{Checks: make([]Check, 0, len(probes))}
	for _, probe := range probes {
		report.Checks = append(report.Checks, probe())
	}
	return report
}

func checkConfig(loaded config.Loaded) Check {
	if !loaded.Exists {
		return pass("config", "%q not found; using defaults", loaded.Path)
	}
	return pass("config", "loaded %q (%s)", loaded.Path, loaded.Format())
}

func checkEnv(name string, ok func(string) bool, okMsg, failMsg string) Check {
	if ok(os.Getenv(name)) {
		return pass(name, "%s", okMsg)
	}
	return fail(name, "%s", failMsg)
}

// checkCommand looks up argv[0]. The check is named after the binary.
func checkCommand(argv []string, key string) Check {
	if len(argv) == 0 {
		return fail(key, "command is empty")
	}
	return lookBinary(argv[0], key+" command is available")
}

func lookBinary(bin string, note string) Check {
	path, err := exec.LookPath(bin)
	if err != nil {
		return fail(bin, "binary not found in PATH: %s", bin)
	}
	return pass(bin, "found at %s (%s)", path, note)
}

func checkPath(name, path string, wantDir bool) Check {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return fail(name, "%s: %v", path, err)
	case wantDir && !info.IsDir():
		return fail(name, "%s is not a directory", path)
	case !wantDir && info.IsDir():
		return fail(name, "%s is not a file", path)
	}
	return pass(name, "found %s", path)
}

// checkRecognizer needs a binary built with -tags vosk and an unpacked model.
func checkRecognizer(cfg config.RecognizerConfig) Check {
	if !asr.Available {
		return fail("recognizer", "%v", asr.ErrUnavailable)
	}
	check := checkPath("recognizer", config.ExpandUserPath(cfg.ModelPath), true)
	if check.Pass {
		check.Message += fmt.Sprintf(" at %d Hz", cfg.SampleRate)
	}
	return check
}

func checkLocale(code string) Check {
	pack, err := locale.Lookup(code)
	if err != nil {
		return fail("assistant.locale", "%v", err)
	}
	return pass("assistant.locale", "%s with wake words %s", pack.Code, strings.Join(pack.WakeWords, ", "))
}

// checkAudioSelection runs the same selection `suno run` would.
func checkAudioSelection(cfg config.Config) Check {
	selection, err := audio.SelectDevice(context.Background(), cfg.Audio.Input, cfg.Audio.Fallback)
	if err != nil {
		return fail("audio.device", "%v", err)
	}
	if selection.Warning != "" {
		return pass("audio.device", "selected %s (%s)", selection.Device.Label(), selection.Warning)
	}
	return pass("audio.device", "selected %s", selection.Device.Label())
}

// checkGPIOChip accepts a chip name under /dev or an absolute path.
func checkGPIOChip(name, chip string) Check {
	path := chip
	if !filepath.IsAbs(path) {
		path = filepath.Join("/dev", chip)
	}
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return fail(name, "%s: %v", path, err)
	case info.Mode()&os.ModeCharDevice == 0:
		return fail(name, "%s is not a character device", path)
	}
	return pass(name, "found %s", path)
}

// checkProfile creates the profile directory and writes a throwaway file
// into it.
func checkProfile(cfg config.ProfileConfig) Check {
	name := "profile." + cfg.Backend
	path, err := cfg.ResolvedPath()
	if err != nil {
		return fail(name, "%v", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fail(name, "create %s: %v", dir, err)
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fail(name, "%s is not writable: %v", dir, err)
	}
	_ = probe.Close()
	_ = os.Remove(probe.Name())
	return pass(name, "writable %s", path)
}

// flagValue returns the argument after the first of names found in argv.
func flagValue(argv []string, names ...string) string {
	for i, arg := range argv[:max(len(argv)-1, 0)] {
		if slices.Contains(names, arg) {
			return argv[i+1]
		}
	}
	return ""
}
