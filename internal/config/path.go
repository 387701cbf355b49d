package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	jsoncName = "config.jsonc"
	yamlName  = "config.yaml"
	envName   = "suno.env"
)

// ResolvePath returns explicit when set, else the first of config.jsonc
// and config.yaml present in the config dir, else the config.jsonc path.
func ResolvePath(explicit string) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		return explicit, nil
	}

	dir, err := configDir()
	if err != nil {
		return "", err
	}

	for _, name := range []string{jsoncName, yamlName} {
		if candidate := filepath.Join(dir, name); fileExists(candidate) {
			return candidate, nil
		}
	}
	return filepath.Join(dir, jsoncName), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnvPath is the optional dotenv file next to the config file.
func EnvPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), envName)
}

func configDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns $XDG_STATE_HOME/suno, or ~/.local/state/suno.
func StateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// xdgDir joins "suno" onto the XDG base dir named by env, falling back to
// homeRel under the user's home.
func xdgDir(env string, homeRel string) (string, error) {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return filepath.Join(base, "suno"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory for %s fallback: %w", env, err)
	}
	return filepath.Join(home, homeRel, "suno"), nil
}

// ExpandUserPath expands a leading ~ to the user's home directory.
func ExpandUserPath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if raw != "~" && !strings.HasPrefix(raw, "~/") {
		return raw
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return raw
	}
	if raw == "~" {
		return home
	}
	return filepath.Join(home, strings.TrimPrefix(raw, "~/"))
}

// ExpandedArgv returns Argv with ~ expanded in every element.
func (c CommandConfig) ExpandedArgv() []string {
	if len(c.Argv) == 0 {
		return nil
	}
	out := make([]string, len(c.Argv))
	for i, arg := range c.Argv {
		out[i] = ExpandUserPath(arg)
	}
	return out
}

// ResolvedPath returns the profile file, defaulting by backend under the
// state directory.
func (p ProfileConfig) ResolvedPath() (string, error) {
	if path := ExpandUserPath(p.Path); path != "" {
		return path, nil
	}
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	if p.Backend == ProfileSQLite {
		return filepath.Join(dir, "profile.db"), nil
	}
	return filepath.Join(dir, "user_data.json"), nil
}
