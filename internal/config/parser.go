package config

import "strings"

// Parse overlays content onto base and validates the result. Content that
// opens with '{' or a // or /* comment is JSONC, anything else YAML. Blank
// content validates base unchanged.
func Parse(content string, base Config) (Config, []Warning, error) {
	cfg := base
	var warnings []Warning

	if trimmed := strings.TrimSpace(content); trimmed != "" {
		decode := decodeYAML
		if trimmed[0] == '{' || trimmed[0] == '/' {
			decode = decodeJSONC
		}
		payload, err := decode(content)
		if err != nil {
			return Config{}, nil, err
		}
		if warnings, err = payload.applyTo(&cfg); err != nil {
			return Config{}, nil, err
		}
	}

	more, err := Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, append(warnings, more...), nil
}
