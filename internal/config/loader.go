package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config file checked by Load.
const LocalConfigPath = "configs/flappy.yaml"

// Load resolves the Environment for this run.
// Search order: customPath -> ~/.flappy/config.yaml -> ./configs/flappy.yaml -> embedded default.
// A custom path must exist and parse; the implicit locations are skipped
// when missing or broken. The result is always validated.
func Load(customPath string) (Environment, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Environment{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		env, err := Parse(data)
		if err != nil {
			return Environment{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return env, nil
	}

	for _, path := range []string{userConfigPath(), LocalConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if env, err := Parse(data); err == nil {
			return env, nil
		}
	}

	env, err := Parse(defaultYAML)
	if err != nil {
		env = DefaultEnvironment()
		if err := env.Validate(); err != nil {
			return Environment{}, err
		}
	}
	return env, nil
}

// Parse decodes YAML on top of DefaultEnvironment and validates the result.
// Fields missing from data keep their default value.
func Parse(data []byte) (Environment, error) {
	env := DefaultEnvironment()
	if err := yaml.Unmarshal(data, &env); err != nil {
		return Environment{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := env.Validate(); err != nil {
		return Environment{}, err
	}
	return env, nil
}

// Marshal encodes the Environment as YAML.
func Marshal(env Environment) ([]byte, error) {
	data, err := yaml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "config.yaml")
}
