package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// GetPath returns the path of the configuration file. It uses
// $XDG_CONFIG_HOME, then ~/.config, then the temp directory.
func GetPath() string {
	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdg != "" {
		return filepath.Join(xdg, "aspect", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Join(home, ".config", "aspect", "config.yaml")
	}

	tmp := filepath.Join(os.TempDir(), "aspect", "config.yaml")

	slog.Warn("could not determine user config directory, using temp path",
		slog.String("path", tmp),
		slog.Any("error", err),
	)

	return tmp
}

// WriteDefaultConfig writes the default configuration to path, and the JSON
// schema next to it. An existing configuration is kept, unless force is set,
// in which case it is renamed to a backup first.
func WriteDefaultConfig(path string, force bool) error {
	exists, err := regularFileExists(path)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	if exists && force {
		backup := fmt.Sprintf("%s.%d.old", path, time.Now().UnixNano())
		slog.Info("back up existing config", slog.String("path", backup))

		err = os.Rename(path, backup)
		if err != nil {
			return fmt.Errorf("back up config: %w", err)
		}

		exists = false
	}

	if exists {
		slog.Debug("config exists, skip write", slog.String("path", path))
	} else {
		slog.Info("write default config", slog.String("path", path))

		err = os.WriteFile(path, defaultConfigYAML, 0o600)
		if err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}

	schemaPath := filepath.Join(filepath.Dir(path), SchemaFileName)
	slog.Debug("write schema", slog.String("path", schemaPath))

	err = os.WriteFile(schemaPath, schemaJSON, 0o600)
	if err != nil {
		return fmt.Errorf("write schema: %w", err)
	}

	return nil
}

// DefaultYAML returns the default configuration file.
func DefaultYAML() []byte {
	return defaultConfigYAML
}

// Schema returns the JSON schema of the configuration file.
func Schema() []byte {
	return schemaJSON
}

func regularFileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("stat %s: %w", path, err)
	case info.IsDir():
		return false, fmt.Errorf("%s: path is a directory", path)
	case !info.Mode().IsRegular():
		return false, fmt.Errorf("%s: unknown file state", path)
	}

	return true, nil
}

func readFile(path string) ([]byte, error) {
	exists, err := regularFileExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("read config: %w", os.ErrNotExist)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: The path is user supplied.
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return data, nil
}
