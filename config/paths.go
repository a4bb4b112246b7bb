package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	appDir         = "mindfulcampus"
	configFileName = "bottlesmash.toml"
	journalName    = "bottlesmash.db"
)

func configRoot() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve user config dir")
	}
	return filepath.Join(dir, appDir), nil
}

// DefaultPath returns the settings file location under the user config dir
func DefaultPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configFileName), nil
}

// DefaultJournalPath returns the smash journal database location
func DefaultJournalPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, journalName), nil
}
