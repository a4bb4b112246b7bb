package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Audio is the [audio] table of the settings file
type Audio struct {
	Muted  bool    `toml:"muted"`
	Volume float64 `toml:"volume"` // beep volume offset, log2 scale
}

// Journal is the [journal] table of the settings file
type Journal struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path,omitempty"`
}

// Config is the full settings file
type Config struct {
	Scene   Settings `toml:"scene"`
	Audio   Audio    `toml:"audio"`
	Journal Journal  `toml:"journal"`
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		Scene:   DefaultSettings(),
		Journal: Journal{Enabled: true},
	}
}

// Store reads and writes one settings file
type Store struct {
	path string
}

// NewStore creates a store for path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store manages
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the settings file is present
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the settings file
// A missing file yields the defaults without error; scene values are normalized
func (s *Store) Load() (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(s.path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), errors.Wrapf(err, "decode %s", s.path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("Config: Ignoring unknown keys in %s: %s", s.path, strings.Join(keys, ", "))
	}

	normalized := cfg.Scene.Normalize()
	if normalized != cfg.Scene {
		log.Printf("Config: Repaired scene settings from %s: %+v -> %+v", s.path, cfg.Scene, normalized)
	}
	cfg.Scene = normalized

	log.Printf("Config: Loaded settings from %s", s.path)
	return cfg, nil
}

// Save writes cfg through a temp file and rename so readers never see a partial file
func (s *Store) Save(cfg Config) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create config dir %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".bottlesmash-*.toml")
	if err != nil {
		return errors.Wrap(err, "create temp settings file")
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(cfg); err != nil {
		tmp.Close()
		return errors.Wrap(err, "encode settings")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp settings file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrapf(err, "replace %s", s.path)
	}
	return nil
}
