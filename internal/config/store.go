package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Store owns the persisted settings document. It is the only writer of the
// on-disk copy; callers hold in-memory copies and push changes back through
// Save.
type Store struct {
	dataDir string
	path    string
	log     *logrus.Logger
}

// Open prepares the first-run directory layout under dataDir (modules/,
// flash/, config/) and returns a Store bound to config/settings.json.
func Open(dataDir string, log *logrus.Logger) (*Store, error) {
	for _, sub := range []string{ModulesDirName, FlashDirName, ConfigDirName} {
		if err := os.MkdirAll(filepath.Join(dataDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create data layout: %w", err)
		}
	}
	return &Store{
		dataDir: dataDir,
		path:    filepath.Join(dataDir, ConfigDirName, SettingsFile),
		log:     log,
	}, nil
}

// Path returns the settings file location.
func (s *Store) Path() string { return s.path }

// FlashDir returns the watched flash update directory.
func (s *Store) FlashDir() string { return filepath.Join(s.dataDir, FlashDirName) }

// ModulesDir returns the installed-modules directory.
func (s *Store) ModulesDir() string { return filepath.Join(s.dataDir, ModulesDirName) }

// Load reads the settings document. Absent fields are filled from defaults
// recursively: unmarshalling over a pre-populated default document leaves
// any field the JSON does not mention at its default value. The repaired
// document is persisted back, whether the file was missing, corrupt, or
// merely partial; none of those surfaces as an error.
func (s *Store) Load() Config {
	cfg := Defaults()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).Warn("settings unreadable, substituting defaults")
		}
		if saveErr := s.Save(cfg); saveErr != nil {
			s.log.WithError(saveErr).Error("unable to persist default settings")
		}
		return cfg
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		s.log.WithError(err).Warn("settings corrupt, substituting defaults")
		cfg = Defaults()
		if saveErr := s.Save(cfg); saveErr != nil {
			s.log.WithError(saveErr).Error("unable to persist default settings")
		}
		return cfg
	}

	// A partial document was filled from defaults; write the complete form
	// back so the on-disk copy is repaired immediately, not on the next
	// settings change.
	if saveErr := s.Save(cfg); saveErr != nil {
		s.log.WithError(saveErr).Error("unable to persist repaired settings")
	}

	return cfg
}

// Save durably writes the full document, replacing the prior version
// entirely. The write goes to a temp file in the same directory and is
// renamed into place so readers see old-then-new, never a torn document.
func (s *Store) Save(cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("stage settings: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("flush settings: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod settings: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
