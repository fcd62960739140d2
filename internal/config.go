package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config collects every threshold that used to be a compiled-in constant, so
// tests and users can change them without rebuilding.
type Config struct {
	// QuitConfirmations is how many Ctrl-Q presses an unsaved document needs
	// before the editor actually exits.
	QuitConfirmations int `toml:"quit_confirmations"`

	// BackupEveryKeystrokes triggers an automatic snapshot once this many
	// keys have been processed since the last successful backup.
	BackupEveryKeystrokes int `toml:"backup_every_keystrokes"`

	// StatusMessageTTL is how long a status message stays visible.
	StatusMessageTTL time.Duration `toml:"-"`

	// StatusMessageTTLSeconds is the on-disk form of StatusMessageTTL.
	StatusMessageTTLSeconds int `toml:"status_message_ttl_seconds"`

	// StatusTimestamps prefixes every status message with the elapsed
	// session time in seconds.
	StatusTimestamps bool `toml:"status_timestamps"`

	// BackupFallbackPath is the snapshot target for documents that have no
	// file name yet.
	BackupFallbackPath string `toml:"backup_fallback_path"`
}

func DefaultConfig() Config {
	return Config{
		QuitConfirmations:       3,
		BackupEveryKeystrokes:   10,
		StatusMessageTTL:        5 * time.Second,
		StatusMessageTTLSeconds: 5,
		StatusTimestamps:        true,
		BackupFallbackPath:      "quill.tmp",
	}
}

// DefaultConfigPath returns ~/.config/quill/config.toml, or an empty string
// when the home directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "quill", "config.toml")
}

// LoadConfig reads a TOML config file on top of the defaults. A missing file
// is not an error; the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding %s: %w", path, err)
	}
	cfg.StatusMessageTTL = time.Duration(cfg.StatusMessageTTLSeconds) * time.Second
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.QuitConfirmations < 1 {
		return fmt.Errorf("quit_confirmations must be at least 1, got %d", c.QuitConfirmations)
	}
	if c.BackupEveryKeystrokes < 1 {
		return fmt.Errorf("backup_every_keystrokes must be at least 1, got %d", c.BackupEveryKeystrokes)
	}
	if c.StatusMessageTTL <= 0 {
		return fmt.Errorf("status_message_ttl_seconds must be positive, got %d", c.StatusMessageTTLSeconds)
	}
	if c.BackupFallbackPath == "" {
		return errors.New("backup_fallback_path must not be empty")
	}
	return nil
}
