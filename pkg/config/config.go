// Package config stores the connector's settings file and resolves the
// browser profile directory the registry lives in. Both settings are
// optional overrides; when unset the profile directory is detected from
// well-known per-OS locations.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// permission for user to read/write.
	USER_READ_WRITE_PERM = 0644
)

type Config struct {
	// BrowserProfileDir overrides the detected profile directory, the
	// folder containing profiles.ini.
	BrowserProfileDir string `toml:",omitempty"`

	// BrowserBinary overrides browser binary discovery. It always wins
	// when set, even if the path does not exist; existence is validated
	// at launch time, not here.
	BrowserBinary string `toml:",omitempty"`
}

// BinaryOverride returns the configured browser binary path, or "" when
// the binary should be discovered.
func (c *Config) BinaryOverride() string {
	return c.BrowserBinary
}

// ProfileDir returns the directory containing profiles.ini.
// msixPackage is the discovered store package identity; it is "" for
// non-packaged installs and ignored outside Windows.
func (c *Config) ProfileDir(msixPackage string) string {
	if c.BrowserProfileDir != "" {
		return c.BrowserProfileDir
	}
	return defaultProfileDir(msixPackage)
}

// ResolveProfilePath resolves a profile's storage path against the
// profile directory. Absolute paths are returned unchanged.
func (c *Config) ResolveProfilePath(msixPackage string, profilePath string) string {
	if filepath.IsAbs(profilePath) {
		return profilePath
	}
	return filepath.Join(c.ProfileDir(msixPackage), profilePath)
}

func (c *Config) ProfilesIniPath(msixPackage string) string {
	return filepath.Join(c.ProfileDir(msixPackage), "profiles.ini")
}

func (c *Config) InstallsIniPath(msixPackage string) string {
	return filepath.Join(c.ProfileDir(msixPackage), "installs.ini")
}

// ConfigFilePath is the connector settings file, next to the profiles it
// manages so that one file serves every install of the same browser.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(home, ".config", "fps-connector")
	if xdgConfigDir := os.Getenv("XDG_CONFIG_HOME"); !pathExists(configDir) && xdgConfigDir != "" {
		configDir = filepath.Join(xdgConfigDir, "fps-connector")
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load reads the settings file. A missing or unparsable file yields the
// zero config rather than an error, so a broken settings file never
// blocks the extension handshake.
func Load() (*Config, error) {
	configFilePath, err := ConfigFilePath()
	if err != nil {
		return nil, err
	}

	var c Config
	file, err := os.Open(configFilePath)
	if err != nil {
		return &c, nil
	}
	defer file.Close()

	if _, err := toml.NewDecoder(file).Decode(&c); err != nil {
		return &Config{}, nil
	}
	return &c, nil
}

func (c *Config) Save() error {
	configFilePath, err := ConfigFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFilePath), 0700); err != nil {
		return err
	}

	file, err := os.OpenFile(configFilePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, USER_READ_WRITE_PERM)
	if err != nil {
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(c)
}

// pathExists checks if a given file exists and returns true or false
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
