package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSave_RoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test fixtures rely on HOME")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")

	// missing file yields the zero config, not an error
	c, err := Load()
	require.NoError(t, err)
	assert.Empty(t, c.BrowserBinary)
	assert.Empty(t, c.BrowserProfileDir)

	c.BrowserBinary = "/usr/bin/librewolf"
	c.BrowserProfileDir = "/data/profiles"
	require.NoError(t, c.Save())

	reloaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/librewolf", reloaded.BrowserBinary)
	assert.Equal(t, "/data/profiles", reloaded.BrowserProfileDir)
}

func TestLoad_InvalidFileYieldsDefaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test fixtures rely on HOME")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte("{{{not toml"), 0644))

	c, err := Load()
	require.NoError(t, err)
	assert.Empty(t, c.BrowserBinary)
}

func TestResolveProfilePath(t *testing.T) {
	c := &Config{BrowserProfileDir: "/data/profiles"}

	assert.Equal(t, filepath.Join("/data/profiles", "aaaa.default"), c.ResolveProfilePath("", "aaaa.default"))

	abs := string(filepath.Separator) + filepath.Join("srv", "profiles", "x")
	assert.Equal(t, abs, c.ResolveProfilePath("", abs))
}

func TestFirstUpper(t *testing.T) {
	assert.Equal(t, "Firefox", firstUpper("firefox"))
	assert.Equal(t, "Zen-browser", firstUpper("zen-browser"))
	assert.Equal(t, "", firstUpper(""))
}
