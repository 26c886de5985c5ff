package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate_OverrideWinsEvenIfMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-firefox")

	discovery := &Discovery{ParentPath: "/usr/bin/firefox"}

	got, err := Locate(missing, discovery)
	require.NoError(t, err)
	// existence is checked at launch time, not during selection
	assert.Equal(t, missing, got)
}

func TestLocate_UsesDiscoveryWhenNoOverride(t *testing.T) {
	discovery := &Discovery{ParentPath: "/opt/waterfox/waterfox"}

	got, err := Locate("", discovery)
	require.NoError(t, err)
	assert.Equal(t, "/opt/waterfox/waterfox", got)
}

func TestLocate_SkipsFailedDiscovery(t *testing.T) {
	binary := filepath.Join(t.TempDir(), "firefox")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"), 0755))
	t.Setenv(crashReporterEnvVar, binary)

	discovery := Discover()
	require.NoError(t, discovery.ParentErr)

	got, err := Locate("", discovery)
	require.NoError(t, err)
	assert.Equal(t, binary, got)

	failed := &Discovery{ParentErr: errors.New("nope")}
	// a failed discovery falls through to the well-known table; whatever
	// that yields, it must not be the failed discovery's empty path
	if path, lerr := Locate("", failed); lerr == nil {
		assert.NotEmpty(t, path)
	} else {
		assert.ErrorIs(t, lerr, ErrBinaryNotFound)
	}
}

func TestInspectParentProcess_EnvVarSetAndExists(t *testing.T) {
	binary := filepath.Join(t.TempDir(), "librewolf")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"), 0755))
	t.Setenv(crashReporterEnvVar, binary)

	got, err := inspectParentProcess()
	require.NoError(t, err)
	assert.Equal(t, binary, got)
}
