package profiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeProfile creates a profile dir under root, optionally with a storage
// entry for the given extension id.
func makeProfile(t *testing.T, root, name string, extensionIDs ...string) {
	t.Helper()
	storage := filepath.Join(root, name, "storage", "default")
	require.NoError(t, os.MkdirAll(storage, 0755))
	for _, id := range extensionIDs {
		require.NoError(t, os.Mkdir(filepath.Join(storage, "moz-extension+++"+id), 0755))
	}
}

func TestDetectCurrentProfile(t *testing.T) {
	const extID = "profile-switcher@example.com"

	root := t.TempDir()
	makeProfile(t, root, "aaaa.default")
	makeProfile(t, root, "bbbb.work", extID)
	makeProfile(t, root, "cccc.play", extID)

	state := &IniState{Profiles: []ProfileEntry{
		{ID: "aaaa.default", Name: "default", IsRelative: true, Path: "aaaa.default"},
		{ID: "bbbb.work", Name: "work", IsRelative: true, Path: "bbbb.work"},
		{ID: "cccc.play", Name: "play", IsRelative: true, Path: "cccc.play"},
	}}

	got, err := DetectCurrentProfile(extID, state, root)
	require.NoError(t, err)
	// both bbbb and cccc match; registry order breaks the tie
	assert.Equal(t, "bbbb.work", got)
}

func TestDetectCurrentProfile_NotFound(t *testing.T) {
	root := t.TempDir()
	makeProfile(t, root, "aaaa.default", "some-other-extension@example.com")

	state := &IniState{Profiles: []ProfileEntry{
		{ID: "aaaa.default", Name: "default", IsRelative: true, Path: "aaaa.default"},
	}}

	_, err := DetectCurrentProfile("missing@example.com", state, root)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

// A profile without a storage directory is a non-match, not an error.
func TestDetectCurrentProfile_SkipsUnreadableStorage(t *testing.T) {
	const extID = "profile-switcher@example.com"

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "aaaa.fresh"), 0755))
	makeProfile(t, root, "bbbb.work", extID)

	state := &IniState{Profiles: []ProfileEntry{
		{ID: "aaaa.fresh", Name: "fresh", IsRelative: true, Path: "aaaa.fresh"},
		{ID: "bbbb.work", Name: "work", IsRelative: true, Path: "bbbb.work"},
	}}

	got, err := DetectCurrentProfile(extID, state, root)
	require.NoError(t, err)
	assert.Equal(t, "bbbb.work", got)
}

func TestDetectCurrentProfile_AbsoluteProfilePath(t *testing.T) {
	const extID = "profile-switcher@example.com"

	outside := t.TempDir()
	makeProfile(t, outside, "elsewhere", extID)
	abs := filepath.Join(outside, "elsewhere")

	state := &IniState{Profiles: []ProfileEntry{
		{ID: abs, Name: "external", IsRelative: false, Path: abs},
	}}

	got, err := DetectCurrentProfile(extID, state, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}
