package state

import (
	"testing"

	"github.com/Adenics/firefox-profile-switcher-connector/pkg/browser"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetExtension(t *testing.T) {
	s := New(&config.Config{}, nil)

	s.SetExtension("ext@example.com", "2.1.0")
	assert.Equal(t, "ext@example.com", s.ExtensionID)
	require.NotNil(t, s.ExtensionVersion)
	assert.Equal(t, "2.1.0", s.ExtensionVersion.String())

	// an unparsable version is dropped, not an error
	s.SetExtension("ext@example.com", "not-a-version")
	assert.Nil(t, s.ExtensionVersion)

	s.SetExtension("ext@example.com", "")
	assert.Nil(t, s.ExtensionVersion)
}

func TestMSIXPackage(t *testing.T) {
	s := New(&config.Config{}, &browser.Discovery{
		MSIXPackage: "Mozilla.Firefox_n80bbvh6b1yt2",
	})
	assert.Equal(t, "Mozilla.Firefox_n80bbvh6b1yt2", s.MSIXPackage())

	s = New(&config.Config{}, &browser.Discovery{
		MSIXErr: errors.New("not a packaged install"),
	})
	assert.Empty(t, s.MSIXPackage())

	s = New(&config.Config{}, nil)
	assert.Empty(t, s.MSIXPackage())
}
