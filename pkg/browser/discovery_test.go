package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMSIXPackage(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{
			name: "store_firefox",
			path: `C:\Program Files\WindowsApps\Mozilla.Firefox_97.0.1.0_x64__n80bbvh6b1yt2\VFS\ProgramFiles\Firefox Package Root\firefox.exe`,
			want: "Mozilla.Firefox_n80bbvh6b1yt2",
		},
		{
			name: "forward_slashes",
			path: `C:/Program Files/WindowsApps/Mozilla.Firefox_97.0.1.0_x64__n80bbvh6b1yt2/firefox.exe`,
			want: "Mozilla.Firefox_n80bbvh6b1yt2",
		},
		{
			name:    "regular_install",
			path:    `C:\Program Files\Mozilla Firefox\firefox.exe`,
			wantErr: true,
		},
		{
			name:    "not_program_files",
			path:    `C:\Users\someone\WindowsApps\Mozilla.Firefox_97.0.1.0_x64__n80bbvh6b1yt2\firefox.exe`,
			wantErr: true,
		},
		{
			name:    "package_without_underscores",
			path:    `C:\Program Files\WindowsApps\NotAPackage\firefox.exe`,
			wantErr: true,
		},
		{
			name:    "too_short",
			path:    `C:\Program Files`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMSIXPackage(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscover_MSIXOnlyOnWindows(t *testing.T) {
	d := Discover()
	// on non-windows hosts the package inspection always reports a reason
	if d.MSIXErr == nil {
		assert.NotEmpty(t, d.MSIXPackage)
	} else {
		assert.Empty(t, d.MSIXPackage)
	}
}
