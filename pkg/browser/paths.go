// Package browser locates the browser binary to launch and inspects the
// process environment for the browser that spawned this connector.
package browser

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/common-fate/clio"
)

// Supported Firefox-family variants, in lookup order. The order is a
// tie-break when several variants are installed; it matches the order the
// extension documents and must not be re-sorted.
var Variants = []string{"firefox", "librewolf", "waterfox", "zen-browser"}

// A few default paths to check for each variant.
var FirefoxPathMac = []string{"/Applications/Firefox.app/Contents/MacOS/firefox"}
var FirefoxPathLinux = []string{
	"/usr/bin/firefox",
	"/usr/local/bin/firefox",
	"/snap/bin/firefox",
	"/var/lib/flatpak/app/org.mozilla.firefox/current/active/files/bin/firefox",
}
var FirefoxPathWindows = []string{`Mozilla Firefox\firefox.exe`}

var LibreWolfPathMac = []string{"/Applications/LibreWolf.app/Contents/MacOS/librewolf"}
var LibreWolfPathLinux = []string{
	"/usr/bin/librewolf",
	"/usr/local/bin/librewolf",
	"/snap/bin/librewolf",
	"/var/lib/flatpak/app/io.gitlab.librewolf-community/current/active/files/bin/librewolf",
}
var LibreWolfPathWindows = []string{`LibreWolf\librewolf.exe`}

var WaterfoxPathMac = []string{"/Applications/Waterfox.app/Contents/MacOS/waterfox"}
var WaterfoxPathLinux = []string{
	"/usr/bin/waterfox",
	"/usr/local/bin/waterfox",
	"/snap/bin/waterfox",
	"/var/lib/flatpak/app/net.waterfox.waterfox/current/active/files/bin/waterfox",
}
var WaterfoxPathWindows = []string{`Waterfox\waterfox.exe`}

var ZenPathMac = []string{"/Applications/Zen Browser.app/Contents/MacOS/zen-browser"}
var ZenPathLinux = []string{
	"/usr/bin/zen-browser",
	"/usr/local/bin/zen-browser",
	"/snap/bin/zen-browser",
}
var ZenPathWindows = []string{`Zen Browser\zen-browser.exe`}

// wellKnownPaths returns the candidate binary paths for the current OS,
// grouped by variant in lookup order.
func wellKnownPaths() [][]string {
	switch runtime.GOOS {
	case "darwin":
		return [][]string{FirefoxPathMac, LibreWolfPathMac, WaterfoxPathMac, ZenPathMac}
	case "windows":
		programFiles := os.Getenv("ProgramFiles")
		if programFiles == "" {
			programFiles = `C:\Program Files`
		}
		programFilesX86 := os.Getenv("ProgramFiles(x86)")
		if programFilesX86 == "" {
			programFilesX86 = `C:\Program Files (x86)`
		}

		groups := make([][]string, 0, len(Variants))
		for _, variant := range [][]string{FirefoxPathWindows, LibreWolfPathWindows, WaterfoxPathWindows, ZenPathWindows} {
			var group []string
			for _, suffix := range variant {
				group = append(group, filepath.Join(programFiles, suffix))
			}
			for _, suffix := range variant {
				group = append(group, filepath.Join(programFilesX86, suffix))
			}
			groups = append(groups, group)
		}
		return groups
	default:
		return [][]string{FirefoxPathLinux, LibreWolfPathLinux, WaterfoxPathLinux, ZenPathLinux}
	}
}

// FindWellKnownBinary probes the well-known install locations for the
// current OS and returns the first binary that exists on disk.
func FindWellKnownBinary() (string, bool) {
	for _, group := range wellKnownPaths() {
		for _, path := range group {
			if _, err := os.Stat(path); err == nil {
				clio.Debugf("found browser binary at %s", path)
				return path, true
			}
		}
	}
	return "", false
}
