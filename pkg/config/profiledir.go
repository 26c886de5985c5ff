package config

import (
	"os"
	"path/filepath"
	"runtime"
	"unicode"

	"github.com/common-fate/clio"
)

// Firefox-family variant directory names, in detection order.
var variantDirs = []string{"firefox", "librewolf", "waterfox", "zen-browser"}

// Flatpak app IDs for each variant, in detection order.
var flatpakAppIDs = [][2]string{
	{"firefox", "org.mozilla.firefox"},
	{"librewolf", "io.gitlab.librewolf-community"},
	{"waterfox", "net.waterfox.waterfox"},
	{"zen-browser", "org.mozilla.firefox.zen"},
}

// isValidBrowserDir reports whether dir holds a profile registry.
func isValidBrowserDir(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "profiles.ini"))
	return err == nil
}

// defaultProfileDir detects the profile directory for the current OS.
// The iteration order across variants and locations is fixed; the first
// valid directory wins and the Firefox location is the fallback when
// nothing validates.
func defaultProfileDir(msixPackage string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		clio.Debugf("unable to determine home dir: %s", err)
		return ""
	}

	switch runtime.GOOS {
	case "darwin":
		appSupport := filepath.Join(home, "Library", "Application Support")
		for _, name := range variantDirs {
			dir := filepath.Join(appSupport, firstUpper(name))
			if isValidBrowserDir(dir) {
				clio.Debugf("found profile dir for %s: %s", name, dir)
				return dir
			}
		}
		return filepath.Join(appSupport, "Firefox")

	case "windows":
		var appData string
		if msixPackage != "" {
			appData = filepath.Join(home, "AppData", "Local", "Packages", msixPackage, "LocalCache")
		} else {
			appData = filepath.Join(home, "AppData")
		}
		mozilla := filepath.Join(appData, "Roaming", "Mozilla")
		for _, name := range variantDirs {
			dir := filepath.Join(mozilla, firstUpper(name))
			if isValidBrowserDir(dir) {
				clio.Debugf("found profile dir for %s: %s", name, dir)
				return dir
			}
		}
		return filepath.Join(mozilla, "Firefox")

	default:
		// Flatpak installs keep profiles under the app's own var dir.
		for _, entry := range flatpakAppIDs {
			name, appID := entry[0], entry[1]
			var dir string
			if name == "firefox" {
				dir = filepath.Join(home, ".var", "app", appID, ".mozilla", "firefox")
			} else {
				dir = filepath.Join(home, ".var", "app", appID, "."+name)
			}
			if isValidBrowserDir(dir) {
				clio.Debugf("found flatpak profile dir for %s: %s", name, dir)
				return dir
			}
		}

		for _, name := range variantDirs {
			mozillaDir := filepath.Join(home, ".mozilla", name)
			directDir := filepath.Join(home, "."+name)
			if isValidBrowserDir(mozillaDir) {
				clio.Debugf("found profile dir for %s: %s", name, mozillaDir)
				return mozillaDir
			}
			if isValidBrowserDir(directDir) {
				clio.Debugf("found profile dir for %s: %s", name, directDir)
				return directDir
			}
		}
		return filepath.Join(home, ".mozilla", "firefox")
	}
}

// firstUpper capitalizes only the first rune: "zen-browser" -> "Zen-browser".
// Variant directory names on macOS and Windows use this casing.
func firstUpper(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
