// Package profiles reads and writes the browser's profile registry
// (profiles.ini and installs.ini) and resolves which profile the
// extension is currently running in.
package profiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// ProfileEntry is one profile from profiles.ini.
type ProfileEntry struct {
	// ID identifies the profile to the extension. profiles.ini carries no
	// explicit id, so the profile's path doubles as one; it is unique
	// within a registry and stable across restarts.
	ID         string
	Name       string
	IsRelative bool
	Path       string
	Default    bool
}

// FullPath resolves the profile's storage directory against the profile
// root. Absolute paths are returned unchanged.
func (p *ProfileEntry) FullPath(profileRoot string) string {
	if !p.IsRelative || filepath.IsAbs(p.Path) {
		return p.Path
	}
	return filepath.Join(profileRoot, p.Path)
}

// IniState is the in-memory profile registry. Entries keep the file's
// section order; resolution uses that order as a tie-break.
type IniState struct {
	Profiles []ProfileEntry
}

// FindByID returns a pointer into the collection, or nil.
func (s *IniState) FindByID(id string) *ProfileEntry {
	for i := range s.Profiles {
		if s.Profiles[i].ID == id {
			return &s.Profiles[i]
		}
	}
	return nil
}

// SetDefault marks the profile with the given id as the default and
// clears the flag everywhere else, so at most one entry carries it.
func (s *IniState) SetDefault(id string) bool {
	found := false
	for i := range s.Profiles {
		if s.Profiles[i].ID == id {
			s.Profiles[i].Default = true
			found = true
		} else {
			s.Profiles[i].Default = false
		}
	}
	return found
}

var iniLoadOptions = ini.LoadOptions{
	SkipUnrecognizableLines: true,
}

// ReadProfiles parses profiles.ini at the given path.
func ReadProfiles(profilesIniPath string) (*IniState, error) {
	f, err := ini.LoadSources(iniLoadOptions, profilesIniPath)
	if err != nil {
		return nil, errors.Wrap(err, "loading profiles.ini")
	}

	state := &IniState{}
	for _, section := range f.Sections() {
		if !strings.HasPrefix(section.Name(), "Profile") {
			continue
		}
		path := section.Key("Path").String()
		if path == "" {
			continue
		}
		state.Profiles = append(state.Profiles, ProfileEntry{
			ID:         path,
			Name:       section.Key("Name").String(),
			IsRelative: section.Key("IsRelative").String() != "0",
			Path:       path,
			Default:    section.Key("Default").String() == "1",
		})
	}
	return state, nil
}

// WriteProfiles persists the registry back to profiles.ini, keeping any
// non-profile sections (General, Install hashes) from the existing file,
// and points every install stanza in installs.ini at the default profile.
func WriteProfiles(profilesIniPath, installsIniPath string, state *IniState) error {
	f, err := ini.LoadSources(iniLoadOptions, profilesIniPath)
	if err != nil {
		// A missing file is still writable; start from empty.
		f = ini.Empty()
	}

	for _, section := range f.Sections() {
		if strings.HasPrefix(section.Name(), "Profile") {
			f.DeleteSection(section.Name())
		}
	}

	var defaultPath string
	for i, p := range state.Profiles {
		section, err := f.NewSection(fmt.Sprintf("Profile%d", i))
		if err != nil {
			return errors.Wrap(err, "creating profile section")
		}
		section.Key("Name").SetValue(p.Name)
		if p.IsRelative {
			section.Key("IsRelative").SetValue("1")
		} else {
			section.Key("IsRelative").SetValue("0")
		}
		section.Key("Path").SetValue(p.Path)
		if p.Default {
			section.Key("Default").SetValue("1")
			defaultPath = p.Path
		}
	}

	if err := f.SaveTo(profilesIniPath); err != nil {
		return errors.Wrap(err, "writing profiles.ini")
	}

	if defaultPath != "" {
		if err := updateInstallsIni(installsIniPath, defaultPath); err != nil {
			return err
		}
	}
	return nil
}

// updateInstallsIni points every install stanza at the default profile so
// the browser opens it on next start. installs.ini may legitimately be
// absent (single-install systems before Firefox 67).
func updateInstallsIni(installsIniPath, defaultPath string) error {
	if _, err := os.Stat(installsIniPath); err != nil {
		return nil
	}
	f, err := ini.LoadSources(iniLoadOptions, installsIniPath)
	if err != nil {
		return errors.Wrap(err, "loading installs.ini")
	}
	for _, section := range f.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		section.Key("Default").SetValue(defaultPath)
	}
	return errors.Wrap(f.SaveTo(installsIniPath), "writing installs.ini")
}
