package profiles

// Registry loads and persists the on-disk profile registry files.
type Registry struct {
	ProfilesIniPath string
	InstallsIniPath string
}

func (r Registry) Load() (*IniState, error) {
	return ReadProfiles(r.ProfilesIniPath)
}

func (r Registry) Save(state *IniState) error {
	return WriteProfiles(r.ProfilesIniPath, r.InstallsIniPath, state)
}
