package build

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = "unknown"
)

func IsDev() bool {
	return Version == "dev"
}

// ConnectorBinaryName returns the name the connector binary is installed as.
// The browser resolves it through the native messaging manifest, so the
// name only matters for logs and packaging.
func ConnectorBinaryName() string {
	if IsDev() {
		return "dfps-connector"
	}
	return "fps-connector"
}
