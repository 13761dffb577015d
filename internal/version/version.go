package version

// Version is the application version reported to the web-view. Release builds
// override it with -ldflags "-X github.com/example/protondrive/internal/version.Version=<value>".
var Version = "0.1.0"

// UserAgent identifies outbound HTTP requests made by the given tool.
func UserAgent(tool string) string {
	if tool == "" {
		tool = "protondrive-desktop"
	}
	return tool + "/" + Version
}
