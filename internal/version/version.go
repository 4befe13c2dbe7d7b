// Package version holds the application version, overridable at build time
// via -ldflags "-X fintrack/internal/version.Version=...".
package version

// Version is the application version string.
var Version = "1.0.0"
