// Package version records the CLI version.
package version

// Version is the advent CLI version. Release builds override it via
// -ldflags "-X advent/internal/version.Version=...".
var Version = "0.1.0-dev"
