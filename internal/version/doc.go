// Package version exposes build metadata for the controller binary.
//
// Version, Commit and BuildTime are injected at build time via ldflags.
// Banner renders the startup line printed once the startup delay is over.
package version
