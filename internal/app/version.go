// Package app provides the application container and configuration.
package app

// Build info, injected at build time.
var (
	Version   string = "1.0.0"
	GitTag    string = "2000.01.01.release"
	BuildTime string = "2000-01-01T00:00:00+0000"
)

const (
	// Name application name
	Name = "Note Storage Service"
)
