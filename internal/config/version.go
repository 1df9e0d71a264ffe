package config

import "os"

// Version is the build version, overridable at link time:
//
//	go build -ldflags "-X spacewx/internal/config.Version=1.2.3"
var Version = "0.1.0"

// GetVersion returns the version from APP_VERSION (set by CI/CD) or the
// build default.
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}
	return Version
}
