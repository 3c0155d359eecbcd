package utils

// Version is overridden at link time by the release pipeline.
var Version = "dev"

func GetVersion() string {
	return Version
}
