package utils

import (
	"log"
	"path"

	"github.com/kardianos/osext"
)

func GetExecutableDir() string {
	exfolder, err := osext.ExecutableFolder()
	if err != nil {
		log.Panicln(err)
	}

	return exfolder
}

// GetAbsoluteDir resolves a path relative to the executable, not to the
// working directory; the webclient assets are shipped next to the binary.
// Absolute paths pass through untouched.
func GetAbsoluteDir(relative string) string {
	if path.IsAbs(relative) {
		return relative
	}

	return path.Join(GetExecutableDir(), relative)
}
