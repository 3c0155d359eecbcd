package recording

import (
	"archive/zip"
	"os"
)

type ArchiveFile struct {
	Name string
	Body string
}

func MakeArchive(filename string, files []ArchiveFile) error {
	fd, err := os.Create(filename)
	if err != nil {
		return err
	}

	defer fd.Close()

	archive := zip.NewWriter(fd)

	for _, file := range files {
		entry, err := archive.Create(file.Name)
		if err != nil {
			return err
		}

		if _, err := entry.Write([]byte(file.Body)); err != nil {
			return err
		}
	}

	return archive.Close()
}
