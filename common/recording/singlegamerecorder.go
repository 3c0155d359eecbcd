package recording

import (
	"encoding/json"

	"github.com/herdarena/herdarena/common/utils"
)

// SingleGameRecorder buffers every frame of one game in memory and writes
// a zip archive (RecordMetadata + Record) when the game closes.
type SingleGameRecorder struct {
	buffer         string
	filename       string
	recordMetadata *RecordMetadata
}

func MakeSingleGameRecorder(filename string) *SingleGameRecorder {
	return &SingleGameRecorder{
		buffer:         "",
		filename:       filename,
		recordMetadata: nil,
	}
}

func (r *SingleGameRecorder) Stop() {}

func (r *SingleGameRecorder) Close() {
	if r.recordMetadata == nil {
		panic("Missing RecordMetadata")
	}

	metadata, err := json.Marshal(*r.recordMetadata)
	utils.Check(err, "Could not serialize RecordMetadata")

	files := make([]ArchiveFile, 0, 2)

	files = append(files, ArchiveFile{
		Name: "RecordMetadata",
		Body: string(metadata),
	})

	files = append(files, ArchiveFile{
		Name: "Record",
		Body: r.buffer,
	})

	err = MakeArchive(r.filename, files)
	utils.CheckWithFunc(err, func() string {
		return "could not create record archive: " + err.Error()
	})

	utils.Debug("recorder", "wrote record archive "+r.filename)
}

func (r *SingleGameRecorder) RecordMetadata(metadata RecordMetadata) error {
	r.recordMetadata = &metadata

	utils.Debug("recorder", "created RecordMetadata")

	return nil
}

func (r *SingleGameRecorder) Record(msg string) error {
	r.buffer += msg + "\n"

	return nil
}
