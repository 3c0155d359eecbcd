package replay

import (
	"archive/zip"
	"bufio"
	"encoding/json"
	"errors"
	"io"

	"github.com/herdarena/herdarena/common/recording"
	"github.com/herdarena/herdarena/common/utils"
)

type rawRecordHandles struct {
	recordMetadata io.ReadCloser
	record         io.ReadCloser
	zip            *zip.ReadCloser
}

type ReplayMessage struct {
	Line string
}

// Replayer streams the frames of a record archive back, one line per
// message. A nil ReplayMessage on the channel marks the end of the record.
type Replayer struct {
	stopChannel      chan bool
	filename         string
	streamingChannel chan *ReplayMessage
	rawRecordHandles rawRecordHandles
}

func NewReplayer(filename string) (*Replayer, error) {
	rawRecordHandles, err := unzip(filename)
	if err != nil {
		return nil, err
	}

	return &Replayer{
		stopChannel:      make(chan bool),
		filename:         filename,
		streamingChannel: make(chan *ReplayMessage),
		rawRecordHandles: *rawRecordHandles,
	}, nil
}

func (r *Replayer) ReadMetadata() (recording.RecordMetadata, error) {
	var metadata recording.RecordMetadata

	raw, err := io.ReadAll(bufio.NewReader(r.rawRecordHandles.recordMetadata))
	if err != nil {
		return metadata, err
	}

	defer r.rawRecordHandles.recordMetadata.Close()

	err = json.Unmarshal(raw, &metadata)

	return metadata, err
}

func (r *Replayer) Read() chan *ReplayMessage {
	reader := bufio.NewReader(r.rawRecordHandles.record)

	go func() {
		defer func() {
			r.rawRecordHandles.record.Close()
			r.rawRecordHandles.zip.Close()
		}()

		for {
			line, readErr := utils.ReadFullLine(reader)

			if readErr != nil {
				// io.EOF is the normal end of the record; anything else
				// ends the stream all the same
				select {
				case r.streamingChannel <- nil:
				case <-r.stopChannel:
				}
				return
			}

			if len(line) == 0 {
				continue
			}

			select {
			case r.streamingChannel <- &ReplayMessage{Line: line}:
			case <-r.stopChannel:
				return
			}
		}
	}()

	return r.streamingChannel
}

func (r *Replayer) Stop() {
	utils.Debug("replay", "stop replayer")
	close(r.stopChannel)
}

// Close releases the archive handles without streaming; for callers that
// only wanted the metadata.
func (r *Replayer) Close() {
	r.rawRecordHandles.record.Close()
	r.rawRecordHandles.zip.Close()
}

func unzip(filename string) (*rawRecordHandles, error) {
	rawRecordHandles := &rawRecordHandles{}

	reader, err := zip.OpenReader(filename)

	if err != nil {
		return nil, errors.New("could not open zip file (" + err.Error() + ")")
	}

	rawRecordHandles.zip = reader

	for _, file := range reader.File {
		fd, err := file.Open()

		if err != nil {
			return nil, err
		}

		if file.Name == "Record" {
			rawRecordHandles.record = fd
		} else if file.Name == "RecordMetadata" {
			rawRecordHandles.recordMetadata = fd
		}
	}

	if rawRecordHandles.record == nil || rawRecordHandles.recordMetadata == nil {
		reader.Close()
		return nil, errors.New("record archive is missing the Record or RecordMetadata entry")
	}

	return rawRecordHandles, nil
}
