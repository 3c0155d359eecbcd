package recording

// RecordMetadata describes the recorded game; it is stored alongside the
// frames and is everything the replayer needs to pace and label the stream.
type RecordMetadata struct {
	GameId      string  `json:"gameid"`
	GameName    string  `json:"gamename"`
	Tps         int     `json:"tps"`
	ArenaWidth  float64 `json:"arenawidth"`
	ArenaHeight float64 `json:"arenaheight"`
	Date        string  `json:"date"`
}

type RecorderInterface interface {
	Record(msg string) error
	RecordMetadata(metadata RecordMetadata) error
	Close()
	Stop()
}
