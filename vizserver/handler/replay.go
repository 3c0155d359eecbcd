package handler

import (
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/herdarena/herdarena/common/replay"
)

func Replay(recordFile string, basepath string) func(w http.ResponseWriter, r *http.Request) {

	return func(w http.ResponseWriter, r *http.Request) {

		if _, err := os.Stat(recordFile); os.IsNotExist(err) {
			w.Write([]byte("Record not found"))
			return
		}

		replayer, err := replay.NewReplayer(recordFile)
		if err != nil {
			w.Write([]byte("ERROR: could not open record"))
			return
		}

		metadata, err := replayer.ReadMetadata()
		replayer.Close()

		if err != nil {
			w.Write([]byte("ERROR: could not read record metadata"))
			return
		}

		vizhtml, err := os.ReadFile(basepath + "index.html")
		if err != nil {
			w.Write([]byte("ERROR: could not render replay"))
			return
		}

		var vizhtmlTemplate = template.Must(template.New("").Parse(string(vizhtml)))
		vizhtmlTemplate.Execute(w, struct {
			WsURL string
			Rand  int64
			Tps   int
		}{
			WsURL: "ws://" + r.Host + "/replay/ws",
			Rand:  time.Now().Unix(),
			Tps:   metadata.Tps,
		})
	}
}
