package handler

import (
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/herdarena/herdarena/vizserver/types"
)

func Game(games *types.VizGameMap, basepath string) func(w http.ResponseWriter, r *http.Request) {

	return func(w http.ResponseWriter, r *http.Request) {

		vars := mux.Vars(r)
		vizgame := games.Get(vars["id"])

		if vizgame == nil {
			w.Write([]byte("GAME NOT FOUND !"))
			return
		}

		vizhtml, err := os.ReadFile(basepath + "index.html")
		if err != nil {
			w.Write([]byte("ERROR: could not render game"))
			return
		}

		protocol := "ws"

		if os.Getenv("ENV") == "prod" {
			protocol = "wss"
		}

		gameDescription := vizgame.GetGame()

		var vizhtmlTemplate = template.Must(template.New("").Parse(string(vizhtml)))
		vizhtmlTemplate.Execute(w, struct {
			WsURL string
			Rand  int64
			Tps   int
		}{
			WsURL: protocol + "://" + r.Host + "/game/" + gameDescription.GetId() + "/ws",
			Rand:  time.Now().Unix(),
			Tps:   gameDescription.GetTps(),
		})
	}
}
