package handler

import (
	"net/http"
	"strconv"

	"github.com/herdarena/herdarena/vizserver/types"
)

func Home(games *types.VizGameMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<h2>Welcome on HERD ARENA !</h2>"))

		gamesArray := games.ToArrayGeneric()

		for _, item := range gamesArray {
			if vizgame, ok := item.(*types.VizGame); ok {
				game := vizgame.GetGame()
				w.Write([]byte("<a href='/game/" + game.GetId() + "'>" + game.GetName() + " (" + strconv.Itoa(vizgame.GetNumberWatchers()) + " watchers right now)</a><br />"))
			}
		}
	}
}
