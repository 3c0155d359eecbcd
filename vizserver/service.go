package vizserver

import (
	"context"
	"net/http"
	"os"
	"time"

	"log"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/herdarena/herdarena/common/utils"
	apphandler "github.com/herdarena/herdarena/vizserver/handler"
	"github.com/herdarena/herdarena/vizserver/types"
)

type FetchGamesCbk func() ([]*types.VizGame, error)

// VizService serves the webclient pages and the websocket relays: frames
// out to the watchers, decoded input events back to the game.
type VizService struct {
	addr          string
	webclientpath string
	fetchGames    FetchGamesCbk
	recordFile    string
	server        *http.Server
}

// NewVizService builds the service; recordFile optionally enables the
// /replay routes on an archived game.
func NewVizService(addr string, webclientpath string, fetchGames FetchGamesCbk, recordFile string) *VizService {
	return &VizService{
		addr:          addr,
		webclientpath: webclientpath,
		fetchGames:    fetchGames,
		recordFile:    recordFile,
	}
}

func (viz *VizService) Start() {

	vizgames, err := viz.fetchGames()
	utils.Check(err, "VizService: Could not fetch games to visualize")

	vizgamesmap := types.NewVizGameMap()
	for _, vizgame := range vizgames {
		vizgamesmap.Set(
			vizgame.GetGame().GetId(),
			vizgame,
		)
	}

	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(vizgamesmap)),
	)).Methods("GET")

	router.Handle("/game/{id:[a-zA-Z0-9\\-]+}", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Game(vizgamesmap, viz.webclientpath)),
	)).Methods("GET")

	router.Handle("/game/{id:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(vizgamesmap)),
	)).Methods("GET")

	if viz.recordFile != "" {
		router.Handle("/replay", handlers.CombinedLoggingHandler(logger,
			http.HandlerFunc(apphandler.Replay(viz.recordFile, viz.webclientpath)),
		)).Methods("GET")

		router.Handle("/replay/ws", handlers.CombinedLoggingHandler(logger,
			http.HandlerFunc(apphandler.ReplayWebsocket(viz.recordFile)),
		)).Methods("GET")
	}

	// Les assets de la viz (js, modèles, textures)
	router.PathPrefix("/lib/").Handler(http.FileServer(http.Dir(viz.webclientpath)))
	router.PathPrefix("/res/").Handler(http.FileServer(http.Dir(viz.webclientpath)))

	viz.server = &http.Server{
		Addr:    viz.addr,
		Handler: router,
	}

	go func() {
		err := viz.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			utils.Check(err, "VizService: Could not listen on "+viz.addr)
		}
	}()

	log.Println("VIZ Listening on " + viz.addr)
}

func (viz *VizService) Stop() {
	if viz.server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	viz.server.Shutdown(ctx)
}
