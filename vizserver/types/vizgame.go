package types

import (
	"github.com/herdarena/herdarena/common/types"
	"github.com/herdarena/herdarena/common/utils"
)

type VizGame struct {
	gameDescription types.GameDescriptionInterface
	pool            *WatcherMap
}

func NewVizGame(gameDescription types.GameDescriptionInterface) *VizGame {
	return &VizGame{
		pool:            NewWatcherMap(),
		gameDescription: gameDescription,
	}
}

func (vizgame *VizGame) GetGame() types.GameDescriptionInterface {
	return vizgame.gameDescription
}

func (vizgame *VizGame) SetGame(game types.GameDescriptionInterface) {
	vizgame.gameDescription = game
}

func (vizgame *VizGame) GetTps() int {
	return vizgame.gameDescription.GetTps()
}

type VizInitMessageData struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Tps         int     `json:"tps"`
	ArenaWidth  float64 `json:"arenawidth"`
	ArenaHeight float64 `json:"arenaheight"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

func (vizgame *VizGame) SetWatcher(watcher *Watcher) {
	vizgame.pool.Set(watcher.GetId(), watcher)

	initMsg := VizInitMessage{
		Type: "init",
		Data: VizInitMessageData{
			Id:          vizgame.gameDescription.GetId(),
			Name:        vizgame.gameDescription.GetName(),
			Tps:         vizgame.gameDescription.GetTps(),
			ArenaWidth:  vizgame.gameDescription.GetArenaWidth(),
			ArenaHeight: vizgame.gameDescription.GetArenaHeight(),
		},
	}

	err := watcher.conn.WriteJSON(initMsg)
	if err != nil {
		utils.Debug("viz-server", "Could not send VizInitMessage JSON;"+err.Error())
	}
}

func (vizgame *VizGame) RemoveWatcher(watcherid string) {
	vizgame.pool.Remove(watcherid)
}

func (vizgame *VizGame) GetNumberWatchers() int {
	return vizgame.pool.Size()
}
