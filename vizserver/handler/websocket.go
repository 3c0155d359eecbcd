package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	commontypes "github.com/herdarena/herdarena/common/types"
	"github.com/herdarena/herdarena/common/utils"
	"github.com/herdarena/herdarena/vizserver/types"
)

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

// vizClientMessage is what the webclient sends us; only "input" carries
// a payload we act on.
type vizClientMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func Websocket(games *types.VizGameMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		vizgame := games.Get(vars["id"])

		if vizgame == nil {
			w.Write([]byte("GAME NOT FOUND !"))
			return
		}

		gameId := vizgame.GetGame().GetId()

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		watcher := types.NewWatcher(c)
		vizgame.SetWatcher(watcher)

		defer func(c *websocket.Conn) {
			vizgame.RemoveWatcher(watcher.GetId())
			c.Close()
			utils.Debug("ws", "watcher left; "+gameId)
		}(c)

		/////////////////////////////////////////////////////////////
		/////////////////////////////////////////////////////////////

		clientclosedsocket := make(chan bool, 1)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// Messages incoming from the webclient: input events, and the
		// close signal when the socket dies client side
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			defer close(ch)

			for {
				messageType, p, err := client.ReadMessage()
				if err != nil {
					return
				}

				ch <- wsincomingmessage{messageType, p, err}
			}
		}(c, incomingmsg)

		// Frames produced by the game server
		framechan := make(chan interface{})
		notify.Start("viz:frame:"+gameId, framechan)
		defer notify.Stop("viz:frame:"+gameId, framechan)

		for {
			select {
			case <-clientclosedsocket:
				{
					utils.Debug("ws", "disconnected")
					return
				}
			case msg, ok := <-incomingmsg:
				{
					if !ok {
						return
					}

					var clientmsg vizClientMessage
					if err := json.Unmarshal(msg.p, &clientmsg); err != nil {
						utils.Debug("ws", "Discarded malformed watcher message")
						continue
					}

					if clientmsg.Type != "input" {
						continue
					}

					var input commontypes.InputEvent
					if err := json.Unmarshal(clientmsg.Data, &input); err != nil {
						utils.Debug("ws", "Discarded malformed input event")
						continue
					}

					notify.PostTimeout("game:input:"+gameId, input, time.Millisecond)
				}
			case frame := <-framechan:
				{
					framestring, ok := frame.(string)
					utils.Assert(ok, "Failed to cast frame into string")

					c.WriteMessage(websocket.TextMessage, []byte("{\"type\":\"frame\", \"data\": "+framestring+"}"))
				}
			}
		}
	}
}
