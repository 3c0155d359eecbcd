package handler

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"github.com/herdarena/herdarena/common/replay"
	"github.com/herdarena/herdarena/common/utils"
	"github.com/herdarena/herdarena/vizserver/types"
)

// ReplayWebsocket streams a record archive to the client at the recorded
// tick rate, framed exactly like a live game.
func ReplayWebsocket(recordFile string) func(w http.ResponseWriter, r *http.Request) {

	return func(w http.ResponseWriter, r *http.Request) {

		if _, err := os.Stat(recordFile); os.IsNotExist(err) {
			w.Write([]byte("Record not found"))
			return
		}

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

		defer func(c *websocket.Conn) {
			c.Close()
			utils.Debug("ws", "replay watcher left")
		}(c)

		replayer, err := replay.NewReplayer(recordFile)
		if err != nil {
			utils.Debug("replay", "Could not open record archive; "+err.Error())
			return
		}

		metadata, err := replayer.ReadMetadata()
		if err != nil {
			utils.Debug("replay", "Could not read record metadata; "+err.Error())
			replayer.Close()
			return
		}

		initMsg := types.VizInitMessage{
			Type: "init",
			Data: types.VizInitMessageData{
				Id:          metadata.GameId,
				Name:        metadata.GameName,
				Tps:         metadata.Tps,
				ArenaWidth:  metadata.ArenaWidth,
				ArenaHeight: metadata.ArenaHeight,
			},
		}

		if err := c.WriteJSON(initMsg); err != nil {
			utils.Debug("replay", "Could not send VizInitMessage JSON; "+err.Error())
			replayer.Close()
			return
		}

		tps := metadata.Tps
		if tps <= 0 {
			tps = 10
		}

		tickduration := time.Duration((1000000 / time.Duration(tps)) * time.Microsecond)
		ticker := time.Tick(tickduration)

		/////////////////////////////////////////////////////////////
		/////////////////////////////////////////////////////////////

		clientclosedsocket := make(chan bool, 1)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

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

		vizmsgchan := replayer.Read()
		defer replayer.Stop()

		for {
			select {
			case <-clientclosedsocket:
				{
					utils.Debug("ws", "disconnected")
					return
				}
			case _, ok := <-incomingmsg:
				{
					// a replay takes no inputs; just consume and notice
					// when the socket dies
					if !ok {
						return
					}
				}
			case vizmsg := <-vizmsgchan:
				{
					// End of the record
					if vizmsg == nil {
						return
					}

					<-ticker

					c.WriteMessage(websocket.TextMessage, []byte("{\"type\":\"frame\", \"data\": "+vizmsg.Line+"}"))
				}
			}
		}
	}
}
