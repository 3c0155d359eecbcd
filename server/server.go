package server

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	notify "github.com/bitly/go-notify"
	uuid "github.com/satori/go.uuid"
	"github.com/ttacon/chalk"

	"github.com/herdarena/herdarena/common/influxdb"
	"github.com/herdarena/herdarena/common/recording"
	"github.com/herdarena/herdarena/common/types"
	"github.com/herdarena/herdarena/common/utils"
	"github.com/herdarena/herdarena/common/utils/number"
	"github.com/herdarena/herdarena/game/common"
	"github.com/herdarena/herdarena/server/config"
)

// Server drives the simulation clock. Each tick it folds the inputs
// received since the previous tick into the game, steps the world and
// publishes the produced frame to the recorder, the notify relays and the
// state observers.
type Server struct {
	id       string
	config   config.ServerConfig
	game     common.GameInterface
	recorder recording.RecorderInterface
	metrics  *influxdb.Client

	stopticking chan bool
	tickspersec int

	currentturn      utils.Tickturn
	currentturnmutex *sync.Mutex

	lasttick time.Time

	pendinginputs      []types.InputEvent
	pendinginputsmutex *sync.Mutex

	stateobservers      []chan []byte
	stateobserversmutex *sync.Mutex

	tickCounter   *influxdb.Counter
	inputCounter  *influxdb.Counter
	metricsGauges map[string]func() int

	debugNbTicks  int
	debugNbInputs int

	tearDownCallbacks      []types.TearDownCallback
	tearDownCallbacksMutex *sync.Mutex
}

func NewServer(cfg config.ServerConfig, game common.GameInterface, recorder recording.RecorderInterface, metrics *influxdb.Client) *Server {
	return &Server{
		id:       uuid.NewV4().String(),
		config:   cfg,
		game:     game,
		recorder: recorder,
		metrics:  metrics,

		stopticking: make(chan bool),
		tickspersec: cfg.Tps,

		currentturnmutex: &sync.Mutex{},

		pendinginputs:      make([]types.InputEvent, 0),
		pendinginputsmutex: &sync.Mutex{},

		stateobservers:      make([]chan []byte, 0),
		stateobserversmutex: &sync.Mutex{},

		tickCounter:   influxdb.NewCounter(),
		inputCounter:  influxdb.NewCounter(),
		metricsGauges: make(map[string]func() int),

		tearDownCallbacks:      make([]types.TearDownCallback, 0),
		tearDownCallbacksMutex: &sync.Mutex{},
	}
}

// <GameDescriptionInterface>

func (server *Server) GetId() string {
	return server.id
}

func (server *Server) GetName() string {
	if server.config.Name == "" {
		return "Herd Arena"
	}

	return server.config.Name
}

func (server *Server) GetTps() int {
	return server.tickspersec
}

func (server *Server) GetArenaWidth() float64 {
	return server.config.ArenaWidth
}

func (server *Server) GetArenaHeight() float64 {
	return server.config.ArenaHeight
}

// </GameDescriptionInterface>

func (server *Server) GetGame() common.GameInterface {
	return server.game
}

func (server *Server) setTurn(turn utils.Tickturn) {
	server.currentturnmutex.Lock()
	defer server.currentturnmutex.Unlock()

	server.currentturn = turn
}

func (server *Server) GetTurn() utils.Tickturn {
	server.currentturnmutex.Lock()
	defer server.currentturnmutex.Unlock()

	return server.currentturn
}

// PushInput buffers one input event for the next tick. Safe for
// concurrent use; events fold into the game in arrival order.
func (server *Server) PushInput(input types.InputEvent) {
	server.pendinginputsmutex.Lock()
	server.pendinginputs = append(server.pendinginputs, input)
	server.debugNbInputs++
	server.pendinginputsmutex.Unlock()
}

func (server *Server) takePendingInputs() []types.InputEvent {
	server.pendinginputsmutex.Lock()
	inputs := server.pendinginputs
	server.pendinginputs = make([]types.InputEvent, 0)
	server.pendinginputsmutex.Unlock()

	return inputs
}

// SubscribeStateObservation registers a frame observer; every produced
// viz frame is delivered to it asynchronously.
func (server *Server) SubscribeStateObservation() chan []byte {
	ch := make(chan []byte)

	server.stateobserversmutex.Lock()
	server.stateobservers = append(server.stateobservers, ch)
	server.stateobserversmutex.Unlock()

	return ch
}

func (server *Server) listen() chan interface{} {
	block := make(chan interface{})
	notify.Start("app:stopticking", block)

	return block
}

// Start launches the input inbox, the monitoring loop, the metrics loop
// and the ticker. The returned channel yields once the tick loop has
// wound down after Stop.
func (server *Server) Start() chan interface{} {
	utils.Debug("server", "Starting game "+server.GetName()+" ("+server.id+")")

	block := server.listen()

	inputchan := make(chan interface{})
	notify.Start("game:input:"+server.id, inputchan)

	go func() {
		for data := range inputchan {
			input, ok := data.(types.InputEvent)

			if !ok {
				utils.Debug("server", "Discarded malformed input event")
				continue
			}

			server.PushInput(input)
		}
	}()

	server.AddTearDownCall(func() error {
		notify.Stop("game:input:"+server.id, inputchan)

		return nil
	})

	stopmonitoring := make(chan bool)
	go server.monitoring(stopmonitoring)

	server.AddTearDownCall(func() error {
		close(stopmonitoring)

		return nil
	})

	server.startMetrics()
	server.startTicking()

	return block
}

func (server *Server) Stop() {
	utils.Debug("server", "TearDown from stop")
	server.TearDown()
}

func (server *Server) startTicking() {

	tickduration := time.Duration((1000000 / time.Duration(server.tickspersec)) * time.Microsecond)
	ticker := time.Tick(tickduration)

	server.AddTearDownCall(func() error {
		server.stopticking <- true
		close(server.stopticking)

		return nil
	})

	go func() {

		for {
			select {
			case <-server.stopticking:
				{
					utils.Debug("core-loop", "Received stop ticking signal")
					notify.Post("app:stopticking", nil)
					return
				}
			case <-ticker:
				{
					server.doTick()
				}
			}
		}
	}()
}

func (server *Server) doTick() {

	turn := server.GetTurn()
	server.setTurn(turn.Next())

	dolog := int(turn.GetSeq())%server.tickspersec == 0

	if dolog {
		utils.Debug("core-loop", "######## Tick ######## "+strconv.Itoa(int(turn.GetSeq())))
	}

	// dt is expressed in frames: 1.0 when the loop holds its cadence,
	// more when a tick came in late
	now := time.Now()
	dt := 1.0

	if !server.lasttick.IsZero() {
		dt = number.DurationMs(now.Sub(server.lasttick)) / (1000.0 / float64(server.tickspersec))
	}

	server.lasttick = now

	inputs := server.takePendingInputs()

	server.game.Step(int(turn.GetSeq()), dt, inputs)

	server.debugNbTicks++
	server.tickCounter.Add(1)
	server.inputCounter.Add(len(inputs))

	frame := server.game.ProduceVizMessageJson()

	server.recorder.Record(string(frame))

	notify.PostTimeout("viz:frame:"+server.id, string(frame), time.Millisecond)

	server.stateobserversmutex.Lock()
	for _, observer := range server.stateobservers {
		go func(ch chan []byte) {
			ch <- frame
		}(observer)
	}
	server.stateobserversmutex.Unlock()
}

func (server *Server) monitoring(stopChannel chan bool) {
	monitorfreq := time.Second
	debugNbTicks := 0
	debugNbInputs := 0

	for {
		select {
		case <-stopChannel:
			{
				return
			}
		case <-time.After(monitorfreq):
			{
				fmt.Print(chalk.Cyan)
				log.Println(
					"-- MONITORING --",
					server.debugNbTicks-debugNbTicks, "ticks per", monitorfreq,
					";",
					server.debugNbInputs-debugNbInputs, "inputs per", monitorfreq,
					chalk.Reset,
				)

				debugNbTicks = server.debugNbTicks
				debugNbInputs = server.debugNbInputs
			}
		}
	}
}

// RegisterMetricsGauge adds a sampled value to the periodic app metric.
// Gauges must be registered before Start.
func (server *Server) RegisterMetricsGauge(name string, fn func() int) {
	server.metricsGauges[name] = fn
}

func (server *Server) startMetrics() {
	server.metrics.Loop(func() {
		fields := map[string]interface{}{
			"ticks":  server.tickCounter.GetAndReset(),
			"inputs": server.inputCounter.GetAndReset(),
		}

		for name, fn := range server.metricsGauges {
			fields[name] = fn()
		}

		server.metrics.WriteAppMetric("herd-server", fields)
	})
}

func (server *Server) AddTearDownCall(fn types.TearDownCallback) {
	server.tearDownCallbacksMutex.Lock()
	defer server.tearDownCallbacksMutex.Unlock()

	server.tearDownCallbacks = append(server.tearDownCallbacks, fn)
}

func (server *Server) TearDown() {
	utils.Debug("server", "teardown")

	server.tearDownCallbacksMutex.Lock()

	for i := len(server.tearDownCallbacks) - 1; i >= 0; i-- {
		utils.Debug("teardown", "Executing TearDownCallback")
		server.tearDownCallbacks[i]()
	}

	// Reset to avoid calling teardown callbacks twice
	server.tearDownCallbacks = make([]types.TearDownCallback, 0)

	server.tearDownCallbacksMutex.Unlock()
}
