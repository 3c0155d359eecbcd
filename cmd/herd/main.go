package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/skratchdot/open-golang/open"
	"github.com/urfave/cli"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/herdarena/herdarena/common"
	"github.com/herdarena/herdarena/common/healthcheck"
	"github.com/herdarena/herdarena/common/influxdb"
	"github.com/herdarena/herdarena/common/recording"
	"github.com/herdarena/herdarena/common/replay"
	"github.com/herdarena/herdarena/common/utils"
	"github.com/herdarena/herdarena/common/utils/vector"
	"github.com/herdarena/herdarena/game/herd"
	"github.com/herdarena/herdarena/server"
	"github.com/herdarena/herdarena/server/config"
	"github.com/herdarena/herdarena/vizserver"
	viztypes "github.com/herdarena/herdarena/vizserver/types"
)

const (
	TIME_BEFORE_FORCE_QUIT = 10 * time.Second
)

func main() {
	rand.Seed(time.Now().UnixNano())

	app := makeapp()
	app.Run(os.Args)
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "Herd Arena cli tool"
	app.Description = "Herd Arena cli tool"
	app.Version = utils.GetVersion()

	app.Commands = []cli.Command{
		{
			Name:    "serve",
			Aliases: []string{"s"},
			Usage:   "Run a herd simulation and its visualization",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "host", Value: "", Usage: "Host serving the visualization; all interfaces if left empty"},
				cli.IntFlag{Name: "port", Value: 8080, Usage: "Port serving the visualization"},
				cli.IntFlag{Name: "tps", Value: 60, Usage: "Number of ticks per second"},
				cli.IntFlag{Name: "sheep", Value: 24, Usage: "Number of sheep in the herd"},
				cli.Float64Flag{Name: "width", Value: 1200, Usage: "Arena width"},
				cli.Float64Flag{Name: "height", Value: 800, Usage: "Arena height"},
				cli.StringFlag{Name: "name", Value: "", Usage: "Name of the game"},
				cli.StringFlag{Name: "config", Value: "", Usage: "Server config file; takes precedence over the other flags"},
				cli.StringFlag{Name: "tuning", Value: "", Usage: "Herd tuning file"},
				cli.StringFlag{Name: "record-file", Value: "", Usage: "Destination file for recording the game"},
				cli.StringFlag{Name: "webclient", Value: "", Usage: "Directory of the web client assets"},
				cli.IntFlag{Name: "healthcheck-port", Value: 0, Usage: "Port of the healthcheck server; disabled when 0"},
				cli.BoolFlag{Name: "no-browser", Usage: "Disable automatic browser opening at start"},
			},
			Action: func(c *cli.Context) error {
				serveAction(
					c.String("host"),
					c.Int("port"),
					c.Int("tps"),
					c.Int("sheep"),
					c.Float64("width"),
					c.Float64("height"),
					c.String("name"),
					c.String("config"),
					c.String("tuning"),
					c.String("record-file"),
					c.String("webclient"),
					c.Int("healthcheck-port"),
					c.Bool("no-browser"),
				)
				return nil
			},
		},
		{
			Name:    "replay",
			Aliases: []string{"r"},
			Usage:   "Serve the visualization of a recorded game",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "record-file", Value: "", Usage: "Record file to replay; required"},
				cli.IntFlag{Name: "port", Value: 8080, Usage: "Port serving the visualization"},
				cli.StringFlag{Name: "webclient", Value: "", Usage: "Directory of the web client assets"},
				cli.BoolFlag{Name: "no-browser", Usage: "Disable automatic browser opening at start"},
			},
			Action: func(c *cli.Context) error {
				replayAction(
					c.String("record-file"),
					c.Int("port"),
					c.String("webclient"),
					c.Bool("no-browser"),
				)
				return nil
			},
		},
	}

	return app
}

func serveAction(host string, port int, tps int, nbsheep int, arenawidth float64, arenaheight float64, name string, configFile string, tuningFile string, recordFile string, webclientpath string, hcport int, nobrowser bool) {

	cfg := config.ServerConfig{
		Host:        host,
		Port:        port,
		Tps:         tps,
		Name:        name,
		ArenaWidth:  arenawidth,
		ArenaHeight: arenaheight,
		NbSheep:     nbsheep,
		Tuning:      herd.DefaultConfig(),
	}

	if configFile != "" {
		loaded, err := config.LoadServerConfig(configFile)
		if err != nil {
			utils.FailWith(err)
		}

		cfg = loaded
	}

	if tuningFile != "" {
		tuning, err := config.LoadTuningConfig(tuningFile)
		if err != nil {
			utils.FailWith(err)
		}

		cfg.Tuning = tuning
	}

	if webclientpath != "" {
		cfg.WebClientPath = utils.GetAbsoluteDir(webclientpath)
	}

	if cfg.WebClientPath == "" {
		cfg.WebClientPath = utils.GetExecutableDir() + "/webclient/"
	}

	cfg.RecordFile = recordFile

	game := herd.NewHerdGame(cfg.Tuning)
	game.NewEntityDoggo(vector.MakeVector2(cfg.ArenaWidth/2, cfg.ArenaHeight/2))

	for i := 0; i < cfg.NbSheep; i++ {
		spawn := vector.MakeVector2(
			cfg.ArenaWidth*(0.25+rand.Float64()/2),
			cfg.ArenaHeight*(0.25+rand.Float64()/2),
		)

		game.NewEntitySheep(spawn, vector.MakeRandomVector2(), 1.0)
	}

	var recorder recording.RecorderInterface = recording.MakeEmptyRecorder()
	if cfg.RecordFile != "" {
		recorder = recording.MakeSingleGameRecorder(cfg.RecordFile)
	}

	metrics, err := influxdb.NewClient("herd-server")
	utils.Check(err, "Could not initialize the metrics client")

	srv := server.NewServer(cfg, game, recorder, metrics)

	recorder.RecordMetadata(recording.RecordMetadata{
		GameId:      srv.GetId(),
		GameName:    srv.GetName(),
		Tps:         srv.GetTps(),
		ArenaWidth:  srv.GetArenaWidth(),
		ArenaHeight: srv.GetArenaHeight(),
		Date:        time.Now().Format(time.RFC3339),
	})

	vizgame := viztypes.NewVizGame(srv)
	srv.RegisterMetricsGauge("watchers", vizgame.GetNumberWatchers)

	vizservice := vizserver.NewVizService(
		cfg.Host+":"+strconv.Itoa(cfg.Port),
		cfg.WebClientPath,
		func() ([]*viztypes.VizGame, error) { return []*viztypes.VizGame{vizgame}, nil },
		"",
	)

	vizservice.Start()

	var hc *healthcheck.HealthCheckServer
	if hcport > 0 {
		hc = NewHealthCheck(srv, "http://localhost:"+strconv.Itoa(cfg.Port)+"/", hcport)
		hc.Start()
	}

	// handling signals
	shutdownChan := make(chan bool)
	go func() {
		<-common.SignalHandler()
		shutdownChan <- true
	}()

	serverChan := srv.Start()

	url := "http://localhost:" + strconv.Itoa(cfg.Port) + "/game/" + srv.GetId()

	if !nobrowser {
		open.Run(url)
	}

	fmt.Println("\033[0;34m\nGame running at " + url + "\033[0m\n")

	// Wait until someone asks for shutdown
	select {
	case <-serverChan:
	case <-shutdownChan:
	}

	// Force quit if the programs didn't exit
	go func() {
		<-time.After(TIME_BEFORE_FORCE_QUIT)

		berror := bettererrors.New("Forced shutdown")

		utils.FailWith(berror)
	}()

	utils.Debug("herd", "Shutdown...")

	srv.Stop()

	recorder.Close()
	recorder.Stop()

	vizservice.Stop()

	if hc != nil {
		hc.Stop()
	}

	metrics.TearDown()
}

func replayAction(recordFile string, port int, webclientpath string, nobrowser bool) {

	if recordFile == "" {
		utils.FailWith(bettererrors.New("Record file must be set; see --record-file"))
	}

	if webclientpath == "" {
		webclientpath = utils.GetExecutableDir() + "/webclient/"
	} else {
		webclientpath = utils.GetAbsoluteDir(webclientpath)
	}

	replayer, err := replay.NewReplayer(recordFile)
	if err != nil {
		utils.FailWith(err)
	}

	metadata, err := replayer.ReadMetadata()
	if err != nil {
		utils.FailWith(err)
	}

	replayer.Close()

	utils.Debug("replay", "Replaying "+metadata.GameName+" recorded on "+metadata.Date)

	vizservice := vizserver.NewVizService(
		":"+strconv.Itoa(port),
		webclientpath,
		func() ([]*viztypes.VizGame, error) { return []*viztypes.VizGame{}, nil },
		recordFile,
	)

	vizservice.Start()

	url := "http://localhost:" + strconv.Itoa(port) + "/replay"

	if !nobrowser {
		open.Run(url)
	}

	fmt.Println("\033[0;34m\nReplay running at " + url + "\033[0m\n")

	<-common.SignalHandler()
	utils.Debug("sighandler", "RECEIVED SHUTDOWN SIGNAL; closing.")

	vizservice.Stop()
}
