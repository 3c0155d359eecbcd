package config

import (
	"encoding/json"
	"os"

	bettererrors "github.com/xtuc/better-errors"

	"github.com/herdarena/herdarena/common/utils"
	"github.com/herdarena/herdarena/common/utils/number"
	"github.com/herdarena/herdarena/game/herd"
)

// ServerConfig is everything the serve command resolved from flags and
// config files before the simulation starts.
type ServerConfig struct {
	Host          string
	Port          int
	Tps           int
	Name          string
	ArenaWidth    float64
	ArenaHeight   float64
	NbSheep       int
	WebClientPath string
	RecordFile    string
	Tuning        herd.Config
}

// fileTuningConfig mirrors herd.Config field by field; zero values mean
// "keep the default". TurnRate is expressed in degrees per tick in the
// file, radians internally.
type fileTuningConfig struct {
	AwarenessRadius     float64
	ComfortZoneRadius   float64
	PersonalSpaceRadius float64
	MaxVelocity         float64
	MinVelocity         float64
	TurnRateDegrees     float64
	AttractForce        float64
	RepelForce          float64
	PlayerRepelForce    float64
	MomentumWeight      float64
	FoodLossRate        float64
	FoodGainRate        float64
	BorkLifetime        int
}

type fileServerConfig struct {
	Server struct {
		Host         string
		Port         int
		Tps          int
		Name         string
		ArenaWidth   float64
		ArenaHeight  float64
		NbSheep      int
		Webclientdir string
	}
	Tuning fileTuningConfig
}

func LoadServerConfig(filename string) (ServerConfig, error) {
	serverconfig := ServerConfig{
		Tuning: herd.DefaultConfig(),
	}

	data, err := os.ReadFile(filename)

	if err != nil {
		return serverconfig, bettererrors.
			New("Could not read config file").
			With(bettererrors.NewFromErr(err)).
			SetContext("file", filename)
	}

	var config fileServerConfig

	if err := json.Unmarshal(data, &config); err != nil {
		return serverconfig, bettererrors.
			New("Could not parse config file").
			With(bettererrors.NewFromErr(err)).
			SetContext("file", filename)
	}

	assertInt(config.Server.Port, "Port number must be provided in the configuration")
	assertInt(config.Server.Tps, "TPS must be provided in the configuration")
	assertInt(config.Server.NbSheep, "Herd size must be provided in the configuration")
	assertFloat(config.Server.ArenaWidth, "Arena width must be provided in the configuration")
	assertFloat(config.Server.ArenaHeight, "Arena height must be provided in the configuration")

	serverconfig.Host = config.Server.Host
	serverconfig.Port = config.Server.Port
	serverconfig.Tps = config.Server.Tps
	serverconfig.Name = config.Server.Name
	serverconfig.ArenaWidth = config.Server.ArenaWidth
	serverconfig.ArenaHeight = config.Server.ArenaHeight
	serverconfig.NbSheep = config.Server.NbSheep

	if config.Server.Webclientdir != "" {
		serverconfig.WebClientPath = utils.GetAbsoluteDir(config.Server.Webclientdir)
	}

	serverconfig.Tuning = overlayTuning(serverconfig.Tuning, config.Tuning)

	return serverconfig, nil
}

// LoadTuningConfig loads a tuning file on its own, for the --tuning flag.
func LoadTuningConfig(filename string) (herd.Config, error) {
	tuning := herd.DefaultConfig()

	data, err := os.ReadFile(filename)

	if err != nil {
		return tuning, bettererrors.
			New("Could not read tuning file").
			With(bettererrors.NewFromErr(err)).
			SetContext("file", filename)
	}

	var config fileTuningConfig

	if err := json.Unmarshal(data, &config); err != nil {
		return tuning, bettererrors.
			New("Could not parse tuning file").
			With(bettererrors.NewFromErr(err)).
			SetContext("file", filename)
	}

	return overlayTuning(tuning, config), nil
}

func overlayTuning(tuning herd.Config, file fileTuningConfig) herd.Config {
	if file.AwarenessRadius != 0 {
		tuning.AwarenessRadius = file.AwarenessRadius
	}

	if file.ComfortZoneRadius != 0 {
		tuning.ComfortZoneRadius = file.ComfortZoneRadius
	}

	if file.PersonalSpaceRadius != 0 {
		tuning.PersonalSpaceRadius = file.PersonalSpaceRadius
	}

	if file.MaxVelocity != 0 {
		tuning.MaxVelocity = file.MaxVelocity
	}

	if file.MinVelocity != 0 {
		tuning.MinVelocity = file.MinVelocity
	}

	if file.TurnRateDegrees != 0 {
		tuning.TurnRate = number.DegreeToRadian(file.TurnRateDegrees)
	}

	if file.AttractForce != 0 {
		tuning.AttractForce = file.AttractForce
	}

	if file.RepelForce != 0 {
		tuning.RepelForce = file.RepelForce
	}

	if file.PlayerRepelForce != 0 {
		tuning.PlayerRepelForce = file.PlayerRepelForce
	}

	if file.MomentumWeight != 0 {
		tuning.MomentumWeight = file.MomentumWeight
	}

	if file.FoodLossRate != 0 {
		tuning.FoodLossRate = file.FoodLossRate
	}

	if file.FoodGainRate != 0 {
		tuning.FoodGainRate = file.FoodGainRate
	}

	if file.BorkLifetime != 0 {
		tuning.BorkLifetime = file.BorkLifetime
	}

	return tuning
}

func assertInt(value int, err string) {
	utils.Assert(value != 0, err)
}

func assertFloat(value float64, err string) {
	utils.Assert(value != 0, err)
}
