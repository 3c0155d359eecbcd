package herd

import (
	json "encoding/json"

	"github.com/bytearena/ecs"

	commontypes "github.com/herdarena/herdarena/common/types"
	"github.com/herdarena/herdarena/common/utils/vector"
	"github.com/herdarena/herdarena/game/common"
)

// HerdGame drives the herding simulation: a flock of autonomous sheep, the
// player-controlled doggo chasing them, and the transient bork markers the
// doggo leaves behind. All entity state lives in the ecs manager; Step
// owns it exclusively for the duration of the call.
type HerdGame struct {
	ticknum int
	elapsed float64

	config  Config
	manager *ecs.Manager

	physicalBodyComponent *ecs.Component
	behaviorComponent     *ecs.Component
	playerComponent       *ecs.Component
	ttlComponent          *ecs.Component
	renderComponent       *ecs.Component

	sheepView  *ecs.View
	playerView *ecs.View
	borksView  *ecs.View

	// borkIndex maps quantized positions to live bork entities; it is what
	// makes double triggers from the same spot idempotent
	borkIndex map[BorkKey]ecs.EntityID
}

func NewHerdGame(config Config) *HerdGame {
	manager := ecs.NewManager()

	game := &HerdGame{
		config:  config,
		manager: manager,

		physicalBodyComponent: manager.NewComponent(),
		behaviorComponent:     manager.NewComponent(),
		playerComponent:       manager.NewComponent(),
		ttlComponent:          manager.NewComponent(),
		renderComponent:       manager.NewComponent(),

		borkIndex: make(map[BorkKey]ecs.EntityID),
	}

	game.sheepView = manager.CreateView(
		game.behaviorComponent,
		game.physicalBodyComponent,
	)

	game.playerView = manager.CreateView(
		game.playerComponent,
		game.physicalBodyComponent,
	)

	game.borksView = manager.CreateView(
		game.ttlComponent,
		game.physicalBodyComponent,
	)

	return game
}

func (game HerdGame) GetConfig() Config {
	return game.config
}

func (game HerdGame) GetTicknum() int {
	return game.ticknum
}

func (game HerdGame) GetElapsed() float64 {
	return game.elapsed
}

func (game *HerdGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

func (game *HerdGame) doggoPosition() (vector.Vector2, bool) {
	for _, entityresult := range game.playerView.Get() {
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		return physicalAspect.GetPosition(), true
	}

	return vector.MakeNullVector2(), false
}

// <GameInterface>

func (game *HerdGame) ImplementsGameInterface() {}

func (game *HerdGame) Subscribe(event string, cbk func(data interface{})) common.GameEventSubscription {
	return common.GameEventSubscription(0)
}

func (game *HerdGame) Unsubscribe(subscription common.GameEventSubscription) {}

func (game *HerdGame) Step(ticknum int, dt float64, inputs []commontypes.InputEvent) {

	game.ticknum = ticknum

	///////////////////////////////////////////////////////////////////////////
	// On replie les inputs du tour dans le doggo
	///////////////////////////////////////////////////////////////////////////

	systemInputs(game, inputs)

	///////////////////////////////////////////////////////////////////////////
	// On déplace le doggo
	///////////////////////////////////////////////////////////////////////////

	systemLocomotion(game, dt)

	///////////////////////////////////////////////////////////////////////////
	// On fait avancer le troupeau contre l'état d'avant le tour
	///////////////////////////////////////////////////////////////////////////

	systemFlocking(game, dt)

	///////////////////////////////////////////////////////////////////////////
	// On fait vieillir les borks
	///////////////////////////////////////////////////////////////////////////

	systemTtl(game)

	game.elapsed += dt
}

func (game *HerdGame) ProduceVizMessageJson() []byte {
	msg := commontypes.VizMessage{
		Tick:    game.ticknum,
		Elapsed: game.elapsed,
		Sheep:   []commontypes.VizSheepMessage{},
		Borks:   []commontypes.VizBorkMessage{},
	}

	for _, entityresult := range game.sheepView.Get() {

		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		behaviorAspect := game.CastBehavior(entityresult.Components[game.behaviorComponent])

		msg.Sheep = append(msg.Sheep, commontypes.VizSheepMessage{
			Id:       entityresult.Entity.GetID().String(),
			Position: physicalAspect.GetPosition(),
			Velocity: physicalAspect.GetVelocity(),
			Mass:     physicalAspect.GetMass(),
			Food:     behaviorAspect.GetFood(),
			State:    behaviorAspect.GetState().String(),
		})
	}

	for _, entityresult := range game.playerView.Get() {

		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		msg.Doggo = commontypes.VizDoggoMessage{
			Position:    physicalAspect.GetPosition(),
			Velocity:    physicalAspect.GetVelocity(),
			Orientation: physicalAspect.GetOrientation(),
		}
	}

	for _, entityresult := range game.borksView.Get() {

		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		ttlAspect := game.CastTtl(entityresult.Components[game.ttlComponent])

		msg.Borks = append(msg.Borks, commontypes.VizBorkMessage{
			Position:  physicalAspect.GetPosition(),
			Direction: physicalAspect.GetVelocity(),
			Ttl:       ttlAspect.GetValue(),
		})
	}

	res, _ := json.Marshal(msg)
	return res
}

// </GameInterface>
