package herd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/herdarena/herdarena/common/types"
	"github.com/herdarena/herdarena/common/utils/vector"
)

func pressBork() []types.InputEvent {
	return []types.InputEvent{{Control: types.ControlBork, Down: true}}
}

func makeTestGame(config Config) *HerdGame {
	game := NewHerdGame(config)

	game.NewEntityDoggo(vector.MakeVector2(600, 400))

	game.NewEntitySheep(vector.MakeVector2(500, 400), vector.MakeNullVector2(), 1.0)
	game.NewEntitySheep(vector.MakeVector2(700, 400), vector.MakeNullVector2(), 1.0)
	game.NewEntitySheep(vector.MakeVector2(600, 300), vector.MakeNullVector2(), 1.0)
	game.NewEntitySheep(vector.MakeVector2(600, 500), vector.MakeNullVector2(), 1.2)

	return game
}

func TestStepDeterminism(t *testing.T) {
	one := makeTestGame(DefaultConfig())
	two := makeTestGame(DefaultConfig())

	script := map[int][]types.InputEvent{
		0: {{Control: types.ControlForward, Down: true}},
		2: pressBork(),
		4: {{Control: types.ControlTurnLeft, Down: true}},
		7: {{Control: types.ControlForward, Down: false}},
	}

	for ticknum := 0; ticknum < 12; ticknum++ {
		one.Step(ticknum, 1.0, script[ticknum])
		two.Step(ticknum, 1.0, script[ticknum])

		assert.Equal(t, one.Snapshot(), two.Snapshot())
	}
}

func TestStepIsOrderIndependent(t *testing.T) {
	config := DefaultConfig()

	one := NewHerdGame(config)
	one.NewEntitySheep(vector.MakeVector2(100, 100), vector.MakeNullVector2(), 1.0)
	one.NewEntitySheep(vector.MakeVector2(110, 100), vector.MakeNullVector2(), 1.0)

	// same herd, spawned in reverse order
	two := NewHerdGame(config)
	two.NewEntitySheep(vector.MakeVector2(110, 100), vector.MakeNullVector2(), 1.0)
	two.NewEntitySheep(vector.MakeVector2(100, 100), vector.MakeNullVector2(), 1.0)

	one.Step(0, 1.0, nil)
	two.Step(0, 1.0, nil)

	// every sheep sees the same pre-tick herd whatever the storage order
	assert.Equal(t, one.Snapshot().Sheep[0], two.Snapshot().Sheep[1])
	assert.Equal(t, one.Snapshot().Sheep[1], two.Snapshot().Sheep[0])
}

func TestElapsedAccumulatesDt(t *testing.T) {
	game := NewHerdGame(DefaultConfig())

	game.Step(0, 0.5, nil)
	game.Step(1, 0.5, nil)
	game.Step(2, 2.0, nil)

	assert.InDelta(t, 3.0, game.GetElapsed(), floatDelta)
	assert.Equal(t, 2, game.GetTicknum())
}

func TestHeldControlsPersistAcrossTicks(t *testing.T) {
	game := NewHerdGame(DefaultConfig())
	game.NewEntityDoggo(vector.MakeVector2(100, 100))

	game.Step(0, 1.0, []types.InputEvent{{Control: types.ControlForward, Down: true}})
	afterOne := game.Snapshot().Doggo

	game.Step(1, 1.0, nil)
	afterTwo := game.Snapshot().Doggo

	assert.True(t, afterOne.Position.Equals(vector.MakeVector2(100, 105)))
	assert.True(t, afterTwo.Position.Equals(vector.MakeVector2(100, 110)))
}

func TestInputFoldingLastWriteWins(t *testing.T) {
	game := NewHerdGame(DefaultConfig())
	game.NewEntityDoggo(vector.MakeVector2(100, 100))

	// press and release within the same tick: the release wins
	game.Step(0, 1.0, []types.InputEvent{
		{Control: types.ControlForward, Down: true},
		{Control: types.ControlForward, Down: false},
	})

	doggo := game.Snapshot().Doggo
	assert.False(t, doggo.Controls.Forward)
	assert.True(t, doggo.Position.Equals(vector.MakeVector2(100, 100)))
}

func TestBorkLedgerLifecycle(t *testing.T) {
	config := DefaultConfig()
	config.BorkLifetime = 3

	game := NewHerdGame(config)
	game.NewEntityDoggo(vector.MakeVector2(100, 100))

	// double trigger within a tick: one marker
	game.Step(0, 1.0, append(pressBork(), pressBork()...))

	snapshot := game.Snapshot()
	assert.Len(t, snapshot.Borks, 1)
	assert.Equal(t, 3, snapshot.Borks[0].Ttl)
	assert.Len(t, game.borkIndex, 1)

	// the ledger entry resolves to a live entity
	id := game.borkIndex[MakeBorkKey(vector.MakeVector2(100, 100))]
	assert.NotNil(t, game.getEntity(id, game.ttlComponent))

	// re-triggering the occupied spot is a no-op; the marker still ages
	game.Step(1, 1.0, pressBork())
	snapshot = game.Snapshot()
	assert.Len(t, snapshot.Borks, 1)
	assert.Equal(t, 2, snapshot.Borks[0].Ttl)

	game.Step(2, 1.0, nil)
	snapshot = game.Snapshot()
	assert.Len(t, snapshot.Borks, 1)
	assert.Equal(t, 1, snapshot.Borks[0].Ttl)

	// lifetime of 3: present in exactly 3 frames, gone on the fourth
	game.Step(3, 1.0, nil)
	assert.Len(t, game.Snapshot().Borks, 0)
	assert.Len(t, game.borkIndex, 0)

	// the freed spot accepts a fresh marker
	game.Step(4, 1.0, pressBork())
	snapshot = game.Snapshot()
	assert.Len(t, snapshot.Borks, 1)
	assert.Equal(t, 3, snapshot.Borks[0].Ttl)
}

func TestBorkPositionAndDirection(t *testing.T) {
	config := DefaultConfig()

	game := NewHerdGame(config)
	game.NewEntityDoggo(vector.MakeVector2(100, 100))

	// borking before ever moving: the marker carries no direction
	game.Step(0, 1.0, append(
		[]types.InputEvent{{Control: types.ControlForward, Down: true}},
		pressBork()...,
	))

	snapshot := game.Snapshot()
	assert.Len(t, snapshot.Borks, 1)
	assert.True(t, snapshot.Borks[0].Position.Equals(vector.MakeVector2(100, 100)))
	assert.True(t, snapshot.Borks[0].Direction.IsNull())

	// next tick the doggo is already running north; the bork drops at its
	// pre-move position, aimed along its velocity
	game.Step(1, 1.0, pressBork())

	snapshot = game.Snapshot()
	assert.Len(t, snapshot.Borks, 2)
	assert.True(t, snapshot.Borks[1].Position.Equals(vector.MakeVector2(100, 105)))
	assert.True(t, snapshot.Borks[1].Direction.Equals(vector.MakeVector2(0, 1)))
}

func TestBorkReleaseEdgeIsIgnored(t *testing.T) {
	game := NewHerdGame(DefaultConfig())
	game.NewEntityDoggo(vector.MakeVector2(100, 100))

	game.Step(0, 1.0, []types.InputEvent{{Control: types.ControlBork, Down: false}})

	assert.Len(t, game.Snapshot().Borks, 0)
}

func TestHerdFleesTheDoggo(t *testing.T) {
	config := DefaultConfig()

	game := NewHerdGame(config)
	game.NewEntityDoggo(vector.MakeVector2(600, 400))
	game.NewEntitySheep(vector.MakeVector2(600, 300), vector.MakeNullVector2(), 1.0)

	game.Step(0, 1.0, nil)

	sheep := game.Snapshot().Sheep[0]

	// straight flight away from the doggo, at the speed ceiling
	assert.InDelta(t, 0.0, sheep.Velocity.GetX(), floatDelta)
	assert.InDelta(t, -config.MaxVelocity, sheep.Velocity.GetY(), floatDelta)
}

func TestSheepWithoutDoggo(t *testing.T) {
	game := NewHerdGame(DefaultConfig())
	game.NewEntitySheep(vector.MakeVector2(100, 100), vector.MakeVector2(1, 0), 1.0)

	// a game without a doggo still steps; nobody flees the origin
	game.Step(0, 1.0, nil)

	sheep := game.Snapshot().Sheep[0]
	assert.True(t, sheep.Velocity.Equals(vector.MakeVector2(1, 0)))
	assert.True(t, sheep.Position.Equals(vector.MakeVector2(101, 100)))
}

func TestProduceVizMessageJson(t *testing.T) {
	game := makeTestGame(DefaultConfig())
	game.Step(0, 1.0, pressBork())

	frame := string(game.ProduceVizMessageJson())

	assert.Contains(t, frame, `"Tick":0`)
	assert.Contains(t, frame, `"Doggo"`)
	assert.Contains(t, frame, `"Sheep"`)
	assert.Contains(t, frame, `"Borks"`)
	assert.Contains(t, frame, `"State":"flocking"`)
}
