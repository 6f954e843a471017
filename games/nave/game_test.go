package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termunator/audio"
	"github.com/lixenwraith/termunator/components"
	"github.com/lixenwraith/termunator/config"
	"github.com/lixenwraith/termunator/engine"
	"github.com/lixenwraith/termunator/systems"
	"github.com/lixenwraith/termunator/terminal"
)

type recordingPlayer struct {
	played []audio.SoundType
}

func (p *recordingPlayer) Play(s audio.SoundType) {
	p.played = append(p.played, s)
}

func newTestGame(t *testing.T, player *recordingPlayer) (*game, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	screen := terminal.NewWithScreen(sim)
	world := engine.NewWorld(
		engine.WithEnvironment(screen),
		engine.WithClock(engine.NewMockClock(time.Unix(0, 0))),
	)
	t.Cleanup(func() { _ = world.Close() })

	// A nil *recordingPlayer must not become a non-nil interface
	var sp systems.SoundPlayer
	if player != nil {
		sp = player
	}
	g := newGame(world, screen, config.Default(), sp)
	require.NoError(t, g.start())
	return g, sim
}

func TestStartSpawnsShip(t *testing.T) {
	g, _ := newTestGame(t, nil)

	assert.Equal(t, engine.StateActive, g.world.State())
	w, h := g.world.Size()
	assert.Equal(t, 32, w)
	assert.Equal(t, 9, h)

	pos, ok := engine.GetComponent[components.Position](g.world, g.ship)
	require.True(t, ok)
	assert.Equal(t, components.Position{X: 0, Y: 5}, pos)

	vel, ok := engine.GetComponent[components.Velocity](g.world, g.ship)
	require.True(t, ok)
	assert.Equal(t, components.Velocity{VX: 1, VY: 1}, vel)

	assert.Equal(t, []string{"handle_events", "player", "time_keeper", "draw"}, g.world.Systems().Names())
}

func TestStepMovesShipAndDraws(t *testing.T) {
	g, sim := newTestGame(t, nil)

	sim.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	require.True(t, g.step())

	pos, _ := engine.GetComponent[components.Position](g.world, g.ship)
	assert.Equal(t, 1.0, pos.X)
	assert.Equal(t, 5.0, pos.Y)

	// Ship origin at (1,5): top row " ^^ " puts '^' at columns 2 and 3
	r, _, _, _ := sim.GetContent(2, 5)
	assert.Equal(t, '^', r)
	r, _, _, _ = sim.GetContent(1, 6)
	assert.Equal(t, '/', r)

	// Border corner
	r, _, _, _ = sim.GetContent(0, 0)
	assert.Equal(t, '*', r)
}

func TestKeyPressLastsOneTick(t *testing.T) {
	g, sim := newTestGame(t, nil)

	sim.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	require.True(t, g.step())
	require.True(t, g.step())

	pos, _ := engine.GetComponent[components.Position](g.world, g.ship)
	assert.Equal(t, 6.0, pos.Y, "one press moves once")
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, sim := newTestGame(t, nil)

			sim.InjectKey(tt.key, tt.r, tcell.ModNone)
			require.True(t, g.step(), "key is observed during the tick")
			assert.False(t, g.step(), "loop stops at the top of the next iteration")
		})
	}
}

func TestResizeRescalesWorld(t *testing.T) {
	g, sim := newTestGame(t, nil)
	require.True(t, g.step())

	// 32x9 into 64x6: height bound, width 32*6/9
	sim.SetSize(64, 6)
	require.NoError(t, sim.PostEvent(tcell.NewEventResize(64, 6)))
	require.True(t, g.step(), "resize is observed during the tick")
	require.True(t, g.step(), "work area is refit at the top of the next iteration")

	w, h := g.world.Size()
	assert.Equal(t, 21, w)
	assert.Equal(t, 6, h)

	gs, ok := engine.GetComponent[components.GameState](g.world, g.ship)
	require.True(t, ok)
	assert.Equal(t, 21, gs.WindowW)
	assert.Equal(t, 6, gs.WindowH)
	assert.Equal(t, 21, g.draw.Buffer().Width())
	assert.Equal(t, 6, g.draw.Buffer().Height())
}

func TestAudioCuesPlayed(t *testing.T) {
	player := &recordingPlayer{}
	g, sim := newTestGame(t, player)

	assert.Equal(t, []string{"handle_events", "player", "time_keeper", "audio", "draw"}, g.world.Systems().Names())

	require.True(t, g.step())
	assert.Equal(t, []audio.SoundType{audio.SoundStart}, player.played)

	sim.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	require.True(t, g.step())
	assert.Equal(t, []audio.SoundType{audio.SoundStart, audio.SoundStep}, player.played)
}

func TestCloseRestoresTerminal(t *testing.T) {
	g, _ := newTestGame(t, nil)

	require.NoError(t, g.world.Close())
	assert.Equal(t, engine.StateClosed, g.world.State())
	require.NoError(t, g.world.Close())
}
