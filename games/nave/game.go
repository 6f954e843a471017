// @focus: #sys { lifecycle }
package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termunator/components"
	"github.com/lixenwraith/termunator/config"
	"github.com/lixenwraith/termunator/constants"
	"github.com/lixenwraith/termunator/core"
	"github.com/lixenwraith/termunator/engine"
	"github.com/lixenwraith/termunator/systems"
)

var shipRows = []string{
	" ^^ ",
	"/00\\",
	"|==|",
	" /\\ ",
}

// Screen is what the game needs from the terminal
type Screen interface {
	engine.Environment
	systems.InputSource
	SetContent(x, y int, r rune, style tcell.Style)
	Clear()
	Size() (int, int)
	Resized() bool
}

// game wires one nave session onto a world
type game struct {
	world  *engine.World
	screen Screen
	cfg    config.Config
	ship   core.Entity
	draw   *systems.DrawSystem
	player systems.SoundPlayer
}

func newGame(world *engine.World, screen Screen, cfg config.Config, player systems.SoundPlayer) *game {
	return &game{world: world, screen: screen, cfg: cfg, player: player}
}

// start claims the terminal, spawns the ship and registers systems
func (g *game) start() error {
	w, h, err := g.world.Init(g.cfg.Width, g.cfg.Height)
	if err != nil {
		return err
	}

	g.ship = g.world.CreateEntity()
	engine.AddComponent(g.world, g.ship, components.Position{X: constants.ShipStartX, Y: constants.ShipStartY})
	engine.AddComponent(g.world, g.ship, components.Velocity{VX: constants.ShipSpeedX, VY: constants.ShipSpeedY})
	body := components.NewBody(shipRows...)
	body.Style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	engine.AddComponent(g.world, g.ship, body)
	engine.AddComponent(g.world, g.ship, components.NewKeyState())
	engine.AddComponent(g.world, g.ship, components.NewGameState(g.cfg.TickRate, w, h))
	engine.AddComponent(g.world, g.ship, components.Sound{Pending: components.CueStart})

	g.draw = systems.NewDrawSystem(g.screen, w, h, g.cfg.Border)

	g.world.AddSystem("handle_events", systems.NewHandleEventsSystem(g.screen))
	g.world.AddSystem("player", systems.NewPlayerSystem())
	g.world.AddSystem("time_keeper", systems.NewTimeKeeperSystem())
	if g.player != nil {
		g.world.AddSystem("audio", systems.NewAudioSystem(g.player))
	}
	g.world.AddSystem("draw", g.draw)
	return nil
}

// quitRequested reports whether q or Ctrl-C was observed in the last tick
func (g *game) quitRequested() bool {
	ks, ok := engine.GetComponent[components.KeyState](g.world, g.ship)
	if !ok {
		return true
	}
	return ks.IsPressed(constants.KeyQuit) || ks.IsPressed(components.KeyInterrupt)
}

// rescale refits the work area after a terminal resize
func (g *game) rescale() {
	capW, capH := g.screen.Size()
	if capW <= 0 || capH <= 0 {
		return
	}
	w, h := engine.ScaleDimensions(g.cfg.Width, g.cfg.Height, capW, capH)
	g.world.Resize(w, h)
	if gs := engine.GetComponentMut[components.GameState](g.world, g.ship); gs != nil {
		gs.WindowW, gs.WindowH = w, h
	}
	g.draw.Resize(w, h)
}

// step runs one tick; false once the player asked to quit
func (g *game) step() bool {
	if g.quitRequested() {
		return false
	}
	if g.screen.Resized() {
		g.rescale()
	}
	g.draw.Caption = g.status()
	g.world.Update(g.cfg.TickRate)
	return true
}

func (g *game) status() string {
	pos, _ := engine.GetComponent[components.Position](g.world, g.ship)
	w, h := g.draw.Buffer().Width(), g.draw.Buffer().Height()
	return fmt.Sprintf(constants.StatusTemplate, g.world.Tick(), g.cfg.TickRate, w, h, pos.X, pos.Y)
}

// run loops until quit
func (g *game) run() {
	for g.step() {
	}
}
