// Command particle-network animates a field of drifting particles that
// shy away from the mouse and link up with fading lines.
//
// Usage
//
//	particle-network [-config file.toml] [-term] [flags]
//
// By default the field runs in a desktop window. With -term it is drawn in
// the terminal instead. Esc or q quits; in the window, V toggles the vision
// overlay.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-network/config"
	"github.com/olivierh59500/particle-network/network"
	"github.com/olivierh59500/particle-network/terminal"
)

func main() {
	log.SetPrefix("particle-network: ")
	log.SetFlags(0)

	conf, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	seed := conf.ResolveSeed(time.Now().UnixNano())
	sim, err := network.New(float64(conf.Width), float64(conf.Height), conf.Network(),
		network.WithRand(rand.New(rand.NewSource(seed))))
	if err != nil {
		log.Fatal(err)
	}

	if conf.Terminal {
		runTerminal(sim, conf)
		return
	}

	ebiten.SetWindowSize(conf.Width, conf.Height)
	ebiten.SetWindowTitle("Particle Network")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(conf.FPS)
	ebiten.SetCursorMode(cursorMode(conf.Cursor))

	if err := ebiten.RunGame(NewSimulation(sim, conf)); err != nil {
		log.Fatal(err)
	}
}

func runTerminal(sim *network.Simulator, conf *config.Config) {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	terminal.New(screen, sim, conf.FPS, conf.CellWidth, conf.CellHeight).Run(ctx)
}

// cursorMode hides the system cursor while the custom one is drawn.
func cursorMode(custom bool) ebiten.CursorModeType {
	if custom {
		return ebiten.CursorModeHidden
	}
	return ebiten.CursorModeVisible
}
