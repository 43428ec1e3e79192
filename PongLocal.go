package main

import (
	"fmt"
	"time"

	"ArcadePong/core"
	"ArcadePong/input"
	"ArcadePong/logger"
	"ArcadePong/render"

	"github.com/gdamore/tcell"
)

const FrameRate = 60

// game wires the terminal collaborators around one simulation.
type game struct {
	screen   tcell.Screen
	sim      *core.Simulation
	tracker  *input.Tracker
	renderer *render.Renderer
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

func initUserInput(screen tcell.Screen, done <-chan struct{}) <-chan *tcell.EventKey {
	//初始化channel，去接另一個goroutine丟回來的資料
	inputChan := make(chan *tcell.EventKey, 16)

	//建立一個goroutine去監聽鍵盤的事件
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				select {
				case inputChan <- key:
				case <-done:
					return
				}
			}
		}
	}()

	return inputChan
}

// startGameLoop calls Tick once per frame until the player quits.
func (g *game) startGameLoop() {
	done := make(chan struct{})
	defer close(done)
	inputChan := initUserInput(g.screen, done)

	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	cfg := g.sim.Config()
	g.renderer.Draw(g.sim.Snapshot(), cfg)

	for {
		select {
		case key := <-inputChan:
			if !g.userOperationHandle(key) {
				logger.Log.Info("玩家離開遊戲")
				return
			}
		case now := <-ticker.C:
			snapshot := g.sim.Tick(g.tracker.Directives(now))
			g.renderer.Draw(snapshot, cfg)
		}
	}
}

// userOperationHandle applies a key press and reports whether the loop should keep running.
func (g *game) userOperationHandle(key *tcell.EventKey) bool {
	switch g.tracker.HandleKey(key) {
	case input.Start:
		g.tracker.Reset()
		g.sim.StartMatch()
	case input.TogglePause:
		g.sim.TogglePause()
	case input.Quit:
		return false
	}
	return true
}

func start(cfg core.Config, rng core.RandomSource) error {
	sim, err := core.NewSimulation(cfg, rng)
	if err != nil {
		return err
	}

	screen, err := initScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	g := &game{
		screen:   screen,
		sim:      sim,
		tracker:  input.NewTracker(input.HoldDuration),
		renderer: render.NewRenderer(screen),
	}
	g.startGameLoop()
	return nil
}
