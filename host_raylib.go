package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"wrap-snake/config"
	"wrap-snake/game"
	"wrap-snake/ui"
)

func runRaylib(cfg config.Config, session *game.Session) error {
	width, height := ui.WindowSize(session.Grid, cfg.CellSize)
	rl.InitWindow(width, height, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyEscape)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()
	updateInterval := cfg.TickInterval()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyR) {
			if err := session.Restart(); err != nil {
				return err
			}
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		for _, dir := range ui.PollRaylibDirection() {
			session.SetDirection(dir)
		}

		// Update game state at fixed interval
		if !session.Filled() && time.Since(lastUpdate) >= updateInterval {
			lastUpdate = time.Now()
			res, err := session.Step()
			if err := logStep(session, res, err); err != nil {
				return err
			}
		}

		renderer.Draw(session.Snapshot(), session.Stats().GetScoreHistory())
	}
	return nil
}
