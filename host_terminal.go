package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"wrap-snake/config"
	"wrap-snake/game"
	"wrap-snake/ui/terminal"
)

func runTerminal(cfg config.Config, session *game.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	renderer := terminal.NewRenderer(screen, session.Grid)
	if !renderer.Fits() {
		return fmt.Errorf("terminal too small for a %dx%d board", session.Grid.Width, session.Grid.Height)
	}
	renderer.DrawFull(session.Snapshot())

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action, dir := terminal.Key(ev.Key(), ev.Rune())
				switch action {
				case terminal.ActionQuit:
					return nil
				case terminal.ActionTurn:
					session.SetDirection(dir)
				case terminal.ActionRestart:
					if err := session.Restart(); err != nil {
						return err
					}
					renderer.DrawFull(session.Snapshot())
				}
			case *tcell.EventResize:
				screen.Sync()
				renderer.DrawFull(session.Snapshot())
			}

		case <-ticker.C:
			if session.Filled() {
				continue
			}
			res, err := session.Step()
			if err := logStep(session, res, err); err != nil {
				return err
			}
			renderer.Apply(res, session.Snapshot())
			if session.Filled() {
				renderer.Message("Board full! Press r to restart, q to quit")
			}
		}
	}
}
