package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wrap-snake/config"
	"wrap-snake/game"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := []game.Option{game.WithLogger(log.Logger)}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}
	session, err := game.NewSession(cfg.Width, cfg.Height, cfg.Start(), opts...)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	log.Info().
		Str("session", session.ID).
		Str("ui", cfg.UI).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("speed", cfg.Speed).
		Msg("starting snake")

	switch cfg.UI {
	case config.UITerminal:
		err = runTerminal(cfg, session)
	default:
		err = runRaylib(cfg, session)
	}

	stats := session.Stats()
	log.Info().
		Str("session", session.ID).
		Int("rounds", stats.GetRounds()).
		Int("high_score", stats.GetHighScore()).
		Float64("average_score", stats.GetAverageScore()).
		Msg("game over")
	return err
}

// setupLogging configures the global zerolog logger. The terminal UI owns
// stdout, so it logs to a file instead.
func setupLogging(cfg config.Config) (func(), error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	closeFn := func() {}
	if cfg.UI == config.UITerminal {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return closeFn, nil
}

// logStep logs round events for one step. A filled board is reported but
// is not fatal; the player restarts from the UI.
func logStep(session *game.Session, res game.StepResult, err error) error {
	switch {
	case errors.Is(err, game.ErrBoardFull):
		log.Info().Uint64("tick", res.Tick).Int("length", res.Target).Msg("board full, waiting for restart")
		return nil
	case err != nil:
		return err
	}

	if res.AteFood {
		log.Debug().Uint64("tick", res.Tick).Int("length", res.Target).Msg("food eaten")
	}
	if res.Collided {
		log.Info().Uint64("tick", res.Tick).Int("high_score", session.Stats().GetHighScore()).Msg("snake bit itself")
	}
	return nil
}
