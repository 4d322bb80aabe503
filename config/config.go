package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"wrap-snake/game/types"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	UIRaylib   = "raylib"
	UITerminal = "terminal"
)

// Config holds the host settings. The game core only sees the board size,
// start cell and seed.
type Config struct {
	UI       string
	Width    int // cells
	Height   int // cells
	CellSize int // pixels, raylib only
	Speed    int // ticks per second
	StartX   int // -1 means board centre
	StartY   int
	Seed     uint64 // 0 means time-based
	LogLevel string
	LogFile  string // terminal UI log destination
}

func Default() Config {
	return Config{
		UI:       UIRaylib,
		Width:    types.DefaultWidth,
		Height:   types.DefaultHeight,
		CellSize: types.DefaultCellSize,
		Speed:    types.DefaultSpeed,
		StartX:   -1,
		StartY:   -1,
		LogLevel: "info",
		LogFile:  "snake.log",
	}
}

// Load reads envFiles (".env" when none given), then the SNAKE_* and
// LOG_LEVEL environment variables, then the command-line args. Later
// sources win. Missing env files are not an error.
func Load(args []string, envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	fset := flag.NewFlagSet("snake", flag.ContinueOnError)
	fset.SetOutput(os.Stderr)
	fset.StringVar(&cfg.UI, "ui", cfg.UI, "frontend: raylib or terminal")
	fset.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	fset.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	fset.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "cell size in pixels (raylib)")
	fset.IntVar(&cfg.Speed, "speed", cfg.Speed, "game speed in ticks per second")
	fset.IntVar(&cfg.StartX, "start-x", cfg.StartX, "start column, -1 for centre")
	fset.IntVar(&cfg.StartY, "start-y", cfg.StartY, "start row, -1 for centre")
	fset.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for time-based")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")
	fset.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file for the terminal UI")
	if err := fset.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"SNAKE_UI":       &c.UI,
		"LOG_LEVEL":      &c.LogLevel,
		"SNAKE_LOG_FILE": &c.LogFile,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"SNAKE_WIDTH":   &c.Width,
		"SNAKE_HEIGHT":  &c.Height,
		"SNAKE_CELL":    &c.CellSize,
		"SNAKE_SPEED":   &c.Speed,
		"SNAKE_START_X": &c.StartX,
		"SNAKE_START_Y": &c.StartY,
	}
	for key, dst := range ints {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
		}
		*dst = n
	}

	if v := os.Getenv("SNAKE_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: SNAKE_SEED=%q: %v", ErrInvalid, v, err)
		}
		c.Seed = n
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.UI != UIRaylib && c.UI != UITerminal:
		return fmt.Errorf("%w: unknown ui %q", ErrInvalid, c.UI)
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: board %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Width*c.Height < 2:
		return fmt.Errorf("%w: board %dx%d leaves no room for food", ErrInvalid, c.Width, c.Height)
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell size %d", ErrInvalid, c.CellSize)
	case c.Speed < 1:
		return fmt.Errorf("%w: speed %d", ErrInvalid, c.Speed)
	}
	if c.StartX >= 0 || c.StartY >= 0 {
		if !c.Grid().Contains(c.Start()) {
			return fmt.Errorf("%w: start %v outside %dx%d board", ErrInvalid, c.Start(), c.Width, c.Height)
		}
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

// Start resolves the start cell; negative coordinates fall back to the
// board centre.
func (c Config) Start() types.Point {
	p := c.Grid().Center()
	if c.StartX >= 0 {
		p.X = c.StartX
	}
	if c.StartY >= 0 {
		p.Y = c.StartY
	}
	return p
}

// TickInterval is the delay between two game steps.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Speed)
}
