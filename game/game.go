package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"wrap-snake/game/entity"
	"wrap-snake/game/manager"
	"wrap-snake/game/types"
)

var (
	// ErrEmptyBoard is returned for boards with no cells.
	ErrEmptyBoard = errors.New("board has zero area")
	// ErrStartOutOfBounds is returned when the start cell is off the board.
	ErrStartOutOfBounds = errors.New("start position outside board")
	// ErrFoodOnSnake is returned when food is placed on a body segment.
	ErrFoodOnSnake = errors.New("cell occupied by snake")
	// ErrBoardFull mirrors manager.ErrBoardFull for callers of this package.
	ErrBoardFull = manager.ErrBoardFull
)

// StepResult tells the renderer what changed during one Step.
type StepResult struct {
	Head       types.Point
	Vacated    *types.Point // erased cell, nil when the tail stayed
	AteFood    bool
	Collided   bool
	ClearBoard bool // previous drawing is stale, repaint everything
	Length     int // segments on the board
	Target     int // length the snake is growing towards
	Food       types.Point
	Tick       uint64
}

// Snapshot is a read-only copy of the session for renderers.
type Snapshot struct {
	ID        string
	Grid      types.Grid
	Segments  []types.Point
	Direction types.Direction
	Food      types.Point
	Length    int
	Target    int
	Tick      uint64
	HighScore int
	Rounds    int
	Filled    bool
}

// Session owns the snake and the food for one game and advances them one
// tick at a time. It is not safe for concurrent use.
type Session struct {
	ID   string
	Grid types.Grid

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodManager  *manager.FoodManager
	stateManager *manager.StateManager

	rng    *rand.Rand
	now    func() time.Time
	logger zerolog.Logger

	tick   uint64
	filled bool
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for food placement and reset
// directions.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithSeed is WithRand with a fresh source seeded from seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithClock overrides time.Now for round bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession creates a length-1 snake heading right at start and places the
// food on a free cell.
func NewSession(width, height int, start types.Point, opts ...Option) (*Session, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("new session %dx%d: %w", width, height, ErrEmptyBoard)
	}
	grid := types.Grid{Width: width, Height: height}
	if !grid.Contains(start) {
		return nil, fmt.Errorf("new session start %v on %dx%d: %w", start, width, height, ErrStartOutOfBounds)
	}

	s := &Session{
		ID:     uuid.New().String(),
		Grid:   grid,
		now:    time.Now,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	s.snake = entity.NewSnake(start)
	s.collisionMgr = manager.NewCollisionManager(grid)
	s.foodManager = manager.NewFoodManager(grid, s.collisionMgr, s.rng)
	s.stateManager = manager.NewStateManager(s.now())

	if err := s.foodManager.Relocate(s.snake.Occupied()); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s.logger.Debug().
		Str("session", s.ID).
		Int("width", width).
		Int("height", height).
		Stringer("start", start).
		Stringer("food", s.foodManager.Position()).
		Msg("session created")

	return s, nil
}

// SetDirection queues a turn for the next Step. Reversals are ignored.
func (s *Session) SetDirection(d types.Direction) bool {
	return s.snake.SetPendingDirection(d)
}

// Step advances the game by one tick. The only error is ErrBoardFull, when
// the snake covers every cell; the session then refuses to move until
// Restart.
func (s *Session) Step() (StepResult, error) {
	if s.filled {
		return s.result(), fmt.Errorf("step at tick %d: %w", s.tick, ErrBoardFull)
	}

	s.snake.Advance(s.Grid)
	s.tick++

	res := s.result()
	res.Vacated = s.snake.Vacated

	switch s.collisionMgr.Resolve(s.snake, s.foodManager.Position()) {
	case manager.FoodCollision:
		s.snake.Grow()
		s.stateManager.UpdateScore(s.snake.TargetLength)
		res.AteFood = true
		res.Target = s.snake.TargetLength
		if err := s.foodManager.Relocate(s.foodExclusion()); err != nil {
			s.filled = true
			s.logger.Info().Str("session", s.ID).Int("length", s.snake.TargetLength).Msg("board filled")
			return res, fmt.Errorf("step at tick %d: %w", s.tick, err)
		}
		res.Food = s.foodManager.Position()
		s.logger.Debug().Uint64("tick", s.tick).Int("target", s.snake.TargetLength).Stringer("food", res.Food).Msg("food eaten")

	case manager.SelfCollision:
		length := s.snake.Len()
		if err := s.reset(); err != nil {
			return res, fmt.Errorf("step at tick %d: %w", s.tick, err)
		}
		s.logger.Debug().Uint64("tick", s.tick).Int("length", length).Msg("self collision, snake reset")

		res = s.result()
		res.Collided = true
		res.ClearBoard = true
	}

	return res, nil
}

// Restart ends the current round and puts the snake and food back as after
// a collision.
func (s *Session) Restart() error {
	if err := s.reset(); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	s.filled = false
	return nil
}

func (s *Session) reset() error {
	s.stateManager.EndRound(s.snake.TargetLength, s.now(), s.tick)
	s.snake.Reset(s.rng)
	return s.foodManager.Relocate(s.snake.Occupied())
}

// foodExclusion is the body plus the cell the tail just left, so fresh food
// never appears right behind the head. The vacated cell is released again
// when it is the last free cell.
func (s *Session) foodExclusion() map[types.Point]struct{} {
	occupied := s.snake.Occupied()
	if v := s.snake.Vacated; v != nil && len(occupied)+1 < s.Grid.Area() {
		occupied[*v] = struct{}{}
	}
	return occupied
}

func (s *Session) result() StepResult {
	return StepResult{
		Head:   s.snake.Head(),
		Length: s.snake.Len(),
		Target: s.snake.TargetLength,
		Food:   s.foodManager.Position(),
		Tick:   s.tick,
	}
}

// Snapshot copies the state a renderer needs.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:        s.ID,
		Grid:      s.Grid,
		Segments:  s.snake.Segments(),
		Direction: s.snake.Direction,
		Food:      s.foodManager.Position(),
		Length:    s.snake.Len(),
		Target:    s.snake.TargetLength,
		Tick:      s.tick,
		HighScore: s.stateManager.GetHighScore(),
		Rounds:    s.stateManager.GetRounds(),
		Filled:    s.filled,
	}
}

// Status is the one-line summary shown under the board.
func (snap Snapshot) Status() string {
	return fmt.Sprintf("Length: %d  Best: %d  Rounds: %d  Tick: %d",
		snap.Target, snap.HighScore, snap.Rounds, snap.Tick)
}

// Snake exposes the snake for inspection. Callers must not mutate it.
func (s *Session) Snake() *entity.Snake {
	return s.snake
}

func (s *Session) Food() types.Point {
	return s.foodManager.Position()
}

// PlaceFood puts the food on p, for staging positions in tools and tests.
func (s *Session) PlaceFood(p types.Point) error {
	if _, taken := s.snake.Occupied()[p]; taken {
		return fmt.Errorf("place food at %v: %w", p, ErrFoodOnSnake)
	}
	return s.foodManager.Place(p)
}

func (s *Session) Stats() *manager.StateManager {
	return s.stateManager
}

func (s *Session) Tick() uint64 {
	return s.tick
}

// Filled reports whether the snake covered the whole board.
func (s *Session) Filled() bool {
	return s.filled
}
