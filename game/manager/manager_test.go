package manager

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"wrap-snake/game/entity"
	"wrap-snake/game/types"
)

func newFoodManager(w, h int, seed uint64) *FoodManager {
	grid := types.Grid{Width: w, Height: h}
	return NewFoodManager(grid, NewCollisionManager(grid), rand.New(rand.NewSource(seed)))
}

func TestRelocateAvoidsOccupied(t *testing.T) {
	fm := newFoodManager(4, 4, 1)
	occupied := make(map[types.Point]struct{})
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if x == 2 && y == 3 {
				continue
			}
			occupied[types.Point{X: x, Y: y}] = struct{}{}
		}
	}

	for i := 0; i < 20; i++ {
		if err := fm.Relocate(occupied); err != nil {
			t.Fatalf("Relocate: %v", err)
		}
		if fm.Position() != (types.Point{X: 2, Y: 3}) {
			t.Fatalf("food at %v, only (2,3) is free", fm.Position())
		}
	}
}

func TestRelocateStaysInBounds(t *testing.T) {
	fm := newFoodManager(5, 3, 42)
	grid := types.Grid{Width: 5, Height: 3}
	occupied := map[types.Point]struct{}{{X: 0, Y: 0}: {}}
	for i := 0; i < 200; i++ {
		if err := fm.Relocate(occupied); err != nil {
			t.Fatalf("Relocate: %v", err)
		}
		p := fm.Position()
		if !grid.Contains(p) || p == (types.Point{}) {
			t.Fatalf("bad food position %v", p)
		}
	}
}

func TestRelocateBoardFull(t *testing.T) {
	fm := newFoodManager(2, 1, 7)
	if err := fm.Place(types.Point{X: 1, Y: 0}); err != nil {
		t.Fatal(err)
	}
	occupied := map[types.Point]struct{}{
		{X: 0, Y: 0}: {},
		{X: 1, Y: 0}: {},
		{X: 5, Y: 5}: {}, // off-board cells do not count
	}
	err := fm.Relocate(occupied)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("err = %v, want ErrBoardFull", err)
	}
	if fm.Position() != (types.Point{X: 1, Y: 0}) {
		t.Fatalf("food moved to %v on failure", fm.Position())
	}
}

func TestPlaceOutOfBounds(t *testing.T) {
	fm := newFoodManager(3, 3, 1)
	if err := fm.Place(types.Point{X: 3, Y: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestResolveOrder(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	cm := NewCollisionManager(grid)

	s := &entity.Snake{Body: []types.Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 3}}}
	if got := cm.Resolve(s, types.Point{X: 3, Y: 3}); got != FoodCollision {
		t.Fatalf("Resolve = %v, want food", got)
	}
	if got := cm.Resolve(s, types.Point{X: 9, Y: 9}); got != SelfCollision {
		t.Fatalf("Resolve = %v, want self", got)
	}
	s.Body = []types.Point{{X: 3, Y: 3}, {X: 4, Y: 3}}
	if got := cm.Resolve(s, types.Point{X: 9, Y: 9}); got != NoCollision {
		t.Fatalf("Resolve = %v, want none", got)
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 3, Height: 3})
	occ := map[types.Point]struct{}{{X: 1, Y: 1}: {}}
	if cm.ValidateSpawnPosition(types.Point{X: 1, Y: 1}, occ) {
		t.Error("occupied cell accepted")
	}
	if cm.ValidateSpawnPosition(types.Point{X: -1, Y: 0}, occ) {
		t.Error("off-board cell accepted")
	}
	if !cm.ValidateSpawnPosition(types.Point{X: 0, Y: 0}, occ) {
		t.Error("free cell rejected")
	}
}

func TestStateManagerRounds(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sm := NewStateManager(t0)
	first := sm.CurrentRoundID()

	rec := sm.EndRound(4, t0.Add(2*time.Second), 30)
	if rec.ID != first || rec.Score != 4 || rec.Ticks != 30 || rec.Duration != 2*time.Second {
		t.Fatalf("unexpected record %+v", rec)
	}
	if sm.CurrentRoundID() == first {
		t.Fatal("round id not rotated")
	}

	sm.EndRound(2, t0.Add(3*time.Second), 40)
	if sm.GetHighScore() != 4 || sm.GetRounds() != 2 || sm.GetAverageScore() != 3 {
		t.Fatalf("high=%d rounds=%d avg=%f", sm.GetHighScore(), sm.GetRounds(), sm.GetAverageScore())
	}
	if h := sm.GetScoreHistory(); len(h) != 2 || h[1].Ticks != 10 {
		t.Fatalf("history = %+v", h)
	}
}

func TestStateManagerHistoryCap(t *testing.T) {
	sm := NewStateManager(time.Time{})
	for i := 0; i < maxScores+5; i++ {
		sm.EndRound(i, time.Time{}, uint64(i))
	}
	h := sm.GetScoreHistory()
	if len(h) != maxScores {
		t.Fatalf("history len = %d", len(h))
	}
	if h[0].Score != 5 {
		t.Fatalf("oldest kept score = %d, want 5", h[0].Score)
	}
	if sm.GetRounds() != maxScores+5 {
		t.Fatalf("rounds = %d", sm.GetRounds())
	}
}
