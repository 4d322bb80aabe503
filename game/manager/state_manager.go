package manager

import (
	"time"

	"github.com/google/uuid"
)

const maxScores = 50 // rounds kept in History

// RoundRecord describes one finished round, from a (re)start to the next
// reset.
type RoundRecord struct {
	ID        string        `json:"id"`
	Score     int           `json:"score"` // length reached
	Ticks     uint64        `json:"ticks"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
}

// StateManager keeps round history for the current process. Nothing is
// written to disk.
type StateManager struct {
	highScore    int
	rounds       int
	totalScore   int
	scoreHistory []RoundRecord

	roundID    string
	roundStart time.Time
	roundTick  uint64
}

func NewStateManager(now time.Time) *StateManager {
	sm := &StateManager{
		scoreHistory: make([]RoundRecord, 0, maxScores),
	}
	sm.BeginRound(now, 0)
	return sm
}

// BeginRound marks the start of a new round at the given tick.
func (sm *StateManager) BeginRound(now time.Time, tick uint64) {
	sm.roundID = uuid.New().String()
	sm.roundStart = now
	sm.roundTick = tick
}

// EndRound records the round that just finished and starts the next one.
func (sm *StateManager) EndRound(score int, now time.Time, tick uint64) RoundRecord {
	rec := RoundRecord{
		ID:        sm.roundID,
		Score:     score,
		Ticks:     tick - sm.roundTick,
		StartTime: sm.roundStart,
		EndTime:   now,
		Duration:  now.Sub(sm.roundStart),
	}

	sm.rounds++
	sm.totalScore += score
	sm.UpdateScore(score)

	if len(sm.scoreHistory) >= maxScores {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, rec)

	sm.BeginRound(now, tick)
	return rec
}

// UpdateScore raises the high score if score beats it.
func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// GetAverageScore averages over every finished round, not only History.
func (sm *StateManager) GetAverageScore() float64 {
	if sm.rounds == 0 {
		return 0
	}
	return float64(sm.totalScore) / float64(sm.rounds)
}

func (sm *StateManager) GetRounds() int {
	return sm.rounds
}

// GetScoreHistory returns a copy of the most recent rounds, oldest first.
func (sm *StateManager) GetScoreHistory() []RoundRecord {
	out := make([]RoundRecord, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

func (sm *StateManager) CurrentRoundID() string {
	return sm.roundID
}
