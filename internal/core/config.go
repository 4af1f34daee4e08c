package core

import "fmt"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the host picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Score        int
	Level        int
	Bullets      int  // Remaining shots for the level
	InMenu       bool // Menu is showing, simulation halted
	GameOver     bool // Player has lost
	LevelCleared bool // Enemy collection is momentarily empty
}

// EventKind identifies something notable that happened during a tick or
// while applying a command.
type EventKind int

const (
	EventEnemyKilled EventKind = iota + 1
	EventCoinSpawned
	EventCoinCollected
	EventCoinExpired
	EventPlayerLost
	EventLevelStarted
	EventPurchase
	EventRestart
	EventMenuToggled
	EventSpawnFallback
)

func (k EventKind) String() string {
	switch k {
	case EventEnemyKilled:
		return "enemy-killed"
	case EventCoinSpawned:
		return "coin-spawned"
	case EventCoinCollected:
		return "coin-collected"
	case EventCoinExpired:
		return "coin-expired"
	case EventPlayerLost:
		return "player-lost"
	case EventLevelStarted:
		return "level-started"
	case EventPurchase:
		return "purchase"
	case EventRestart:
		return "restart"
	case EventMenuToggled:
		return "menu-toggled"
	case EventSpawnFallback:
		return "spawn-fallback"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a single notable occurrence. Value carries a kind-specific
// number (level reached, score awarded) and Detail a short label.
type Event struct {
	Kind   EventKind
	Value  int
	Detail string
}

// StepResult is returned after each simulation tick or applied command.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
