package core

// Command is a discrete player intent, abstracted from physical key presses.
// Hosts translate their own input events into commands and hand them to the
// game one at a time; commands are never queued or batched.
type Command int

const (
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandShootUp
	CommandShootDown
	CommandShootLeft
	CommandShootRight
	CommandToggleMenu
	CommandRestart
	CommandBuyBullets
	CommandBuyRemoveEnemies
	CommandBuyScoreBoost
	CommandQuit
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandMoveUp:
		return "move-up"
	case CommandMoveDown:
		return "move-down"
	case CommandMoveLeft:
		return "move-left"
	case CommandMoveRight:
		return "move-right"
	case CommandShootUp:
		return "shoot-up"
	case CommandShootDown:
		return "shoot-down"
	case CommandShootLeft:
		return "shoot-left"
	case CommandShootRight:
		return "shoot-right"
	case CommandToggleMenu:
		return "toggle-menu"
	case CommandRestart:
		return "restart"
	case CommandBuyBullets:
		return "buy-bullets"
	case CommandBuyRemoveEnemies:
		return "buy-remove-enemies"
	case CommandBuyScoreBoost:
		return "buy-score-boost"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit vector for the direction in window space
// (y grows downward).
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MoveDirection returns the direction of a movement command.
func (c Command) MoveDirection() (Direction, bool) {
	switch c {
	case CommandMoveUp:
		return DirUp, true
	case CommandMoveDown:
		return DirDown, true
	case CommandMoveLeft:
		return DirLeft, true
	case CommandMoveRight:
		return DirRight, true
	}
	return 0, false
}

// ShootDirection returns the direction of a shoot command.
func (c Command) ShootDirection() (Direction, bool) {
	switch c {
	case CommandShootUp:
		return DirUp, true
	case CommandShootDown:
		return DirDown, true
	case CommandShootLeft:
		return DirLeft, true
	case CommandShootRight:
		return DirRight, true
	}
	return 0, false
}
