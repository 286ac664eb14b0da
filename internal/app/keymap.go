package app

import "lifeview/internal/session"

// Key names understood by the viewer. The GUI maps ebiten keys onto these.
const (
	KeyRotate       = "R"
	KeyFlipH        = "H"
	KeyFlipV        = "V"
	KeyPause        = "Space"
	KeyDiscard      = "Escape"
	KeyOpen         = "O"
	KeyQuit         = "Q"
	KeySlower       = "BracketLeft"
	KeyFaster       = "BracketRight"
	KeyFewerFrames  = "Minus"
	KeyMoreFrames   = "Equal"
	KeySmallerSteps = "Comma"
	KeyLargerSteps  = "Period"
)

var keymap = map[string]session.Event{
	KeyRotate:       session.Rotate{},
	KeyFlipH:        session.FlipH{},
	KeyFlipV:        session.FlipV{},
	KeyPause:        session.TogglePause{},
	KeyDiscard:      session.Discard{},
	KeySlower:       session.Adjust{Key: session.KeyIPS, Dir: -1},
	KeyFaster:       session.Adjust{Key: session.KeyIPS, Dir: 1},
	KeyFewerFrames:  session.Adjust{Key: session.KeyFPS, Dir: -1},
	KeyMoreFrames:   session.Adjust{Key: session.KeyFPS, Dir: 1},
	KeySmallerSteps: session.Adjust{Key: session.KeyStep, Dir: -1},
	KeyLargerSteps:  session.Adjust{Key: session.KeyStep, Dir: 1},
}

// EventForKey returns the session event bound to a key name.
func EventForKey(name string) (session.Event, bool) {
	ev, ok := keymap[name]
	return ev, ok
}

// Command is a key binding handled by the game loop instead of the session.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandOpen
)

var commands = map[string]Command{
	KeyQuit: CommandQuit,
	KeyOpen: CommandOpen,
}

// CommandForKey returns the game-loop command bound to a key name.
func CommandForKey(name string) Command {
	return commands[name]
}
