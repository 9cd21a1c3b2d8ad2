package game

import "github.com/gdamore/tcell/v2"

type commandKind int

const (
	cmdNone commandKind = iota
	cmdQuit
	cmdMove
	cmdCloseDoors
	cmdDescend
	cmdAscend
	cmdLook
	cmdCancel
)

// command is one player intent decoded from a key press.
type command struct {
	kind   commandKind
	dx, dy int
}

func move(dx, dy int) command {
	return command{kind: cmdMove, dx: dx, dy: dy}
}

// runeCommands maps character keys; hjkl/yubn move like the arrow keys.
var runeCommands = map[rune]command{
	'h': move(-1, 0),
	'j': move(0, 1),
	'k': move(0, -1),
	'l': move(1, 0),
	'y': move(-1, -1),
	'u': move(1, -1),
	'b': move(-1, 1),
	'n': move(1, 1),
	'c': {kind: cmdCloseDoors},
	'>': {kind: cmdDescend},
	'<': {kind: cmdAscend},
	'x': {kind: cmdLook},
	'q': {kind: cmdQuit},
	'Q': {kind: cmdQuit},
}

// commandFor decodes a key event. Escape quits while exploring and leaves
// look mode otherwise.
func commandFor(ev *tcell.EventKey, state State) command {
	switch ev.Key() {
	case tcell.KeyEscape:
		if state == StateLook {
			return command{kind: cmdCancel}
		}
		return command{kind: cmdQuit}
	case tcell.KeyCtrlC:
		return command{kind: cmdQuit}
	case tcell.KeyUp:
		return move(0, -1)
	case tcell.KeyDown:
		return move(0, 1)
	case tcell.KeyLeft:
		return move(-1, 0)
	case tcell.KeyRight:
		return move(1, 0)
	case tcell.KeyRune:
		if cmd, ok := runeCommands[ev.Rune()]; ok {
			return cmd
		}
	}
	return command{kind: cmdNone}
}
