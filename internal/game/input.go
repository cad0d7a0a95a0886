package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridquest/internal/world"
)

// Action is a player instruction.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionCast
	ActionShoot
	ActionSwitch
	ActionInspect
	ActionSharpen
	ActionWait
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionMoveUp:    "move_up",
	ActionMoveDown:  "move_down",
	ActionAttack:    "attack",
	ActionCast:      "cast",
	ActionShoot:     "shoot",
	ActionSwitch:    "switch",
	ActionInspect:   "inspect",
	ActionSharpen:   "sharpen",
	ActionWait:      "wait",
	ActionQuit:      "quit",
}

// String returns the action name used in traces.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Direction returns the movement direction of a move action.
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveLeft:
		return world.Left, true
	case ActionMoveRight:
		return world.Right, true
	case ActionMoveUp:
		return world.Up, true
	case ActionMoveDown:
		return world.Down, true
	}
	return 0, false
}

// MoveAction returns the move action for a direction.
func MoveAction(d world.Direction) Action {
	switch d {
	case world.Left:
		return ActionMoveLeft
	case world.Right:
		return ActionMoveRight
	case world.Up:
		return ActionMoveUp
	case world.Down:
		return ActionMoveDown
	}
	return ActionNone
}

// Command is an action plus its argument.
type Command struct {
	Action Action
	Spell  string // spell name for ActionCast
}

const (
	spellRemove  = "remove"
	spellStealer = "hp-stealer"
)

// viKeys are the single letter spellings of the directions.
var viKeys = map[string]string{
	"h": "left",
	"l": "right",
	"k": "up",
	"j": "down",
}

// keyToCommand maps a tcell key event to a command.
func keyToCommand(ev *tcell.EventKey) Command {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return Command{Action: ActionMoveUp}
	case tcell.KeyDown:
		return Command{Action: ActionMoveDown}
	case tcell.KeyRight:
		return Command{Action: ActionMoveRight}
	case tcell.KeyLeft:
		return Command{Action: ActionMoveLeft}
	case tcell.KeyTab:
		return Command{Action: ActionSwitch}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyRune:
	default:
		return Command{}
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return Command{Action: ActionMoveUp}
	case 'j', 'J':
		return Command{Action: ActionMoveDown}
	case 'l', 'L':
		return Command{Action: ActionMoveRight}
	case 'h', 'H':
		return Command{Action: ActionMoveLeft}
	case 'a', 'A':
		return Command{Action: ActionAttack}
	case 'r', 'R':
		return Command{Action: ActionCast, Spell: spellRemove}
	case 'e', 'E':
		return Command{Action: ActionCast, Spell: spellStealer}
	case 'f', 'F':
		return Command{Action: ActionShoot}
	case 'i', 'I':
		return Command{Action: ActionInspect}
	case 's', 'S':
		return Command{Action: ActionSharpen}
	case '.':
		return Command{Action: ActionWait}
	case 'q', 'Q':
		return Command{Action: ActionQuit}
	}
	return Command{}
}

// ParseCommand parses one line of line-mode input. An empty line is ActionNone.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, nil
	}

	word := fields[0]
	if name, ok := viKeys[word]; ok {
		word = name
	}
	if dir, err := world.ParseDirection(word); err == nil {
		return Command{Action: MoveAction(dir)}, nil
	}

	switch word {
	case "move", "go":
		if len(fields) < 2 {
			return Command{}, fmt.Errorf("%s needs a direction", word)
		}
		dir, err := world.ParseDirection(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Action: MoveAction(dir)}, nil
	case "a", "attack":
		return Command{Action: ActionAttack}, nil
	case "r", "remove":
		return Command{Action: ActionCast, Spell: spellRemove}, nil
	case "e", "steal", spellStealer:
		return Command{Action: ActionCast, Spell: spellStealer}, nil
	case "cast":
		if len(fields) < 2 {
			return Command{}, errors.New("cast needs a spell name")
		}
		return Command{Action: ActionCast, Spell: fields[1]}, nil
	case "f", "shoot":
		return Command{Action: ActionShoot}, nil
	case "tab", "switch":
		return Command{Action: ActionSwitch}, nil
	case "i", "inspect":
		return Command{Action: ActionInspect}, nil
	case "s", "sharpen":
		return Command{Action: ActionSharpen}, nil
	case ".", "wait":
		return Command{Action: ActionWait}, nil
	case "q", "quit":
		return Command{Action: ActionQuit}, nil
	}
	return Command{}, fmt.Errorf("unknown command %q", fields[0])
}
