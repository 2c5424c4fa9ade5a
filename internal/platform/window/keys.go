package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// keyActions maps raylib key codes to actions. Only the arrows steer, as
// in the classic windowed game.
var keyActions = map[int32]core.Action{
	rl.KeyUp:     core.ActionUp,
	rl.KeyDown:   core.ActionDown,
	rl.KeyLeft:   core.ActionLeft,
	rl.KeyRight:  core.ActionRight,
	rl.KeyEnter:  core.ActionConfirm,
	rl.KeySpace:  core.ActionConfirm,
	rl.KeyEscape: core.ActionBack,
	rl.KeyR:      core.ActionRestart,
	rl.KeyQ:      core.ActionQuit,
}

// pressedActions drains the key queue for this frame, in press order.
func pressedActions() []core.Action {
	var actions []core.Action
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if a, ok := keyActions[key]; ok {
			actions = append(actions, a)
		}
	}
	return actions
}
