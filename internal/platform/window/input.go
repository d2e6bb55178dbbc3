package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// keyBindings lists the keys held for each game action.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionFire:    {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// inputFrom builds the input frame from a key state query.
func inputFrom(pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if pressed(k) {
				in.Set(action)
				break
			}
		}
	}
	return in
}
