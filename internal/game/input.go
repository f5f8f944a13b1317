package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// sampleInput reads the keyboard once for the current tick. Movement keys
// are level-held; toggles fire on the press edge only.
func sampleInput() Input {
	return Input{
		Intent: Intent{
			Forward:     anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
			Back:        anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
			StrafeLeft:  anyPressed(ebiten.KeyA),
			StrafeRight: anyPressed(ebiten.KeyD),
			TurnLeft:    anyPressed(ebiten.KeyArrowLeft, ebiten.KeyQ),
			TurnRight:   anyPressed(ebiten.KeyArrowRight, ebiten.KeyE),
		},
		ToggleMinimap: inpututil.IsKeyJustPressed(ebiten.KeyM),
		NewMaze:       inpututil.IsKeyJustPressed(ebiten.KeyR),
		CopyMaze:      inpututil.IsKeyJustPressed(ebiten.KeyC),
	}
}
