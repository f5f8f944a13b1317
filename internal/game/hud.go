package game

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

const hudFontSize = 13

// newHUDFace loads the Go Mono face used for all overlay text.
func newHUDFace() (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: hudFontSize}, nil
}

// hudLines returns the status lines shown in the top-right corner.
func hudLines(st State, seed int64, fps float64) []string {
	heading := normalizeAngle(st.Player.Direction) * 180 / math.Pi
	return []string{
		fmt.Sprintf("level %d  maze %dx%d", st.Level, st.Scene.Width, st.Scene.Height),
		fmt.Sprintf("pos (%.2f, %.2f)  heading %+.0f", st.Player.Position.X, st.Player.Position.Y, heading),
		fmt.Sprintf("seed %d  fps %.0f", seed, fps),
		"WASD move  <- -> turn  M map  R new  C copy",
	}
}

func drawHUD(screen *ebiten.Image, face text.Face, lines []string) {
	w := float64(screen.Bounds().Dx())
	for i, line := range lines {
		lw, _ := text.Measure(line, face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(w-lw-10, float64(8+i*(hudFontSize+4)))
		op.ColorScale.ScaleWithColor(color.RGBA{R: 220, G: 220, B: 200, A: 255})
		text.Draw(screen, line, face, op)
	}
}
