package game

import (
	"image/color"
	"math"
)

const (
	defaultColumns   = 160
	defaultFOVDeg    = 90.0
	defaultNearPlane = 0.25
	defaultFarPlane  = 10.0

	// minWallDist keeps strip heights finite when the player touches a wall.
	minWallDist = 1e-3
)

var (
	ceilingColour = color.RGBA{R: 18, G: 20, B: 26, A: 255}
	floorColour   = color.RGBA{R: 34, G: 32, B: 28, A: 255}
)

// RenderOptions configures the column caster. Zero fields take defaults.
type RenderOptions struct {
	Columns int     // screen columns, one ray each
	FOVDeg  float64 // horizontal field of view in degrees
	Near    float64 // near clipping plane distance, in cells
	Far     float64 // far clipping plane distance, in cells
}

// Renderer turns a player pose and a scene into shaded wall strips.
type Renderer struct {
	Columns int
	FOV     float64 // radians
	Near    float64
	Far     float64
}

// NewRenderer builds a renderer, filling unset options with defaults.
func NewRenderer(opts RenderOptions) *Renderer {
	r := &Renderer{
		Columns: opts.Columns,
		FOV:     opts.FOVDeg * math.Pi / 180.0,
		Near:    opts.Near,
		Far:     opts.Far,
	}
	if r.Columns <= 0 {
		r.Columns = defaultColumns
	}
	if opts.FOVDeg <= 0 || opts.FOVDeg >= 180 {
		r.FOV = defaultFOVDeg * math.Pi / 180.0
	}
	if r.Near <= 0 {
		r.Near = defaultNearPlane
	}
	if r.Far <= 0 {
		r.Far = defaultFarPlane
	}
	return r
}

// Strip is one wall column ready to draw.
type Strip struct {
	Column   int
	Hit      RayHit
	Distance float64 // perpendicular distance to the wall
	Shade    float64 // 1 at the player, 0 at the far plane
	Height   float64 // strip height in surface units
}

// Colour is the grayscale fill for the strip; nearer is brighter.
func (st Strip) Colour() color.RGBA {
	v := uint8(math.Round(255 * st.Shade))
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

// CastStrips casts one ray per column across the near plane and returns the
// visible strips. Columns whose ray leaves the grid or whose wall lies
// beyond the far plane are omitted.
func (r *Renderer) CastStrips(p Player, s *Scene, screenH float64) []Strip {
	left, right := p.FOVRange(r.Near, r.FOV)
	fwd := p.Forward()
	strips := make([]Strip, 0, r.Columns)
	for i := 0; i < r.Columns; i++ {
		sample := left.Lerp(right, float64(i)/float64(r.Columns))
		hit := CastRay(p.Position, sample, s)
		if !hit.InBounds {
			continue
		}
		// Perpendicular distance avoids fisheye at the screen edges.
		dist := hit.Point.Sub(p.Position).Dot(fwd)
		t := 1 - dist/r.Far
		if t <= 0 {
			continue
		}
		if t > 1 {
			t = 1
		}
		strips = append(strips, Strip{
			Column:   i,
			Hit:      hit,
			Distance: dist,
			Shade:    t,
			Height:   screenH / math.Max(dist, minWallDist),
		})
	}
	return strips
}

// Draw renders a full first-person frame onto dst.
func (r *Renderer) Draw(dst Surface, p Player, s *Scene) []Strip {
	w, h := dst.Size()
	sw, sh := float64(w), float64(h)
	dst.Clear()
	dst.FillRect(0, 0, sw, sh/2, ceilingColour)
	dst.FillRect(0, sh/2, sw, sh-sh/2, floorColour)

	colW := sw / float64(r.Columns)
	strips := r.CastStrips(p, s, sh)
	for _, st := range strips {
		dst.FillRect(float64(st.Column)*colW, (sh-st.Height)/2, colW, st.Height, st.Colour())
	}
	return strips
}
