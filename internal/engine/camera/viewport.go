package camera

// DefaultMaxPixelRatio caps HiDPI scaling; beyond 2x the extra fill cost buys little.
const DefaultMaxPixelRatio = 2

// Viewport is the window area in points plus the device pixel ratio.
type Viewport struct {
	Width      int
	Height     int
	PixelRatio float32
}

// Aspect returns width/height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Ratio returns the pixel ratio clamped to [1, maxRatio].
func (v Viewport) Ratio(maxRatio float32) float32 {
	r := v.PixelRatio
	if r <= 0 {
		r = 1
	}
	if maxRatio > 0 && r > maxRatio {
		r = maxRatio
	}
	return r
}

// DrawableSize returns the render target size in pixels, at least 1x1.
func (v Viewport) DrawableSize(maxRatio float32) (width, height int32) {
	r := v.Ratio(maxRatio)
	width = int32(float32(v.Width)*r + 0.5)
	height = int32(float32(v.Height)*r + 0.5)
	return max(width, 1), max(height, 1)
}
