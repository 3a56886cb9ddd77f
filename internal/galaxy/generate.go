package galaxy

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PointCloud holds per-point positions and colours, three floats per point,
// laid out for direct upload into vertex buffers.
type PointCloud struct {
	Positions []float32
	Colors    []float32
}

// Len returns the number of points.
func (c *PointCloud) Len() int {
	return len(c.Positions) / 3
}

// Position returns point i.
func (c *PointCloud) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{c.Positions[i*3], c.Positions[i*3+1], c.Positions[i*3+2]}
}

// Color returns the colour of point i in [0,1] channel space.
func (c *PointCloud) Color(i int) mgl32.Vec3 {
	return mgl32.Vec3{c.Colors[i*3], c.Colors[i*3+1], c.Colors[i*3+2]}
}

// Bounds returns the axis-aligned box enclosing all points.
// An empty cloud has zero bounds.
func (c *PointCloud) Bounds() (lo, hi mgl32.Vec3) {
	if c.Len() == 0 {
		return lo, hi
	}
	lo = c.Position(0)
	hi = lo
	for i := 1; i < c.Len(); i++ {
		p := c.Position(i)
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], p[a])
			hi[a] = max(hi[a], p[a])
		}
	}
	return lo, hi
}

// Generate builds a point cloud for p, drawing all randomness from src.
//
// Each point takes seven draws in a fixed order: its radius, then a magnitude
// and a sign for each of the X, Y and Z scatter offsets. Arm membership comes
// from the point index, not from a draw.
func Generate(p Parameters, src Source) (*PointCloud, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cloud := &PointCloud{
		Positions: make([]float32, p.Count*3),
		Colors:    make([]float32, p.Count*3),
	}

	inside := p.InsideColor.Color()
	outside := p.OutsideColor.Color()

	maxRadius := float64(p.Radius)
	branches := float64(p.Branches)

	for i := 0; i < p.Count; i++ {
		i3 := i * 3

		radius := src.Float64() * maxRadius
		branchAngle := float64(i%p.Branches) / branches * 2 * math.Pi
		spinAngle := radius * float64(p.Spin)

		offX := scatter(src, p, radius)
		offY := scatter(src, p, radius)
		offZ := scatter(src, p, radius)

		angle := branchAngle + spinAngle
		cloud.Positions[i3] = float32(math.Cos(angle)*radius + offX)
		cloud.Positions[i3+1] = float32(offY)
		cloud.Positions[i3+2] = float32(math.Sin(angle)*radius + offZ)

		mixed := inside.BlendRgb(outside, radius/maxRadius)
		cloud.Colors[i3] = float32(mixed.R)
		cloud.Colors[i3+1] = float32(mixed.G)
		cloud.Colors[i3+2] = float32(mixed.B)
	}

	return cloud, nil
}

// scatter draws one signed offset. Raising the sample to RandomnessPower pulls
// most offsets toward the arm while leaving a long tail.
func scatter(src Source, p Parameters, radius float64) float64 {
	mag := math.Pow(src.Float64(), float64(p.RandomnessPower))
	sign := 1.0
	if src.Float64() >= 0.5 {
		sign = -1
	}
	return mag * sign * float64(p.Randomness) * radius
}

// BranchCounts returns how many of count points land on each arm.
func BranchCounts(count, branches int) []int {
	if branches < 1 {
		return nil
	}
	counts := make([]int, branches)
	if count <= 0 {
		return counts
	}
	for b := range counts {
		counts[b] = count / branches
		if b < count%branches {
			counts[b]++
		}
	}
	return counts
}
