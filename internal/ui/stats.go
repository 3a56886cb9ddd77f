package ui

import (
	"fmt"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// StatsOverlay renders frame timing and galaxy statistics.
type StatsOverlay struct {
	fps           float64
	frameTime     float64 // ms
	fpsUpdateTime float64 // seconds since last FPS update
	frameAccum    int

	memStats      runtime.MemStats
	memUpdateTime float64

	Points      int
	Branches    int
	Generations int
	LastBuild   time.Duration
	Seed        uint64

	ShowMemory bool
	Enabled    bool
}

// NewStatsOverlay creates an enabled overlay.
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{Enabled: true}
}

// Update accumulates frame timing. deltaMs is the frame time in milliseconds.
func (s *StatsOverlay) Update(deltaMs float64) {
	s.frameTime = deltaMs
	s.frameAccum++
	s.fpsUpdateTime += deltaMs / 1000.0

	// Update FPS every 0.5 seconds
	if s.fpsUpdateTime >= 0.5 {
		s.fps = float64(s.frameAccum) / s.fpsUpdateTime
		s.frameAccum = 0
		s.fpsUpdateTime = 0
	}

	if s.ShowMemory {
		s.memUpdateTime += deltaMs / 1000.0
		if s.memUpdateTime >= 2.0 {
			runtime.ReadMemStats(&s.memStats)
			s.memUpdateTime = 0
		}
	}
}

// FPS returns the most recent frames-per-second estimate.
func (s *StatsOverlay) FPS() float64 {
	return s.fps
}

// Render draws the overlay in the top-left corner.
func (s *StatsOverlay) Render() {
	if !s.Enabled {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))
	imgui.SetNextWindowSize(imgui.NewVec2(220, 0)) // Auto height

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(8, 8))
	imgui.SetNextWindowBgAlpha(0.6)

	if imgui.BeginV("##StatsOverlay", nil, flags) {
		s.renderFPS()

		imgui.Separator()
		imgui.Text(fmt.Sprintf("Stars: %d", s.Points))
		imgui.Text(fmt.Sprintf("Branches: %d", s.Branches))
		imgui.Text(fmt.Sprintf("Build: %s (#%d)", s.LastBuild.Round(time.Microsecond), s.Generations))
		if s.Seed != 0 {
			imgui.TextDisabled(fmt.Sprintf("Seed: %d", s.Seed))
		}

		if s.ShowMemory {
			imgui.Separator()
			imgui.Text(fmt.Sprintf("Alloc: %s", formatBytes(int64(s.memStats.Alloc))))
			imgui.Text(fmt.Sprintf("GC: %d", s.memStats.NumGC))
		}
	}
	imgui.End()

	imgui.PopStyleVar()
}

func (s *StatsOverlay) renderFPS() {
	fpsColor := imgui.NewVec4(0.2, 1.0, 0.2, 1.0) // Green
	if s.fps < 30 {
		fpsColor = imgui.NewVec4(1.0, 0.2, 0.2, 1.0) // Red
	} else if s.fps < 60 {
		fpsColor = imgui.NewVec4(1.0, 1.0, 0.2, 1.0) // Yellow
	}

	imgui.TextColored(fpsColor, fmt.Sprintf("FPS: %.1f", s.fps))
	imgui.SameLine()
	imgui.TextDisabled(fmt.Sprintf("(%.2f ms)", s.frameTime))
}

// RenderSettings renders overlay toggles, for use inside another window.
func (s *StatsOverlay) RenderSettings() {
	imgui.Checkbox("Show stats", &s.Enabled)
	imgui.SameLine()
	imgui.Checkbox("Memory", &s.ShowMemory)
}

// formatBytes formats byte count to human readable string.
func formatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
