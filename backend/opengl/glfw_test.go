package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/scrollview"
)

func TestFramebufferScale(t *testing.T) {
	tests := []struct {
		name           string
		winW, winH     int
		fbW, fbH       int
		wantSX, wantSY float32
	}{
		{"standard", 800, 600, 800, 600, 1, 1},
		{"retina", 800, 600, 1600, 1200, 2, 2},
		{"fractional", 1000, 500, 1250, 625, 1.25, 1.25},
		{"minimized", 0, 0, 0, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := framebufferScale(tt.winW, tt.winH, tt.fbW, tt.fbH)
			assert.InDelta(t, tt.wantSX, sx, 1e-6)
			assert.InDelta(t, tt.wantSY, sy, 1e-6)
		})
	}
}

func TestViewportPoint_HiDPI(t *testing.T) {
	origin := scrollview.Vec2{X: 40, Y: 40}

	// A cursor at window (70, 90) on a 2x display sits at framebuffer (140, 180).
	assert.Equal(t, scrollview.Vec2{X: 100, Y: 140}, viewportPoint(70, 90, 2, 2, origin))
	assert.Equal(t, scrollview.Vec2{X: 30, Y: 50}, viewportPoint(70, 90, 1, 1, origin))
}
