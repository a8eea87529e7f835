package gfx

import (
	"math"

	"github.com/milk9111/mailme/common"
)

// Camera maps world coordinates to the screen. It follows a target with
// optional smoothing and stays inside the world bounds.
type Camera struct {
	PosX float64
	PosY float64

	screenW float64
	screenH float64
	zoom    float64

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

func NewCamera(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{
		PosX:    float64(screenW) / 2,
		PosY:    float64(screenH) / 2,
		screenW: float64(screenW),
		screenH: float64(screenH),
		zoom:    zoom,
		smooth:  0.15,
	}
}

func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = float64(w)
	c.screenH = float64(h)
}

func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.PosX - c.screenW/c.zoom/2, c.PosY - c.screenH/c.zoom/2
}

func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	l, t := c.ViewTopLeft()
	return (wx - l) * c.zoom, (wy - t) * c.zoom
}

func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	l, t := c.ViewTopLeft()
	return sx/c.zoom + l, sy/c.zoom + t
}

// Update moves the camera toward the target. Call from the fixed-rate update
// loop so smoothing is frame independent.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX, c.PosY = targetX, targetY
	} else {
		c.PosX += (targetX - c.PosX) * c.smooth
		c.PosY += (targetY - c.PosY) * c.smooth
	}
	c.settle()
}

// SnapTo centers the camera immediately, e.g. after a level load.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX, c.PosY = x, y
	c.settle()
}

// settle aligns the position to whole screen pixels and clamps it to the
// world bounds. A world smaller than the view is centered.
func (c *Camera) settle() {
	c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
	c.PosY = math.Round(c.PosY*c.zoom) / c.zoom

	halfW := c.screenW / c.zoom / 2
	halfH := c.screenH / c.zoom / 2
	if c.worldW > 0 {
		if c.worldW < 2*halfW {
			c.PosX = c.worldW / 2
		} else {
			c.PosX = common.Clamp(c.PosX, halfW, c.worldW-halfW)
		}
	}
	if c.worldH > 0 {
		if c.worldH < 2*halfH {
			c.PosY = c.worldH / 2
		} else {
			c.PosY = common.Clamp(c.PosY, halfH, c.worldH-halfH)
		}
	}
}
