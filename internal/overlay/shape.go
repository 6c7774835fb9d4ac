// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package overlay

import (
	"math"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// ShapeGeometry is the clip outline of one logo shape. Circle shapes ignore
// the radii and use the inscribed circle of the rectangle.
type ShapeGeometry struct {
	Circle      bool
	PatchRadius float64
	LogoRadius  float64
}

var shapeGeometry = map[models.LogoShape]ShapeGeometry{
	models.LogoShapeSquare:  {},
	models.LogoShapeRounded: {PatchRadius: 10, LogoRadius: 8},
	models.LogoShapeCircle:  {Circle: true},
}

// GeometryFor returns the outline of shape. ok is false for unknown shapes.
func GeometryFor(shape models.LogoShape) (ShapeGeometry, bool) {
	g, ok := shapeGeometry[shape]
	return g, ok
}

// Outline is a clip region: a rectangle with rounded corners, or its
// inscribed circle.
type Outline struct {
	Rect   Rect
	Radius float64
	Circle bool
}

// PatchOutline returns the outline of the background patch.
func (g ShapeGeometry) PatchOutline(r Rect) Outline {
	return Outline{Rect: r, Radius: g.PatchRadius, Circle: g.Circle}
}

// LogoOutline returns the outline of the logo clip.
func (g ShapeGeometry) LogoOutline(r Rect) Outline {
	return Outline{Rect: r, Radius: g.LogoRadius, Circle: g.Circle}
}

// Contains reports whether the point (x, y) lies inside o.
func (o Outline) Contains(x, y float64) bool {
	r := o.Rect
	if x < r.X || y < r.Y || x > r.X+r.W || y > r.Y+r.H {
		return false
	}

	if o.Circle {
		cx, cy := r.Center()
		rad := math.Min(r.W, r.H) / 2
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= rad*rad
	}

	rad := math.Min(o.Radius, math.Min(r.W, r.H)/2)
	if rad <= 0 {
		return true
	}

	// distance to the inner rectangle shrunk by the corner radius
	nx := math.Max(r.X+rad, math.Min(x, r.X+r.W-rad))
	ny := math.Max(r.Y+rad, math.Min(y, r.Y+r.H-rad))
	dx, dy := x-nx, y-ny
	return dx*dx+dy*dy <= rad*rad
}
