// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package overlay holds the pure sizing and placement rules for a logo drawn
// over the centre of a symbol.
package overlay

import (
	"image"
	"math"
)

const (
	// MaxLogoRatio is the largest logo edge relative to the symbol edge.
	MaxLogoRatio = 0.3
	// MinLogoMargin is the minimum number of pixels by which the symbol edge
	// must exceed the logo edge.
	MinLogoMargin = 50
	// PatchPadding is the gap between the logo and the edge of its
	// background patch, on every side.
	PatchPadding = 6
)

// MaxLogoSize returns floor(symbolSize * MaxLogoRatio).
func MaxLogoSize(symbolSize int) int {
	return int(math.Floor(float64(symbolSize) * MaxLogoRatio))
}

// HasMargin reports whether the symbol is at least MinLogoMargin pixels
// larger than the logo.
func HasMargin(symbolSize, logoSize int) bool {
	return symbolSize >= logoSize+MinLogoMargin
}

// IsSafe reports whether a logo of logoSize can be drawn on a symbol of
// symbolSize without endangering decoding: it must fit under MaxLogoSize and
// leave MinLogoMargin.
func IsSafe(symbolSize, logoSize int) bool {
	return logoSize <= MaxLogoSize(symbolSize) && HasMargin(symbolSize, logoSize)
}

// MinSymbolSize returns the smallest symbol edge that keeps MinLogoMargin for
// logoSize.
func MinSymbolSize(logoSize int) int {
	return logoSize + MinLogoMargin
}

// Verdict is the outcome of [Check].
type Verdict int

const (
	// Fits means the logo can be drawn as requested.
	Fits Verdict = iota
	// Clamp means the logo is larger than MaxLogoSize; the suggested size is
	// the maximum.
	Clamp
	// Reject means the symbol is too small for the logo; the suggested size
	// is the minimum symbol edge.
	Reject
)

// Check applies the rules in order: an oversized logo is clamped first, then
// a symbol without margin is rejected. The returned size is the suggestion
// matching the verdict, or logoSize when it fits.
func Check(symbolSize, logoSize int) (Verdict, int) {
	if maxSize := MaxLogoSize(symbolSize); logoSize > maxSize {
		return Clamp, maxSize
	}
	if !HasMargin(symbolSize, logoSize) {
		return Reject, MinSymbolSize(logoSize)
	}
	return Fits, logoSize
}

// Rect is an axis-aligned rectangle in surface pixel space. Logo placement
// can fall on half pixels, so coordinates are fractional.
type Rect struct {
	X, Y, W, H float64
}

// Bounds returns the smallest integer rectangle covering r.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)),
		int(math.Ceil(r.Y+r.H)),
	)
}

// Center returns the centre point of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Placement centres a logo of logoSize and its padded patch on surface.
func Placement(surface image.Rectangle, logoSize int) (patch, logo Rect) {
	cx := float64(surface.Min.X) + float64(surface.Dx())/2
	cy := float64(surface.Min.Y) + float64(surface.Dy())/2

	ls := float64(logoSize)
	ps := ls + 2*PatchPadding

	patch = Rect{X: cx - ps/2, Y: cy - ps/2, W: ps, H: ps}
	logo = Rect{X: cx - ls/2, Y: cy - ls/2, W: ls, H: ls}
	return patch, logo
}
