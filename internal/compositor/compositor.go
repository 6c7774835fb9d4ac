// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package compositor draws a logo onto the centre of a QR symbol.
//
// The logo sits on a patch of the symbol's background colour that extends
// [overlay.PatchPadding] pixels past the logo on every side. Both are clipped
// to the selected shape; edges are anti-aliased by supersampling the clip
// outline.
package compositor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/MKhiriev/go-qr-keeper/internal/overlay"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// Options describes one logo placement.
type Options struct {
	SizePx     int
	Shape      models.LogoShape
	Background color.Color
}

type logoCompositor struct {
	filter imaging.ResampleFilter
}

// NewLogoCompositor returns a [LogoCompositor] that resamples logos with a
// Lanczos filter.
func NewLogoCompositor() LogoCompositor {
	return &logoCompositor{filter: imaging.Lanczos}
}

func (c *logoCompositor) DecodeLogo(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyLogo
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeLogo, err)
	}

	return img, nil
}

func (c *logoCompositor) Composite(surface image.Image, logo image.Image, opts Options) (*image.NRGBA, error) {
	geometry, ok := overlay.GeometryFor(opts.Shape)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, opts.Shape)
	}
	if opts.SizePx <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLogoSize, opts.SizePx)
	}
	if surface == nil || logo == nil {
		return nil, ErrMissingImage
	}
	if lb := logo.Bounds(); lb.Dx() == 0 || lb.Dy() == 0 {
		return nil, ErrMissingImage
	}

	background := opts.Background
	if background == nil {
		background = color.White
	}

	dst := imaging.Clone(surface)
	patchRect, logoRect := overlay.Placement(dst.Bounds(), opts.SizePx)
	logoRect = snap(logoRect)

	patchMask := rasterize(geometry.PatchOutline(patchRect))
	draw.DrawMask(dst, patchMask.Rect, image.NewUniform(background), image.Point{}, patchMask, patchMask.Rect.Min, draw.Over)

	scaled := imaging.Resize(logo, opts.SizePx, opts.SizePx, c.filter)
	logoMask := rasterize(geometry.LogoOutline(logoRect))
	origin := image.Pt(int(logoRect.X), int(logoRect.Y))
	draw.DrawMask(dst, logoMask.Rect, scaled, logoMask.Rect.Min.Sub(origin), logoMask, logoMask.Rect.Min, draw.Over)

	return dst, nil
}

// snap moves r to the nearest whole-pixel origin so resampled logo pixels
// map one to one onto the surface.
func snap(r overlay.Rect) overlay.Rect {
	r.X = math.Floor(r.X + 0.5)
	r.Y = math.Floor(r.Y + 0.5)
	return r
}
