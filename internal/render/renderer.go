// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render draws QR symbols with github.com/skip2/go-qrcode and
// encodes them for export.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/MKhiriev/go-qr-keeper/internal/utils"
)

// QuietZone is the blank border around a symbol, in modules.
const QuietZone = 2

// Options controls the raster size and colours of a symbol.
type Options struct {
	SizePx     int
	Foreground color.Color
	Background color.Color
}

type qrRenderer struct {
	level     qrcode.RecoveryLevel
	quietZone int
}

// NewSymbolRenderer returns a [SymbolRenderer] backed by go-qrcode.
func NewSymbolRenderer() SymbolRenderer {
	return &qrRenderer{
		level:     qrcode.Highest,
		quietZone: QuietZone,
	}
}

// modules encodes text and returns the module matrix without a border,
// indexed [row][column]; true is dark.
func (r *qrRenderer) modules(text string) ([][]bool, error) {
	if text == "" {
		return nil, ErrEmptyPayload
	}

	code, err := qrcode.New(text, r.level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	code.DisableBorder = true

	return code.Bitmap(), nil
}

// Render maps modules to pixels with a fractional scale so the image is
// exactly opts.SizePx wide. When the symbol has more modules than pixels the
// scale falls back to one pixel per module and the image grows.
func (r *qrRenderer) Render(text string, opts Options) (*image.NRGBA, error) {
	if opts.SizePx <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidSize, opts.SizePx)
	}

	bitmap, err := r.modules(text)
	if err != nil {
		return nil, err
	}

	n := len(bitmap)
	cells := n + 2*r.quietZone
	scale := float64(opts.SizePx) / float64(cells)
	if scale < 1 {
		scale = 1
	}

	side := int(math.Floor(float64(cells) * scale))
	margin := int(math.Floor(float64(r.quietZone) * scale))
	fg, bg := toNRGBA(opts.Foreground, color.Black), toNRGBA(opts.Background, color.White)

	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			c := bg
			if x >= margin && y >= margin && x < side-margin && y < side-margin {
				col := int(float64(x-margin) / scale)
				row := int(float64(y-margin) / scale)
				if row < n && col < n && bitmap[row][col] {
					c = fg
				}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	return img, nil
}

// RenderSVG draws one background rectangle and a single path holding a
// subpath per horizontal run of dark modules, in module units.
func (r *qrRenderer) RenderSVG(text string, opts Options) (string, error) {
	if opts.SizePx <= 0 {
		return "", fmt.Errorf("%w: size %d", ErrInvalidSize, opts.SizePx)
	}

	bitmap, err := r.modules(text)
	if err != nil {
		return "", err
	}

	n := len(bitmap)
	cells := n + 2*r.quietZone
	fg := utils.FormatHexColor(toNRGBA(opts.Foreground, color.Black))
	bg := utils.FormatHexColor(toNRGBA(opts.Background, color.White))

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		opts.SizePx, opts.SizePx, cells, cells)
	fmt.Fprintf(&b, `<path fill="%s" d="M0 0h%dv%dH0z"/>`, bg, cells, cells)
	fmt.Fprintf(&b, `<path fill="%s" d="`, fg)

	for row := 0; row < n; row++ {
		for col := 0; col < n; {
			if !bitmap[row][col] {
				col++
				continue
			}
			start := col
			for col < n && bitmap[row][col] {
				col++
			}
			run := col - start
			fmt.Fprintf(&b, "M%d %dh%dv1h-%dz", start+r.quietZone, row+r.quietZone, run, run)
		}
	}

	b.WriteString(`"/></svg>`)
	return b.String(), nil
}

func toNRGBA(c color.Color, fallback color.Color) color.NRGBA {
	if c == nil {
		c = fallback
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
