// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

// previewWidth is the preview size in terminal columns. Each row of
// half-block characters shows two pixel rows, so the preview is square.
const previewWidth = 58

// renderPreview draws a PNG with half-block characters. Light pixels are
// drawn and dark pixels are left blank, so the preview is read correctly on
// a dark terminal background.
func renderPreview(png []byte, width int) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(png))
	if err != nil {
		return "", fmt.Errorf("decode preview: %w", err)
	}

	b := img.Bounds()
	if width <= 0 || width > b.Dx() {
		width = b.Dx()
	}
	height := width * b.Dy() / max(b.Dx(), 1)
	if height%2 == 1 {
		height++
	}

	small := imaging.Resize(img, width, height, imaging.NearestNeighbor)

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top := isLight(small, x, y)
			bottom := isLight(small, x, y+1)
			switch {
			case top && bottom:
				out.WriteRune('█')
			case top:
				out.WriteRune('▀')
			case bottom:
				out.WriteRune('▄')
			default:
				out.WriteRune(' ')
			}
		}
		if y+2 < height {
			out.WriteByte('\n')
		}
	}

	return out.String(), nil
}

func isLight(img *image.NRGBA, x, y int) bool {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return true
	}
	c := color.GrayModel.Convert(img.NRGBAAt(x, y)).(color.Gray)
	return c.Y >= 128
}
