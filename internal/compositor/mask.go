// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package compositor

import (
	"image"
	"image/color"

	"github.com/MKhiriev/go-qr-keeper/internal/overlay"
)

// samples per pixel axis
const supersample = 4

// rasterize converts an outline into a coverage mask over its bounding
// pixels. Each mask value is the share of sub-pixel samples inside the
// outline.
func rasterize(o overlay.Outline) *image.Alpha {
	bounds := o.Rect.Bounds()
	mask := image.NewAlpha(bounds)

	const total = supersample * supersample
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hits := 0
			for sy := 0; sy < supersample; sy++ {
				py := float64(y) + (float64(sy)+0.5)/supersample
				for sx := 0; sx < supersample; sx++ {
					px := float64(x) + (float64(sx)+0.5)/supersample
					if o.Contains(px, py) {
						hits++
					}
				}
			}
			if hits > 0 {
				mask.SetAlpha(x, y, color.Alpha{A: uint8(hits * 0xff / total)})
			}
		}
	}

	return mask
}
