// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Symbol size bounds in pixels. The slider in every front-end moves in
// SymbolSizeStep increments.
const (
	MinSymbolSize     = 300
	MaxSymbolSize     = 500
	SymbolSizeStep    = 50
	DefaultSymbolSize = 300

	DefaultForegroundColor = "#000000"
	DefaultBackgroundColor = "#FFFFFF"

	MinLogoSize     = 30
	LogoSizeStep    = 10
	DefaultLogoSize = 60
)

// ErrorCorrectionLevel is fixed to the highest level so a centred logo can
// occlude modules without breaking decoding.
type ErrorCorrectionLevel string

const ErrorCorrectionHighest ErrorCorrectionLevel = "H"

// LogoShape selects the clip path of the logo and its background patch.
type LogoShape string

const (
	LogoShapeSquare  LogoShape = "square"
	LogoShapeRounded LogoShape = "rounded"
	LogoShapeCircle  LogoShape = "circle"

	DefaultLogoShape = LogoShapeRounded
)

// LogoShapes lists the shapes in presentation order.
var LogoShapes = []LogoShape{LogoShapeSquare, LogoShapeRounded, LogoShapeCircle}

// LogoOptions describes the logo composited onto the symbol. Image holds the
// raw uploaded file (PNG, JPEG, GIF or WebP).
type LogoOptions struct {
	SizePx int       `json:"size_px"`
	Shape  LogoShape `json:"shape"`
	Image  []byte    `json:"image"`
}

// RenderOptions controls how a payload is drawn. Colours are "#RRGGBB".
type RenderOptions struct {
	ForegroundColor string               `json:"foreground_color"`
	BackgroundColor string               `json:"background_color"`
	SizePx          int                  `json:"size_px"`
	ErrorCorrection ErrorCorrectionLevel `json:"error_correction"`
	Logo            *LogoOptions         `json:"logo,omitempty"`
}

// DefaultRenderOptions returns the options a fresh form starts with.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ForegroundColor: DefaultForegroundColor,
		BackgroundColor: DefaultBackgroundColor,
		SizePx:          DefaultSymbolSize,
		ErrorCorrection: ErrorCorrectionHighest,
	}
}

// HasLogo reports whether a logo with image data is attached.
func (o RenderOptions) HasLogo() bool {
	return o.Logo != nil && len(o.Logo.Image) > 0
}
