// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.NRGBA
	}{
		{input: "#000000", want: color.NRGBA{A: 0xff}},
		{input: "#FFFFFF", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{input: "1a2B3c", want: color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}},
		{input: "#f0a", want: color.NRGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}},
		{input: " #11223344 ", want: color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexColor_Invalid(t *testing.T) {
	for _, input := range []string{"", "#", "#12", "#12345", "#GGGGGG", "red"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseHexColor(input)
			assert.ErrorIs(t, err, ErrInvalidColor)
		})
	}
}

func TestFormatHexColor(t *testing.T) {
	assert.Equal(t, "#1A2B3C", FormatHexColor(color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0x80}))
}
