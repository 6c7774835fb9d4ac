// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/MKhiriev/go-qr-keeper/models"
)

const (
	jpegQuality   = 92
	pngDataPrefix = "data:image/png;base64,"
)

// Encode writes img as PNG or JPEG. SVG is produced by RenderSVG instead.
func Encode(img image.Image, format models.ExportFormat) ([]byte, error) {
	var buf bytes.Buffer

	var err error
	switch format {
	case models.ExportPNG:
		err = imaging.Encode(&buf, img, imaging.PNG)
	case models.ExportJPEG:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}

	return buf.Bytes(), nil
}

// FileFor names and types an exported symbol.
func FileFor(format models.ExportFormat, data []byte) models.ExportFile {
	file := models.ExportFile{Data: data}
	switch format {
	case models.ExportPNG:
		file.Name, file.ContentType = "qrcode.png", "image/png"
	case models.ExportJPEG:
		file.Name, file.ContentType = "qrcode.jpg", "image/jpeg"
	case models.ExportSVG:
		file.Name, file.ContentType = "qrcode.svg", "image/svg+xml"
	}
	return file
}

// DataURI wraps PNG bytes into a data URI.
func DataURI(png []byte) string {
	return pngDataPrefix + base64.StdEncoding.EncodeToString(png)
}

// DecodeDataURI returns the bytes of a base64 PNG data URI.
func DecodeDataURI(uri string) ([]byte, error) {
	raw, ok := strings.CutPrefix(uri, pngDataPrefix)
	if !ok {
		return nil, ErrInvalidDataURI
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}
	return data, nil
}
