// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Capabilities describes what the generator accepts, so a front-end can
// build its forms and sliders without hard-coding them.
type Capabilities struct {
	Version         string         `json:"version"`
	Kinds           []KindInfo     `json:"kinds"`
	ExportFormats   []ExportFormat `json:"export_formats"`
	SymbolSize      SizeRange      `json:"symbol_size"`
	LogoSize        SizeRange      `json:"logo_size"`
	LogoShapes      []LogoShape    `json:"logo_shapes"`
	HistoryCapacity int            `json:"history_capacity"`
}

// KindInfo is one entry of the kind picker together with its inputs.
type KindInfo struct {
	Kind   PayloadKind `json:"kind"`
	Title  string      `json:"title"`
	Fields []FormField `json:"fields"`
}

// SizeRange is a slider definition. Max is zero when the upper bound depends
// on other options, as for the logo size.
type SizeRange struct {
	Min     int `json:"min"`
	Max     int `json:"max,omitempty"`
	Step    int `json:"step"`
	Default int `json:"default"`
}

// ExportFormats lists the download formats in presentation order.
var ExportFormats = []ExportFormat{ExportPNG, ExportJPEG, ExportSVG}

// NewCapabilities assembles the capability listing for version with the
// given history bound.
func NewCapabilities(version string, historyCapacity int) Capabilities {
	kinds := make([]KindInfo, 0, len(PayloadKinds))
	for _, k := range PayloadKinds {
		kinds = append(kinds, KindInfo{Kind: k, Title: k.Title(), Fields: FieldsFor(k)})
	}

	return Capabilities{
		Version:       version,
		Kinds:         kinds,
		ExportFormats: ExportFormats,
		SymbolSize: SizeRange{
			Min:     MinSymbolSize,
			Max:     MaxSymbolSize,
			Step:    SymbolSizeStep,
			Default: DefaultSymbolSize,
		},
		LogoSize: SizeRange{
			Min:     MinLogoSize,
			Step:    LogoSizeStep,
			Default: DefaultLogoSize,
		},
		LogoShapes:      LogoShapes,
		HistoryCapacity: historyCapacity,
	}
}
