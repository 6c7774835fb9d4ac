// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-qr-keeper/internal/compositor"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/overlay"
	"github.com/MKhiriev/go-qr-keeper/internal/payload"
	"github.com/MKhiriev/go-qr-keeper/internal/render"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/internal/validators"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type generationService struct {
	validator  validators.Validator
	renderer   render.SymbolRenderer
	compositor compositor.LogoCompositor
	history    store.HistoryStore
	ids        idGenerator
	now        func() time.Time

	// held for the whole of one Generate call
	mu sync.Mutex

	logger *logger.Logger
}

// NewGenerationService wires the generation pipeline over the given history
// store.
func NewGenerationService(history store.HistoryStore, logger *logger.Logger) GenerationService {
	return &generationService{
		validator:  validators.NewGenerationValidator(),
		renderer:   render.NewSymbolRenderer(),
		compositor: compositor.NewLogoCompositor(),
		history:    history,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

// generationRun records the states one request passes through.
type generationRun struct {
	stages []models.GenerationState
	log    *logger.Logger
}

func (r *generationRun) enter(state models.GenerationState) {
	r.stages = append(r.stages, state)
	r.log.Debug().Str("state", string(state)).Msg("generation state")
}

func (s *generationService) Generate(ctx context.Context, req models.GenerateRequest) (models.GenerateResult, error) {
	if !s.mu.TryLock() {
		return models.GenerateResult{}, ErrGenerationInProgress
	}
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)
	run := &generationRun{log: log, stages: []models.GenerationState{models.GenerationIdle}}

	result := func() models.GenerateResult {
		return models.GenerateResult{Stages: slices.Clone(run.stages)}
	}

	run.enter(models.GenerationValidating)
	if err := s.validate(ctx, req); err != nil {
		run.enter(models.GenerationRejected)
		log.Info().Err(err).Str("func", "generationService.Generate").Str("kind", string(req.Form.Kind)).Msg("generation rejected")
		res := result()
		var adj *LogoAdjustmentError
		if errors.As(err, &adj) {
			res.Adjustment = &adj.Adjustment
		}
		return res, err
	}

	run.enter(models.GenerationBuilding)
	text := payload.Build(req.Form)

	img, err := s.rasterize(ctx, run, text, req.Options)
	if err != nil {
		run.enter(models.GenerationFailed)
		log.Err(err).Str("func", "generationService.Generate").Str("kind", string(req.Form.Kind)).Msg("generation failed")
		return result(), err
	}

	png, err := render.Encode(img, models.ExportPNG)
	if err != nil {
		run.enter(models.GenerationFailed)
		log.Err(err).Str("func", "generationService.Generate").Msg("error encoding png")
		return result(), fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	dataURI := render.DataURI(png)

	run.enter(models.GenerationPersisting)
	entry := models.HistoryEntry{
		ID:             s.ids.Generate(),
		RawPayloadText: req.Form.PrimaryText(),
		RenderedImage:  dataURI,
		CreatedAt:      s.now().UTC(),
		Options:        snapshotOptions(req.Options),
		PayloadKind:    req.Form.Kind,
		PayloadText:    text,
	}

	res := result()
	res.Image = png
	res.DataURI = dataURI
	res.PayloadText = text
	if _, err = s.history.Append(ctx, entry); err != nil {
		log.Warn().Err(fmt.Errorf("%w: %w", ErrPersistence, err)).
			Str("func", "generationService.Generate").
			Str("entry_id", entry.ID).
			Msg("history not saved, returning image anyway")
	} else {
		res.Entry = &entry
	}

	run.enter(models.GenerationDone)
	res.Stages = slices.Clone(run.stages)

	log.Info().Str("func", "generationService.Generate").
		Str("kind", string(req.Form.Kind)).
		Str("entry_id", entry.ID).
		Bool("logo", req.Options.HasLogo()).
		Msg("symbol generated")

	return res, nil
}

func (s *generationService) Download(ctx context.Context, req models.GenerateRequest, format models.ExportFormat) (models.ExportFile, error) {
	log := logger.FromContext(ctx)

	if !format.IsValid() {
		return models.ExportFile{}, fmt.Errorf("%w: %w: %q", ErrValidation, ErrUnsupportedFormat, format)
	}
	if err := s.validate(ctx, req); err != nil {
		return models.ExportFile{}, err
	}

	text := payload.Build(req.Form)

	if format == models.ExportSVG {
		if req.Options.HasLogo() {
			return models.ExportFile{}, fmt.Errorf("%w: %w", ErrValidation, ErrVectorWithLogo)
		}
		fg, bg := colors(req.Options)
		svg, err := s.renderer.RenderSVG(text, render.Options{SizePx: req.Options.SizePx, Foreground: fg, Background: bg})
		if err != nil {
			log.Err(err).Str("func", "generationService.Download").Msg("error rendering svg")
			return models.ExportFile{}, fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return render.FileFor(format, []byte(svg)), nil
	}

	run := &generationRun{log: log}
	img, err := s.rasterize(ctx, run, text, req.Options)
	if err != nil {
		log.Err(err).Str("func", "generationService.Download").Str("format", string(format)).Msg("error rendering download")
		return models.ExportFile{}, err
	}

	data, err := render.Encode(img, format)
	if err != nil {
		log.Err(err).Str("func", "generationService.Download").Str("format", string(format)).Msg("error encoding download")
		return models.ExportFile{}, fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	return render.FileFor(format, data), nil
}

// validate runs the field checks and then the logo safety rules.
func (s *generationService) validate(ctx context.Context, req models.GenerateRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if !req.Options.HasLogo() {
		return nil
	}

	requested := req.Options.Logo.SizePx
	switch verdict, suggested := overlay.Check(req.Options.SizePx, requested); verdict {
	case overlay.Clamp:
		return &LogoAdjustmentError{Adjustment: models.LogoAdjustment{Requested: requested, Adjusted: suggested}}
	case overlay.Reject:
		return fmt.Errorf("%w: %w: a %dpx logo needs at least a %dpx symbol",
			ErrValidation, ErrSymbolTooSmall, requested, suggested)
	}
	return nil
}

// rasterize renders the base symbol and draws the logo over it when one is
// attached. A logo failure fails the whole request.
func (s *generationService) rasterize(ctx context.Context, run *generationRun, text string, opts models.RenderOptions) (*image.NRGBA, error) {
	fg, bg := colors(opts)

	run.enter(models.GenerationRendering)
	img, err := s.renderer.Render(text, render.Options{SizePx: opts.SizePx, Foreground: fg, Background: bg})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	if !opts.HasLogo() {
		return img, nil
	}

	run.enter(models.GenerationCompositing)
	logo, err := s.compositor.DecodeLogo(opts.Logo.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompositing, err)
	}
	img, err = s.compositor.Composite(img, logo, compositor.Options{
		SizePx:     opts.Logo.SizePx,
		Shape:      opts.Logo.Shape,
		Background: bg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompositing, err)
	}

	return img, nil
}

// colors parses validated option colours.
func colors(opts models.RenderOptions) (color.Color, color.Color) {
	fg, err := utils.ParseHexColor(opts.ForegroundColor)
	if err != nil {
		fg = color.NRGBA{A: 0xff}
	}
	bg, err := utils.ParseHexColor(opts.BackgroundColor)
	if err != nil {
		bg = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return fg, bg
}

// snapshotOptions deep-copies opts so the stored entry does not share the
// logo buffer with the caller.
func snapshotOptions(opts models.RenderOptions) models.RenderOptions {
	if opts.ErrorCorrection == "" {
		opts.ErrorCorrection = models.ErrorCorrectionHighest
	}
	if opts.Logo != nil {
		logo := *opts.Logo
		logo.Image = slices.Clone(opts.Logo.Image)
		opts.Logo = &logo
	}
	return opts
}
