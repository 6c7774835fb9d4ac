// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-qr-keeper/internal/render"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type opener func(ctx context.Context) (*cli, func(), error)

// cli runs the commands against a wired set of services.
type cli struct {
	services  *service.Services
	exportDir string
	out       io.Writer
}

func newCLI(services *service.Services, exportDir string, out io.Writer) *cli {
	return &cli{services: services, exportDir: exportDir, out: out}
}

// generateFlags are the options of the generate command.
type generateFlags struct {
	fields     []string
	out        string
	format     string
	size       int
	foreground string
	background string
	logo       string
	logoSize   int
	logoShape  string
	noHistory  bool
}

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "qrgen",
		Short:         "Generate QR codes and manage their history",
		SilenceUsage: true,
	}

	root.AddCommand(newGenerateCmd(open), newHistoryCmd(open), newVersionCmd())
	return root
}

// withCLI opens the app for the duration of one command.
func withCLI(open opener, run func(ctx context.Context, c *cli) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, closeFn, err := open(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()
		return run(cmd.Context(), c)
	}
}

func newGenerateCmd(open opener) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate <kind>",
		Short: "Generate a QR code",
		Long: "Generate a QR code for one of the kinds: " + kindList() + ".\n" +
			"Fields are given as --field name=value, for example --field ssid=Home.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCLI(open, func(ctx context.Context, c *cli) error {
				return c.generate(ctx, models.PayloadKind(args[0]), flags)
			})(cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&flags.fields, "field", "f", nil, "form field as name=value (repeatable)")
	f.StringVarP(&flags.out, "out", "o", "", "output file (default: qrcode.<format> in the export dir)")
	f.StringVar(&flags.format, "format", "", "png, jpeg or svg (default: from --out, else png)")
	f.IntVar(&flags.size, "size", models.DefaultSymbolSize, "symbol size in pixels")
	f.StringVar(&flags.foreground, "fg", models.DefaultForegroundColor, "foreground colour")
	f.StringVar(&flags.background, "bg", models.DefaultBackgroundColor, "background colour")
	f.StringVar(&flags.logo, "logo", "", "logo image file")
	f.IntVar(&flags.logoSize, "logo-size", models.DefaultLogoSize, "logo size in pixels")
	f.StringVar(&flags.logoShape, "logo-shape", string(models.DefaultLogoShape), "logo shape: square, rounded or circle")
	f.BoolVar(&flags.noHistory, "no-history", false, "do not record the code in history")

	return cmd
}

func newHistoryCmd(open opener) *cobra.Command {
	history := &cobra.Command{
		Use:   "history",
		Short: "Manage generation history",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List past generations, newest first",
		Args:  cobra.NoArgs,
		RunE: withCLI(open, func(ctx context.Context, c *cli) error {
			return c.listHistory(ctx)
		}),
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all history",
		Args:  cobra.NoArgs,
		RunE: withCLI(open, func(ctx context.Context, c *cli) error {
			return c.clearHistory(ctx)
		}),
	}

	var restoreOut string
	restore := &cobra.Command{
		Use:   "restore <id>",
		Short: "Print the form and options of a past generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCLI(open, func(ctx context.Context, c *cli) error {
				return c.restoreHistory(ctx, args[0], restoreOut)
			})(cmd, args)
		},
	}
	restore.Flags().StringVarP(&restoreOut, "out", "o", "", "also write the stored PNG to this file")

	share := &cobra.Command{
		Use:   "share <id>",
		Short: "Share the image of a past generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCLI(open, func(ctx context.Context, c *cli) error {
				if err := c.services.HistoryService.Share(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(c.out, "Shared.")
				return nil
			})(cmd, args)
		},
	}

	history.AddCommand(list, clearCmd, restore, share)
	return history
}

func (c *cli) generate(ctx context.Context, kind models.PayloadKind, flags generateFlags) error {
	if !kind.IsValid() {
		return fmt.Errorf("unknown kind %q, want one of: %s", kind, kindList())
	}

	form, err := formFromFields(kind, flags.fields)
	if err != nil {
		return err
	}
	opts, err := flags.options()
	if err != nil {
		return err
	}
	format, err := flags.exportFormat()
	if err != nil {
		return err
	}

	req := models.GenerateRequest{Form: form, Options: opts}
	out := flags.out
	if out == "" {
		out = filepath.Join(c.exportDir, render.FileFor(format, nil).Name)
	}

	if format == models.ExportPNG && !flags.noHistory {
		res, err := c.services.GenerationService.Generate(ctx, req)
		if err != nil {
			return explain(err)
		}
		if err = writeFile(out, res.Image); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Encoded: %s\nWrote %s\n", res.PayloadText, out)
		if res.Entry != nil {
			fmt.Fprintf(c.out, "History entry: %s\n", res.Entry.ID)
		} else {
			fmt.Fprintln(c.out, "The code was not saved to history.")
		}
		return nil
	}

	file, err := c.services.GenerationService.Download(ctx, req, format)
	if err != nil {
		return explain(err)
	}
	if err = writeFile(out, file.Data); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Wrote %s\n", out)
	return nil
}

func (c *cli) listHistory(ctx context.Context) error {
	log := c.services.HistoryService.List(ctx)
	if len(log) == 0 {
		fmt.Fprintln(c.out, "No codes generated yet.")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tKIND\tCONTENT")
	for _, e := range log {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"), e.PayloadKind, oneLine(e.RawPayloadText, 50))
	}
	return w.Flush()
}

func (c *cli) clearHistory(ctx context.Context) error {
	if _, err := c.services.HistoryService.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "History cleared.")
	return nil
}

func (c *cli) restoreHistory(ctx context.Context, id, out string) error {
	restored, err := c.services.HistoryService.Restore(ctx, id)
	if err != nil {
		return err
	}

	view := struct {
		Restored bool                 `json:"restored"`
		Form     *models.FormModel    `json:"form,omitempty"`
		Options  models.RenderOptions `json:"options"`
	}{Restored: restored.Restored, Options: restored.Options}
	if restored.Restored {
		view.Form = &restored.Form
	}
	if view.Options.Logo != nil {
		logo := *view.Options.Logo
		logo.Image = nil
		view.Options.Logo = &logo
	}

	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err = enc.Encode(view); err != nil {
		return err
	}

	if out == "" {
		return nil
	}
	png, err := render.DecodeDataURI(restored.RenderedImage)
	if err != nil {
		return fmt.Errorf("stored image: %w", err)
	}
	if err = writeFile(out, png); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Wrote %s\n", out)
	return nil
}

// formFromFields fills a form of kind from name=value pairs.
func formFromFields(kind models.PayloadKind, pairs []string) (models.FormModel, error) {
	form := models.FormModel{Kind: kind}
	for _, pair := range pairs {
		name, value, err := models.ParseFieldAssignment(pair)
		if err != nil {
			return models.FormModel{}, err
		}
		f, ok := models.FieldByName(kind, name)
		if !ok {
			return models.FormModel{}, fmt.Errorf("%w: %s has no field %q, want one of: %s",
				models.ErrUnknownFormField, kind, name, fieldList(kind))
		}
		if err = form.Set(f.Key, value); err != nil {
			return models.FormModel{}, err
		}
	}
	return form, nil
}

func (f generateFlags) options() (models.RenderOptions, error) {
	opts := models.RenderOptions{
		ForegroundColor: f.foreground,
		BackgroundColor: f.background,
		SizePx:          f.size,
		ErrorCorrection: models.ErrorCorrectionHighest,
	}
	if f.logo == "" {
		return opts, nil
	}

	data, err := os.ReadFile(filepath.Clean(f.logo))
	if err != nil {
		return models.RenderOptions{}, fmt.Errorf("read logo: %w", err)
	}
	opts.Logo = &models.LogoOptions{
		SizePx: f.logoSize,
		Shape:  models.LogoShape(f.logoShape),
		Image:  data,
	}
	return opts, nil
}

func (f generateFlags) exportFormat() (models.ExportFormat, error) {
	format := models.ExportFormat(strings.ToLower(f.format))
	if format == "" {
		switch strings.ToLower(filepath.Ext(f.out)) {
		case ".jpg", ".jpeg":
			format = models.ExportJPEG
		case ".svg":
			format = models.ExportSVG
		default:
			format = models.ExportPNG
		}
	}
	if format == "jpg" {
		format = models.ExportJPEG
	}
	if !format.IsValid() {
		return "", fmt.Errorf("%w: %q", service.ErrUnsupportedFormat, f.format)
	}
	return format, nil
}

// explain adds the suggested size to a rejected logo.
func explain(err error) error {
	var adjErr *service.LogoAdjustmentError
	if errors.As(err, &adjErr) {
		return fmt.Errorf("%w (try --logo-size %d)", err, adjErr.Adjustment.Adjusted)
	}
	return err
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func kindList() string {
	names := make([]string, 0, len(models.PayloadKinds))
	for _, k := range models.PayloadKinds {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func fieldList(kind models.PayloadKind) string {
	fields := models.FieldsFor(kind)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}

func oneLine(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > max {
		return string(r[:max-3]) + "..."
	}
	return s
}
