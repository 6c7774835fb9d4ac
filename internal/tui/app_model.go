// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-keeper/internal/render"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/validators"
	"github.com/MKhiriev/go-qr-keeper/models"
)

const statusTTL = 3 * time.Second

type screen int

const (
	screenKinds screen = iota
	screenForm
	screenOptions
	screenResult
	screenHistory
)

type appModel struct {
	ctx       context.Context
	services  *service.Services
	exportDir string
	buildInfo models.AppBuildInfo
	now       func() time.Time

	currentScreen screen
	historyReturn screen

	kinds   kindSelectModel
	form    formModel
	options optionsModel
	result  resultModel
	history historyListModel

	generating bool
	spinner    spinner.Model
	status     string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool

	err error
}

func newAppModel(ctx context.Context, services *service.Services, exportDir string, buildInfo models.AppBuildInfo) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	kinds := newKindSelectModel()
	return appModel{
		ctx:           ctx,
		services:      services,
		exportDir:     exportDir,
		buildInfo:     buildInfo,
		now:           time.Now,
		currentScreen: screenKinds,
		kinds:         kinds,
		form:          newFormModel(models.FormModel{Kind: kinds.current()}),
		options:       newOptionsModel(models.DefaultRenderOptions()),
		spinner:       s,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if adj := m.errorOverlay.adjustment; adj != nil && key.Matches(msg, keys.apply) {
				m.options = m.options.withLogoSize(adj.Adjusted)
				m.hideError()
				return m.startGenerate()
			}
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.hideError()
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdClearHistory()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}
	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case generatedMsg:
		m.generating = false
		if msg.err != nil {
			m.handleGenerateError(msg.err)
			return m, nil
		}
		m.result = newResultModel(msg.request, msg.result)
		m.currentScreen = screenResult
		if msg.result.Entry == nil {
			return m.setStatus("Generated, but the history could not be saved.")
		}
		return m, nil
	case exportedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(m.form.kind, msg.err))
			return m, nil
		}
		return m.setStatus("Saved to " + msg.path)
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(m.form.kind, msg.err))
			return m, nil
		}
		return m.setStatus("Copied to clipboard.")
	case sharedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(m.form.kind, msg.err))
			return m, nil
		}
		return m.setStatus("Shared.")
	case historyLoadedMsg:
		m.history.loading = false
		m.history.items = msg.log
		m.history.idx = clamp(m.history.idx, 0, max(len(msg.log)-1, 0))
		return m, nil
	case historyClearedMsg:
		m.history.items = msg.log
		m.history.idx = 0
		if msg.err != nil {
			m.showErrorf("History was cleared for this session but could not be saved: " + msg.err.Error())
			return m, nil
		}
		return m.setStatus("History cleared.")
	case restoredMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.entry.PayloadKind, msg.err))
			return m, nil
		}
		return m.applyRestore(msg.entry, msg.restored)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenKinds:
		return m.updateKinds(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenOptions:
		return m.updateOptions(msg)
	case screenResult:
		return m.updateResult(msg)
	case screenHistory:
		return m.updateHistory(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenKinds:
		body = m.kinds.View()
	case screenForm:
		body = m.form.View()
	case screenOptions:
		body = m.options.View()
	case screenResult:
		body = m.result.View(m.status)
	case screenHistory:
		body = m.history.View(m.status)
	}

	if m.generating {
		body += "\n\n" + m.spinner.View() + " Generating..."
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: message}
}

func (m *appModel) hideError() {
	m.showError = false
	m.errorOverlay = errorOverlayModel{}
}

func (m appModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, cmdClearStatus()
}

func (m appModel) updateKinds(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.kinds.idx > 0 {
			m.kinds.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.kinds.idx < len(m.kinds.items)-1 {
			m.kinds.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if kind := m.kinds.current(); kind != m.form.kind {
			m.form = m.form.switchKind(kind)
		}
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.history):
		return m.openHistory()
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenKinds
			return m, nil
		case key.Matches(keyMsg, keys.options):
			m.currentScreen = screenOptions
			return m, nil
		case key.Matches(keyMsg, keys.generate):
			return m.startGenerate()
		case key.Matches(keyMsg, keys.enter):
			if m.form.lastFocused() {
				return m.startGenerate()
			}
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenForm
			return m, nil
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.generate):
			return m.startGenerate()
		}
	}

	var cmd tea.Cmd
	m.options, cmd = m.options.update(msg)
	return m, cmd
}

func (m appModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.png):
		return m, m.cmdExport(models.ExportPNG)
	case key.Matches(keyMsg, keys.jpeg):
		return m, m.cmdExport(models.ExportJPEG)
	case key.Matches(keyMsg, keys.svg):
		return m, m.cmdExport(models.ExportSVG)
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopy(m.result.png)
	case key.Matches(keyMsg, keys.share):
		return m, m.cmdShare(m.result.png, m.result.title)
	case key.Matches(keyMsg, keys.history):
		return m.openHistory()
	case key.Matches(keyMsg, keys.newCode):
		m.currentScreen = screenKinds
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = m.historyReturn
	case key.Matches(keyMsg, keys.up):
		if m.history.idx > 0 {
			m.history.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.history.idx < len(m.history.items)-1 {
			m.history.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.history.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdRestore(entry)
	case key.Matches(keyMsg, keys.share):
		entry, ok := m.history.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdShareEntry(entry.ID)
	case key.Matches(keyMsg, keys.clear):
		if len(m.history.items) == 0 {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = "Clear all history?"
	}
	return m, nil
}

func (m appModel) openHistory() (tea.Model, tea.Cmd) {
	if m.currentScreen != screenHistory {
		m.historyReturn = m.currentScreen
	}
	m.currentScreen = screenHistory
	m.history.loading = true
	return m, m.cmdLoadHistory()
}

func (m appModel) startGenerate() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}

	opts, err := m.options.toOptions()
	if err != nil {
		m.handleGenerateError(err)
		return m, nil
	}

	req := models.GenerateRequest{Form: m.form.toForm(), Options: opts}
	m.generating = true
	return m, tea.Batch(m.spinner.Tick, m.cmdGenerate(req))
}

// handleGenerateError shows err and moves the cursor to the field at fault.
func (m *appModel) handleGenerateError(err error) {
	m.showErrorf(humanizeError(m.form.kind, err))

	var adjErr *service.LogoAdjustmentError
	if errors.As(err, &adjErr) {
		adjustment := adjErr.Adjustment
		m.errorOverlay.adjustment = &adjustment
		m.options.focusField(validators.FieldLogoSize)
		m.currentScreen = screenOptions
		return
	}

	var fieldErr *validators.FieldError
	if !errors.As(err, &fieldErr) {
		return
	}
	if strings.HasPrefix(fieldErr.Field, "options.") {
		m.options.focusField(fieldErr.Field)
		m.currentScreen = screenOptions
		return
	}
	m.form.focusField(fieldErr.Field)
	m.currentScreen = screenForm
}

func (m appModel) applyRestore(entry models.HistoryEntry, restored models.RestoredGeneration) (tea.Model, tea.Cmd) {
	m.result = resultFromHistory(entry, restored)
	m.currentScreen = screenResult

	if !restored.Restored {
		return m.setStatus("This entry cannot be loaded back into the form; showing the stored image.")
	}

	m.kinds.selectKind(restored.Form.Kind)
	m.form = newFormModel(restored.Form)
	m.options = newOptionsModel(restored.Options)
	return m.setStatus("Restored from history.")
}

func (m appModel) cmdGenerate(req models.GenerateRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GenerationService
	return func() tea.Msg {
		result, err := svc.Generate(ctx, req)
		return generatedMsg{request: req, result: result, err: err}
	}
}

func (m appModel) cmdExport(format models.ExportFormat) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GenerationService
	dir := m.exportDir
	now := m.now
	res := m.result
	return func() tea.Msg {
		var file models.ExportFile
		switch {
		case res.canRender:
			var err error
			if file, err = svc.Download(ctx, res.request, format); err != nil {
				return exportedMsg{err: err}
			}
		case format == models.ExportPNG && len(res.png) > 0:
			file = render.FileFor(models.ExportPNG, res.png)
		default:
			return exportedMsg{err: ErrNothingToExport}
		}

		path, err := writeExport(dir, file, now())
		return exportedMsg{path: path, err: err}
	}
}

func (m appModel) cmdCopy(png []byte) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ShareService
	return func() tea.Msg {
		return copiedMsg{err: svc.Copy(ctx, png)}
	}
}

func (m appModel) cmdShare(png []byte, title string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ShareService
	return func() tea.Msg {
		return sharedMsg{err: svc.Share(ctx, png, title)}
	}
}

func (m appModel) cmdShareEntry(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		return sharedMsg{err: svc.Share(ctx, id)}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		return historyLoadedMsg{log: svc.List(ctx)}
	}
}

func (m appModel) cmdClearHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		log, err := svc.Clear(ctx)
		return historyClearedMsg{log: log, err: err}
	}
}

func (m appModel) cmdRestore(entry models.HistoryEntry) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		restored, err := svc.Restore(ctx, entry.ID)
		return restoredMsg{entry: entry, restored: restored, err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
