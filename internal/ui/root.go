package ui

import (
	"errors"
	"sort"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/philologus/philologus-desktop/internal/browser"
	"github.com/philologus/philologus-desktop/internal/config"
	"github.com/philologus/philologus-desktop/internal/lookup"
	"github.com/philologus/philologus-desktop/internal/model"
	"github.com/philologus/philologus-desktop/internal/platform"
	"github.com/philologus/philologus-desktop/internal/results"
	"github.com/philologus/philologus-desktop/internal/search"
)

// Services are the collaborators the window shell is built from
type Services struct {
	Settings *config.Settings
	Searcher lookup.Searcher
	// Renderer may be nil, in which case the browser pane only offers a link
	Renderer browser.Renderer
	Logger   *zap.Logger
	// Dispatch defaults to fyne.Do
	Dispatch search.Dispatcher
	LogDir   string
}

// RootUI represents the main window: search sidebar split next to the browser pane
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger
	dispatch     search.Dispatcher
	searcher     lookup.Searcher
	logDir       string

	results    *results.List
	controller *search.Controller
	browser    *BrowserPane

	searchEntry  *widget.Entry
	stateSpinner *widget.ProgressBarInfinite
	resultList   *widget.List
	sortCheck    *widget.Check
	countLabel   *widget.Label
	split        *container.Split

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationClose     *widget.Button
	notificationMu        sync.Mutex
	notificationSeq       uint64
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, services Services) *RootUI {
	if services.Settings == nil {
		services.Settings = config.NewSettings(app)
	}
	if services.Logger == nil {
		services.Logger = zap.NewNop()
	}
	if services.Dispatch == nil {
		services.Dispatch = fyne.Do
	}

	localization := NewLocalization()
	localization.SetLanguage(services.Settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     services.Settings,
		localization: localization,
		logger:       services.Logger.Named("ui"),
		dispatch:     services.Dispatch,
		searcher:     services.Searcher,
		logDir:       services.LogDir,
		results:      results.NewList(),
	}

	ui.applyLookupSettings()
	if err := ui.results.SetSortByText(ui.settings.GetSortByText()); err != nil {
		ui.logger.Warn("failed to apply saved sort order", zap.Error(err))
	}

	ui.controller = search.NewController(ui.searcher, ui.results, ui.dispatch, search.Options{
		Debounce: ui.settings.GetDebounce(),
		Logger:   services.Logger,
	})
	ui.controller.SetStateCallback(ui.onStateChange)
	ui.controller.SetErrorCallback(ui.onLookupError)
	ui.controller.SetCommitCallback(ui.onCommit)

	ui.browser = NewBrowserPane(app, services.Renderer, ui.dispatch, localization, services.Logger)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.logger.Info("window shell initialized",
		zap.String("language", localization.GetCurrentLanguage()),
		zap.String("home_url", ui.settings.GetHomeURL()))
	return ui
}

// Start loads the browser pane and runs the initial lookup for the empty query
func (ui *RootUI) Start() {
	ui.browser.Navigate(ui.settings.GetHomeURL())
	ui.controller.Refresh()
	ui.window.Canvas().Focus(ui.searchEntry)
}

// Close cancels background work. Safe to call more than once.
func (ui *RootUI) Close() {
	ui.controller.Close()
	ui.browser.Close()
}

// Results returns the list model backing the result view
func (ui *RootUI) Results() *results.List {
	return ui.results
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.controller.OnQueryChanged
	ui.searchEntry.OnSubmitted = func(string) {
		ui.controller.Refresh()
	}

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.stateSpinner = widget.NewProgressBarInfinite()
	ui.stateSpinner.Hide()

	// Notification panel under the search entry (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationClose = widget.NewButton(IconClose, ui.hideNotification)
	ui.notificationClose.Importance = widget.LowImportance
	ui.notificationContainer = container.NewBorder(nil, nil, nil, ui.notificationClose, ui.notificationLabel)
	ui.notificationContainer.Hide()

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, ui.searchEntry),
		ui.stateSpinner,
		ui.notificationContainer,
	)

	ui.resultList = widget.NewListWithData(
		ui.results.Binding(),
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		ui.updateResultItem,
	)
	ui.resultList.OnSelected = ui.onResultSelected

	ui.sortCheck = widget.NewCheck(ui.localization.GetText(KeySortByText), ui.onSortChanged)
	ui.sortCheck.SetChecked(ui.results.SortByText())
	ui.countLabel = widget.NewLabel("")
	bottom := container.NewBorder(nil, nil, ui.sortCheck, ui.countLabel)

	sidebar := container.NewBorder(top, bottom, nil, nil, ui.resultList)

	ui.split = container.NewHSplit(sidebar, ui.browser.Container())
	ui.split.SetOffset(SplitOffset)

	ui.window.SetContent(ui.split)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	logsItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenLogFolder), ui.onOpenLogFolder)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, logsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.sortCheck.Text = ui.localization.GetText(KeySortByText)
	ui.sortCheck.Refresh()
	ui.countLabel.SetText(ui.localization.Textf(KeyResultCount, ui.results.Len()))
	ui.browser.RefreshTexts()
}

func (ui *RootUI) updateResultItem(item binding.DataItem, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}
	value, err := item.(binding.Untyped).Get()
	if err != nil {
		return
	}
	if result, ok := value.(model.SearchResult); ok {
		label.SetText(result.DisplayText())
	}
}

// onResultSelected shows the selected word and copies it to the clipboard
func (ui *RootUI) onResultSelected(id widget.ListItemID) {
	result, ok := ui.results.At(id)
	if !ok {
		return
	}
	text := result.DisplayText()
	ui.app.Clipboard().SetContent(text)
	ui.logger.Debug("result selected", zap.Int("id", result.ID), zap.String("text", text))
	ui.showNotification(ui.localization.Textf(KeySelected, text), true)
}

func (ui *RootUI) onSortChanged(enabled bool) {
	if err := ui.results.SetSortByText(enabled); err != nil {
		ui.logger.Warn("failed to re-sort results", zap.Error(err))
	}
	ui.settings.SetSortByText(enabled)
	ui.resultList.UnselectAll()
}

func (ui *RootUI) onStateChange(state model.LookupState) {
	if state.IsActive() {
		ui.stateSpinner.Show()
		ui.stateSpinner.Start()
		return
	}
	ui.stateSpinner.Stop()
	ui.stateSpinner.Hide()
}

func (ui *RootUI) onCommit(query string, count int) {
	ui.resultList.UnselectAll()
	ui.resultList.ScrollToTop()
	ui.countLabel.SetText(ui.localization.Textf(KeyResultCount, count))
}

// onLookupError reports a failed lookup; the previous results stay visible
func (ui *RootUI) onLookupError(query string, err error) {
	ui.showNotification(IconError+" "+ui.describeError(err), false)
}

// describeError maps lookup failures to a localized message
func (ui *RootUI) describeError(err error) string {
	var statusErr *lookup.HTTPStatusError
	var decodeErr *lookup.DecodeError
	var netErr *lookup.NetworkError

	switch {
	case errors.As(err, &statusErr):
		return ui.localization.Textf(KeyErrorServer, statusErr.StatusCode)
	case errors.As(err, &decodeErr):
		return ui.localization.GetText(KeyErrorDecode)
	case errors.As(err, &netErr):
		return ui.localization.GetText(KeyErrorNetwork)
	default:
		return ui.localization.GetText(KeyErrorLookup)
	}
}

// showNotification displays a message in the panel under the search entry.
// When autoHide is true the panel hides itself unless a newer message replaced it.
func (ui *RootUI) showNotification(message string, autoHide bool) {
	ui.notificationMu.Lock()
	ui.notificationSeq++
	seq := ui.notificationSeq
	ui.notificationMu.Unlock()

	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()

	if !autoHide {
		return
	}
	time.AfterFunc(NotificationAutoHide, func() {
		ui.dispatch(func() {
			ui.notificationMu.Lock()
			current := ui.notificationSeq == seq
			ui.notificationMu.Unlock()
			if current {
				ui.hideNotification()
			}
		})
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	ui.notificationContainer.Hide()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved pushes stored settings into the running services
func (ui *RootUI) onSettingsSaved() {
	ui.applyLookupSettings()
	ui.controller.SetDebounce(ui.settings.GetDebounce())

	if home := ui.settings.GetHomeURL(); home != ui.browser.URL() {
		ui.browser.Navigate(home)
	}

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}

	ui.controller.Refresh()
}

// applyLookupSettings reconfigures the searcher when it supports it
func (ui *RootUI) applyLookupSettings() {
	configurable, ok := ui.searcher.(lookup.Configurable)
	if !ok {
		return
	}
	configurable.SetEndpoint(ui.settings.GetEndpoint())
	configurable.SetLexicon(string(ui.settings.GetLexicon()))
	configurable.SetTimeout(ui.settings.GetRequestTimeout())
}

func (ui *RootUI) onOpenLogFolder() {
	if ui.logDir == "" {
		return
	}
	if err := platform.OpenDirInManager(ui.logDir); err != nil {
		ui.logger.Warn("failed to open log folder", zap.String("dir", ui.logDir), zap.Error(err))
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningFolder)+": "+err.Error()), ui.window)
	}
}
