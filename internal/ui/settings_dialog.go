package ui

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/philologus/philologus-desktop/internal/browser"
	"github.com/philologus/philologus-desktop/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	endpointEntry  *widget.Entry
	homeURLEntry   *widget.Entry
	lexiconSelect  *widget.Select
	debounceEntry  *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select

	// display name -> value, for the selects
	lexiconByName  map[string]config.Lexicon
	languageByName map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after values are stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:       settings,
		localization:   localization,
		window:         window,
		onSaved:        onSaved,
		lexiconByName:  make(map[string]config.Lexicon),
		languageByName: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows a settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder(config.DefaultEndpoint)
	sd.endpointEntry.Validator = optionalURLValidator

	sd.homeURLEntry = widget.NewEntry()
	sd.homeURLEntry.SetPlaceHolder(config.DefaultHomeURL)
	sd.homeURLEntry.Validator = optionalURLValidator

	lexiconNames := []string{}
	for _, lexicon := range sd.settings.GetLexiconOptions() {
		name := lexicon.DisplayName()
		sd.lexiconByName[name] = lexicon
		lexiconNames = append(lexiconNames, name)
	}
	sd.lexiconSelect = widget.NewSelect(lexiconNames, nil)

	sd.debounceEntry = widget.NewEntry()
	sd.debounceEntry.SetPlaceHolder(fmt.Sprintf("0-%d", config.MaxDebounceMillis))

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinTimeoutSeconds, config.MaxTimeoutSeconds))

	languageNames := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageByName[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyLookupSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyEndpoint)+":"),
		sd.endpointEntry,

		widget.NewLabel(t(KeyLexicon)+":"),
		sd.lexiconSelect,

		widget.NewLabel(t(KeyDebounce)+":"),
		sd.debounceEntry,

		widget.NewLabel(t(KeyTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyHomeURL)+":"),
		sd.homeURLEntry,

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.endpointEntry.SetText(sd.settings.GetEndpoint())
	sd.homeURLEntry.SetText(sd.settings.GetHomeURL())
	sd.lexiconSelect.SetSelected(sd.settings.GetLexicon().DisplayName())
	sd.debounceEntry.SetText(strconv.Itoa(int(sd.settings.GetDebounce().Milliseconds())))
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave stores the dialog values. Invalid fields are reported and left unchanged.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	var problems []string

	if endpoint := strings.TrimSpace(sd.endpointEntry.Text); endpoint == "" {
		sd.settings.SetEndpoint("")
	} else if err := browser.ValidateURL(endpoint); err == nil {
		sd.settings.SetEndpoint(endpoint)
	} else {
		problems = append(problems, sd.localization.GetText(KeyEndpoint)+": "+sd.localization.GetText(KeyInvalidURL))
	}

	if homeURL := strings.TrimSpace(sd.homeURLEntry.Text); homeURL == "" {
		sd.settings.SetHomeURL("")
	} else if err := browser.ValidateURL(homeURL); err == nil {
		sd.settings.SetHomeURL(homeURL)
	} else {
		problems = append(problems, sd.localization.GetText(KeyHomeURL)+": "+sd.localization.GetText(KeyInvalidURL))
	}

	if lexicon, ok := sd.lexiconByName[sd.lexiconSelect.Selected]; ok {
		sd.settings.SetLexicon(lexicon)
	}

	if text := strings.TrimSpace(sd.debounceEntry.Text); text != "" {
		if ms, err := strconv.Atoi(text); err == nil {
			sd.settings.SetDebounceMillis(ms)
		} else {
			problems = append(problems, sd.localization.GetText(KeyDebounce)+": "+sd.localization.GetText(KeyInvalidNumber))
		}
	}

	if text := strings.TrimSpace(sd.timeoutEntry.Text); text != "" {
		if sec, err := strconv.Atoi(text); err == nil {
			sd.settings.SetRequestTimeoutSeconds(sec)
		} else {
			problems = append(problems, sd.localization.GetText(KeyTimeout)+": "+sd.localization.GetText(KeyInvalidNumber))
		}
	}

	if code, ok := sd.languageByName[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	if len(problems) > 0 {
		dialog.ShowError(errors.New(strings.Join(problems, "\n")), sd.window)
		return
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

func optionalURLValidator(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return browser.ValidateURL(strings.TrimSpace(text))
}
