package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/philologus/philologus-desktop/internal/browser"
)

// Lexicon selectors served by the query endpoint
type Lexicon string

const (
	LexiconLSJ    Lexicon = "lsj"
	LexiconSlater Lexicon = "slater"
	LexiconLS     Lexicon = "ls"
)

// Settings keys for Fyne preferences
const (
	KeyEndpoint       = "lookup_endpoint"
	KeyHomeURL        = "home_url"
	KeyLexicon        = "lexicon"
	KeyDebounceMillis = "debounce_ms"
	KeyTimeoutSeconds = "request_timeout_sec"
	KeyLanguage       = "app_language"
	KeySortByText     = "sort_by_text"
)

// Default values
const (
	DefaultEndpoint       = "https://philolog.us/query"
	DefaultHomeURL        = "https://philolog.us"
	DefaultLexicon        = LexiconLSJ
	DefaultDebounceMillis = 0
	DefaultTimeoutSeconds = 10
	DefaultLanguage       = "system"
	DefaultSortByText     = false

	MaxDebounceMillis = 2000
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 60
)

// Settings manages application configuration stored in Fyne preferences.
// Unset preferences fall back to the file and environment layers.
type Settings struct {
	app      fyne.App
	defaults Defaults
}

// NewSettings creates a new settings manager using built-in defaults
func NewSettings(app fyne.App) *Settings {
	return NewSettingsWithDefaults(app, BuiltinDefaults())
}

// NewSettingsWithDefaults creates a settings manager whose fallbacks come from defaults
func NewSettingsWithDefaults(app fyne.App, defaults Defaults) *Settings {
	return &Settings{app: app, defaults: defaults.normalized()}
}

// GetEndpoint returns the lookup endpoint. A stored value that is not an
// http(s) URL falls back to the defaults.
func (s *Settings) GetEndpoint() string {
	endpoint := s.app.Preferences().StringWithFallback(KeyEndpoint, s.defaults.Endpoint)
	if browser.ValidateURL(endpoint) != nil {
		return s.defaults.Endpoint
	}
	return endpoint
}

// SetEndpoint sets the lookup endpoint; empty resets to the default
func (s *Settings) SetEndpoint(endpoint string) {
	if endpoint == "" {
		s.app.Preferences().RemoveValue(KeyEndpoint)
		return
	}
	s.app.Preferences().SetString(KeyEndpoint, endpoint)
}

// GetHomeURL returns the address shown in the browser pane
func (s *Settings) GetHomeURL() string {
	homeURL := s.app.Preferences().StringWithFallback(KeyHomeURL, s.defaults.HomeURL)
	if browser.ValidateURL(homeURL) != nil {
		return s.defaults.HomeURL
	}
	return homeURL
}

// SetHomeURL sets the browser pane address; empty resets to the default
func (s *Settings) SetHomeURL(url string) {
	if url == "" {
		s.app.Preferences().RemoveValue(KeyHomeURL)
		return
	}
	s.app.Preferences().SetString(KeyHomeURL, url)
}

// GetLexicon returns the configured lexicon
func (s *Settings) GetLexicon() Lexicon {
	lexicon := Lexicon(s.app.Preferences().StringWithFallback(KeyLexicon, string(s.defaults.Lexicon)))
	if !lexicon.IsValid() {
		return s.defaults.Lexicon
	}
	return lexicon
}

// SetLexicon sets the lexicon; unknown values are ignored
func (s *Settings) SetLexicon(lexicon Lexicon) {
	if !lexicon.IsValid() {
		return
	}
	s.app.Preferences().SetString(KeyLexicon, string(lexicon))
}

// GetDebounce returns the search debounce window
func (s *Settings) GetDebounce() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyDebounceMillis, s.defaults.DebounceMillis)
	return time.Duration(clampDebounce(ms)) * time.Millisecond
}

// SetDebounceMillis sets the search debounce window in milliseconds
func (s *Settings) SetDebounceMillis(ms int) {
	s.app.Preferences().SetInt(KeyDebounceMillis, clampDebounce(ms))
}

// GetRequestTimeout returns the lookup request timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	sec := s.app.Preferences().IntWithFallback(KeyTimeoutSeconds, s.defaults.TimeoutSeconds)
	return time.Duration(clampTimeout(sec)) * time.Second
}

// SetRequestTimeoutSeconds sets the lookup request timeout in seconds
func (s *Settings) SetRequestTimeoutSeconds(sec int) {
	s.app.Preferences().SetInt(KeyTimeoutSeconds, clampTimeout(sec))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, s.defaults.Language)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetSortByText returns whether the result list is sorted by headword
func (s *Settings) GetSortByText() bool {
	return s.app.Preferences().BoolWithFallback(KeySortByText, DefaultSortByText)
}

// SetSortByText sets whether the result list is sorted by headword
func (s *Settings) SetSortByText(enabled bool) {
	s.app.Preferences().SetBool(KeySortByText, enabled)
}

// GetLexiconOptions returns available lexicon options
func (s *Settings) GetLexiconOptions() []Lexicon {
	return []Lexicon{LexiconLSJ, LexiconSlater, LexiconLS}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// IsValid reports whether the lexicon is served by the endpoint
func (l Lexicon) IsValid() bool {
	switch l {
	case LexiconLSJ, LexiconSlater, LexiconLS:
		return true
	default:
		return false
	}
}

// DisplayName returns a human-friendly lexicon name
func (l Lexicon) DisplayName() string {
	switch l {
	case LexiconLSJ:
		return "LSJ (Greek)"
	case LexiconSlater:
		return "Slater (Pindar)"
	case LexiconLS:
		return "Lewis & Short (Latin)"
	default:
		return string(l)
	}
}

func clampDebounce(ms int) int {
	if ms < 0 {
		return 0
	}
	if ms > MaxDebounceMillis {
		return MaxDebounceMillis
	}
	return ms
}

func clampTimeout(sec int) int {
	if sec < MinTimeoutSeconds {
		return MinTimeoutSeconds
	}
	if sec > MaxTimeoutSeconds {
		return MaxTimeoutSeconds
	}
	return sec
}
