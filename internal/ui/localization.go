package ui

import (
	"fmt"

	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeySettings           = "settings"
	KeyLanguage           = "language"
	KeyOpenLogFolder      = "open_log_folder"
	KeySearchPlaceholder  = "search_placeholder"
	KeySortByText         = "sort_by_text"
	KeyResultCount        = "result_count"
	KeySelected           = "selected"
	KeyErrorServer        = "error_server"
	KeyErrorNetwork       = "error_network"
	KeyErrorDecode        = "error_decode"
	KeyErrorLookup        = "error_lookup"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeyLookupSettings     = "lookup_settings"
	KeyInterfaceSettings  = "interface_settings"
	KeyEndpoint           = "endpoint"
	KeyHomeURL            = "home_url"
	KeyLexicon            = "lexicon"
	KeyDebounce           = "debounce"
	KeyTimeout            = "timeout"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyInvalidURL         = "invalid_url"
	KeyInvalidNumber      = "invalid_number"
	KeyReload             = "reload"
	KeyOpenInBrowser      = "open_in_browser"
	KeyLoadingPage        = "loading_page"
	KeyPreviewUnavailable = "preview_unavailable"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves to the OS locale.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Textf formats the localized text for key with args
func (l *Localization) Textf(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// systemLanguage returns the base language of the OS locale, or "en"
func systemLanguage() string {
	tag, err := language.Parse(string(lang.SystemLocale()))
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "philolog.us",
		KeyFile:               "File",
		KeySettings:           "Settings",
		KeyLanguage:           "Language",
		KeyOpenLogFolder:      "Open Log Folder",
		KeySearchPlaceholder:  "Search headwords...",
		KeySortByText:         "Sort A-Z",
		KeyResultCount:        "%d results",
		KeySelected:           "%s copied to clipboard",
		KeyErrorServer:        "Dictionary server returned status %d",
		KeyErrorNetwork:       "Could not reach the dictionary server",
		KeyErrorDecode:        "Unexpected response from the dictionary server",
		KeyErrorLookup:        "Lookup failed",
		KeyErrorOpeningFolder: "Error opening folder",
		KeyLookupSettings:     "Lookup",
		KeyInterfaceSettings:  "Interface",
		KeyEndpoint:           "Lookup endpoint",
		KeyHomeURL:            "Browser home page",
		KeyLexicon:            "Lexicon",
		KeyDebounce:           "Typing delay (ms)",
		KeyTimeout:            "Request timeout (s)",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyInvalidURL:         "Invalid URL",
		KeyInvalidNumber:      "Invalid number",
		KeyReload:             "Reload",
		KeyOpenInBrowser:      "Open in browser",
		KeyLoadingPage:        "Loading page...",
		KeyPreviewUnavailable: "Page preview unavailable",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "philolog.us",
		KeyFile:               "Файл",
		KeySettings:           "Настройки",
		KeyLanguage:           "Язык",
		KeyOpenLogFolder:      "Открыть папку журналов",
		KeySearchPlaceholder:  "Поиск по словарю...",
		KeySortByText:         "По алфавиту",
		KeyResultCount:        "Найдено: %d",
		KeySelected:           "%s скопировано в буфер обмена",
		KeyErrorServer:        "Сервер словаря вернул статус %d",
		KeyErrorNetwork:       "Не удалось связаться с сервером словаря",
		KeyErrorDecode:        "Неожиданный ответ сервера словаря",
		KeyErrorLookup:        "Ошибка поиска",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeyLookupSettings:     "Поиск",
		KeyInterfaceSettings:  "Интерфейс",
		KeyEndpoint:           "Адрес запросов",
		KeyHomeURL:            "Домашняя страница",
		KeyLexicon:            "Словарь",
		KeyDebounce:           "Задержка ввода (мс)",
		KeyTimeout:            "Тайм-аут запроса (с)",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyInvalidURL:         "Неверный URL",
		KeyInvalidNumber:      "Неверное число",
		KeyReload:             "Обновить",
		KeyOpenInBrowser:      "Открыть в браузере",
		KeyLoadingPage:        "Загрузка страницы...",
		KeyPreviewUnavailable: "Предпросмотр страницы недоступен",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "philolog.us",
		KeyFile:               "Arquivo",
		KeySettings:           "Configurações",
		KeyLanguage:           "Idioma",
		KeyOpenLogFolder:      "Abrir Pasta de Logs",
		KeySearchPlaceholder:  "Pesquisar verbetes...",
		KeySortByText:         "Ordem A-Z",
		KeyResultCount:        "%d resultados",
		KeySelected:           "%s copiado para a área de transferência",
		KeyErrorServer:        "O servidor do dicionário retornou status %d",
		KeyErrorNetwork:       "Não foi possível acessar o servidor do dicionário",
		KeyErrorDecode:        "Resposta inesperada do servidor do dicionário",
		KeyErrorLookup:        "Falha na pesquisa",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
		KeyLookupSettings:     "Pesquisa",
		KeyInterfaceSettings:  "Interface",
		KeyEndpoint:           "Endereço de consulta",
		KeyHomeURL:            "Página inicial do navegador",
		KeyLexicon:            "Léxico",
		KeyDebounce:           "Atraso de digitação (ms)",
		KeyTimeout:            "Tempo limite da requisição (s)",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyInvalidURL:         "URL inválida",
		KeyInvalidNumber:      "Número inválido",
		KeyReload:             "Recarregar",
		KeyOpenInBrowser:      "Abrir no navegador",
		KeyLoadingPage:        "Carregando página...",
		KeyPreviewUnavailable: "Pré-visualização indisponível",
	}
}
