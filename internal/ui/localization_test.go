package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Settings", l.GetText(KeySettings))

	l.SetLanguage("pt")
	assert.Equal(t, "Configurações", l.GetText(KeySettings))

	// Unknown languages are ignored
	l.SetLanguage("xx")
	assert.Equal(t, "pt", l.GetCurrentLanguage())

	// Unknown keys fall back to the key itself
	assert.Equal(t, "no_such_key", l.GetText("no_such_key"))
}

func TestLocalization_Textf(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "3 results", l.Textf(KeyResultCount, 3))

	l.SetLanguage("ru")
	assert.Equal(t, "Найдено: 3", l.Textf(KeyResultCount, 3))
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !assert.True(t, ok, "missing texts for %s", code) {
			continue
		}
		for key := range english {
			assert.Contains(t, texts, key, "language %s lacks %s", code, key)
		}
	}
}
