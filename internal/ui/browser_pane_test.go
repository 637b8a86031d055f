package ui

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philologus/philologus-desktop/internal/browser"
)

// gatedRenderer blocks each render until the test releases that URL
type gatedRenderer struct {
	mu    sync.Mutex
	gates map[string]chan renderResult
}

type renderResult struct {
	png []byte
	err error
}

func newGatedRenderer() *gatedRenderer {
	return &gatedRenderer{gates: make(map[string]chan renderResult)}
}

func (g *gatedRenderer) gate(pageURL string) chan renderResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[pageURL]
	if !ok {
		ch = make(chan renderResult, 1)
		g.gates[pageURL] = ch
	}
	return ch
}

func (g *gatedRenderer) Render(ctx context.Context, pageURL string, size browser.Size) ([]byte, error) {
	r := <-g.gate(pageURL)
	return r.png, r.err
}

func (g *gatedRenderer) release(pageURL string, png []byte, err error) {
	g.gate(pageURL) <- renderResult{png: png, err: err}
}

func solidPNG(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestBrowserPane(t *testing.T, renderer browser.Renderer) (*BrowserPane, uiLoop) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	loop := newUILoop()
	pane := NewBrowserPane(app, renderer, loop.dispatch, NewLocalization(), nil)
	t.Cleanup(pane.Close)
	return pane, loop
}

func TestBrowserPane_RenderShowsImage(t *testing.T) {
	renderer := newGatedRenderer()
	pane, loop := newTestBrowserPane(t, renderer)
	page := solidPNG(t, color.White)

	pane.Navigate("https://philolog.us")
	assert.True(t, pane.spinner.Visible())
	assert.True(t, pane.loading.Visible())
	assert.Equal(t, "Loading page...", pane.loading.Text)

	renderer.release("https://philolog.us", page, nil)
	loop.runNext(t)

	assert.False(t, pane.spinner.Visible())
	assert.False(t, pane.loading.Visible())
	assert.True(t, pane.image.Visible())
	assert.False(t, pane.fallback.Visible())
	require.NotNil(t, pane.image.Resource)
	assert.Equal(t, page, pane.image.Resource.Content())
	assert.Equal(t, "https://philolog.us", pane.address.Text)
}

func TestBrowserPane_RenderFailureFallsBackToLink(t *testing.T) {
	renderer := newGatedRenderer()
	pane, loop := newTestBrowserPane(t, renderer)

	pane.Navigate("https://philolog.us")
	renderer.release("https://philolog.us", nil, errors.New("chrome not found"))
	loop.runNext(t)

	assert.False(t, pane.image.Visible())
	assert.True(t, pane.fallback.Visible())
	assert.Equal(t, "chrome not found", pane.errorLabel.Text)
	require.NotNil(t, pane.link.URL)
	assert.Equal(t, "philolog.us", pane.link.URL.Host)
}

func TestBrowserPane_StaleRenderDiscarded(t *testing.T) {
	renderer := newGatedRenderer()
	pane, loop := newTestBrowserPane(t, renderer)
	older := solidPNG(t, color.Black)
	newer := solidPNG(t, color.White)

	pane.Navigate("https://philolog.us/a")
	pane.Navigate("https://philolog.us/b")

	renderer.release("https://philolog.us/b", newer, nil)
	loop.runNext(t)
	renderer.release("https://philolog.us/a", older, nil)
	loop.runNext(t)

	require.NotNil(t, pane.image.Resource)
	assert.Equal(t, newer, pane.image.Resource.Content())
	assert.Equal(t, "https://philolog.us/b", pane.URL())
}

func TestBrowserPane_NoRenderer(t *testing.T) {
	pane, loop := newTestBrowserPane(t, nil)

	pane.Navigate("https://philolog.us")

	assert.True(t, pane.fallback.Visible())
	assert.False(t, pane.errorLabel.Visible())
	assert.Empty(t, loop)
}

func TestBrowserPane_InvalidURL(t *testing.T) {
	pane, loop := newTestBrowserPane(t, newGatedRenderer())

	pane.Navigate("philolog.us")

	assert.True(t, pane.fallback.Visible())
	assert.Contains(t, pane.errorLabel.Text, "http")
	assert.Empty(t, loop)
}

func TestBrowserPane_LoadingLabelFollowsLanguage(t *testing.T) {
	renderer := newGatedRenderer()
	pane, loop := newTestBrowserPane(t, renderer)

	pane.localization.SetLanguage("pt")
	pane.RefreshTexts()
	pane.Navigate("https://philolog.us")
	assert.Equal(t, "Carregando página...", pane.loading.Text)

	renderer.release("https://philolog.us", nil, errors.New("timeout"))
	loop.runNext(t)

	assert.False(t, pane.loading.Visible())
	assert.True(t, pane.fallback.Visible())
}
