package ui

import (
	"context"
	"net/url"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/philologus/philologus-desktop/internal/browser"
	"github.com/philologus/philologus-desktop/internal/search"
)

// BrowserPane shows a rendered snapshot of a web page with a small toolbar.
// When no renderer is available it degrades to a link that opens the system browser.
type BrowserPane struct {
	app          fyne.App
	renderer     browser.Renderer
	dispatch     search.Dispatcher
	localization *Localization
	logger       *zap.Logger

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	pageURL string

	address    *widget.Label
	reloadBtn  *widget.Button
	openBtn    *widget.Button
	spinner    *widget.ProgressBarInfinite
	loading    *widget.Label
	image      *canvas.Image
	link       *widget.Hyperlink
	errorLabel *widget.Label
	fallback   *fyne.Container
	content    *fyne.Container
}

// NewBrowserPane creates the pane. renderer may be nil.
func NewBrowserPane(app fyne.App, renderer browser.Renderer, dispatch search.Dispatcher, localization *Localization, logger *zap.Logger) *BrowserPane {
	if dispatch == nil {
		dispatch = fyne.Do
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &BrowserPane{
		app:          app,
		renderer:     renderer,
		dispatch:     dispatch,
		localization: localization,
		logger:       logger.Named("browser_pane"),
	}
	p.createUI()
	return p
}

// Container returns the pane content
func (p *BrowserPane) Container() fyne.CanvasObject {
	return p.content
}

// URL returns the address currently shown
func (p *BrowserPane) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pageURL
}

// Navigate shows pageURL, superseding any render in progress
func (p *BrowserPane) Navigate(pageURL string) {
	p.mu.Lock()
	p.pageURL = pageURL
	p.mu.Unlock()

	p.address.SetText(pageURL)
	if u, err := url.Parse(pageURL); err == nil {
		p.link.SetURL(u)
	}
	p.link.SetText(pageURL)

	if err := browser.ValidateURL(pageURL); err != nil {
		p.Close()
		p.showFallback(err)
		return
	}
	if p.renderer == nil {
		p.Close()
		p.showFallback(nil)
		return
	}

	p.render(pageURL)
}

// Reload renders the current address again
func (p *BrowserPane) Reload() {
	p.Navigate(p.URL())
}

// Close cancels any render in progress
func (p *BrowserPane) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// RefreshTexts re-applies localized labels
func (p *BrowserPane) RefreshTexts() {
	p.reloadBtn.SetText(IconReload + " " + p.localization.GetText(KeyReload))
	p.openBtn.SetText(IconOpenExternal + " " + p.localization.GetText(KeyOpenInBrowser))
	p.loading.SetText(p.localization.GetText(KeyLoadingPage))
}

func (p *BrowserPane) createUI() {
	p.address = widget.NewLabel("")
	p.address.Truncation = fyne.TextTruncateEllipsis

	p.reloadBtn = widget.NewButton("", p.Reload)
	p.reloadBtn.Importance = widget.LowImportance
	p.openBtn = widget.NewButton("", p.openExternal)
	p.openBtn.Importance = widget.LowImportance

	p.spinner = widget.NewProgressBarInfinite()
	p.spinner.Hide()
	p.loading = widget.NewLabel("")
	p.loading.Hide()
	p.RefreshTexts()

	p.image = canvas.NewImageFromResource(nil)
	p.image.FillMode = canvas.ImageFillContain
	p.image.ScaleMode = canvas.ImageScaleSmooth
	p.image.Hide()

	p.link = widget.NewHyperlink("", nil)
	p.errorLabel = widget.NewLabel("")
	p.errorLabel.Wrapping = fyne.TextWrapWord
	p.fallback = container.NewVBox(
		widget.NewLabel(p.localization.GetText(KeyPreviewUnavailable)),
		p.link,
		p.errorLabel,
	)
	p.fallback.Hide()

	toolbar := container.NewBorder(nil, nil, nil, container.NewHBox(p.reloadBtn, p.openBtn), p.address)
	top := container.NewVBox(toolbar, p.spinner, p.loading)

	p.content = container.NewBorder(top, nil, nil, nil,
		container.NewStack(p.image, container.NewCenter(p.fallback)))
}

// render captures pageURL in the background; only the newest capture is applied
func (p *BrowserPane) render(pageURL string) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.seq++
	seq := p.seq
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.mu.Unlock()

	p.setLoading(true)

	go func() {
		png, err := p.renderer.Render(ctx, pageURL, browser.Size{
			Width:  BrowserViewportWidth,
			Height: BrowserViewportHeight,
		})
		p.dispatch(func() {
			p.applyRender(seq, pageURL, png, err)
		})
	}()
}

func (p *BrowserPane) applyRender(seq uint64, pageURL string, png []byte, err error) {
	p.mu.Lock()
	if seq != p.seq {
		p.mu.Unlock()
		p.logger.Debug("discarding stale page render", zap.String("url", pageURL))
		return
	}
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.setLoading(false)

	if err != nil {
		p.logger.Warn("page preview unavailable", zap.String("url", pageURL), zap.Error(err))
		p.showFallback(err)
		return
	}

	p.image.Resource = fyne.NewStaticResource("page.png", png)
	p.fallback.Hide()
	p.image.Show()
	p.image.Refresh()
}

func (p *BrowserPane) setLoading(loading bool) {
	if loading {
		p.spinner.Show()
		p.spinner.Start()
		p.loading.Show()
		return
	}
	p.spinner.Stop()
	p.spinner.Hide()
	p.loading.Hide()
}

func (p *BrowserPane) showFallback(err error) {
	p.setLoading(false)
	p.image.Hide()
	if err != nil {
		p.errorLabel.SetText(err.Error())
		p.errorLabel.Show()
	} else {
		p.errorLabel.Hide()
	}
	p.fallback.Show()
}

func (p *BrowserPane) openExternal() {
	u, err := url.Parse(p.URL())
	if err != nil || browser.ValidateURL(u.String()) != nil {
		return
	}
	if err := p.app.OpenURL(u); err != nil {
		p.logger.Warn("failed to open system browser", zap.String("url", u.String()), zap.Error(err))
	}
}
