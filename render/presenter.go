package render

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/mindfulcampus/bottlesmash/config"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/engine"
	"github.com/mindfulcampus/bottlesmash/parameter/visual"
	"github.com/mindfulcampus/bottlesmash/scene"
	"github.com/mindfulcampus/bottlesmash/status"
)

const halfBlock = '▀'

// Imager is a surface exposing its pixels
type Imager interface {
	Image() *image.RGBA
}

// Presenter draws frames onto a tcell screen
// Present runs on the frame goroutine; the toggles are safe from any goroutine
type Presenter struct {
	screen   tcell.Screen
	mode     ColorMode
	registry *status.Registry

	help      atomic.Bool
	helpMu    sync.Mutex
	helpLines []string
	notice    atomic.Value // string
}

// NewPresenter creates a presenter for screen
func NewPresenter(screen tcell.Screen, mode ColorMode, registry *status.Registry) *Presenter {
	if registry == nil {
		registry = status.NewRegistry()
	}
	p := &Presenter{screen: screen, mode: mode, registry: registry}
	p.notice.Store("")
	return p
}

// SetHelp sets the lines shown by the help overlay
func (p *Presenter) SetHelp(lines []string) {
	p.helpMu.Lock()
	p.helpLines = append([]string(nil), lines...)
	p.helpMu.Unlock()
}

// ToggleHelp flips the help overlay and returns the new state
func (p *Presenter) ToggleHelp() bool {
	for {
		old := p.help.Load()
		if p.help.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// HideHelp closes the overlay, returns true if it was open
func (p *Presenter) HideHelp() bool {
	return p.help.Swap(false)
}

// HelpVisible reports the overlay state
func (p *Presenter) HelpVisible() bool {
	return p.help.Load()
}

// SetNotice shows a short message at the right of the status bar
func (p *Presenter) SetNotice(msg string) {
	p.notice.Store(msg)
}

// Present implements engine.Presenter
func (p *Presenter) Present(f engine.Frame) {
	cols, rows := p.screen.Size()
	l := ComputeLayout(cols, rows)

	var img *image.RGBA
	if s, ok := f.Surface.(Imager); ok {
		img = s.Image()
	}

	p.drawScene(l, f.Backdrop, img)
	p.drawStatusBar(l, f.Settings)
	if p.help.Load() {
		p.drawHelp(l)
	}
	p.screen.Show()
}

func (p *Presenter) drawScene(l Layout, backdrop scene.Gradient, img *image.RGBA) {
	for row := 0; row < l.SceneRows; row++ {
		for col := 0; col < l.Cols; col++ {
			top := p.pixel(l, backdrop, img, col, row*2)
			bottom := p.pixel(l, backdrop, img, col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(toColor(top, p.mode)).
				Background(toColor(bottom, p.mode))
			p.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

// pixel resolves one half-block pixel: backdrop under the averaged surface area
func (p *Presenter) pixel(l Layout, backdrop scene.Gradient, img *image.RGBA, px, py int) core.RGB {
	base := backdrop.Sample(float64(px)+0.5, float64(py)+0.5, float64(l.PixW), float64(l.PixH))
	if img == nil || !l.Inside(px, py) {
		return base
	}

	sx := float64(img.Rect.Dx()) / float64(l.W)
	sy := float64(img.Rect.Dy()) / float64(l.H)
	x0 := int(float64(px-l.X) * sx)
	y0 := int(float64(py-l.Y) * sy)
	x1 := int(float64(px-l.X+1) * sx)
	y1 := int(float64(py-l.Y+1) * sy)
	r, g, b, a := boxAverage(img, x0, y0, x1, y1)
	return over(base, r, g, b, a)
}

func (p *Presenter) drawStatusBar(l Layout, s config.Settings) {
	if l.Rows == 0 {
		return
	}
	snap := p.registry.Snapshot()

	left := fmt.Sprintf(" %s │ glass %s │ liquid %s │ bg %s │ depth %.1f ",
		s.ObjectType, config.Label(s.GlassColor), config.Label(s.LiquidColor),
		config.Label(s.Background), s.WallDepth)
	right := fmt.Sprintf(" smashes %d │ in flight %d │ ? help ", snap.Smashes, snap.Objects)
	if msg, _ := p.notice.Load().(string); msg != "" {
		right = " " + msg + " │" + right
	}
	if snap.JournalTotal > 0 {
		right = fmt.Sprintf(" total %d │", snap.JournalTotal) + right
	}

	barStyle := tcell.StyleDefault.
		Foreground(toColor(visual.StatusFg, p.mode)).
		Background(toColor(visual.StatusBg, p.mode))
	y := l.Rows - 1
	for x := 0; x < l.Cols; x++ {
		p.screen.SetContent(x, y, ' ', nil, barStyle)
	}

	rw := runewidth.StringWidth(right)
	if rw > l.Cols {
		right = runewidth.Truncate(right, l.Cols, "…")
		rw = runewidth.StringWidth(right)
	}
	left = runewidth.Truncate(left, max(l.Cols-rw, 0), "…")
	p.drawText(0, y, left, barStyle.Bold(true))
	p.drawText(l.Cols-rw, y, right, barStyle.Foreground(toColor(visual.StatusAccent, p.mode)))
}

func (p *Presenter) drawHelp(l Layout) {
	p.helpMu.Lock()
	lines := p.helpLines
	p.helpMu.Unlock()
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	width = min(width+4, l.Cols)
	height := min(len(lines)+2, l.SceneRows)
	if width <= 0 || height <= 0 {
		return
	}
	x0 := (l.Cols - width) / 2
	y0 := (l.SceneRows - height) / 2

	style := tcell.StyleDefault.
		Foreground(toColor(visual.HelpFg, p.mode)).
		Background(toColor(visual.HelpBg, p.mode))
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			p.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	for i, line := range lines {
		if i >= height-2 {
			break
		}
		p.drawText(x0+2, y0+1+i, runewidth.Truncate(line, width-4, "…"), style)
	}
}

// drawText writes s starting at (x, y) honoring wide runes
func (p *Presenter) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.screen.SetContent(x, y, r, nil, style)
		x += w
	}
}
