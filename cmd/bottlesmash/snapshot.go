package main

import (
	"image"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mindfulcampus/bottlesmash/canvas"
	"github.com/mindfulcampus/bottlesmash/config"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/parameter"
	"github.com/mindfulcampus/bottlesmash/parameter/visual"
	"github.com/mindfulcampus/bottlesmash/render"
	"github.com/mindfulcampus/bottlesmash/scene"
	"github.com/mindfulcampus/bottlesmash/vmath"
)

// parseClicks reads "x,y;x,y" surface coordinates
func parseClicks(s string) ([]vmath.Point, error) {
	var pts []vmath.Point
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, errors.Errorf("click %q: want x,y", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "click %q", pair)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "click %q", pair)
		}
		pts = append(pts, vmath.Pt(x, y))
	}
	return pts, nil
}

// renderSnapshot runs a driver headless: clicks land before the first frame,
// then frames are stepped and the surface is flattened over the backdrop
func renderSnapshot(settings config.Settings, frames int, clicks []vmath.Point, seed int64) *image.RGBA {
	rng := core.NewRand(seed)
	literal := settings.Background
	if literal == config.Auto {
		literal = scene.PickNext(rng, visual.Backgrounds, "")
	}
	backdrop := scene.NewBackdrop(literal)

	surface := canvas.NewRaster(parameter.SurfaceWidth, parameter.SurfaceHeight)
	d := scene.NewDriver(scene.Options{
		Settings: settings,
		Canvas:   surface,
		Rand:     rng,
		Backdrop: backdrop,
	})
	for _, p := range clicks {
		d.Click(p.X, p.Y)
	}
	for range frames {
		d.Step()
	}
	return render.Composite(surface.Image(), backdrop.Current())
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create snapshot")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrap(err, "encode snapshot")
	}
	return errors.Wrap(f.Close(), "close snapshot")
}
