package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mindfulcampus/bottlesmash/config"
	"github.com/mindfulcampus/bottlesmash/parameter/visual"
	"github.com/mindfulcampus/bottlesmash/vmath"
)

func TestParseClicks(t *testing.T) {
	pts, err := parseClicks("400,250; 10.5,20 ;")
	if err != nil {
		t.Fatalf("parseClicks: %v", err)
	}
	if len(pts) != 2 || pts[0] != vmath.Pt(400, 250) || pts[1] != vmath.Pt(10.5, 20) {
		t.Errorf("parseClicks = %v", pts)
	}

	for _, bad := range []string{"400", "a,1", "1,b"} {
		if _, err := parseClicks(bad); err == nil {
			t.Errorf("parseClicks(%q) should fail", bad)
		}
	}
}

func TestRenderSnapshot(t *testing.T) {
	settings := config.DefaultSettings()
	settings.ObjectType = "bottle"
	settings.GlassColor = "#7EC8E3"
	settings.Background = visual.Backgrounds[0]

	// Bursts on frame 38 at depth 1.5, leaving fragments in flight on frame 40
	img := renderSnapshot(settings, 40, []vmath.Point{vmath.Pt(400, 250)}, 1)
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 500 {
		t.Fatalf("snapshot size %v", b)
	}
	if img.RGBAAt(0, 0).A != 255 {
		t.Error("snapshot should be opaque")
	}
	if img.RGBAAt(0, 0) == img.RGBAAt(400, 250) {
		t.Error("wall should differ from the corner backdrop")
	}

	same := renderSnapshot(settings, 40, []vmath.Point{vmath.Pt(400, 250)}, 1)
	for _, pt := range [][2]int{{400, 250}, {380, 240}, {420, 270}} {
		if img.RGBAAt(pt[0], pt[1]) != same.RGBAAt(pt[0], pt[1]) {
			t.Errorf("same seed should render the same pixel at %v", pt)
		}
	}

	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("written file is not a PNG: %v", err)
	}
}
