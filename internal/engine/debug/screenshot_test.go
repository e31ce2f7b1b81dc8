package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedScreenshots(dir string) *Screenshots {
	s := NewScreenshots(dir, "shot")
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }
	return s
}

func TestFilename(t *testing.T) {
	s := fixedScreenshots("out")
	want := filepath.Join("out", "shot_2024-03-01_12-30-45.png")
	if got := s.Filename(); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}

	s.dir = ""
	if got := s.Filename(); got != "shot_2024-03-01_12-30-45.png" {
		t.Errorf("Filename() without dir = %q", got)
	}
}

func TestSaveGLPixelsFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := fixedScreenshots(dir)

	// 1x2 image: bottom row red, top row blue in GL order.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := s.SaveGLPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("SaveGLPixels: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b != 0xffff {
		t.Errorf("top pixel = r%d b%d, want blue", r, b)
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r != 0xffff || b != 0 {
		t.Errorf("bottom pixel = r%d b%d, want red", r, b)
	}
}

func TestSaveGLPixelsSizeMismatch(t *testing.T) {
	s := fixedScreenshots(t.TempDir())
	if _, err := s.SaveGLPixels(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}
