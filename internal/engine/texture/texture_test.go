package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	img, format, err := Decode(encodePNG(t, 4, 2))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v, want 4x2", img.Bounds())
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected error for garbage data")
	}
}

func TestToRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 6, 5))
	src.Set(2, 3, color.NRGBA{R: 255, A: 255})

	out := ToRGBA(src)
	if out.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Fatalf("bounds = %v, want (0,0)-(4,2)", out.Bounds())
	}
	if got := out.RGBAAt(0, 0); got.R != 255 || got.A != 255 {
		t.Errorf("pixel (0,0) = %v, want opaque red", got)
	}

	same := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if ToRGBA(same) != same {
		t.Error("packed RGBA should be returned unchanged")
	}
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		maxSize int
		wantW   int
		wantH   int
	}{
		{"small", 64, 32, 128, 64, 32},
		{"wide", 400, 100, 100, 100, 25},
		{"tall", 100, 400, 100, 25, 100},
		{"unlimited", 300, 300, 0, 300, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := FitWithin(image.NewRGBA(image.Rect(0, 0, tt.w, tt.h)), tt.maxSize)
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("size = %v, want %dx%d", out.Bounds().Size(), tt.wantW, tt.wantH)
			}
		})
	}
}
