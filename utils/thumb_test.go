package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testImage(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("can't encode test image: %s", err)
	}
	return &buf
}

func TestCreateThumb(t *testing.T) {
	var thumb bytes.Buffer
	result, err := CreateThumb(100, testImage(t, 400, 200), &thumb)
	if err != nil {
		t.Fatalf("CreateThumb() error = %v", err)
	}
	if result.OldX != 400 || result.OldY != 200 {
		t.Errorf("original size = %dx%d, want 400x200", result.OldX, result.OldY)
	}
	if result.NewX > 100 || result.NewY > 100 {
		t.Errorf("thumb size = %dx%d, want within 100x100", result.NewX, result.NewY)
	}
	if result.ThumbSize != int64(thumb.Len()) || thumb.Len() == 0 {
		t.Errorf("thumb bytes = %d, reported %d", thumb.Len(), result.ThumbSize)
	}
	// The output is a decodable JPEG
	if _, format, err := image.Decode(&thumb); err != nil || format != "jpeg" {
		t.Errorf("decode thumb: format %q, err %v", format, err)
	}
}

func TestCreateThumbBadInput(t *testing.T) {
	var thumb bytes.Buffer
	if _, err := CreateThumb(100, bytes.NewReader([]byte("not an image")), &thumb); err == nil {
		t.Error("CreateThumb() with garbage input should fail")
	}
}
