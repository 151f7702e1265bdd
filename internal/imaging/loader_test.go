package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode test file: %v", err)
	}
	return path
}

func TestCacheLoad(t *testing.T) {
	path := writeTestPNG(t, createPatternImage(40, 20))
	cache := NewCache()

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Errorf("dimensions: got %dx%d, want 40x20", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Second load must come from cache even after the file is gone.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove test file: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached load failed: %v", err)
	}
}

func TestCacheEvict(t *testing.T) {
	path := writeTestPNG(t, createInMemoryImage(10, 10, color.White))
	cache := NewCache()

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove test file: %v", err)
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("expected load to fail after eviction and file removal")
	}
}

func TestCacheClear(t *testing.T) {
	path := writeTestPNG(t, createInMemoryImage(10, 10, color.White))
	cache := NewCache()

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Clear()
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove test file: %v", err)
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("expected load to fail after clear and file removal")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cache := NewCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	cache := NewCache()
	if _, err := cache.Load(path); err == nil {
		t.Error("expected error for invalid image data")
	}
}

func TestDecodeSourceFromPath(t *testing.T) {
	path := writeTestPNG(t, createPatternImage(30, 30))

	img, err := DecodeSource(NewCache(), path)
	if err != nil {
		t.Fatalf("DecodeSource failed: %v", err)
	}
	if img.Bounds().Dx() != 30 {
		t.Errorf("width: got %d, want 30", img.Bounds().Dx())
	}
}

func TestDecodeSourceFromBase64(t *testing.T) {
	data := encodePNGBase64(t, createPatternImage(16, 16))

	img, err := DecodeSource(NewCache(), data)
	if err != nil {
		t.Fatalf("DecodeSource failed: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("dimensions: got %dx%d, want 16x16", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDecodeSourceFromDataURI(t *testing.T) {
	data := "data:image/png;base64," + encodePNGBase64(t, createInMemoryImage(8, 8, color.Black))

	img, err := DecodeSource(NewCache(), data)
	if err != nil {
		t.Fatalf("DecodeSource failed: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("width: got %d, want 8", img.Bounds().Dx())
	}
}

func TestDecodeSourceEmpty(t *testing.T) {
	if _, err := DecodeSource(NewCache(), ""); err == nil {
		t.Error("expected error for empty source")
	}
}

func TestDecodeSourceMalformedDataURI(t *testing.T) {
	if _, err := DecodeSource(NewCache(), "data:image/png;base64"); err == nil {
		t.Error("expected error for data URI without payload")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name      string
		img       image.Image
		wantAlpha bool
		wantDepth string
	}{
		{"rgba", image.NewRGBA(image.Rect(0, 0, 5, 7)), true, "8-bit"},
		{"nrgba64", image.NewNRGBA64(image.Rect(0, 0, 5, 7)), true, "16-bit"},
		{"gray", image.NewGray(image.Rect(0, 0, 5, 7)), false, "8-bit"},
		{"gray16", image.NewGray16(image.Rect(0, 0, 5, 7)), false, "16-bit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Describe(tt.img)
			if info.Width != 5 || info.Height != 7 {
				t.Errorf("dimensions: got %dx%d, want 5x7", info.Width, info.Height)
			}
			if info.HasAlpha != tt.wantAlpha {
				t.Errorf("HasAlpha: got %v, want %v", info.HasAlpha, tt.wantAlpha)
			}
			if info.ColorDepth != tt.wantDepth {
				t.Errorf("ColorDepth: got %s, want %s", info.ColorDepth, tt.wantDepth)
			}
		})
	}
}
