package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"go-bug-run/internal/config"
)

// waitReady крутит Poll, пока кэш не загрузит всё или не выйдет время
func waitReady(t *testing.T, c *Cache) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		c.Poll()
		if c.Ready() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for the cache")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPlaceholdersForAllSprites(t *testing.T) {
	for _, key := range config.AllSprites {
		img, err := Placeholder(key)
		if err != nil {
			t.Fatalf("Expected a placeholder for %s, got %v", key, err)
		}
		b := img.Bounds()
		if b.Dx() != SpriteWidth || b.Dy() != SpriteHeight {
			t.Errorf("%s: expected %dx%d, got %dx%d", key, SpriteWidth, SpriteHeight, b.Dx(), b.Dy())
		}
	}
	if _, err := Placeholder("images/unknown.png"); !errors.Is(err, ErrUnknownSprite) {
		t.Errorf("Expected ErrUnknownSprite, got %v", err)
	}
}

func TestCacheLoadAndOnReady(t *testing.T) {
	var calls atomic.Int32
	loader := func(key string) (image.Image, error) {
		calls.Add(1)
		return Placeholder(key)
	}
	c := NewCache(loader)
	ready := 0
	c.OnReady(func() { ready++ })

	if _, ok := c.Get(config.SpriteEnemy); ok {
		t.Fatal("Expected nothing cached before Load")
	}

	c.Load(config.AllSprites)
	c.Load(config.AllSprites) // повторный запрос не грузит заново
	waitReady(t, c)

	if ready != 1 {
		t.Errorf("Expected OnReady to fire once, got %d", ready)
	}
	if int(calls.Load()) != len(config.AllSprites) {
		t.Errorf("Expected %d loads, got %d", len(config.AllSprites), calls.Load())
	}

	first, ok := c.Get(config.SpriteEnemy)
	if !ok {
		t.Fatal("Expected the enemy sprite to be cached")
	}
	second, _ := c.Get(config.SpriteEnemy)
	if first != second {
		t.Error("Expected Get to return the same image for the same key")
	}

	c.Poll()
	if ready != 1 {
		t.Errorf("Expected OnReady not to fire again, got %d", ready)
	}
}

func TestCacheSkipsFailedKeys(t *testing.T) {
	c := NewCache(Placeholder)
	ready := false
	c.OnReady(func() { ready = true })
	c.Load([]string{"images/unknown.png", config.SpriteKey})
	waitReady(t, c)

	if !ready {
		t.Error("Expected OnReady to fire even if a key failed")
	}
	if _, ok := c.Get("images/unknown.png"); ok {
		t.Error("Expected a failed key to stay uncached")
	}
	if _, ok := c.Get(config.SpriteKey); !ok {
		t.Error("Expected the good key to be cached")
	}
}

func TestFSLoaderAndFallback(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	fsys := fstest.MapFS{
		config.SpriteStar: {Data: buf.Bytes()},
		"images/bad.png":  {Data: []byte("not a png")},
	}

	img, err := FSLoader(fsys)(config.SpriteStar)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("Expected 3x2 image, got %v", img.Bounds())
	}

	loader := WithFallback(FSLoader(fsys), Placeholder)
	img, err = loader(config.SpriteKey)
	if err != nil {
		t.Fatalf("Expected the fallback to serve a missing file, got %v", err)
	}
	if img.Bounds().Dx() != SpriteWidth {
		t.Errorf("Expected a placeholder, got %v", img.Bounds())
	}

	if _, err := loader("images/bad.png"); err == nil || errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a decode error to pass through, got %v", err)
	}
}

func TestDefaultLoaderWithoutDir(t *testing.T) {
	img, err := DefaultLoader("")(config.SpritePlayer)
	if err != nil || img == nil {
		t.Fatalf("Expected a placeholder, got %v", err)
	}
}
