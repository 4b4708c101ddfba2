// internal/assets/loader.go
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io/fs"
	"os"
)

// Loader загружает изображение по ключу (относительному пути).
type Loader func(key string) (image.Image, error)

// FSLoader декодирует изображения из файловой системы.
func FSLoader(fsys fs.FS) Loader {
	return func(key string) (image.Image, error) {
		f, err := fsys.Open(key)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", key, err)
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", key, err)
		}
		return img, nil
	}
}

// WithFallback использует fallback, если основной загрузчик не нашёл файл.
// Остальные ошибки возвращаются как есть.
func WithFallback(primary, fallback Loader) Loader {
	return func(key string) (image.Image, error) {
		img, err := primary(key)
		if errors.Is(err, fs.ErrNotExist) {
			return fallback(key)
		}
		return img, err
	}
}

// DefaultLoader читает PNG из каталога dir и подставляет заглушки для
// отсутствующих файлов. Пустой dir означает только заглушки.
func DefaultLoader(dir string) Loader {
	if dir == "" {
		return Placeholder
	}
	return WithFallback(FSLoader(os.DirFS(dir)), Placeholder)
}
