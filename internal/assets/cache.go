// internal/assets/cache.go
package assets

import (
	"image"
	"log"
)

type result struct {
	key string
	img image.Image
	err error
}

// Cache управляет асинхронной загрузкой и кэшированием изображений.
// Декодирование идёт в отдельной горутине, а карта изображений меняется
// только в Poll, который вызывается из игрового цикла.
type Cache struct {
	loader    Loader
	images    map[string]image.Image
	pending   map[string]bool
	results   chan result
	callbacks []func()
}

// NewCache создает кэш поверх загрузчика.
func NewCache(loader Loader) *Cache {
	return &Cache{
		loader:  loader,
		images:  make(map[string]image.Image),
		pending: make(map[string]bool),
		results: make(chan result, 16),
	}
}

// Get возвращает закэшированное изображение. Повторные вызовы с тем же
// ключом возвращают тот же объект. Если изображение ещё не загружено,
// возвращает false.
func (c *Cache) Get(key string) (image.Image, bool) {
	img, ok := c.images[key]
	return img, ok
}

// Load запускает фоновую загрузку ключей, которых ещё нет в кэше.
func (c *Cache) Load(keys []string) {
	var batch []string
	for _, key := range keys {
		if _, cached := c.images[key]; cached || c.pending[key] {
			continue
		}
		c.pending[key] = true
		batch = append(batch, key)
	}
	if len(batch) == 0 {
		return
	}
	go func(loader Loader, keys []string, out chan<- result) {
		for _, key := range keys {
			img, err := loader(key)
			out <- result{key: key, img: img, err: err}
		}
	}(c.loader, batch, c.results)
}

// OnReady регистрирует функцию, которая будет вызвана один раз, когда
// все запрошенные ключи окажутся в кэше.
func (c *Cache) OnReady(fn func()) {
	c.callbacks = append(c.callbacks, fn)
}

// Ready сообщает, что фоновых загрузок не осталось.
func (c *Cache) Ready() bool {
	return len(c.pending) == 0
}

// Poll забирает готовые результаты без блокировки и, если загрузка
// завершена, вызывает накопленные OnReady.
func (c *Cache) Poll() {
	for drained := false; !drained; {
		select {
		case r := <-c.results:
			c.store(r)
		default:
			drained = true
		}
	}
	if c.Ready() && len(c.callbacks) > 0 {
		callbacks := c.callbacks
		c.callbacks = nil
		for _, fn := range callbacks {
			fn()
		}
	}
}

func (c *Cache) store(r result) {
	delete(c.pending, r.key)
	if r.err != nil {
		log.Printf("[Assets] failed to load %s: %v", r.key, r.err)
		return
	}
	c.images[r.key] = r.img
}
