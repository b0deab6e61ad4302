package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultCacheCapacity = 128

// TextureCache is a small LRU cache for rendered textures (labels, icons).
// Evicted and replaced textures are destroyed; the cache owns everything it
// holds.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	capacity int
}

// NewTextureCache creates a cache with the default capacity.
func NewTextureCache() *TextureCache {
	return NewTextureCacheWithCapacity(defaultCacheCapacity)
}

// NewTextureCacheWithCapacity creates a cache holding at most capacity
// textures.
func NewTextureCacheWithCapacity(capacity int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Get returns the texture for key, or nil. A hit marks the key most
// recently used.
func (c *TextureCache) Get(key string) *sdl.Texture {
	texture, ok := c.textures[key]
	if !ok {
		return nil
	}
	c.touch(key)
	return texture
}

// Put stores texture under key, destroying any texture it replaces and
// evicting the least recently used entry when at capacity.
func (c *TextureCache) Put(key string, texture *sdl.Texture) {
	if old, ok := c.textures[key]; ok {
		if old != nil && old != texture {
			old.Destroy()
		}
		c.textures[key] = texture
		c.touch(key)
		return
	}

	if len(c.order) >= c.capacity {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.textures)
}

// Contains reports whether key is cached, without touching its LRU position.
func (c *TextureCache) Contains(key string) bool {
	_, ok := c.textures[key]
	return ok
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, ok := c.textures[oldest]; ok {
		if texture != nil {
			texture.Destroy()
		}
		delete(c.textures, oldest)
	}
}

// Destroy releases every cached texture and empties the cache.
func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		if texture != nil {
			texture.Destroy()
		}
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
