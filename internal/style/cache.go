// Package style owns the toolkit's stylesheets: a content-addressed sheet
// cache with an explicit capacity, the document-level adopted sheet list,
// bundled and user themes, and hot reload of user themes.
package style

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"
)

// DefaultCapacity is the default number of sheets a Cache retains.
const DefaultCapacity = 256

// Sheet is a parsed-once stylesheet identified by the hash of its text.
type Sheet struct {
	Hash string
	CSS  string
	Size int
}

// Hash returns the hex SHA-256 of css.
func Hash(css string) string {
	sum := sha256.Sum256([]byte(css))
	return hex.EncodeToString(sum[:])
}

func newSheet(css string) *Sheet {
	return &Sheet{Hash: Hash(css), CSS: css, Size: len(css)}
}

// Cache maps stylesheet text to shared Sheet values. It keeps at most
// capacity sheets and evicts the least recently used one when full. A
// capacity of zero or less means unbounded. Cache is safe for concurrent use.
type Cache struct {
	mu        sync.Mutex
	logger    *slog.Logger
	capacity  int
	order     *list.List
	items     map[string]*list.Element
	evictions int
}

// NewCache creates a cache with the given capacity.
func NewCache(capacity int, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		logger:   logger,
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// Get returns the sheet for css, creating it on first use.
func (c *Cache) Get(css string) *Sheet {
	h := Hash(css)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[h]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*Sheet)
	}

	sheet := newSheet(css)
	c.items[h] = c.order.PushFront(sheet)
	c.evict()
	return sheet
}

// Lookup returns a cached sheet by hash without creating one.
func (c *Cache) Lookup(hash string) (*Sheet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[hash]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*Sheet), true
}

// Remove drops a sheet by hash. It reports whether the sheet was cached.
func (c *Cache) Remove(hash string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[hash]
	if !ok {
		return false
	}
	c.order.Remove(el)
	delete(c.items, hash)
	return true
}

func (c *Cache) evict() {
	if c.capacity <= 0 {
		return
	}
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		sheet := oldest.Value.(*Sheet)
		c.order.Remove(oldest)
		delete(c.items, sheet.Hash)
		c.evictions++
		c.logger.Debug("evicted stylesheet", "hash", sheet.Hash[:12], "size", sheet.Size)
	}
}

// Len returns the number of cached sheets.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Capacity returns the configured capacity.
func (c *Cache) Capacity() int { return c.capacity }

// Evictions returns how many sheets have been evicted.
func (c *Cache) Evictions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictions
}

// Purge empties the cache.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[string]*list.Element)
}

var (
	defaultMu    sync.RWMutex
	defaultCache = NewCache(DefaultCapacity, nil)
)

// Default returns the process-wide cache used by CSS.
func Default() *Cache {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCache
}

// SetDefault replaces the process-wide cache, typically once at startup
// with a capacity taken from configuration.
func SetDefault(c *Cache) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCache = c
}

// CSS joins template parts with interpolated values and returns the cached
// sheet. Zero values (nil, "", false, 0) interpolate as "".
func CSS(parts []string, values ...any) *Sheet {
	return Default().Get(Interpolate(parts, values...))
}

// Interpolate joins parts, placing values[i] after parts[i].
func Interpolate(parts []string, values ...any) string {
	var b strings.Builder
	for i, p := range parts {
		b.WriteString(p)
		if i < len(values) && !isZero(values[i]) {
			fmt.Fprint(&b, values[i])
		}
	}
	return b.String()
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
