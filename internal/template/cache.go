package template

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/jmylchreest/uikit/internal/dom"
)

// Cache holds one parsed fragment per markup string. Fragments are shared:
// callers stamp them with CloneNode(true) and never mutate the original.
type Cache struct {
	mu        sync.Mutex
	fragments map[string]*dom.Element
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{fragments: make(map[string]*dom.Element)}
}

// Get returns the fragment for markup, parsing it on first use. Parse
// failures are not cached.
func (c *Cache) Get(markup string) (*dom.Element, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if frag, ok := c.fragments[markup]; ok {
		return frag, nil
	}
	frag, err := Parse(markup)
	if err != nil {
		return nil, err
	}
	c.fragments[markup] = frag
	return frag, nil
}

// Len returns the number of cached fragments.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fragments)
}

var defaultCache = NewCache()

// HTML interpolates parts and values and returns the cached fragment for
// the resulting markup.
func HTML(parts []string, values ...any) (*dom.Element, error) {
	return defaultCache.Get(Interpolate(parts, values...))
}

// Interpolate joins parts with values. Slices are joined with "" and zero
// values (nil, "", false, 0) render as "".
func Interpolate(parts []string, values ...any) string {
	var b strings.Builder
	for i, p := range parts {
		b.WriteString(p)
		if i < len(values) {
			b.WriteString(render(values[i]))
		}
	}
	return b.String()
}

func render(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(t, "")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		var b strings.Builder
		for i := 0; i < rv.Len(); i++ {
			b.WriteString(render(rv.Index(i).Interface()))
		}
		return b.String()
	}
	if rv.IsZero() {
		return ""
	}
	return fmt.Sprint(v)
}
