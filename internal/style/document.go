package style

import "sync"

// Document holds the sheets adopted at document level. Sheets are kept in
// adoption order and each text is adopted at most once.
type Document struct {
	mu      sync.Mutex
	cache   *Cache
	adopted []*Sheet
}

// NewDocument creates a document backed by cache. A nil cache uses the
// process-wide default.
func NewDocument(cache *Cache) *Document {
	if cache == nil {
		cache = Default()
	}
	return &Document{cache: cache}
}

// AddGlobal adopts css at document level. It returns false when identical
// text was already adopted.
func (d *Document) AddGlobal(css string) bool {
	sheet := d.cache.Get(css)

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, s := range d.adopted {
		if s.Hash == sheet.Hash {
			return false
		}
	}
	d.adopted = append(d.adopted, sheet)
	return true
}

// Replace swaps the adopted sheet with hash oldHash for css, keeping its
// position. When oldHash is not adopted the new sheet is appended.
func (d *Document) Replace(oldHash, css string) *Sheet {
	sheet := d.cache.Get(css)

	d.mu.Lock()
	defer d.mu.Unlock()
	for i, s := range d.adopted {
		if s.Hash == oldHash {
			d.adopted[i] = sheet
			return sheet
		}
	}
	d.adopted = append(d.adopted, sheet)
	return sheet
}

// AdoptedStyleSheets returns the adopted sheets in order.
func (d *Document) AdoptedStyleSheets() []*Sheet {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*Sheet, len(d.adopted))
	copy(out, d.adopted)
	return out
}

// Cache returns the backing cache.
func (d *Document) Cache() *Cache { return d.cache }
