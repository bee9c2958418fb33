package template

import (
	"strings"
	"unicode"

	"github.com/jmylchreest/uikit/internal/dom"
)

// Refs indexes the named elements of a stamped template.
type Refs struct {
	IDs   map[string]*dom.Element
	Parts map[string]*dom.Element
	Slots map[string]*dom.Element
}

// ID returns the element whose id camel-cases to key.
func (r Refs) ID(key string) *dom.Element { return r.IDs[key] }

// Part returns the element exposing part key.
func (r Refs) Part(key string) *dom.Element { return r.Parts[key] }

// Slot returns the element named key.
func (r Refs) Slot(key string) *dom.Element { return r.Slots[key] }

// GetRefs collects descendants of root that carry id, part or name. Keys are
// camel-cased; an element with several space-separated parts is registered
// under each. Later elements win on duplicate keys.
func GetRefs(root *dom.Element) Refs {
	refs := Refs{
		IDs:   make(map[string]*dom.Element),
		Parts: make(map[string]*dom.Element),
		Slots: make(map[string]*dom.Element),
	}
	for _, el := range root.QuerySelectorAll("[id], [part], [name]") {
		for _, part := range strings.Fields(el.Attr("part")) {
			refs.Parts[camel(part)] = el
		}
		if id := el.Attr("id"); id != "" {
			refs.IDs[camel(id)] = el
		}
		if name := el.Attr("name"); name != "" {
			refs.Slots[camel(name)] = el
		}
	}
	return refs
}

// camel converts "loading-icon" to "loadingIcon". Only a lowercase letter
// after a hyphen is folded.
func camel(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '-' && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			b.WriteRune(unicode.ToUpper(runes[i+1]))
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
