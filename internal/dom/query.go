package dom

import (
	"fmt"
	"strings"
)

// selector is a compound selector of the form tag, [attr], [attr="v"] or
// tag[attr="v"].
type selector struct {
	tag      string
	attr     string
	value    string
	hasValue bool
}

func parseSelector(s string) (selector, error) {
	s = strings.TrimSpace(s)
	var sel selector
	open := strings.IndexByte(s, '[')
	if open < 0 {
		sel.tag = strings.ToLower(s)
		if sel.tag == "" {
			return sel, fmt.Errorf("empty selector")
		}
		return sel, nil
	}
	if !strings.HasSuffix(s, "]") {
		return sel, fmt.Errorf("unterminated attribute selector: %q", s)
	}
	sel.tag = strings.ToLower(s[:open])
	inner := s[open+1 : len(s)-1]
	if name, value, ok := strings.Cut(inner, "="); ok {
		sel.attr = strings.TrimSpace(name)
		sel.value = strings.Trim(strings.TrimSpace(value), `"'`)
		sel.hasValue = true
	} else {
		sel.attr = strings.TrimSpace(inner)
	}
	if sel.attr == "" {
		return sel, fmt.Errorf("empty attribute name: %q", s)
	}
	return sel, nil
}

func (s selector) matches(e *Element) bool {
	if e.IsShadowRoot() || e.IsFragment() {
		return false
	}
	if s.tag != "" && s.tag != "*" && e.Tag != s.tag {
		return false
	}
	if s.attr == "" {
		return true
	}
	v, ok := e.attrs[s.attr]
	if !ok {
		return false
	}
	return !s.hasValue || v == s.value
}

// QuerySelectorAll returns the light-tree descendants of e matching any of
// the comma-separated selectors, in document order. Invalid selectors
// match nothing.
func (e *Element) QuerySelectorAll(selectors string) []*Element {
	var sels []selector
	for _, part := range strings.Split(selectors, ",") {
		sel, err := parseSelector(part)
		if err != nil {
			continue
		}
		sels = append(sels, sel)
	}

	var out []*Element
	var walk func(n *Element)
	walk = func(n *Element) {
		for _, c := range n.children {
			if c.IsText() {
				continue
			}
			for _, s := range sels {
				if s.matches(c) {
					out = append(out, c)
					break
				}
			}
			walk(c)
		}
	}
	walk(e)
	return out
}

// QuerySelector returns the first match of QuerySelectorAll, or nil.
func (e *Element) QuerySelector(selectors string) *Element {
	if all := e.QuerySelectorAll(selectors); len(all) > 0 {
		return all[0]
	}
	return nil
}
