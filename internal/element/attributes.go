// Package element is the shared base for components: attribute reflection,
// shadow root stamping, adopted sheets and event handler tables.
package element

import (
	"regexp"
	"strings"

	"github.com/jmylchreest/uikit/internal/dom"
)

// AttrType selects how an attribute reflects to a property.
type AttrType string

const (
	// AttrBoolean reflects presence: set means true.
	AttrBoolean AttrType = "boolean"
	// AttrProperty reflects the attribute value as a string.
	AttrProperty AttrType = "property"
)

// attrTypeOrder fixes the order in which CreateAttributes walks types.
var attrTypeOrder = []AttrType{AttrBoolean, AttrProperty}

// AttributeSpec describes one observed attribute.
type AttributeSpec struct {
	Type         AttrType
	Property     string
	Attribute    string
	CallbackName string
}

// Attributes is an ordered set of attribute specs.
type Attributes struct {
	specs []AttributeSpec
	index map[string]int
}

// CreateAttributes builds specs from attribute names grouped by type.
// Boolean attributes come first, then property attributes, each group in
// the order given. A name listed twice keeps its last type.
func CreateAttributes(byType map[AttrType][]string) Attributes {
	a := Attributes{index: make(map[string]int)}
	for _, typ := range attrTypeOrder {
		for _, name := range byType[typ] {
			property := SpinalToCamel(name)
			spec := AttributeSpec{
				Type:         typ,
				Property:     property,
				Attribute:    name,
				CallbackName: property + "Changed",
			}
			if i, ok := a.index[name]; ok {
				a.specs[i] = spec
				continue
			}
			a.index[name] = len(a.specs)
			a.specs = append(a.specs, spec)
		}
	}
	return a
}

// Specs returns the specs in order.
func (a Attributes) Specs() []AttributeSpec {
	out := make([]AttributeSpec, len(a.specs))
	copy(out, a.specs)
	return out
}

// Observed returns the attribute names in order.
func (a Attributes) Observed() []string {
	names := make([]string, len(a.specs))
	for i, s := range a.specs {
		names[i] = s.Attribute
	}
	return names
}

// Lookup returns the spec for an attribute name.
func (a Attributes) Lookup(attribute string) (AttributeSpec, bool) {
	i, ok := a.index[attribute]
	if !ok {
		return AttributeSpec{}, false
	}
	return a.specs[i], true
}

// ByProperty returns the spec for a property name.
func (a Attributes) ByProperty(property string) (AttributeSpec, bool) {
	for _, s := range a.specs {
		if s.Property == property {
			return s, true
		}
	}
	return AttributeSpec{}, false
}

var spinal = regexp.MustCompile(`-([a-z])`)

// SpinalToCamel converts "button-aria-label" to "buttonAriaLabel".
func SpinalToCamel(s string) string {
	return spinal.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

var handlerWord = regexp.MustCompile(`(^|-)([a-z])`)

// HandlerName derives a handler name from an event kind, for example
// "ui-change" becomes "onUiChange". Dispatch goes through Handlers; the
// name is only used in diagnostics.
func HandlerName(kind dom.EventKind) string {
	return handlerWord.ReplaceAllStringFunc(string(kind), func(m string) string {
		if strings.HasPrefix(m, "-") {
			return strings.ToUpper(m[1:])
		}
		return "on" + strings.ToUpper(m)
	})
}

// Reflector maps properties to attributes of a host element.
type Reflector struct {
	host  *dom.Element
	attrs Attributes
}

// NewReflector creates a reflector over host.
func NewReflector(host *dom.Element, attrs Attributes) Reflector {
	return Reflector{host: host, attrs: attrs}
}

func (r Reflector) attribute(property string) (AttributeSpec, bool) {
	if s, ok := r.attrs.ByProperty(property); ok {
		return s, true
	}
	return AttributeSpec{}, false
}

// Bool reads property. Boolean attributes report presence; property
// attributes report a non-empty value. Unknown properties are false.
func (r Reflector) Bool(property string) bool {
	s, ok := r.attribute(property)
	if !ok {
		return false
	}
	if s.Type == AttrBoolean {
		return r.host.HasAttribute(s.Attribute)
	}
	return r.host.Attr(s.Attribute) != ""
}

// SetBool writes property. For boolean attributes the attribute is toggled;
// property attributes receive "true" or are removed.
func (r Reflector) SetBool(property string, v bool) {
	s, ok := r.attribute(property)
	if !ok {
		return
	}
	if s.Type == AttrBoolean {
		r.host.ToggleAttribute(s.Attribute, v)
		return
	}
	if v {
		r.host.SetAttribute(s.Attribute, "true")
	} else {
		r.host.RemoveAttribute(s.Attribute)
	}
}

// String reads property as the attribute value, "" when absent.
func (r Reflector) String(property string) string {
	s, ok := r.attribute(property)
	if !ok {
		return ""
	}
	return r.host.Attr(s.Attribute)
}

// SetString writes property. Boolean attributes are set when v is
// non-empty and removed otherwise.
func (r Reflector) SetString(property, v string) {
	s, ok := r.attribute(property)
	if !ok {
		return
	}
	if s.Type == AttrBoolean {
		r.host.ToggleAttribute(s.Attribute, v != "")
		return
	}
	r.host.SetAttribute(s.Attribute, v)
}

// StripFalsy returns a copy of options without zero values.
func StripFalsy(options map[string]any) map[string]any {
	out := make(map[string]any, len(options))
	for k, v := range options {
		if isZero(v) {
			continue
		}
		out[k] = v
	}
	return out
}
