package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/style"
)

func TestSpinalToCamel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"foo-bar", "fooBar"},
		{"button-aria-label", "buttonAriaLabel"},
		{"value", "value"},
		{"a-B", "a-B"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpinalToCamel(tt.in), tt.in)
	}
}

func TestHandlerName(t *testing.T) {
	tests := map[dom.EventKind]string{
		dom.EventUIChange: "onUiChange",
		dom.EventClick:    "onClick",
		dom.EventKeydown:  "onKeydown",
		dom.EventUIClick:  "onUiClick",
	}
	for kind, want := range tests {
		assert.Equal(t, want, HandlerName(kind))
	}
}

func TestCreateAttributes(t *testing.T) {
	attrs := CreateAttributes(map[AttrType][]string{
		AttrProperty: {"value", "button-aria-label"},
		AttrBoolean:  {"disabled", "loading"},
	})

	assert.Equal(t, []string{"disabled", "loading", "value", "button-aria-label"}, attrs.Observed())

	spec, ok := attrs.Lookup("button-aria-label")
	require.True(t, ok)
	assert.Equal(t, AttributeSpec{
		Type:         AttrProperty,
		Property:     "buttonAriaLabel",
		Attribute:    "button-aria-label",
		CallbackName: "buttonAriaLabelChanged",
	}, spec)

	spec, ok = attrs.ByProperty("loading")
	require.True(t, ok)
	assert.Equal(t, AttrBoolean, spec.Type)

	_, ok = attrs.Lookup("missing")
	assert.False(t, ok)
}

func TestReflector(t *testing.T) {
	host := dom.NewElement("ui-radio")
	r := NewReflector(host, CreateAttributes(map[AttrType][]string{
		AttrBoolean:  {"checked"},
		AttrProperty: {"value"},
	}))

	assert.False(t, r.Bool("checked"))
	r.SetBool("checked", true)
	assert.True(t, host.HasAttribute("checked"))
	assert.Equal(t, "", host.Attr("checked"))
	assert.True(t, r.Bool("checked"))
	r.SetBool("checked", false)
	assert.False(t, host.HasAttribute("checked"))

	assert.Equal(t, "", r.String("value"))
	r.SetString("value", "a")
	assert.Equal(t, "a", host.Attr("value"))
	assert.Equal(t, "a", r.String("value"))
	assert.True(t, r.Bool("value"))

	r.SetString("checked", "yes")
	assert.True(t, r.Bool("checked"))

	r.SetString("unknown", "x")
	assert.False(t, host.HasAttribute("unknown"))
	assert.False(t, r.Bool("unknown"))
}

func TestStripFalsy(t *testing.T) {
	in := map[string]any{
		"placement": "left",
		"offset":    0,
		"flip":      false,
		"width":     "",
		"ratio":     1.5,
		"nothing":   nil,
	}
	assert.Equal(t, map[string]any{"placement": "left", "ratio": 1.5}, StripFalsy(in))
	assert.Len(t, in, 6, "input untouched")
}

func TestHandlers_HandleEvent(t *testing.T) {
	var got []dom.EventKind
	h := Handlers{
		dom.EventClick:    func(ev *dom.Event) { got = append(got, ev.Kind) },
		dom.EventUIChange: func(ev *dom.Event) { got = append(got, ev.Kind) },
	}

	h.HandleEvent(dom.NewEvent(dom.EventClick, nil))
	h.HandleEvent(dom.NewEvent(dom.EventKeydown, nil))
	h.HandleEvent(dom.NewEvent(dom.EventUIChange, nil))

	assert.Equal(t, []dom.EventKind{dom.EventClick, dom.EventUIChange}, got)
}

const testMarkup = `<div part="base"><slot name="label"></slot><span id="help-text"></span></div>`

func newTestBase(t *testing.T) *Base {
	t.Helper()
	host := dom.NewElement("ui-test")
	sheet := style.NewCache(4, nil).Get(":host { display: block; }")
	b, err := NewBase(host, testMarkup, CreateAttributes(map[AttrType][]string{
		AttrBoolean:  {"disabled"},
		AttrProperty: {"label"},
	}), nil, sheet)
	require.NoError(t, err)
	return b
}

func TestNewBase_StampsShadow(t *testing.T) {
	b := newTestBase(t)

	assert.Same(t, b.Shadow, b.Host.ShadowRoot())
	require.NotNil(t, b.Refs.Part("base"))
	assert.Same(t, b.Shadow, b.Refs.Part("base").ParentNode())
	assert.NotNil(t, b.Refs.Slot("label"))
	assert.NotNil(t, b.Refs.ID("helpText"))
	assert.Len(t, b.AdoptedStyleSheets(), 1)

	other := newTestBase(t)
	assert.NotSame(t, b.Refs.Part("base"), other.Refs.Part("base"), "each host gets its own stamp")
}

func TestNewBase_EmptyTemplate(t *testing.T) {
	_, err := NewBase(dom.NewElement("ui-x"), "  ", Attributes{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui-x")
}

func TestBase_AttributeCallbacks(t *testing.T) {
	b := newTestBase(t)

	type change struct{ old, new string }
	var labels []change
	var disabled []change
	require.NoError(t, b.OnChange("label", func(o, n string) { labels = append(labels, change{o, n}) }))
	require.NoError(t, b.OnChange("disabled", func(o, n string) { disabled = append(disabled, change{o, n}) }))
	assert.Error(t, b.OnChange("nope", func(string, string) {}))

	b.Host.SetAttribute("label", "Pick one")
	b.Host.SetAttribute("label", "Pick one")
	b.Host.SetAttribute("title", "ignored")
	b.SetBool("disabled", true)
	b.SetBool("disabled", false)

	assert.Equal(t, []change{{"", "Pick one"}}, labels)
	assert.Equal(t, []change{{"", ""}, {"", ""}}, disabled)
}

func TestBase_Observe(t *testing.T) {
	b := newTestBase(t)

	var labels []string
	err := b.Observe(map[string]ChangeFunc{
		"label": func(_, n string) { labels = append(labels, n) },
		"nope":  func(string, string) {},
		"gone":  func(string, string) {},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
	assert.Contains(t, err.Error(), `"gone"`)

	b.Host.SetAttribute("label", "kept")
	assert.Equal(t, []string{"kept"}, labels)

	assert.NoError(t, b.Observe(map[string]ChangeFunc{"disabled": func(string, string) {}}))
}

func TestBase_ListenAndDisconnect(t *testing.T) {
	b := newTestBase(t)
	var clicks int
	b.Handlers[dom.EventClick] = func(*dom.Event) { clicks++ }
	b.Listen(b.Host, dom.EventClick, dom.EventKeydown)

	inner := b.Refs.Part("base")
	inner.DispatchEvent(dom.NewBubblingEvent(dom.EventClick, inner))
	b.Host.DispatchEvent(dom.NewEvent(dom.EventKeydown, b.Host))
	assert.Equal(t, 1, clicks)

	b.Disconnect()
	b.Host.DispatchEvent(dom.NewEvent(dom.EventClick, b.Host))
	assert.Equal(t, 1, clicks)
}

func TestBase_Emit(t *testing.T) {
	b := newTestBase(t)
	parent := dom.NewElement("form")
	parent.AppendChild(b.Host)

	var seen *dom.Element
	parent.AddEventListener(dom.EventUIClick, func(ev *dom.Event) { seen = ev.Target })

	assert.True(t, b.Emit(dom.EventUIClick))
	assert.Same(t, b.Host, seen)
}
