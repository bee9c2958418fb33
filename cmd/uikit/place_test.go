package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/uikit/internal/config"
	"github.com/jmylchreest/uikit/internal/geom"
)

func defaultRequest() PlaceRequest {
	return PlaceRequest{
		Trigger:      geom.NewRect(20, 20, 80, 20),
		PanelWidth:   120,
		PanelHeight:  60,
		Viewport:     geom.Size{W: 300, H: 200},
		Placement:    "bottom",
		PopoverWidth: "trigger-width",
		Flip:         true,
		AutoUpdate:   true,
	}
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(*PlaceRequest)
		wantRect   Rect
		wantPanel  map[string]string
		wantBridge map[string]string
	}{
		{
			name:      "below the trigger",
			modify:    func(*PlaceRequest) {},
			wantRect:  Rect{X: 20, Y: 40, W: 80, H: 60},
			wantPanel: map[string]string{"top": "20px", "width": "80px"},
		},
		{
			name:      "flips above near the bottom edge",
			modify:    func(r *PlaceRequest) { r.Trigger.Y = 180 },
			wantRect:  Rect{X: 20, Y: 120, W: 80, H: 60},
			wantPanel: map[string]string{"top": "-60px"},
		},
		{
			name: "stays below without flip",
			modify: func(r *PlaceRequest) {
				r.Trigger.Y = 180
				r.Flip = false
			},
			wantRect:  Rect{X: 20, Y: 200, W: 80, H: 60},
			wantPanel: map[string]string{"top": "20px"},
		},
		{
			name: "offset adds a gap",
			modify: func(r *PlaceRequest) {
				r.Offset = 4
				r.PopoverWidth = "auto"
			},
			wantRect:  Rect{X: 20, Y: 44, W: 120, H: 60},
			wantPanel: map[string]string{"top": "24px"},
		},
		{
			name: "bottom-end spans a separated sibling",
			modify: func(r *PlaceRequest) {
				r.Placement = "bottom-end"
				r.PopoverWidth = "include-previous-sibling"
				r.SiblingWidth = 40
				r.Separated = true
			},
			wantRect:   Rect{X: -22, Y: 40, W: 122, H: 60},
			wantPanel:  map[string]string{"top": "20px", "width": "122px", "left": "-42px"},
			wantBridge: map[string]string{"width": "122px", "left": "-42px"},
		},
		{
			name: "right of the trigger",
			modify: func(r *PlaceRequest) {
				r.Placement = "right"
				r.PopoverWidth = "auto"
			},
			wantRect:  Rect{X: 100, Y: 20, W: 120, H: 60},
			wantPanel: map[string]string{"top": "0px", "left": "80px"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := defaultRequest()
			tt.modify(&req)

			result, err := Place(req, nil)
			require.NoError(t, err)

			assert.True(t, result.Open)
			assert.Equal(t, tt.wantRect, result.Rect)
			for prop, want := range tt.wantPanel {
				assert.Equal(t, want, result.Panel[prop], "panel %s", prop)
			}
			if tt.wantBridge == nil {
				assert.Nil(t, result.Bridge)
				return
			}
			for prop, want := range tt.wantBridge {
				assert.Equal(t, want, result.Bridge[prop], "bridge %s", prop)
			}
		})
	}
}

func TestWithConfigDefaults(t *testing.T) {
	popoverCfg := config.PopoverConfig{
		Placement:    "top",
		Flip:         false,
		AutoUpdate:   true,
		Offset:       6,
		PopoverWidth: "auto",
	}

	t.Run("unset flags take config values", func(t *testing.T) {
		req := withConfigDefaults(PlaceRequest{Flip: true}, popoverCfg, func(string) bool { return false })
		assert.Equal(t, "top", req.Placement)
		assert.Equal(t, "auto", req.PopoverWidth)
		assert.Equal(t, 6.0, req.Offset)
		assert.False(t, req.Flip)
		assert.True(t, req.AutoUpdate)
	})

	t.Run("passed flags win, negative offsets included", func(t *testing.T) {
		changed := func(flag string) bool { return flag == "offset" || flag == "flip" }
		req := withConfigDefaults(PlaceRequest{Placement: "left", Offset: -3, Flip: true}, popoverCfg, changed)
		assert.Equal(t, "left", req.Placement)
		assert.Equal(t, -3.0, req.Offset)
		assert.True(t, req.Flip)
	})

	t.Run("an explicit zero offset is kept", func(t *testing.T) {
		req := withConfigDefaults(PlaceRequest{}, popoverCfg, func(flag string) bool { return flag == "offset" })
		assert.Zero(t, req.Offset)
	})
}

func TestPlace_InvalidRequest(t *testing.T) {
	req := defaultRequest()
	req.Placement = "center"
	_, err := Place(req, nil)
	assert.ErrorIs(t, err, config.ErrUnknownPlacement)

	req = defaultRequest()
	req.PopoverWidth = "huge"
	_, err = Place(req, nil)
	assert.ErrorIs(t, err, config.ErrUnknownWidthMode)
}

func TestWritePlaceResult(t *testing.T) {
	result := &PlaceResult{
		Placement:    "bottom-end",
		PopoverWidth: "include-previous-sibling",
		Open:         true,
		Panel:        map[string]string{"width": "122px", "top": "20px"},
		Bridge:       map[string]string{"position": "absolute", "height": "0px"},
		Rect:         Rect{X: -22, Y: 40, W: 122, H: 60},
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writePlaceResult(&buf, result, "json"))

		var got PlaceResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, *result, got)
		assert.Contains(t, buf.String(), `"popover_width": "include-previous-sibling"`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writePlaceResult(&buf, result, "YAML"))

		var got PlaceResult
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, *result, got)
		assert.Contains(t, buf.String(), "placement: bottom-end")
	})

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writePlaceResult(&buf, result, "plain"))

		out := buf.String()
		assert.Contains(t, out, "placement: bottom-end\n")
		assert.Contains(t, out, "panel:     top: 20px; width: 122px;\n")
		assert.Contains(t, out, "bridge:    height: 0px; position: absolute;\n")
		assert.Contains(t, out, "rect:      x=-22 y=40 width=122 height=60\n")
	})

	t.Run("unknown", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, writePlaceResult(&buf, result, "xml"))
	})
}
