package components

import (
	"log/slog"

	"github.com/jmylchreest/uikit/internal/dom"
)

// Control is a form-associated element.
type Control interface {
	Name() string
	Value() string
	CheckValidity() bool
	ReportValidity() bool
	Reset()
}

// Form collects controls and submits their values.
type Form struct {
	Host *dom.Element

	// OnSubmit receives the named control values of a valid submission.
	OnSubmit func(values map[string]string)

	controls []Control
	logger   *slog.Logger
}

// NewForm creates a form around host.
func NewForm(host *dom.Element, logger *slog.Logger) *Form {
	if logger == nil {
		logger = slog.Default()
	}
	return &Form{Host: host, logger: logger}
}

// Add associates controls with the form.
func (f *Form) Add(controls ...Control) {
	f.controls = append(f.controls, controls...)
}

// Values returns the values of named controls.
func (f *Form) Values() map[string]string {
	out := make(map[string]string)
	for _, c := range f.controls {
		if name := c.Name(); name != "" {
			out[name] = c.Value()
		}
	}
	return out
}

// CheckValidity reports whether every control is valid.
func (f *Form) CheckValidity() bool {
	for _, c := range f.controls {
		if !c.CheckValidity() {
			return false
		}
	}
	return true
}

// ReportValidity asks every control to show its validity state.
func (f *Form) ReportValidity() bool {
	valid := true
	for _, c := range f.controls {
		if !c.ReportValidity() {
			valid = false
		}
	}
	return valid
}

// Submit hands the values to OnSubmit when the form is valid and reports
// validity otherwise.
func (f *Form) Submit() bool {
	if !f.CheckValidity() {
		f.ReportValidity()
		return false
	}
	values := f.Values()
	f.logger.Debug("form submitted", "fields", len(values))
	if f.OnSubmit != nil {
		f.OnSubmit(values)
	}
	return true
}

// Reset resets every control and dispatches reset on the host.
func (f *Form) Reset() {
	for _, c := range f.controls {
		c.Reset()
	}
	f.Host.DispatchEvent(dom.NewEvent(dom.EventReset, f.Host))
}
