// Package alertbutton is a demo component that raises an alert on the bus.
package alertbutton

import (
	"github.com/specialistvlad/componeer/internal/catalog"
	"github.com/specialistvlad/componeer/internal/component"
)

// EventAlert carries the alert text as its only argument.
const EventAlert = "alert"

// Module implements the catalog.Module interface for this package.
type Module struct{}

// Register registers the AlertButton class with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.RegisterConstructor("AlertButton", NewAlertButton)
}

// Options configures an AlertButton when it is registered from Go code.
// Manifests use the `alertText` key instead.
type Options struct {
	AlertText string
}

// AlertButton emits its text once when initialized and again on every Press.
type AlertButton struct {
	component.Base

	text    string
	pressed int
}

// NewAlertButton builds an AlertButton. It works with or without a mount
// point.
func NewAlertButton(p component.Params) (component.Instance, error) {
	b := &AlertButton{text: alertText(p.Options)}
	b.Bind(p, b)
	return b, nil
}

// OnInit raises the first alert.
func (b *AlertButton) OnInit() {
	b.Press()
}

// Press emits the alert.
func (b *AlertButton) Press() {
	b.pressed++
	b.EventBus.Emit(EventAlert, b.text)
}

// Text returns the alert text.
func (b *AlertButton) Text() string {
	return b.text
}

// Pressed returns how many alerts this button raised.
func (b *AlertButton) Pressed() int {
	return b.pressed
}

func alertText(options any) string {
	switch o := options.(type) {
	case Options:
		return o.AlertText
	case *Options:
		if o != nil {
			return o.AlertText
		}
	case map[string]any:
		if s, ok := o["alertText"].(string); ok {
			return s
		}
	}
	return ""
}
