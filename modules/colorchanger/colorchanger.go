// Package colorchanger is a demo component that recolors its mount point
// whenever an alert is raised on the bus.
package colorchanger

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"golang.org/x/net/html"

	"github.com/specialistvlad/componeer/internal/catalog"
	"github.com/specialistvlad/componeer/internal/component"
	"github.com/specialistvlad/componeer/internal/dom"
	"github.com/specialistvlad/componeer/modules/alertbutton"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// Register registers the ColorChanger class with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.RegisterConstructor("ColorChanger", NewColorChanger)
}

// ColorChanger paints the background of its element.
type ColorChanger struct {
	component.Base

	node     *html.Node
	palette  []string
	color    string
	original string
	hadStyle bool
}

// NewColorChanger builds a ColorChanger. The optional `colors` option limits
// the colors it picks from; without it any hex color may be chosen.
func NewColorChanger(p component.Params) (component.Instance, error) {
	n, ok := p.MountPoint.(*html.Node)
	if !ok || n == nil {
		return nil, fmt.Errorf("ColorChanger needs an element mount point, got %T", p.MountPoint)
	}

	c := &ColorChanger{node: n, palette: palette(p.Options)}
	c.original, c.hadStyle = dom.Attr(n, "style")
	c.Bind(p, c)
	return c, nil
}

// OnInit subscribes to alerts.
func (c *ColorChanger) OnInit() {
	c.EventBus.On(alertbutton.EventAlert, func(...any) {
		c.ChangeColor()
	})
}

// OnDestroy restores the element's original style.
func (c *ColorChanger) OnDestroy() error {
	if c.hadStyle {
		dom.SetAttr(c.node, "style", c.original)
		return nil
	}
	c.node.Attr = removeAttr(c.node.Attr, "style")
	return nil
}

// ChangeColor picks a new background color, applies it and returns it.
func (c *ColorChanger) ChangeColor() string {
	if len(c.palette) > 0 {
		c.color = c.palette[rand.IntN(len(c.palette))]
	} else {
		c.color = randomColor()
	}
	dom.SetAttr(c.node, "style", "background-color: "+c.color)
	return c.color
}

// Color returns the current background color, empty before the first change.
func (c *ColorChanger) Color() string {
	return c.color
}

func randomColor() string {
	const letters = "0123456789ABCDEF"
	var sb strings.Builder
	sb.WriteByte('#')
	for range 6 {
		sb.WriteByte(letters[rand.IntN(len(letters))])
	}
	return sb.String()
}

func palette(options any) []string {
	m, ok := options.(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := m["colors"].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func removeAttr(attrs []html.Attribute, key string) []html.Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		if a.Key != key {
			out = append(out, a)
		}
	}
	return out
}
