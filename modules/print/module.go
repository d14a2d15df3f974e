// Package print is a demo component that writes its options when it is
// initialized and every alert it hears afterwards.
package print

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"golang.org/x/net/html"

	"github.com/specialistvlad/componeer/internal/catalog"
	"github.com/specialistvlad/componeer/internal/component"
	"github.com/specialistvlad/componeer/internal/mountpath"
	"github.com/specialistvlad/componeer/modules/alertbutton"
)

// Module implements the catalog.Module interface for this package.
type Module struct {
	// Out receives the printed lines. Nil means os.Stdout.
	Out io.Writer
}

// Register registers the Printer class with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	out := m.Out
	if out == nil {
		out = os.Stdout
	}
	c.RegisterConstructor("Printer", func(p component.Params) (component.Instance, error) {
		return NewPrinter(p, out), nil
	})
}

// Printer prints to a writer. It works with or without a mount point.
type Printer struct {
	component.Base

	out    io.Writer
	prefix string
}

// NewPrinter builds a Printer writing to out.
func NewPrinter(p component.Params, out io.Writer) *Printer {
	pr := &Printer{out: out, prefix: "Printer"}
	if n, ok := p.MountPoint.(*html.Node); ok {
		if addr := mountpath.Of(n); addr != nil {
			pr.prefix = addr.String()
		}
	}
	pr.Bind(p, pr)
	return pr
}

// OnInit prints the options, sorted by key, and starts listening for alerts.
func (p *Printer) OnInit() {
	options, _ := p.Options.(map[string]any)
	if len(options) == 0 {
		fmt.Fprintf(p.out, "%s: (no options)\n", p.prefix)
	}
	for _, k := range slices.Sorted(maps.Keys(options)) {
		fmt.Fprintf(p.out, "%s: %s = %v\n", p.prefix, k, options[k])
	}

	p.EventBus.On(alertbutton.EventAlert, func(args ...any) {
		if len(args) > 0 {
			fmt.Fprintf(p.out, "%s: alert %q\n", p.prefix, fmt.Sprint(args[0]))
		}
	})
}
