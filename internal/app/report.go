package app

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/specialistvlad/componeer/internal/mountpath"
)

// report writes every component, requirements first, with its instances and
// the address of each mount point.
func (a *App) report() error {
	order, err := a.registry.Order()
	if err != nil {
		return err
	}

	for _, name := range order {
		def, ok := a.registry.Get(name)
		if !ok {
			continue
		}
		if !def.Applies() {
			fmt.Fprintf(a.outW, "%s: not applied\n", name)
			continue
		}
		fmt.Fprintf(a.outW, "%s: %d instance(s)\n", name, def.Len())
		for _, id := range def.IDs() {
			mp, _ := def.MountPoint(id)
			fmt.Fprintf(a.outW, "  %s %s\n", id, address(mp))
		}
	}
	return nil
}

func address(mp any) string {
	n, ok := mp.(*html.Node)
	if !ok {
		return "-"
	}
	if addr := mountpath.Of(n); addr != nil {
		return addr.String()
	}
	return "-"
}
