package app

import (
	"github.com/specialistvlad/componeer/internal/catalog"
	"github.com/specialistvlad/componeer/internal/config"
	"github.com/specialistvlad/componeer/internal/hcl"
	"github.com/specialistvlad/componeer/internal/yamlconfig"
	"github.com/specialistvlad/componeer/modules/alertbutton"
	"github.com/specialistvlad/componeer/modules/colorchanger"
	"github.com/specialistvlad/componeer/modules/print"
)

// coreModules is the definitive list of all component modules compiled into
// the componeer binary.
var coreModules = []catalog.Module{
	&colorchanger.Module{},
	&alertbutton.Module{},
	&print.Module{},
}

// DefaultLoaders returns one loader per supported manifest format. Each
// loader only picks up files with its own extensions.
func DefaultLoaders() []config.Loader {
	return []config.Loader{
		hcl.NewLoader(),
		yamlconfig.NewLoader(),
	}
}
