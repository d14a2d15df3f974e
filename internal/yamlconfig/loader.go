// Package yamlconfig provides the YAML implementation of config.Loader.
//
//	components:
//	  - name: ColorChanger
//	    selector: .color-changer
//	    requires: [AlertButton]
//	    options:
//	      color: red
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/componeer/internal/config"
	"github.com/specialistvlad/componeer/internal/ctxlog"
	"github.com/specialistvlad/componeer/internal/fsutil"
)

type file struct {
	Components []component `yaml:"components"`
}

type component struct {
	Name           string         `yaml:"name"`
	Class          string         `yaml:"class"`
	Selector       string         `yaml:"selector"`
	Requires       []string       `yaml:"requires"`
	Applies        string         `yaml:"applies"`
	Identification string         `yaml:"identification"`
	Options        map[string]any `yaml:"options"`
}

// Loader reads .yaml and .yml manifests.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds every YAML file under paths and merges their components. Paths
// that do not exist are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindAll(paths, ".yaml", ".yml")
	if err != nil {
		return nil, fmt.Errorf("failed to walk manifest paths: %w", err)
	}

	model := &config.Model{}
	for _, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", f, err)
		}
		m, err := l.Parse(ctx, f, src)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}

	logger.Debug("YAML loading complete.", "files", len(files), "components", len(model.Components))
	return model, nil
}

// Parse decodes a single manifest held in memory. Unknown keys are errors.
// Several documents in one file are merged in order.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	model := &config.Model{}
	for {
		var doc file
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
		}
		for _, c := range doc.Components {
			model.Components = append(model.Components, &config.Component{
				Name:           c.Name,
				Class:          c.Class,
				Selector:       c.Selector,
				Requires:       c.Requires,
				Applies:        c.Applies,
				Identification: c.Identification,
				Options:        c.Options,
				Source:         filename,
			})
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Parsed YAML manifest.", "file", filename, "components", len(model.Components))
	return model, nil
}
