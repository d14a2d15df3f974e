package hcl

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/componeer/internal/config"
	"github.com/specialistvlad/componeer/internal/ctxlog"
	"github.com/specialistvlad/componeer/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds every .hcl file under paths and merges their components. Paths
// that do not exist are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindAll(paths, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to walk manifest paths: %w", err)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read HCL file %s: %w", file, err)
		}
		m, err := l.parse(ctx, parser, file, src)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}

	logger.Debug("HCL loading complete.", "components", len(model.Components))
	return model, nil
}

// Parse decodes a single manifest held in memory.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	return l.parse(ctx, hclparse.NewParser(), filename, src)
}

func (l *Loader) parse(ctx context.Context, parser *hclparse.Parser, filename string, src []byte) (*config.Model, error) {
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	model := &config.Model{}
	for _, block := range root.Components {
		c, err := l.translateComponent(ctx, block, filename)
		if err != nil {
			return nil, err
		}
		model.Components = append(model.Components, c)
	}
	return model, nil
}

// translateComponent converts the HCL-specific component schema into the
// agnostic model. A missing class defaults to the block label.
func (l *Loader) translateComponent(ctx context.Context, b *componentBlock, filename string) (*config.Component, error) {
	logger := ctxlog.FromContext(ctx)

	c := &config.Component{
		Name:           b.Name,
		Class:          b.Class,
		Selector:       b.Selector,
		Requires:       b.Requires,
		Applies:        b.Applies,
		Identification: b.Identification,
		Source:         filename,
	}
	if c.Class == "" {
		c.Class = b.Name
	}

	if b.Options == nil || b.Options.Body == nil {
		return c, nil
	}

	attrs, diags := b.Options.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("component %q in %s: invalid options block: %w", b.Name, filename, diags)
	}

	c.Options = make(map[string]any, len(attrs))
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		val, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("component %q in %s: option %q: %w", b.Name, filename, name, diags)
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("component %q in %s: option %q: %w", b.Name, filename, name, err)
		}
		c.Options[name] = native
	}
	logger.Debug("Translated component block.", "component", b.Name, "class", c.Class, "options", len(c.Options))
	return c, nil
}
