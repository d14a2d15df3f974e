package dom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Discovery finds element mount points under a document or element context.
// It implements component.Discovery.
type Discovery struct{}

// FindAll returns the elements under root matching selector, in document
// order. root itself is never a match.
func (Discovery) FindAll(root any, selector string) ([]any, error) {
	n, ok := root.(*html.Node)
	if !ok || n == nil {
		return nil, fmt.Errorf("context must be an *html.Node, got %T", root)
	}

	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	var out []any
	for _, m := range sel.MatchAll(n) {
		if m == n {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// ValidContext reports whether root is a document or element node.
func (Discovery) ValidContext(root any) bool {
	n, ok := root.(*html.Node)
	return ok && n != nil && (n.Type == html.DocumentNode || n.Type == html.ElementNode)
}

// ValidMountPoint reports whether mp is an element node.
func (Discovery) ValidMountPoint(mp any) bool {
	n, ok := mp.(*html.Node)
	return ok && n != nil && n.Type == html.ElementNode
}
