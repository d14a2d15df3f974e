package mountpath

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// String serializes the Address into its canonical path string representation.
func (a *Address) String() string {
	if a == nil {
		return ""
	}

	var sb strings.Builder
	for i, segment := range a.Path {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(segment.Name)
		if segment.HasIndex() {
			fmt.Fprintf(&sb, "[%d]", segment.Index)
		}
	}

	return sb.String()
}

// Equal checks for deep equality between two Address pointers.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return slices.Equal(a.Path, other.Path)
}

// Of returns the address of an element node. Anything that is not an
// element yields nil.
func Of(n *html.Node) *Address {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}

	var path []PathSegment
	for cur := n; cur != nil && cur.Type == html.ElementNode; cur = cur.Parent {
		index, total := siblingPosition(cur)
		if total > 1 {
			path = append(path, NewPathSegmentWithIndex(cur.Data, index))
		} else {
			path = append(path, NewPathSegment(cur.Data))
		}
	}
	slices.Reverse(path)
	return &Address{Path: path}
}

// siblingPosition returns the index of n among its parent's element children
// with the same tag, and how many such children there are.
func siblingPosition(n *html.Node) (index, total int) {
	if n.Parent == nil {
		return 0, 1
	}
	for c := n.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != n.Data {
			continue
		}
		if c == n {
			index = total
		}
		total++
	}
	return index, total
}

// Resolve finds the element a addresses under root, which is usually the
// document node. A segment without an index matches the first element with
// that tag.
func Resolve(root *html.Node, a *Address) (*html.Node, bool) {
	if root == nil || a == nil || len(a.Path) == 0 {
		return nil, false
	}

	cur := root
	for _, seg := range a.Path {
		want := max(seg.Index, 0)
		var next *html.Node
		seen := 0
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || c.Data != seg.Name {
				continue
			}
			if seen == want {
				next = c
				break
			}
			seen++
		}
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
