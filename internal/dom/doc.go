// Package dom is the mount-point discovery collaborator for HTML documents.
// Documents are parsed with golang.org/x/net/html and selectors are matched
// with cascadia, so manifests use ordinary CSS selectors.
package dom
