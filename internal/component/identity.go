package component

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/uuid"
)

// nextID returns an id that is not yet a key of d.instances. The candidate
// comes from the Identify func when configured, otherwise from a random UUID;
// collisions get a random numeric suffix until the id is free.
func (d *Definition) nextID() string {
	var id string
	if d.identify != nil {
		id = d.identify()
	} else {
		id = uuid.NewString()
	}

	for {
		if _, taken := d.instances[id]; !taken {
			return id
		}
		id = fmt.Sprintf("%s-%d", id, rand.IntN(1000))
	}
}

// nameOf derives a component name from a constructor: NewColorChanger
// becomes ColorChanger, and a bare package-level New takes the package name.
func nameOf(ctor Constructor) string {
	fn := runtime.FuncForPC(reflect.ValueOf(ctor).Pointer())
	if fn == nil {
		return ""
	}

	full := fn.Name()
	// Instantiated generics end in "[...]".
	if i := strings.Index(full, "["); i >= 0 {
		full = full[:i]
	}
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	pkg, short, ok := strings.Cut(full, ".")
	if !ok {
		return ""
	}
	// Closures and method values carry compiler suffixes.
	if strings.Contains(short, ".") || strings.HasPrefix(short, "func") {
		return ""
	}

	if short == "New" {
		return pkg
	}
	if rest, found := strings.CutPrefix(short, "New"); found && rest[0] >= 'A' && rest[0] <= 'Z' {
		return rest
	}
	return short
}
