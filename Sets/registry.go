package Sets

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alphadose/haxmap"
)

// Factory returns a new empty Set.
type Factory func() Set

// ErrUnknownBackend is wrapped by Make when no backend has the requested name.
var ErrUnknownBackend = errors.New("unknown set backend")

var backends = haxmap.New[string, Factory]()

// Register makes a backend available to Make under name. Backends call it
// from their init functions. It panics if name is registered twice or f is nil.
func Register(name string, f Factory) {
	if f == nil {
		panic("Sets: Register factory is nil")
	}
	if _, dup := backends.Get(name); dup {
		panic("Sets: Register called twice for backend " + name)
	}
	backends.Set(name, f)
}

// Make a new empty Set of the backend registered as name.
func Make(name string) (Set, error) {
	f, ok := backends.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return f(), nil
}

// Backends returns the registered names in ascending order.
func Backends() []string {
	names := make([]string, 0, backends.Len())
	backends.ForEach(func(name string, _ Factory) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}
