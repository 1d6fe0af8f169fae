// Package scenario contains the built-in levels. Each registers itself with
// the registry in init(); import the package for its side effects.
package scenario

import (
	"github.com/vovakirdan/feel-arcade/internal/sim"
)

// preferFeel selects the named preset when the list has it.
func preferFeel(opts *sim.Options, name string) {
	for i, f := range opts.Feels {
		if f.Name == name {
			opts.Feel = i
			return
		}
	}
}
