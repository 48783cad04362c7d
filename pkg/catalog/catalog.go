// Package catalog maps named high-level operations to G-code commands.
//
// Each Definition is data: a namespace letter, a code, an optional
// sub-code and an ordered parameter list. Callers supply values by
// argument key; Bind checks them and hands a gcode.Command to the encoder.
package catalog

import (
	"sort"
	"strings"

	gerrors "gcodegen/pkg/errors"
	"gcodegen/pkg/gcode"
)

// Catalog is a registry of operations. It is not safe for concurrent
// registration; lookups after setup are read-only.
type Catalog struct {
	defs  map[string]Definition
	order []string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{defs: make(map[string]Definition)}
}

// Default returns a catalog holding the builtin G, M and T operations.
func Default() *Catalog {
	c := New()
	for _, d := range builtin {
		c.MustRegister(d)
	}
	return c
}

// normalize folds case and treats '-' like '_'.
func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// Register validates d and adds it. Names must be unique.
func (c *Catalog) Register(d Definition) error {
	d.Name = normalize(d.Name)
	if err := d.Validate(); err != nil {
		return err
	}
	if _, ok := c.defs[d.Name]; ok {
		return gerrors.DefinitionError(d.Name, "already registered")
	}
	c.defs[d.Name] = d
	c.order = append(c.order, d.Name)
	return nil
}

// MustRegister is like Register but panics on error.
func (c *Catalog) MustRegister(d Definition) {
	if err := c.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the operation with the given name.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	d, ok := c.defs[normalize(name)]
	return d, ok
}

// Len returns the number of registered operations.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Names returns all operation names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	sort.Strings(names)
	return names
}

// Definitions returns all operations in registration order.
func (c *Catalog) Definitions() []Definition {
	defs := make([]Definition, 0, len(c.order))
	for _, name := range c.order {
		defs = append(defs, c.defs[name])
	}
	return defs
}

// Command binds args to the named operation.
func (c *Catalog) Command(name string, args Args, comment gcode.Opt[string]) (gcode.Command, error) {
	d, ok := c.Lookup(name)
	if !ok {
		return gcode.Command{}, gerrors.UnknownOpError(name)
	}
	return d.Bind(args, comment)
}

// Emit binds args to the named operation and encodes it to w.
func (c *Catalog) Emit(w *gcode.Writer, name string, args Args, comment gcode.Opt[string]) error {
	cmd, err := c.Command(name, args, comment)
	if err != nil {
		return err
	}
	return w.Encode(cmd)
}
