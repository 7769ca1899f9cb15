// Package catalog holds the reference table of recognised skills.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
)

// Levels lists the accepted market levels from lowest to highest.
var Levels = []Level{Beginner, Intermediate, Advanced}

func (l Level) Valid() bool {
	return slices.Contains(Levels, l)
}

// Definition is a single catalog entry.
type Definition struct {
	Name      string   `mapstructure:"name" json:"name"`
	Category  string   `mapstructure:"category" json:"category"`
	Level     Level    `mapstructure:"level" json:"level"`
	Resources []string `mapstructure:"resources" json:"resources"`
}

func (d Definition) clone() Definition {
	d.Resources = slices.Clone(d.Resources)
	if d.Resources == nil {
		d.Resources = []string{}
	}
	return d
}

// Catalog is an ordered, read-only set of skill definitions.
// It is safe for concurrent use once built.
type Catalog struct {
	entries []Definition
	index   map[string]int
}

var errEmptyName = errors.New("skill name is empty")

// New validates the definitions and builds a catalog that keeps their order.
func New(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Definition, 0, len(defs)),
		index:   make(map[string]int, len(defs)),
	}

	for i, def := range defs {
		if strings.TrimSpace(def.Name) == "" {
			return nil, fmt.Errorf("entry %d: %w", i, errEmptyName)
		}
		if _, ok := c.index[def.Name]; ok {
			return nil, fmt.Errorf("duplicate skill %q", def.Name)
		}
		if strings.TrimSpace(def.Category) == "" {
			return nil, fmt.Errorf("skill %q: category is empty", def.Name)
		}
		if !def.Level.Valid() {
			return nil, fmt.Errorf("skill %q: unknown level %q (expected one of %v)", def.Name, def.Level, Levels)
		}

		c.index[def.Name] = len(c.entries)
		c.entries = append(c.entries, def.clone())
	}

	return c, nil
}

// Lookup returns a copy of the definition with exactly the given name.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	idx, ok := c.index[name]
	if !ok {
		return Definition{}, false
	}
	return c.entries[idx].clone(), true
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Names returns every known skill name in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, def := range c.entries {
		names = append(names, def.Name)
	}
	return names
}

// Entries returns copies of all definitions in catalog order.
func (c *Catalog) Entries() []Definition {
	defs := make([]Definition, 0, len(c.entries))
	for _, def := range c.entries {
		defs = append(defs, def.clone())
	}
	return defs
}

// Categories returns the distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	var categories []string
	for _, def := range c.entries {
		if !slices.Contains(categories, def.Category) {
			categories = append(categories, def.Category)
		}
	}
	return categories
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
