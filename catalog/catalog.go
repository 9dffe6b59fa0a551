package catalog

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/arcturuslab/skycore/identifier"
)

// Catalog is an ordered, uniquely-owned array of Objects (spec §3
// "Catalog"). Retrieval by index or identifier returns a pointer into the
// slice — a non-owning view, never a copy the caller could mistake for an
// independently-owned record.
type Catalog struct {
	objects []*Object
	byID    map[identifier.Identifier]*Object
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{byID: make(map[identifier.Identifier]*Object)}
}

// Append adds obj to the end of the catalog and indexes its identifiers.
func (c *Catalog) Append(obj *Object) {
	c.objects = append(c.objects, obj)
	for _, id := range obj.Identifiers {
		if _, exists := c.byID[id]; !exists {
			c.byID[id] = obj
		}
	}
}

// Len returns the number of objects in the catalog.
func (c *Catalog) Len() int { return len(c.objects) }

// At returns the object at index i, or nil if out of range.
func (c *Catalog) At(i int) *Object {
	if i < 0 || i >= len(c.objects) {
		return nil
	}
	return c.objects[i]
}

// All returns the catalog's objects as a non-owning slice view.
func (c *Catalog) All() []*Object { return c.objects }

// ByIdentifier returns the object carrying ident, or nil if none does
// (spec §4.6 "SSIdentifierToObject").
func (c *Catalog) ByIdentifier(ident identifier.Identifier) *Object {
	return c.byID[ident]
}

// ComputeEphemerides updates every object's direction, distance, and
// magnitude for dyn's current state. Objects with no ephemeris source for
// their type (spec §7 "Inconsistent catalog": malformed records) are
// skipped rather than aborting the whole pass.
func (c *Catalog) ComputeEphemerides(dyn *Dynamics) {
	for _, obj := range c.objects {
		_ = obj.ComputeEphemeris(dyn)
	}
}

// WriteCSV writes every object as one CSV row to w, in catalog order.
func (c *Catalog) WriteCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, obj := range c.objects {
		if _, err := bw.WriteString(obj.ToCSV() + "\n"); err != nil {
			return errors.Wrap(err, "catalog: write CSV")
		}
	}
	return bw.Flush()
}

// ReadCSV appends one Object per line read from r. A line that fails to
// parse is skipped (spec §7: "Inconsistent catalog ... record is
// dropped"), and the number of rows successfully appended is returned.
func ReadCSV(r io.Reader) (*Catalog, int, error) {
	c := New()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		obj, err := FromCSV(line)
		if err != nil {
			continue
		}
		c.Append(obj)
		n++
	}
	if err := scanner.Err(); err != nil {
		return c, n, errors.Wrap(err, "catalog: read CSV")
	}
	return c, n, nil
}
