// Package htmstore is the CSV-backed region file layer behind htm.Mesh
// (spec §4.6, §6): one file per populated region, named by the region's
// HTM name, holding that region's objects in the row format
// catalog.ToCSV/FromCSV define. It owns the directory/file-naming
// convention only; the row codec itself lives in catalog since it is
// inseparable from the Object type it encodes.
package htmstore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/arcturuslab/skycore/catalog"
	"github.com/arcturuslab/skycore/htm"
)

func regionFileName(id htm.ID) string {
	return id.Name() + ".csv"
}

func regionPath(dir string, id htm.ID) string {
	return filepath.Join(dir, regionFileName(id))
}

// NewLoader returns an htm.RegionLoader backed by CSV files under dir, one
// per region, named "<region name>.csv" (e.g. "S012.csv", "O0.csv"). A
// region with no file is treated as empty, not an error, since most
// regions in a sparse catalog hold nothing.
func NewLoader(dir string) htm.RegionLoader {
	return func(_ context.Context, id htm.ID) ([]htm.Locatable, error) {
		f, err := os.Open(regionPath(dir, id))
		if os.IsNotExist(err) {
			return nil, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "htmstore: open region %s", id.Name())
		}
		defer f.Close()

		cat, _, err := catalog.ReadCSV(f)
		if err != nil {
			return nil, errors.Wrapf(err, "htmstore: read region %s", id.Name())
		}
		objs := cat.All()
		out := make([]htm.Locatable, len(objs))
		for i, o := range objs {
			out[i] = o
		}
		return out, nil
	}
}

// WriteRegion writes objs to dir as region id's CSV file, creating dir if
// needed. An empty objs still creates the file, for callers that want a
// complete on-disk region set rather than relying on NewLoader's
// file-not-found-means-empty convention.
func WriteRegion(dir string, id htm.ID, objs []*catalog.Object) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "htmstore: create region directory")
	}
	f, err := os.Create(regionPath(dir, id))
	if err != nil {
		return errors.Wrapf(err, "htmstore: create region file %s", id.Name())
	}
	defer f.Close()

	cat := catalog.New()
	for _, o := range objs {
		cat.Append(o)
	}
	return cat.WriteCSV(f)
}

// BuildFromCatalog buckets every object in cat into the region its
// position and magnitude place it in (the same rule htm.Mesh.Store
// applies in memory: the region at depth mesh.MagLevel(magnitude)-1
// nearest the object's direction, or the origin region for the brightest
// level) and writes each populated region to dir as its own CSV file.
// Objects fainter than every level configured on mesh are skipped, as
// Mesh.Store itself would drop them. Returns the number of region files
// written.
func BuildFromCatalog(dir string, mesh *htm.Mesh, cat *catalog.Catalog) (int, error) {
	buckets := make(map[htm.ID][]*catalog.Object)
	for _, o := range cat.All() {
		level := mesh.MagLevel(o.Magnitude)
		if level < 0 {
			continue
		}
		id := htm.Origin
		if level > 0 {
			id = htm.VectorToID(o.Position(), level-1)
		}
		buckets[id] = append(buckets[id], o)
	}

	for id, objs := range buckets {
		if err := WriteRegion(dir, id, objs); err != nil {
			return 0, err
		}
	}
	return len(buckets), nil
}
