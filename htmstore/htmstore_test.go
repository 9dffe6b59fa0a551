package htmstore

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/arcturuslab/skycore/catalog"
	"github.com/arcturuslab/skycore/htm"
	"github.com/arcturuslab/skycore/identifier"
	"github.com/arcturuslab/skycore/star"
	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

func siriusAt(lonDeg, latDeg, mag float64) *catalog.Object {
	o := catalog.NewObject(catalog.TypeStar)
	o.Star = &catalog.StarData{
		Engine: star.Star{RAHours: lonDeg / 15.0, DecDeg: latDeg, ParallaxMas: 379.2},
		VMag:   mag,
	}
	o.Direction = vector.NewSpherical(units.AngleFromDegrees(lonDeg).Radians(),
		units.AngleFromDegrees(latDeg).Radians(), math.Inf(1)).Vector()
	o.Magnitude = mag
	o.AddIdentifier(identifier.New(identifier.CatHR, 2491))
	o.Names = []string{"Sirius"}
	return o
}

func TestWriteRegionAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	objs := []*catalog.Object{siriusAt(10, 20, 1.0)}

	if err := WriteRegion(dir, htm.Origin, objs); err != nil {
		t.Fatalf("WriteRegion: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "O0.csv")); err != nil {
		t.Fatalf("expected O0.csv to exist: %v", err)
	}

	loaded, err := NewLoader(dir)(context.Background(), htm.Origin)
	if err != nil {
		t.Fatalf("loader: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("len(loaded) = %d, want 1", len(loaded))
	}
	o, ok := loaded[0].(*catalog.Object)
	if !ok {
		t.Fatalf("loaded[0] is %T, want *catalog.Object", loaded[0])
	}
	if o.GetName(0) != "Sirius" {
		t.Errorf("GetName(0) = %q, want Sirius", o.GetName(0))
	}
}

func TestLoaderMissingFileIsEmptyNotError(t *testing.T) {
	dir := t.TempDir()
	loaded, err := NewLoader(dir)(context.Background(), htm.ID(9999999))
	if err != nil {
		t.Fatalf("loader on missing file: %v", err)
	}
	if loaded != nil {
		t.Errorf("loaded = %v, want nil for a missing region file", loaded)
	}
}

func TestBuildFromCatalogWritesPopulatedRegionsOnly(t *testing.T) {
	dir := t.TempDir()
	cat := catalog.New()
	cat.Append(siriusAt(10, 20, 1.0))
	cat.Append(siriusAt(200, -40, 3.0))

	mesh := htm.NewMesh([]float64{2.0, 6.0}, NewLoader(dir))

	n, err := BuildFromCatalog(dir, mesh, cat)
	if err != nil {
		t.Fatalf("BuildFromCatalog: %v", err)
	}
	if n == 0 {
		t.Fatal("expected at least one region written")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != n {
		t.Errorf("wrote %d files, BuildFromCatalog reported %d regions", len(entries), n)
	}
}

func TestBuildFromCatalogSkipsObjectsFainterThanEveryLevel(t *testing.T) {
	dir := t.TempDir()
	cat := catalog.New()
	cat.Append(siriusAt(10, 20, 99.0)) // fainter than any configured level

	mesh := htm.NewMesh([]float64{2.0}, NewLoader(dir))
	n, err := BuildFromCatalog(dir, mesh, cat)
	if err != nil {
		t.Fatalf("BuildFromCatalog: %v", err)
	}
	if n != 0 {
		t.Errorf("BuildFromCatalog wrote %d regions, want 0 (object too faint)", n)
	}
}
