package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/arcturuslab/skycore/catalog"
	"github.com/arcturuslab/skycore/coordinates"
	"github.com/arcturuslab/skycore/htm"
	"github.com/arcturuslab/skycore/htmstore"
	"github.com/arcturuslab/skycore/jplde"
	"github.com/arcturuslab/skycore/timescale"
)

// requestedJDTT resolves the --time flag (RFC3339, default now) to a TT
// Julian date via the civil -> UTC -> TT chain timescale implements.
func requestedJDTT() (float64, error) {
	raw := viper.GetString("time")
	t := time.Now().UTC()
	if raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return 0, errors.Wrap(err, "skycat: parsing --time")
		}
		t = parsed.UTC()
	}
	jdUTC := timescale.TimeToJDUTC(t)
	return timescale.UTCToTT(jdUTC), nil
}

// observerLocation builds a Location from the --lat/--lon/--alt flags.
func observerLocation() coordinates.Location {
	return coordinates.Location{
		LatDeg: viper.GetFloat64("lat"),
		LonDeg: viper.GetFloat64("lon"),
		AltKm:  viper.GetFloat64("alt"),
	}
}

// buildDynamics assembles the Dynamics every subcommand propagates
// objects against: the observer's Coordinates at the requested instant,
// an optionally-open DE ephemeris, and the process logger, so DE
// fallbacks and event-finder cap warnings surface the same way no matter
// which subcommand triggers them.
func buildDynamics() (*catalog.Dynamics, error) {
	jdTT, err := requestedJDTT()
	if err != nil {
		return nil, err
	}

	coords := coordinates.New(jdTT, observerLocation())
	coords.Flags = coordinates.Flags{
		ApplyParallax:     viper.GetBool("parallax"),
		ApplyProperMotion: viper.GetBool("proper-motion"),
		ApplyAberration:   viper.GetBool("aberration"),
		ApplyLightTime:    viper.GetBool("light-time"),
	}

	var de *jplde.Ephemeris
	if path := viper.GetString("de-file"); path != "" {
		de, err = jplde.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "skycat: opening DE ephemeris")
		}
	}

	dyn := catalog.NewDynamics(coords, de)
	dyn.SetLogger(logger)
	if err := dyn.SetObserverState(); err != nil {
		return nil, errors.Wrap(err, "skycat: computing observer state")
	}
	return dyn, nil
}

// magLevels is the single-level mesh depth used when --htm-dir is set: a
// command-line name lookup wants the whole small catalog in one region,
// not a multi-resolution spatial index.
var magLevels = []float64{30.0}

// loadMesh opens --htm-dir's region tree, if set, and loads it so ByName
// can scan the catalog. A single-level mesh keeps every object in the
// origin region, so this is one region load, not a recursive walk.
func loadMesh() (*htm.Mesh, error) {
	dir := viper.GetString("htm-dir")
	if dir == "" {
		return nil, nil
	}
	mesh := htm.NewMesh(magLevels, htmstore.NewLoader(dir))
	mesh.Log = logger
	if _, err := mesh.LoadRegion(context.Background(), htm.Origin); err != nil {
		return nil, errors.Wrap(err, "skycat: loading HTM region tree")
	}
	return mesh, nil
}

// ByName finds the first object in mesh whose display names match query
// (exact match; the HTM region CSVs carry display names rather than a
// stable lookup key).
func ByName(mesh *htm.Mesh, query string) *catalog.Object {
	if mesh == nil {
		return nil
	}
	for _, obj := range mesh.Objects(htm.Origin) {
		if o, ok := obj.(*catalog.Object); ok && matchesName(o, query) {
			return o
		}
	}
	return nil
}

func matchesName(o *catalog.Object, query string) bool {
	for _, name := range o.Names {
		if name == query {
			return true
		}
	}
	return false
}
