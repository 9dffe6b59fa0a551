package main

import (
	"github.com/pkg/errors"

	"github.com/arcturuslab/skycore/catalog"
	"github.com/arcturuslab/skycore/jplde"
)

// deBodies maps the names subcommands accept via --object to the DE
// reader's body index. The Moon is deliberately absent: it propagates
// through ELP/MPP02 (catalog.PlanetKindMoonELP), not the DE reader, matching
// spec.md §4.7's "Moon specifically prefers ELP" rule.
var deBodies = map[string]jplde.Body{
	"sun":     jplde.Sun,
	"mercury": jplde.Mercury,
	"venus":   jplde.Venus,
	"mars":    jplde.Mars,
	"jupiter": jplde.Jupiter,
	"saturn":  jplde.Saturn,
	"uranus":  jplde.Uranus,
	"neptune": jplde.Neptune,
	"pluto":   jplde.Pluto,
}

// resolveSolarSystemObject builds the Object for one of the names
// deBodies or "moon" recognizes. DE-backed bodies need dyn.DE open; the
// Moon never does.
func resolveSolarSystemObject(name string) (*catalog.Object, error) {
	if name == "moon" {
		o := catalog.NewObject(catalog.TypeMoon)
		o.Names = []string{"Moon"}
		o.Planet = &catalog.PlanetData{Kind: catalog.PlanetKindMoonELP}
		return o, nil
	}

	body, ok := deBodies[name]
	if !ok {
		return nil, errors.Errorf("skycat: unknown object %q (want one of sun, moon, mercury, venus, mars, jupiter, saturn, uranus, neptune, pluto)", name)
	}
	o := catalog.NewObject(catalog.TypePlanet)
	o.Names = []string{name}
	o.Planet = &catalog.PlanetData{Kind: catalog.PlanetKindDE, DEBody: body}
	return o, nil
}
