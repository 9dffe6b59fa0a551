package main

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/arcturuslab/skycore/catalog"
	"github.com/arcturuslab/skycore/coordinates"
	"github.com/arcturuslab/skycore/star"
	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

var positionFlags struct {
	object      string
	raHours     float64
	decDeg      float64
	parallaxMas float64
	pmRA        float64
	pmDec       float64
}

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Apparent right ascension, declination, altitude, and azimuth of an object",
	Long: `position computes an object's apparent place at the configured
instant and observer location: right ascension and declination of date,
altitude and azimuth, distance, and visual magnitude where known.

--object accepts sun, moon, mercury..pluto, or (with --htm-dir set) any
catalog display name. Passing --ra-hours/--dec-deg instead builds a
fixed star directly from those astrometric parameters.`,
	RunE: runPosition,
}

func init() {
	flags := positionCmd.Flags()
	flags.StringVar(&positionFlags.object, "object", "", "object name (sun, moon, mercury..pluto, or a catalog name)")
	flags.Float64Var(&positionFlags.raHours, "ra-hours", 0, "fixed star J2000 right ascension, hours")
	flags.Float64Var(&positionFlags.decDeg, "dec-deg", 0, "fixed star J2000 declination, degrees")
	flags.Float64Var(&positionFlags.parallaxMas, "parallax-mas", 0, "fixed star parallax, milliarcseconds")
	flags.Float64Var(&positionFlags.pmRA, "pm-ra-mas", 0, "fixed star proper motion in RA, mas/year")
	flags.Float64Var(&positionFlags.pmDec, "pm-dec-mas", 0, "fixed star proper motion in Dec, mas/year")
}

func runPosition(cmd *cobra.Command, args []string) error {
	dyn, err := buildDynamics()
	if err != nil {
		return err
	}

	obj, err := resolvePositionObject(cmd)
	if err != nil {
		return err
	}

	if err := obj.ComputeEphemeris(dyn); err != nil {
		return errors.Wrap(err, "skycat: computing ephemeris")
	}

	alt, az, _ := dyn.Coords.AltAz(obj.Direction)
	raHours, decDeg := raDecOfDate(dyn, obj.Direction)

	fmt.Printf("object:     %s\n", obj.GetName(0))
	fmt.Printf("RA (date):  %s\n", formatHours(raHours))
	fmt.Printf("Dec (date): %s\n", formatDegrees(decDeg))
	fmt.Printf("altitude:   %8.4f deg\n", alt.Degrees())
	fmt.Printf("azimuth:    %8.4f deg\n", az.Degrees())
	if !math.IsInf(obj.Distance, 1) {
		fmt.Printf("distance:   %.6f AU\n", obj.Distance)
	}
	if !math.IsInf(obj.Magnitude, 1) {
		fmt.Printf("magnitude:  %.2f\n", obj.Magnitude)
	}
	return nil
}

// resolvePositionObject picks, in order: an explicit fixed star built
// from --ra-hours/--dec-deg, a recognized solar-system name, or a
// catalog lookup by name in the --htm-dir mesh.
func resolvePositionObject(cmd *cobra.Command) (*catalog.Object, error) {
	if cmd.Flags().Changed("ra-hours") || cmd.Flags().Changed("dec-deg") {
		return newStarObject(positionFlags.object, positionFlags.raHours, positionFlags.decDeg,
			positionFlags.parallaxMas, positionFlags.pmRA, positionFlags.pmDec), nil
	}
	if positionFlags.object == "" {
		return nil, errors.New("skycat: --object (or --ra-hours/--dec-deg) is required")
	}
	if obj, err := resolveSolarSystemObject(positionFlags.object); err == nil {
		return obj, nil
	}

	mesh, err := loadMesh()
	if err != nil {
		return nil, err
	}
	if obj := ByName(mesh, positionFlags.object); obj != nil {
		return obj, nil
	}
	return nil, errors.Errorf("skycat: object %q not found (not a known solar-system name, and no HTM match)", positionFlags.object)
}

// newStarObject builds a fixed-star Object from astrometric parameters,
// matching star.Star's field-for-field layout (spec §4.7 "Star").
func newStarObject(name string, raHours, decDeg, parallaxMas, pmRAMas, pmDecMas float64) *catalog.Object {
	o := catalog.NewObject(catalog.TypeStar)
	if name != "" {
		o.Names = []string{name}
	} else {
		o.Names = []string{"custom star"}
	}
	o.Star = &catalog.StarData{
		Engine: star.Star{
			RAHours:       raHours,
			DecDeg:        decDeg,
			ParallaxMas:   parallaxMas,
			RAMasPerYear:  pmRAMas,
			DecMasPerYear: pmDecMas,
		},
	}
	return o
}

// raDecOfDate returns the right ascension (hours) and declination
// (degrees) of date for a geocentric apparent direction, the
// RA-recovering half of what Coordinates.HourAngleDeclination computes
// (that method returns hour angle, not RA, so position needs its own
// transform here).
func raDecOfDate(dyn *catalog.Dynamics, dirUnit vector.Vector) (raHours, decDeg float64) {
	local := dyn.Coords.Transform(coordinates.Fundamental, coordinates.EquatorialOfDate, dirUnit)
	sph := vector.FromVector(local)
	return units.NewAngle(sph.Lon).Hours(), units.NewAngle(sph.Lat).Degrees()
}

func formatHours(h float64) string {
	sign, hh, mm, ss := units.AngleFromHours(h).HMS()
	s := "+"
	if sign < 0 {
		s = "-"
	}
	return fmt.Sprintf("%s%02dh%02dm%05.2fs", s, hh, mm, ss)
}

func formatDegrees(d float64) string {
	sign, deg, arcmin, arcsec := units.AngleFromDegrees(d).DMS()
	s := "+"
	if sign < 0 {
		s = "-"
	}
	return fmt.Sprintf("%s%02dd%02dm%05.2fs", s, deg, arcmin, arcsec)
}
