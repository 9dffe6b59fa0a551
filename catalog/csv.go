// CSV glue for the HTM region-file row format (spec §6): a type-code
// column, the star-like field block shared by stars and deep-sky objects,
// per-type extension fields, and a trailing run of identifiers and names
// in arbitrary order.
package catalog

import (
	"encoding/csv"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/arcturuslab/skycore/identifier"
	"github.com/arcturuslab/skycore/star"
	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

// starFieldCount is the number of columns in the shared star-like field
// block: RA, Dec, pmRA, pmDec, Vmag, Bmag, distance (pc), radial
// velocity, spectral type.
const starFieldCount = 9

func isStarLikeType(t Type) bool {
	switch t {
	case TypeStar, TypeDoubleStar, TypeVariableStar, TypeDoubleVariableStar,
		TypeOpenCluster, TypeGlobularCluster, TypeBrightNebula, TypeDarkNebula,
		TypePlanetaryNebula, TypeGalaxy:
		return true
	}
	return false
}

func isDeepSkyType(t Type) bool {
	switch t {
	case TypeOpenCluster, TypeGlobularCluster, TypeBrightNebula, TypeDarkNebula,
		TypePlanetaryNebula, TypeGalaxy:
		return true
	}
	return false
}

// ToCSV renders o as a single CSV row. Solar-system bodies (planets,
// moons, asteroids, comets, satellites, spacecraft) are not part of the
// magnitude-indexed stellar HTM tree spec §6 describes in detail; they
// persist only their type code, identifiers, and names.
func (o *Object) ToCSV() string {
	fields := []string{o.Type.Code()}

	if isStarLikeType(o.Type) {
		fields = append(fields, o.starFields()...)

		switch o.Type {
		case TypeDoubleStar, TypeDoubleVariableStar:
			fields = append(fields, o.doubleStarFields()...)
		}
		switch o.Type {
		case TypeVariableStar, TypeDoubleVariableStar:
			fields = append(fields, o.variableFields()...)
		}
		if isDeepSkyType(o.Type) {
			fields = append(fields, o.deepSkyFields()...)
		}
	}

	for _, id := range o.Identifiers {
		fields = append(fields, id.ToString())
	}
	fields = append(fields, o.Names...)

	return encodeCSVRow(fields)
}

func (o *Object) starFields() []string {
	var raHours, decDeg, pmRA, pmDec, vMag, bMag, distPC, rv float64
	var spectral string

	if o.Star != nil {
		s := &o.Star.Engine
		raHours, decDeg = s.RAHours, s.DecDeg
		pmRA, pmDec = s.RAMasPerYear, s.DecMasPerYear
		vMag, bMag = o.Star.VMag, o.Star.BMag
		distPC = parallaxMasToParsec(s.ParallaxMas)
		rv = s.RadialKmPerS
		spectral = o.Star.SpectralType
	} else {
		sph := vector.FromVector(o.Direction)
		raHours = units.NewAngle(sph.Lon).Hours()
		decDeg = units.NewAngle(sph.Lat).Degrees()
		pmRA, pmDec, rv = 0, 0, math.Inf(1)
		vMag, bMag = o.Magnitude, math.Inf(1)
		distPC = math.Inf(1)
	}

	return []string{
		formatHMS(raHours),
		formatDMS(decDeg),
		formatFloat(pmRA),
		formatFloat(pmDec),
		formatFloat(vMag),
		formatFloat(bMag),
		formatFloat(distPC),
		formatFloat(rv),
		spectral,
	}
}

func (o *Object) doubleStarFields() []string {
	d := o.Double
	if d == nil {
		return []string{"", "", "", "", ""}
	}
	return []string{
		d.ComponentLabel,
		formatFloat(d.MagnitudeDelta),
		formatFloat(d.SeparationArcsec),
		formatFloat(d.PositionAngleDeg),
		formatFloat(d.PAEpochYear),
	}
}

func (o *Object) variableFields() []string {
	v := o.Variable
	if v == nil {
		return []string{"", "", "", "", ""}
	}
	return []string{
		v.VarType,
		formatFloat(v.MagMax),
		formatFloat(v.MagMin),
		formatFloat(v.PeriodDays),
		formatFloat(v.EpochJD),
	}
}

func (o *Object) deepSkyFields() []string {
	d := o.DeepSky
	if d == nil {
		return []string{"", "", "", ""}
	}
	return []string{
		formatFloat(units.NewAngle(d.MajorAxisRad).Arcseconds()),
		formatFloat(units.NewAngle(d.MinorAxisRad).Arcseconds()),
		formatFloat(units.NewAngle(d.PositionAngleRad).Degrees()),
		d.GalaxyType,
	}
}

// FromCSV parses a single CSV row into an Object, per ToCSV's layout.
// Unrecognized type codes return TypeNonexistent; identifier/name fields
// are distinguished by attempting identifier.FromString on each trailing
// field (spec §6: "Names are any remaining non-identifier strings").
func FromCSV(row string) (*Object, error) {
	fields, err := decodeCSVRow(row)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: parse CSV row")
	}
	if len(fields) == 0 {
		return nil, errors.New("catalog: empty CSV row")
	}

	t := CodeToType(fields[0])
	o := NewObject(t)
	rest := fields[1:]

	if isStarLikeType(t) {
		if len(rest) < starFieldCount {
			return nil, errors.Errorf("catalog: CSV row too short for type %q", fields[0])
		}
		if err := o.parseStarFields(rest[:starFieldCount], isDeepSkyType(t)); err != nil {
			return nil, err
		}
		rest = rest[starFieldCount:]

		switch t {
		case TypeDoubleStar, TypeDoubleVariableStar:
			if len(rest) < 5 {
				return nil, errors.Errorf("catalog: CSV row missing double-star fields for type %q", fields[0])
			}
			o.Double = parseDoubleStarFields(rest[:5])
			rest = rest[5:]
		}
		switch t {
		case TypeVariableStar, TypeDoubleVariableStar:
			if len(rest) < 5 {
				return nil, errors.Errorf("catalog: CSV row missing variable-star fields for type %q", fields[0])
			}
			o.Variable = parseVariableFields(rest[:5])
			rest = rest[5:]
		}
		switch t {
		case TypeOpenCluster, TypeGlobularCluster, TypeBrightNebula, TypeDarkNebula,
			TypePlanetaryNebula, TypeGalaxy:
			if len(rest) < 4 {
				return nil, errors.Errorf("catalog: CSV row missing deep-sky fields for type %q", fields[0])
			}
			o.DeepSky = parseDeepSkyFields(rest[:4])
			rest = rest[4:]
		}
	}

	for _, f := range rest {
		if f == "" {
			continue
		}
		if id := identifier.FromString(f); !id.IsZero() {
			o.AddIdentifier(id)
		} else {
			o.Names = append(o.Names, f)
		}
	}

	return o, nil
}

func (o *Object) parseStarFields(f []string, deepSky bool) error {
	raHours, err := parseHMS(f[0])
	if err != nil {
		return errors.Wrap(err, "catalog: parse RA")
	}
	decDeg, err := parseDMS(f[1])
	if err != nil {
		return errors.Wrap(err, "catalog: parse Dec")
	}
	pmRA := parseFloat(f[2])
	pmDec := parseFloat(f[3])
	vMag := parseFloat(f[4])
	bMag := parseFloat(f[5])
	distPC := parseFloat(f[6])
	rv := parseFloat(f[7])
	spectral := f[8]

	if deepSky {
		// Deep-sky objects share this row shape but have no StarData of
		// their own; keep their fixed catalog position on Object.Direction.
		o.Direction = vector.NewSpherical(units.AngleFromHours(raHours).Radians(),
			units.AngleFromDegrees(decDeg).Radians(), math.Inf(1)).Vector()
		o.Magnitude = vMag
		return nil
	}

	parallaxMas := 0.0
	if !math.IsInf(distPC, 1) && distPC > 0 {
		parallaxMas = 1000.0 / distPC
	}

	o.Star = &StarData{
		Engine: star.Star{
			RAHours:       raHours,
			DecDeg:        decDeg,
			ParallaxMas:   parallaxMas,
			RAMasPerYear:  pmRA,
			DecMasPerYear: pmDec,
			RadialKmPerS:  rv,
		},
		VMag:         vMag,
		BMag:         bMag,
		SpectralType: spectral,
	}
	return nil
}

func parseDoubleStarFields(f []string) *DoubleStarData {
	return &DoubleStarData{
		ComponentLabel:   f[0],
		MagnitudeDelta:   parseFloat(f[1]),
		SeparationArcsec: parseFloat(f[2]),
		PositionAngleDeg: parseFloat(f[3]),
		PAEpochYear:      parseFloat(f[4]),
	}
}

func parseVariableFields(f []string) *VariableData {
	return &VariableData{
		VarType:    f[0],
		MagMax:     parseFloat(f[1]),
		MagMin:     parseFloat(f[2]),
		PeriodDays: parseFloat(f[3]),
		EpochJD:    parseFloat(f[4]),
	}
}

func parseDeepSkyFields(f []string) *DeepSkyData {
	return &DeepSkyData{
		MajorAxisRad:     units.AngleFromDegrees(parseFloat(f[0]) / 3600.0).Radians(),
		MinorAxisRad:     units.AngleFromDegrees(parseFloat(f[1]) / 3600.0).Radians(),
		PositionAngleRad: units.AngleFromDegrees(parseFloat(f[2])).Radians(),
		GalaxyType:       f[3],
	}
}

// --- field encoding helpers ---

func formatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseFloat(s string) float64 {
	if s == "" {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}

func formatHMS(hours float64) string {
	sign, h, m, s := units.AngleFromHours(hours).HMS()
	prefix := ""
	if sign < 0 {
		prefix = "-"
	}
	return prefix + strconv.Itoa(h) + ":" + pad2(m) + ":" + strconv.FormatFloat(s, 'f', 3, 64)
}

func formatDMS(deg float64) string {
	sign, d, m, s := units.AngleFromDegrees(deg).DMS()
	prefix := "+"
	if sign < 0 {
		prefix = "-"
	}
	return prefix + strconv.Itoa(d) + ":" + pad2(m) + ":" + strconv.FormatFloat(s, 'f', 2, 64)
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func parseHMS(s string) (float64, error) {
	hours, err := parseSexagesimal(s)
	if err != nil {
		return 0, err
	}
	return hours, nil
}

func parseDMS(s string) (float64, error) {
	deg, err := parseSexagesimal(s)
	if err != nil {
		return 0, err
	}
	return deg, nil
}

// parseSexagesimal parses "[+-]D:M:S[.f]" into a signed decimal value.
func parseSexagesimal(s string) (float64, error) {
	if s == "" {
		return math.Inf(1), nil
	}
	sign := 1.0
	if strings.HasPrefix(s, "-") {
		sign = -1.0
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, errors.Errorf("catalog: malformed sexagesimal value %q", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, errors.Wrapf(err, "catalog: malformed sexagesimal value %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errors.Wrapf(err, "catalog: malformed sexagesimal value %q", s)
	}
	second, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, errors.Wrapf(err, "catalog: malformed sexagesimal value %q", s)
	}
	return sign * (float64(major) + float64(minute)/60.0 + second/3600.0), nil
}

func parallaxMasToParsec(mas float64) float64 {
	if mas <= 0 {
		return math.Inf(1)
	}
	return 1000.0 / mas
}

func encodeCSVRow(fields []string) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write(fields)
	w.Flush()
	return strings.TrimRight(sb.String(), "\r\n")
}

func decodeCSVRow(row string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(row))
	r.FieldsPerRecord = -1
	return r.Read()
}
