package elp

// mainTerm is one periodic term of the lunar main problem: an integer
// combination of the four Delaunay arguments (D, Sun's mean anomaly,
// Moon's mean anomaly, argument of latitude) with a single amplitude.
// Loosely modeled on ELPMPP02.hpp's ELPMainTerm{i[4], a, b[6]} shape,
// with the planetary-perturbation coefficients b[6] dropped: the pack
// carries no numeric ELP/MPP02 term table (ELPMPP02.hpp is a bare class
// declaration, no .cpp and no data file anywhere in the corpus), so
// there is nothing to ground a matching truncated series against.
//
// What populates longitudeTerms/latitudeTerms/distanceTerms below is
// instead the small set of dominant, textbook-standard lunar-theory
// terms (the largest-amplitude terms of the classical ELP2000 main
// problem, commonly tabulated in lunar-position references): treated
// here as baseline constants of the same kind as the obliquity
// polynomial or solar GM used elsewhere, not as a retrieved data table.
// Amplitudes are in units of 1e-6 degree (longitude, latitude) or
// 1e-3 km (distance), matching the convention those references publish
// them in.
type mainTerm struct {
	nd, nm, nmp, nf int32
	amp             float64
}

// arg evaluates this term's angle and its rate (rad, rad/day) from the
// mean elements.
func (m mainTerm) arg(a arguments) (angle, rate float64) {
	angle = float64(m.nd)*a.d + float64(m.nm)*a.lp + float64(m.nmp)*a.l + float64(m.nf)*a.f
	rate = float64(m.nd)*a.dRate + float64(m.nm)*a.lpRate + float64(m.nmp)*a.lRate + float64(m.nf)*a.fRate
	return
}

// longitudeTerms are the dominant corrections to the Moon's mean
// longitude, in 1e-6 degree, sin-series.
var longitudeTerms = []mainTerm{
	{0, 0, 1, 0, 6288774},
	{2, 0, -1, 0, 1274027},
	{2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618},
	{0, 1, 0, 0, -185116},
	{0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793},
	{2, -1, -1, 0, 57066},
	{2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758},
	{0, 1, -1, 0, -40923},
	{1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383},
	{2, 0, -3, 0, 15327},
	{0, 0, 1, 2, -12528},
}

// distanceTerms are the dominant corrections to the Earth-Moon distance,
// in 1e-3 km, cos-series, matched term-for-term with longitudeTerms
// (the two series share the same argument set in classical lunar theory).
var distanceTerms = []mainTerm{
	{0, 0, 1, 0, -20905355},
	{2, 0, -1, 0, -3699111},
	{2, 0, 0, 0, -2955968},
	{0, 0, 2, 0, -569925},
	{0, 1, 0, 0, 48888},
	{0, 0, 0, 2, -3149},
	{2, 0, -2, 0, 246158},
	{2, -1, -1, 0, -152138},
	{2, 0, 1, 0, -170733},
	{2, -1, 0, 0, -204586},
	{0, 1, -1, 0, -129620},
	{1, 0, 0, 0, 108743},
	{0, 1, 1, 0, 104755},
	{2, 0, -3, 0, 10321},
	{0, 0, 1, 2, 79661},
}

// latitudeTerms are the dominant corrections to the Moon's ecliptic
// latitude, in 1e-6 degree, sin-series.
var latitudeTerms = []mainTerm{
	{0, 0, 0, 1, 5128122},
	{0, 0, 1, 1, 280602},
	{0, 0, 1, -1, 277693},
	{2, 0, 0, -1, 173237},
	{2, 0, -1, 1, 55413},
	{2, 0, -1, -1, 46271},
	{2, 0, 0, 1, 32573},
	{0, 0, 2, 1, 17198},
	{2, 0, 1, -1, 9266},
	{0, 0, 2, -1, 8822},
}
