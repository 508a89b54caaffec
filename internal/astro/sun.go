package astro

import (
	"math"
	"time"
)

// officialZenith includes refraction and the solar disc radius (degrees).
const officialZenith = 90.833

// SunTimes holds the day's sunrise and sunset in local time.
// PolarDay / PolarNight flag latitudes where the sun never sets or rises
// on the given date; the times are zero in that case.
type SunTimes struct {
	Sunrise    time.Time
	Sunset     time.Time
	PolarDay   bool
	PolarNight bool
}

// SunriseSunset computes sunrise and sunset for the given date, observer
// coordinates in degrees, and fixed UTC offset in hours. The algorithm is
// the Almanac for Computers / NOAA procedure, accurate to about a minute
// at temperate latitudes.
func SunriseSunset(date time.Time, lat, lon float64, tzOffsetHours int) SunTimes {
	riseUT, riseOK := solarEventUT(date, lat, lon, true)
	setUT, setOK := solarEventUT(date, lat, lon, false)

	switch {
	case !riseOK && !setOK:
		// Whole day above or below the horizon; midday altitude decides which.
		if middayAboveHorizon(date, lat) {
			return SunTimes{PolarDay: true}
		}
		return SunTimes{PolarNight: true}
	case !riseOK:
		return SunTimes{PolarNight: true}
	case !setOK:
		return SunTimes{PolarDay: true}
	}

	return SunTimes{
		Sunrise: localClock(date, riseUT, tzOffsetHours),
		Sunset:  localClock(date, setUT, tzOffsetHours),
	}
}

// solarEventUT returns the event time as UT hours, or false when the sun
// does not cross the zenith circle on this date.
func solarEventUT(date time.Time, lat, lon float64, rising bool) (float64, bool) {
	n := float64(date.YearDay())
	lngHour := lon / 15.0

	var t float64
	if rising {
		t = n + (6.0-lngHour)/24.0
	} else {
		t = n + (18.0-lngHour)/24.0
	}

	// Sun's mean anomaly and true longitude (degrees).
	m := 0.9856*t - 3.289
	l := m + 1.916*sinDeg(m) + 0.020*sinDeg(2*m) + 282.634
	l = normDeg(l)

	// Right ascension, shifted into the same quadrant as L (hours).
	ra := normDeg(atanDeg(0.91764 * tanDeg(l)))
	lQuadrant := math.Floor(l/90.0) * 90.0
	raQuadrant := math.Floor(ra/90.0) * 90.0
	ra = (ra + (lQuadrant - raQuadrant)) / 15.0

	// Declination.
	sinDec := 0.39782 * sinDeg(l)
	cosDec := math.Cos(math.Asin(sinDec))

	// Local hour angle.
	cosH := (cosDeg(officialZenith) - sinDec*sinDeg(lat)) / (cosDec * cosDeg(lat))
	if cosH > 1 || cosH < -1 {
		return 0, false
	}

	var h float64
	if rising {
		h = 360.0 - acosDeg(cosH)
	} else {
		h = acosDeg(cosH)
	}
	h /= 15.0

	// Local mean time of the event, then back to UT.
	lmt := h + ra - 0.06571*t - 6.622
	ut := math.Mod(lmt-lngHour, 24.0)
	if ut < 0 {
		ut += 24.0
	}
	return ut, true
}

// middayAboveHorizon reports whether the sun is above the horizon at solar
// noon, distinguishing polar day from polar night.
func middayAboveHorizon(date time.Time, lat float64) bool {
	n := float64(date.YearDay())
	m := 0.9856*(n+0.5) - 3.289
	l := normDeg(m + 1.916*sinDeg(m) + 0.020*sinDeg(2*m) + 282.634)
	decl := math.Asin(0.39782*sinDeg(l)) * 180 / math.Pi

	// Altitude at transit = 90 - |lat - decl|.
	return 90.0-math.Abs(lat-decl) > 0
}

// localClock turns UT hours-of-day into a local wall-clock time on date.
func localClock(date time.Time, utHours float64, tzOffsetHours int) time.Time {
	local := math.Mod(utHours+float64(tzOffsetHours), 24.0)
	if local < 0 {
		local += 24.0
	}
	h := int(local)
	m := int(math.Round((local - float64(h)) * 60.0))
	if m == 60 {
		h = (h + 1) % 24
		m = 0
	}
	loc := time.FixedZone("local", tzOffsetHours*3600)
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, loc)
}

func normDeg(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

func sinDeg(d float64) float64  { return math.Sin(d * math.Pi / 180.0) }
func cosDeg(d float64) float64  { return math.Cos(d * math.Pi / 180.0) }
func tanDeg(d float64) float64  { return math.Tan(d * math.Pi / 180.0) }
func atanDeg(x float64) float64 { return math.Atan(x) * 180.0 / math.Pi }
func acosDeg(x float64) float64 { return math.Acos(x) * 180.0 / math.Pi }
