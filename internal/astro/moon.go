package astro

import (
	"math"
	"time"
)

// SynodicMonth is the mean length of a lunation in days.
const SynodicMonth = 29.530588853

// referenceNewMoon is the new moon of 2000-01-06 18:14 UTC, a common
// epoch for phase-fraction calculations.
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// Phase is a named moon phase.
type Phase int

const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

func (p Phase) String() string {
	switch p {
	case NewMoon:
		return "New Moon"
	case WaxingCrescent:
		return "Waxing Crescent"
	case FirstQuarter:
		return "First Quarter"
	case WaxingGibbous:
		return "Waxing Gibbous"
	case FullMoon:
		return "Full Moon"
	case WaningGibbous:
		return "Waning Gibbous"
	case LastQuarter:
		return "Last Quarter"
	default:
		return "Waning Crescent"
	}
}

// Glyph returns a terminal-friendly symbol for the phase.
func (p Phase) Glyph() string {
	switch p {
	case NewMoon:
		return "( )"
	case WaxingCrescent:
		return "(| "
	case FirstQuarter:
		return "(O "
	case WaxingGibbous:
		return "(0|"
	case FullMoon:
		return "(@)"
	case WaningGibbous:
		return "|0)"
	case LastQuarter:
		return " O)"
	default:
		return " |)"
	}
}

// MoonInfo describes the moon's appearance at an instant.
type MoonInfo struct {
	Fraction     float64 // position in the lunation, [0, 1): 0=new, 0.5=full
	Illumination float64 // illuminated fraction of the disc, [0, 1]
	Phase        Phase
	Age          float64 // days since the last new moon
}

// MoonPhase computes the moon's phase at t. t is converted to UTC; local
// offsets matter only for which calendar day the caller displays it under.
func MoonPhase(t time.Time) MoonInfo {
	days := JulianDate(t) - JulianDate(referenceNewMoon)
	frac := math.Mod(days/SynodicMonth, 1.0)
	if frac < 0 {
		frac += 1.0
	}

	return MoonInfo{
		Fraction:     frac,
		Illumination: (1.0 - math.Cos(2.0*math.Pi*frac)) / 2.0,
		Phase:        phaseFromFraction(frac),
		Age:          frac * SynodicMonth,
	}
}

// phaseFromFraction maps a lunation fraction onto the eight named phases.
// The principal phases (new, quarters, full) get a narrow window centered
// on their exact fraction; the rest of the cycle belongs to the
// crescent/gibbous spans.
func phaseFromFraction(frac float64) Phase {
	const window = 0.0625 // half-width of a principal-phase slot (1/16 cycle)

	switch {
	case frac < window || frac >= 1.0-window:
		return NewMoon
	case frac < 0.25-window:
		return WaxingCrescent
	case frac < 0.25+window:
		return FirstQuarter
	case frac < 0.5-window:
		return WaxingGibbous
	case frac < 0.5+window:
		return FullMoon
	case frac < 0.75-window:
		return WaningGibbous
	case frac < 0.75+window:
		return LastQuarter
	default:
		return WaningCrescent
	}
}
