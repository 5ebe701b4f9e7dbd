package domain

import (
	"fmt"
	"math"
	"strings"
)

// Length is a distance in English Metric Units, the native unit of OOXML.
type Length int64

const (
	EMUPerInch       Length = 914400
	EMUPerCentimeter Length = 360000
	EMUPerMillimeter Length = 36000
	EMUPerPoint      Length = 12700
)

// Inches returns the length in inches.
func (l Length) Inches() float64 {
	return float64(l) / float64(EMUPerInch)
}

// Units names the unit deck coordinates are written in.
type Units string

const (
	UnitsInches      Units = "Inches"
	UnitsCentimeters Units = "Cm"
	UnitsMillimeters Units = "Mm"
	UnitsPoints      Units = "Pt"
	UnitsEMU         Units = "Emu"
)

// ParseUnits accepts the unit names used in deck files. Empty means inches.
func ParseUnits(s string) (Units, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return UnitsInches, nil
	}
	for _, u := range []Units{UnitsInches, UnitsCentimeters, UnitsMillimeters, UnitsPoints, UnitsEMU} {
		if strings.EqualFold(in, string(u)) {
			return u, nil
		}
	}
	return "", fmt.Errorf("unsupported units %q (expected Inches|Cm|Mm|Pt|Emu)", s)
}

// ToEMU converts a value expressed in u to EMU, rounding to the nearest unit.
func (u Units) ToEMU(v float64) Length {
	var per Length
	switch u {
	case UnitsCentimeters:
		per = EMUPerCentimeter
	case UnitsMillimeters:
		per = EMUPerMillimeter
	case UnitsPoints:
		per = EMUPerPoint
	case UnitsEMU:
		per = 1
	default:
		per = EMUPerInch
	}
	return Length(math.Round(v * float64(per)))
}

// Frame is a positioned rectangle on a slide.
type Frame struct {
	X      Length
	Y      Length
	Width  Length
	Height Length
}

// Size is a width/height pair.
type Size struct {
	Width  Length
	Height Length
}
