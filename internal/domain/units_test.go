package domain

import "testing"

func TestParseUnits(t *testing.T) {
	cases := []struct {
		in      string
		want    Units
		wantErr bool
	}{
		{"", UnitsInches, false},
		{"Inches", UnitsInches, false},
		{"Cm", UnitsCentimeters, false},
		{"cm", UnitsCentimeters, false},
		{"Mm", UnitsMillimeters, false},
		{"Pt", UnitsPoints, false},
		{"Emu", UnitsEMU, false},
		{"furlongs", "", true},
	}
	for _, c := range cases {
		got, err := ParseUnits(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseUnits(%q) err=%v, wantErr=%v", c.in, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("ParseUnits(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUnitsToEMU(t *testing.T) {
	cases := []struct {
		u    Units
		v    float64
		want Length
	}{
		{UnitsInches, 1, 914400},
		{UnitsInches, 0.5, 457200},
		{UnitsCentimeters, 1, 360000},
		{UnitsCentimeters, 2.54, 914400},
		{UnitsMillimeters, 10, 360000},
		{UnitsPoints, 72, 914400},
		{UnitsEMU, 12345, 12345},
		{"", 2, 1828800},
	}
	for _, c := range cases {
		if got := c.u.ToEMU(c.v); got != c.want {
			t.Errorf("%s.ToEMU(%v) = %d, want %d", c.u, c.v, got, c.want)
		}
	}
}

func TestLengthInches(t *testing.T) {
	if got := Length(1828800).Inches(); got != 2 {
		t.Fatalf("expected 2 inches, got %v", got)
	}
}
