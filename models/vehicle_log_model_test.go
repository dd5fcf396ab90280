package models

import "testing"

func TestTripDistance(t *testing.T) {
	cases := []struct {
		name    string
		kmStart float64
		kmEnd   float64
		want    float64
	}{
		{"normal trip", 1000, 1042.5, 42.5},
		{"no movement", 1000, 1000, 0},
		{"reversed readings clamp to zero", 1042.5, 1000, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TripDistance(tc.kmStart, tc.kmEnd); got != tc.want {
				t.Errorf("TripDistance(%g, %g) = %g, want %g", tc.kmStart, tc.kmEnd, got, tc.want)
			}
		})
	}
}

func TestDailyVehicleLogBeforeSaveRecomputesDistance(t *testing.T) {
	l := DailyVehicleLog{KmStart: 100, KmEnd: 130, Distance: 999}
	if err := l.BeforeSave(nil); err != nil {
		t.Fatal(err)
	}
	if l.Distance != 30 {
		t.Errorf("Distance = %g, want 30", l.Distance)
	}
}
