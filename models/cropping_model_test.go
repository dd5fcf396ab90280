package models

import "testing"

func TestSeasonHasMonth(t *testing.T) {
	cases := []struct {
		season string
		month  string
		want   bool
	}{
		{SeasonMaha, "October", true},
		{SeasonMaha, "March", true},
		{SeasonMaha, "April", false},
		{SeasonYala, "April", true},
		{SeasonYala, "September", true},
		{SeasonYala, "October", false},
		{"Monsoon", "October", false},
		{SeasonMaha, "", false},
	}

	for _, tc := range cases {
		if got := SeasonHasMonth(tc.season, tc.month); got != tc.want {
			t.Errorf("SeasonHasMonth(%q, %q) = %v, want %v", tc.season, tc.month, got, tc.want)
		}
	}
}
