package models

// The two cultivation seasons, each owning a fixed six-month window.
const (
	SeasonMaha = "Maha"
	SeasonYala = "Yala"
)

var MahaMonths = []string{"October", "November", "December", "January", "February", "March"}

var YalaMonths = []string{"April", "May", "June", "July", "August", "September"}

type CroppingActivity struct {
	ID       string `json:"id" gorm:"primaryKey;size:32"`
	Season   string `json:"season"`
	Month    string `json:"month"`
	Crop     string `json:"crop"`
	Activity string `json:"activity"`
	Notes    string `json:"notes"`
}

// SeasonHasMonth reports whether month belongs to the season's fixed set.
func SeasonHasMonth(season, month string) bool {
	months := MahaMonths
	if season == SeasonYala {
		months = YalaMonths
	} else if season != SeasonMaha {
		return false
	}
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}
