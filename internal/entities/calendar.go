package entities

type CalendarDay struct {
	Date     string `json:"date"`
	Today    bool   `json:"today"`
	Selected bool   `json:"selected"`
	Disabled bool   `json:"disabled"`
}

type CalendarResponse struct {
	Month string        `json:"month"`
	Days  []CalendarDay `json:"days"`
}
