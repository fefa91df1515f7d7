package model

// Record is one country-year row of the bundled dataset
type Record struct {
	Country        string  `json:"country"`
	Continent      string  `json:"continent"`
	Year           int     `json:"year"`
	LifeExpectancy float64 `json:"lifeExp"`
	Population     float64 `json:"pop"`
	GdpPerCapita   float64 `json:"gdpPercap"`
	IsoAlpha       string  `json:"iso_alpha"`
	IsoNum         int     `json:"iso_num"`
}

// Selection is the user input every chart builder receives next to the filtered records.
type Selection struct {
	Continent string `json:"continent"`
	Year      int    `json:"year"`
}
