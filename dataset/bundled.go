package dataset

import "embed"

const (
	// BUNDLED_FILE is the name of the gapminder extract inside Bundled.
	BUNDLED_FILE = "gapminder_2007.csv"
	// YEAR is the only year the dashboard works with.
	YEAR = 2007
)

// Bundled holds the gapminder rows for 2007 under data/.
//
//go:embed data/gapminder_2007.csv
var Bundled embed.FS

// LoadBundled loads the embedded gapminder extract for YEAR.
func LoadBundled() (*Dataset, error) {
	file, err := Bundled.Open("data/" + BUNDLED_FILE)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Load(file, YEAR)
}
