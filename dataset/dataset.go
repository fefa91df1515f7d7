package dataset

import (
	"fmt"
	"io"

	"github.com/siherrmann/populationDashboard/model"

	qh "github.com/siherrmann/queuer/helper"
)

// Opener is anything the dataset file can be read from.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

// Dataset is an immutable, ordered sequence of records of a single year.
type Dataset struct {
	year       int
	records    []model.Record
	continents []string
}

// New creates a dataset from a copy of records.
func New(year int, records []model.Record) *Dataset {
	copied := make([]model.Record, len(records))
	copy(copied, records)

	continents := []string{}
	seen := map[string]bool{}
	for _, record := range copied {
		if !seen[record.Continent] {
			seen[record.Continent] = true
			continents = append(continents, record.Continent)
		}
	}

	return &Dataset{
		year:       year,
		records:    copied,
		continents: continents,
	}
}

// Open reads the file name from fsys and loads the rows of year.
func Open(fsys Opener, name string, year int) (*Dataset, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, qh.NewError("open dataset", fmt.Errorf("%s: %w", name, err))
	}
	defer file.Close()

	return Load(file, year)
}

// Year returns the year all records belong to
func (d *Dataset) Year() int {
	return d.year
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of all records in their original order.
func (d *Dataset) Records() []model.Record {
	records := make([]model.Record, len(d.records))
	copy(records, d.records)
	return records
}

// Continents returns the distinct continents in order of first appearance.
func (d *Dataset) Continents() []string {
	continents := make([]string, len(d.continents))
	copy(continents, d.continents)
	return continents
}

// HasContinent reports whether any record belongs to continent.
func (d *Dataset) HasContinent(continent string) bool {
	for _, c := range d.continents {
		if c == continent {
			return true
		}
	}
	return false
}

// FilterByContinent returns the records of continent in their original order.
func (d *Dataset) FilterByContinent(continent string) []model.Record {
	return FilterByContinent(d.records, continent)
}

// FilterByContinent returns the records whose continent equals continent,
// preserving their relative order. No match yields an empty, non-nil slice.
func FilterByContinent(records []model.Record, continent string) []model.Record {
	filtered := []model.Record{}
	for _, record := range records {
		if record.Continent == continent {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
