package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/siherrmann/populationDashboard/model"

	qh "github.com/siherrmann/queuer/helper"
)

const (
	COLUMN_COUNTRY    = "country"
	COLUMN_CONTINENT  = "continent"
	COLUMN_YEAR       = "year"
	COLUMN_LIFE_EXP   = "lifeExp"
	COLUMN_POPULATION = "pop"
	COLUMN_GDP        = "gdpPercap"
	COLUMN_ISO_ALPHA  = "iso_alpha"
	COLUMN_ISO_NUM    = "iso_num"
)

var requiredColumns = []string{
	COLUMN_COUNTRY,
	COLUMN_CONTINENT,
	COLUMN_YEAR,
	COLUMN_LIFE_EXP,
	COLUMN_POPULATION,
	COLUMN_GDP,
}

// Load parses CSV with a header row and keeps the rows of year.
// Columns are matched by name, the ISO columns are optional.
func Load(r io.Reader, year int) (*Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, qh.NewError("read csv header", err)
	}

	index := map[string]int{}
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, qh.NewError("read csv header", fmt.Errorf("missing column %q", column))
		}
	}

	records := []model.Record{}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, qh.NewError("read csv row", err)
		}

		record, err := parseRecord(row, index)
		if err != nil {
			return nil, qh.NewError("parse csv row", fmt.Errorf("line %d: %w", line, err))
		}
		if record.Year != year {
			continue
		}
		records = append(records, record)
	}

	return New(year, records), nil
}

func parseRecord(row []string, index map[string]int) (model.Record, error) {
	var err error
	record := model.Record{
		Country:   row[index[COLUMN_COUNTRY]],
		Continent: row[index[COLUMN_CONTINENT]],
	}

	record.Year, err = strconv.Atoi(row[index[COLUMN_YEAR]])
	if err != nil {
		return record, fmt.Errorf("column %s: %w", COLUMN_YEAR, err)
	}
	record.LifeExpectancy, err = strconv.ParseFloat(row[index[COLUMN_LIFE_EXP]], 64)
	if err != nil {
		return record, fmt.Errorf("column %s: %w", COLUMN_LIFE_EXP, err)
	}
	record.Population, err = strconv.ParseFloat(row[index[COLUMN_POPULATION]], 64)
	if err != nil {
		return record, fmt.Errorf("column %s: %w", COLUMN_POPULATION, err)
	}
	record.GdpPerCapita, err = strconv.ParseFloat(row[index[COLUMN_GDP]], 64)
	if err != nil {
		return record, fmt.Errorf("column %s: %w", COLUMN_GDP, err)
	}

	if i, ok := index[COLUMN_ISO_ALPHA]; ok {
		record.IsoAlpha = row[i]
	}
	if i, ok := index[COLUMN_ISO_NUM]; ok && row[i] != "" {
		record.IsoNum, err = strconv.Atoi(row[i])
		if err != nil {
			return record, fmt.Errorf("column %s: %w", COLUMN_ISO_NUM, err)
		}
	}

	return record, nil
}
