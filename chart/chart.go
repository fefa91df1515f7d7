// Package chart turns filtered records into declarative chart descriptions.
// Every builder is a pure function of its input.
package chart

import (
	"fmt"

	"github.com/siherrmann/populationDashboard/model"
)

// Builder maps the records of a selection to a figure.
type Builder func(records []model.Record, selection model.Selection) model.Figure

const (
	LABEL_COUNTRY         = "País"
	LABEL_POPULATION      = "Población"
	LABEL_GDP_PER_CAPITA  = "PIB per cápita (US$)"
	LABEL_LIFE_EXPECTANCY = "Esperanza de vida (años)"

	FIELD_COUNTRY         = "country"
	FIELD_POPULATION      = "pop"
	FIELD_GDP_PER_CAPITA  = "gdpPercap"
	FIELD_LIFE_EXPECTANCY = "lifeExp"

	// SIZE_MAX is the diameter in pixels of the largest scatter marker.
	SIZE_MAX = 60
)

// palette is Plotly's default qualitative colour sequence.
var palette = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

func title(format string, selection model.Selection) string {
	return fmt.Sprintf(format, selection.Continent, selection.Year)
}

func colorAt(i int) string {
	return palette[i%len(palette)]
}

func boolPtr(b bool) *bool {
	return &b
}
