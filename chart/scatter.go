package chart

import "github.com/siherrmann/populationDashboard/model"

// Scatter plots GDP per capita against life expectancy with one trace per
// country. Marker area is proportional to population and the most populous
// country gets a marker of SIZE_MAX pixels.
func Scatter(records []model.Record, selection model.Selection) model.Figure {
	sizeRef := SizeRef(records)

	traces := make([]model.Trace, 0, len(records))
	for i, record := range records {
		traces = append(traces, model.Trace{
			Type:        "scatter",
			Name:        record.Country,
			Mode:        "markers",
			X:           []float64{record.GdpPerCapita},
			Y:           []float64{record.LifeExpectancy},
			LegendGroup: record.Country,
			ShowLegend:  boolPtr(true),
			HoverText:   []string{record.Country},
			HoverTemplate: "<b>%{hovertext}</b><br><br>" +
				LABEL_GDP_PER_CAPITA + "=%{x}<br>" +
				LABEL_LIFE_EXPECTANCY + "=%{y}<br>" +
				FIELD_POPULATION + "=%{marker.size}<extra></extra>",
			Marker: &model.Marker{
				Color:    colorAt(i),
				Size:     []float64{record.Population},
				SizeMode: "area",
				SizeRef:  sizeRef,
				Symbol:   "circle",
			},
		})
	}

	figureTitle := title("PIB per cápita vs. esperanza de vida en %s (%d)", selection)
	return model.Figure{
		Kind:  model.CHART_KIND_SCATTER,
		Title: figureTitle,
		Encoding: map[string]string{
			"x":     FIELD_GDP_PER_CAPITA,
			"y":     FIELD_LIFE_EXPECTANCY,
			"size":  FIELD_POPULATION,
			"color": FIELD_COUNTRY,
			"hover": FIELD_COUNTRY,
		},
		Data: traces,
		Layout: model.Layout{
			Title:  model.Text{Text: figureTitle},
			XAxis:  &model.Axis{Title: model.Text{Text: LABEL_GDP_PER_CAPITA}},
			YAxis:  &model.Axis{Title: model.Text{Text: LABEL_LIFE_EXPECTANCY}},
			Legend: &model.Legend{Title: model.Text{Text: FIELD_COUNTRY}, ItemSizing: "constant", TraceGroupGap: 0},
		},
	}
}

// SizeRef returns the Plotly sizeref that maps the largest population to a
// marker of SIZE_MAX pixels in area mode. It is 1 when there is nothing to scale.
func SizeRef(records []model.Record) float64 {
	maxPopulation := 0.0
	for _, record := range records {
		if record.Population > maxPopulation {
			maxPopulation = record.Population
		}
	}
	if maxPopulation == 0 {
		return 1
	}
	return 2 * maxPopulation / (SIZE_MAX * SIZE_MAX)
}
