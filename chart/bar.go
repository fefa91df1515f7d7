package chart

import "github.com/siherrmann/populationDashboard/model"

// Bar draws one bar per country with the population as height.
func Bar(records []model.Record, selection model.Selection) model.Figure {
	countries := make([]string, 0, len(records))
	populations := make([]float64, 0, len(records))
	for _, record := range records {
		countries = append(countries, record.Country)
		populations = append(populations, record.Population)
	}

	figureTitle := title("Población en %s (%d)", selection)
	return model.Figure{
		Kind:  model.CHART_KIND_BAR,
		Title: figureTitle,
		Encoding: map[string]string{
			"x": FIELD_COUNTRY,
			"y": FIELD_POPULATION,
		},
		Data: []model.Trace{{
			Type:          "bar",
			X:             countries,
			Y:             populations,
			Marker:        &model.Marker{Color: colorAt(0)},
			HoverTemplate: LABEL_COUNTRY + "=%{x}<br>" + LABEL_POPULATION + "=%{y}<extra></extra>",
		}},
		Layout: model.Layout{
			Title: model.Text{Text: figureTitle},
			XAxis: &model.Axis{Title: model.Text{Text: LABEL_COUNTRY}},
			YAxis: &model.Axis{Title: model.Text{Text: LABEL_POPULATION}},
		},
	}
}
