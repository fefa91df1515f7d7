package chart

import "github.com/siherrmann/populationDashboard/model"

// Pie draws one slice per country sized by its share of the population.
func Pie(records []model.Record, selection model.Selection) model.Figure {
	countries := make([]string, 0, len(records))
	populations := make([]float64, 0, len(records))
	for _, record := range records {
		countries = append(countries, record.Country)
		populations = append(populations, record.Population)
	}

	figureTitle := title("Participación porcentual de población en %s (%d)", selection)
	return model.Figure{
		Kind:  model.CHART_KIND_PIE,
		Title: figureTitle,
		Encoding: map[string]string{
			"names":  FIELD_COUNTRY,
			"values": FIELD_POPULATION,
		},
		Data: []model.Trace{{
			Type:          "pie",
			Labels:        countries,
			Values:        populations,
			HoverTemplate: FIELD_COUNTRY + "=%{label}<br>" + FIELD_POPULATION + "=%{value}<extra></extra>",
		}},
		Layout: model.Layout{
			Title: model.Text{Text: figureTitle},
		},
	}
}
