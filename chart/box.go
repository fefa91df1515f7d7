package chart

import "github.com/siherrmann/populationDashboard/model"

// Box summarizes life expectancy in a single box with every country overlaid as a point.
func Box(records []model.Record, selection model.Selection) model.Figure {
	lifeExpectancies := make([]float64, 0, len(records))
	countries := make([]string, 0, len(records))
	for _, record := range records {
		lifeExpectancies = append(lifeExpectancies, record.LifeExpectancy)
		countries = append(countries, record.Country)
	}

	figureTitle := title("Distribución de la esperanza de vida en %s (%d)", selection)
	return model.Figure{
		Kind:  model.CHART_KIND_BOX,
		Title: figureTitle,
		Encoding: map[string]string{
			"y": FIELD_LIFE_EXPECTANCY,
		},
		Data: []model.Trace{{
			Type:           "box",
			Y:              lifeExpectancies,
			HoverText:      countries,
			HoverTemplate:  LABEL_LIFE_EXPECTANCY + "=%{y}<extra>%{hovertext}</extra>",
			Marker:         &model.Marker{Color: colorAt(0)},
			BoxPoints:      "all",
			QuartileMethod: "linear",
		}},
		Layout: model.Layout{
			Title: model.Text{Text: figureTitle},
			YAxis: &model.Axis{Title: model.Text{Text: LABEL_LIFE_EXPECTANCY}},
		},
		Summary: Summarize(lifeExpectancies),
	}
}
