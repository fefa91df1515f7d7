package screens

import (
	"context"
	"io"

	"github.com/siherrmann/populationDashboard/binding"
	"github.com/siherrmann/populationDashboard/view/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const CHARTS_ID = "charts"

type DashboardData struct {
	Title      string
	DropdownID string
	Continents []string
	Selected   string
	UpdateURL  string
	CsrfToken  string
	Updates    []binding.Update
}

// Dashboard renders the full page with the dropdown and all graph slots.
func Dashboard(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		graphs, err := components.Graphs(data.Updates)
		if err != nil {
			return err
		}

		page := components.Page(
			data.Title,
			data.CsrfToken,
			H1(Class("title"), g.Text(data.Title)),
			components.Dropdown(data.DropdownID, data.Continents, data.Selected, data.UpdateURL, "#"+CHARTS_ID),
			Div(ID(CHARTS_ID), Class("charts"), graphs),
		)
		return page.Render(w)
	})
}

// Charts renders only the graph slots, the htmx swap target of a selection change.
func Charts(updates []binding.Update) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		graphs, err := components.Graphs(updates)
		if err != nil {
			return err
		}
		return graphs.Render(w)
	})
}
