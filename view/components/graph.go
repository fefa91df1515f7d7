package components

import (
	"encoding/json"

	"github.com/siherrmann/populationDashboard/binding"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Graph renders the display slot of one output. dashboard.js draws the
// figure carried in data-figure.
func Graph(update binding.Update) (g.Node, error) {
	figure, err := json.Marshal(update.Figure)
	if err != nil {
		return nil, err
	}

	return Div(
		ID(update.OutputID),
		Class("graph"),
		g.Attr("data-kind", string(update.Figure.Kind)),
		g.Attr("data-figure", string(figure)),
	), nil
}

// Graphs renders one slot per update in order
func Graphs(updates []binding.Update) (g.Node, error) {
	nodes := make([]g.Node, 0, len(updates))
	for _, update := range updates {
		node, err := Graph(update)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return g.Group(nodes), nil
}
