package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Dropdown renders a select without an empty option. A change fetches
// updateURL with the selected value and swaps the response into target.
func Dropdown(id string, options []string, selected string, updateURL string, target string) g.Node {
	nodes := make([]g.Node, 0, len(options))
	for _, option := range options {
		nodes = append(nodes, Option(Value(option), g.If(option == selected, Selected()), g.Text(option)))
	}

	return Div(
		Class("dropdown"),
		Label(For(id), g.Text("Continente")),
		Select(
			ID(id),
			Name("value"),
			g.Attr("hx-get", updateURL),
			g.Attr("hx-trigger", "change"),
			g.Attr("hx-target", target),
			g.Attr("hx-swap", "innerHTML"),
			g.Group(nodes),
		),
	)
}
