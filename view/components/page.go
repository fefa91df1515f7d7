package components

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	htmxScript   = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	plotlyScript = "https://cdn.plot.ly/plotly-2.35.2.min.js"
)

// Page wraps body in the document shell. The CSRF token is sent with
// every htmx request.
func Page(title string, csrfToken string, body ...g.Node) g.Node {
	hxHeaders, _ := json.Marshal(map[string]string{"X-CSRF-Token": csrfToken})

	return Doctype(
		HTML(
			Lang("es"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("csrf-token"), Content(csrfToken)),
				TitleEl(g.Text(title)),
				Link(Rel("icon"), Href("data:,")),
				Link(Rel("stylesheet"), Href("/static/dashboard.css")),
				Script(Src(htmxScript)),
				Script(Src(plotlyScript)),
				Script(Src("/static/dashboard.js"), Defer()),
			),
			Body(
				ID("body"),
				g.Attr("hx-headers", string(hxHeaders)),
				Main(Class("layout"), g.Group(body)),
			),
		),
	)
}
