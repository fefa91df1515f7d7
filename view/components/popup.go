package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PopupError(title string, message string) g.Node {
	return popup("popup popup-error", title, message)
}

func PopupSuccess(title string, message string) g.Node {
	return popup("popup popup-success", title, message)
}

func popup(class string, title string, message string) g.Node {
	return Div(
		Class(class),
		g.Attr("role", "alert"),
		H2(g.Text(title)),
		P(g.Text(message)),
		Button(
			Type("button"),
			g.Attr("onclick", "this.parentElement.remove()"),
			g.Text("Cerrar"),
		),
	)
}
