// Package static holds the browser assets of the dashboard.
package static

import "embed"

//go:embed dashboard.js dashboard.css
var FS embed.FS
