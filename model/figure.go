package model

// ChartKind names the kind of chart a Figure describes
type ChartKind string

const (
	CHART_KIND_BAR     ChartKind = "bar"
	CHART_KIND_PIE     ChartKind = "pie"
	CHART_KIND_SCATTER ChartKind = "scatter"
	CHART_KIND_BOX     ChartKind = "box"
)

// Figure is a declarative chart description. Data and Layout are shaped
// like a Plotly figure so the browser can draw them as they are.
type Figure struct {
	Kind     ChartKind         `json:"kind"`
	Title    string            `json:"title"`
	Encoding map[string]string `json:"encoding"`
	Data     []Trace           `json:"data"`
	Layout   Layout            `json:"layout"`
	Summary  *BoxSummary       `json:"summary,omitempty"`
}

// Trace is one drawable series of a figure.
// X and Y hold either []string (categories) or []float64.
type Trace struct {
	Type           string    `json:"type"`
	Name           string    `json:"name,omitempty"`
	Mode           string    `json:"mode,omitempty"`
	X              any       `json:"x,omitempty"`
	Y              any       `json:"y,omitempty"`
	Labels         []string  `json:"labels,omitempty"`
	Values         []float64 `json:"values,omitempty"`
	Marker         *Marker   `json:"marker,omitempty"`
	HoverText      []string  `json:"hovertext,omitempty"`
	HoverTemplate  string    `json:"hovertemplate,omitempty"`
	LegendGroup    string    `json:"legendgroup,omitempty"`
	ShowLegend     *bool     `json:"showlegend,omitempty"`
	BoxPoints      string    `json:"boxpoints,omitempty"`
	QuartileMethod string    `json:"quartilemethod,omitempty"`
}

type Marker struct {
	Color    string    `json:"color,omitempty"`
	Size     []float64 `json:"size,omitempty"`
	SizeMode string    `json:"sizemode,omitempty"`
	SizeRef  float64   `json:"sizeref,omitempty"`
	Symbol   string    `json:"symbol,omitempty"`
}

type Layout struct {
	Title  Text    `json:"title"`
	XAxis  *Axis   `json:"xaxis,omitempty"`
	YAxis  *Axis   `json:"yaxis,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
}

type Text struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Text `json:"title"`
}

type Legend struct {
	Title         Text   `json:"title"`
	ItemSizing    string `json:"itemsizing,omitempty"`
	TraceGroupGap int    `json:"tracegroupgap"`
}

// BoxSummary holds the five-number summary of a box chart, computed with
// linear interpolation between closest ranks.
type BoxSummary struct {
	Count      int     `json:"count"`
	Min        float64 `json:"min"`
	Q1         float64 `json:"q1"`
	Median     float64 `json:"median"`
	Q3         float64 `json:"q3"`
	Max        float64 `json:"max"`
	LowerFence float64 `json:"lowerfence"`
	UpperFence float64 `json:"upperfence"`
	Mean       float64 `json:"mean"`
}
