// Package dashboard derives the view model a front end renders from
// the analysis state store. It performs no network calls and no
// validation; chart rendering is delegated to a ChartRenderer.
package dashboard

// Dataset is an ordered categorical/numeric series for a chart.
type Dataset struct {
	Labels []string
	Values []float64
}

// Empty reports whether the dataset has nothing to plot.
func (d Dataset) Empty() bool {
	return len(d.Values) == 0
}

// Visual is an opaque handle to a rendered chart. Fallback is set
// when the renderer produced a neutral placeholder for empty data.
type Visual struct {
	Kind     string
	Fallback bool
}

// ChartRenderer renders datasets into visuals. Implementations must
// render a neutral fallback for empty datasets rather than erroring;
// the presenter never guards for them.
type ChartRenderer interface {
	Radar(d Dataset) Visual
	Bar(d Dataset) Visual
	Line(d Dataset) Visual
	Gauge(value float64) Visual
}

// NeutralRenderer is the default ChartRenderer: it carries only the
// chart kind and the fallback flag, leaving actual drawing to the
// embedding front end.
type NeutralRenderer struct{}

func (NeutralRenderer) Radar(d Dataset) Visual {
	return Visual{Kind: "radar", Fallback: d.Empty()}
}

func (NeutralRenderer) Bar(d Dataset) Visual {
	return Visual{Kind: "bar", Fallback: d.Empty()}
}

func (NeutralRenderer) Line(d Dataset) Visual {
	return Visual{Kind: "line", Fallback: d.Empty()}
}

func (NeutralRenderer) Gauge(value float64) Visual {
	return Visual{Kind: "gauge", Fallback: value <= 0}
}
