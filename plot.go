package main

import "fmt"

// Plotly figure model, only the fields the chart uses.

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	X             []float64 `json:"x"`
	Y             []float64 `json:"y"`
	Mode          string    `json:"mode"`
	Type          string    `json:"type"`
	Fill          string    `json:"fill,omitempty"`
	FillColor     string    `json:"fillcolor,omitempty"`
	Line          *Line     `json:"line,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
	Text          []string  `json:"text,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	HoverInfo     string    `json:"hoverinfo,omitempty"`
	Name          string    `json:"name"`
	ShowLegend    bool      `json:"showlegend"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

type Marker struct {
	Size    float64 `json:"size,omitempty"`
	Color   string  `json:"color,omitempty"`
	Symbol  string  `json:"symbol,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
	Line    *Line   `json:"line,omitempty"`
}

type Font struct {
	Size   int    `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
	Family string `json:"family,omitempty"`
}

type Title struct {
	Text string  `json:"text"`
	Font *Font   `json:"font,omitempty"`
	X    float64 `json:"x,omitempty"`
}

type Axis struct {
	Title     Title  `json:"title"`
	TickFont  *Font  `json:"tickfont,omitempty"`
	GridColor string `json:"gridcolor,omitempty"`
	GridWidth int    `json:"gridwidth,omitempty"`
	ShowGrid  bool   `json:"showgrid"`
	ZeroLine  bool   `json:"zeroline"`
}

type Legend struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	BGColor     string  `json:"bgcolor,omitempty"`
	BorderColor string  `json:"bordercolor,omitempty"`
	BorderWidth int     `json:"borderwidth,omitempty"`
	Font        *Font   `json:"font,omitempty"`
}

type Layout struct {
	Title     Title   `json:"title"`
	XAxis     Axis    `json:"xaxis"`
	YAxis     Axis    `json:"yaxis"`
	PlotBG    string  `json:"plot_bgcolor"`
	PaperBG   string  `json:"paper_bgcolor"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Legend    *Legend `json:"legend,omitempty"`
	HoverMode string  `json:"hovermode,omitempty"`
}

const hoverTemplate = "<b>%{text}</b><br>Tempo: %{x:.1f}<br>AdjEM: %{y:.1f}<extra></extra>"

// buildFigure assembles the scatter: zone outline first so the points draw
// on top of it, then outside teams as blue circles, inside teams as gold
// stars.
func buildFigure(inside, outside []Team, year int) Figure {
	zx, zy := zoneOutline()
	fig := Figure{
		Data: []Trace{{
			X:          zx,
			Y:          zy,
			Fill:       "toself",
			FillColor:  "rgba(0,0,0,0.1)",
			Line:       &Line{Color: "black", Width: 3},
			Mode:       "lines",
			Type:       "scatter",
			Name:       "Zone of Excellence",
			ShowLegend: true,
			HoverInfo:  "skip",
		}},
	}

	if len(outside) > 0 {
		x, y, names := traceValues(outside)
		fig.Data = append(fig.Data, Trace{
			X:    x,
			Y:    y,
			Mode: "markers",
			Type: "scatter",
			Marker: &Marker{
				Size:    6,
				Color:   "blue",
				Symbol:  "circle",
				Opacity: 0.6,
				Line:    &Line{Width: 0.5, Color: "#009CDE"},
			},
			Text:          names,
			HoverTemplate: hoverTemplate,
			Name:          "Outside Zone",
			ShowLegend:    true,
		})
	}

	if len(inside) > 0 {
		x, y, names := traceValues(inside)
		fig.Data = append(fig.Data, Trace{
			X:    x,
			Y:    y,
			Mode: "markers",
			Type: "scatter",
			Marker: &Marker{
				Size:    10,
				Color:   "gold",
				Symbol:  "star",
				Opacity: 0.9,
				Line:    &Line{Width: 1, Color: "orange"},
			},
			Text:          names,
			HoverTemplate: hoverTemplate,
			Name:          "Inside Zone",
			ShowLegend:    true,
		})
	}

	fig.Layout = Layout{
		Title: Title{
			Text: fmt.Sprintf("ROAD TO INDIANAPOLIS<br>Trapezoid of Excellence<br>%s", seasonLabel(year)),
			Font: &Font{Size: 20, Color: "#009CDE", Family: "Arial Black"},
			X:    0.5,
		},
		XAxis: Axis{
			Title:     Title{Text: "Adjusted Tempo", Font: &Font{Size: 16, Color: "black", Family: "Arial Black"}},
			TickFont:  &Font{Size: 12, Color: "black"},
			GridColor: "rgba(0,0,0,0.1)",
			GridWidth: 1,
			ShowGrid:  true,
		},
		YAxis: Axis{
			Title:     Title{Text: "Adjusted Efficiency Margin", Font: &Font{Size: 16, Color: "black", Family: "Arial Black"}},
			TickFont:  &Font{Size: 12, Color: "black"},
			GridColor: "rgba(0,0,0,0.1)",
			GridWidth: 1,
			ShowGrid:  true,
		},
		PlotBG:  "white",
		PaperBG: "white",
		Width:   1200,
		Height:  800,
		Legend: &Legend{
			X:           1.02,
			Y:           1,
			BGColor:     "white",
			BorderColor: "black",
			BorderWidth: 2,
			Font:        &Font{Size: 12, Color: "black", Family: "Arial"},
		},
		HoverMode: "closest",
	}
	return fig
}

// zoneOutline returns the trapezoid vertices as a closed loop.
func zoneOutline() (xs, ys []float64) {
	for _, v := range excellenceZone.Vertices {
		xs = append(xs, v.X)
		ys = append(ys, v.Y)
	}
	xs = append(xs, excellenceZone.Vertices[0].X)
	ys = append(ys, excellenceZone.Vertices[0].Y)
	return xs, ys
}

func traceValues(teams []Team) (xs, ys []float64, names []string) {
	for _, t := range teams {
		xs = append(xs, t.AdjTempo)
		ys = append(ys, t.AdjEM)
		names = append(names, t.Name)
	}
	return xs, ys, names
}

func seasonLabel(year int) string {
	return fmt.Sprintf("%d-%d Season", year-1, year)
}
