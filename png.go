package main

import (
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	colorGold   = drawing.Color{R: 255, G: 215, B: 0, A: 255}
	colorOrange = drawing.Color{R: 255, G: 165, B: 0, A: 255}
)

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    width,
		DotColor:    col,
	}
}

// writePNG renders a static version of the scatter. Callers treat a
// failure here as a skipped step, not an error: the HTML artifact is the
// primary output.
func writePNG(inside, outside []Team, year int, path string) error {
	zx, zy := zoneOutline()
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Zone of Excellence",
			XValues: zx,
			YValues: zy,
			Style:   chart.Style{StrokeWidth: 3, StrokeColor: chart.ColorBlack},
		},
	}
	if len(outside) > 0 {
		x, y, _ := traceValues(outside)
		series = append(series, chart.ContinuousSeries{
			Name:    "Outside Zone",
			XValues: x,
			YValues: y,
			Style:   pointStyle(chart.ColorBlue, 4),
		})
	}
	if len(inside) > 0 {
		x, y, _ := traceValues(inside)
		series = append(series, chart.ContinuousSeries{
			Name:    "Inside Zone",
			XValues: x,
			YValues: y,
			Style:   pointStyle(colorGold, 7),
		})
	}

	xr, yr := chartRanges(inside, outside)
	ch := chart.Chart{
		Title:      "Trapezoid of Excellence - " + seasonLabel(year),
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 28}},
		Width:      1200,
		Height:     800,
		XAxis:      chart.XAxis{Name: "Adjusted Tempo", Range: xr},
		YAxis:      chart.YAxis{Name: "Adjusted Efficiency Margin", Range: yr},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := ch.Render(chart.PNG, f); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// chartRanges pads the data extent so the zone outline and the extreme
// points never sit on the plot border.
func chartRanges(inside, outside []Team) (*chart.ContinuousRange, *chart.ContinuousRange) {
	zx, zy := zoneOutline()
	minX, maxX := zx[0], zx[0]
	minY, maxY := zy[0], zy[0]

	scan := func(x, y float64) {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	for i := range zx {
		scan(zx[i], zy[i])
	}
	for _, t := range inside {
		scan(t.AdjTempo, t.AdjEM)
	}
	for _, t := range outside {
		scan(t.AdjTempo, t.AdjEM)
	}

	const pad = 2.0
	return &chart.ContinuousRange{Min: minX - pad, Max: maxX + pad},
		&chart.ContinuousRange{Min: minY - pad, Max: maxY + pad}
}
