package main

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestBuildFigureTraces(t *testing.T) {
	inside := []Team{{Name: "Houston", AdjTempo: 68, AdjEM: 25}}
	outside := []Team{{Name: "Alabama", AdjTempo: 80, AdjEM: 5}}

	fig := buildFigure(inside, outside, 2025)
	if len(fig.Data) != 3 {
		t.Fatalf("got %d traces, want 3", len(fig.Data))
	}

	zone := fig.Data[0]
	if zone.Fill != "toself" || zone.HoverInfo != "skip" {
		t.Errorf("zone trace fill=%q hoverinfo=%q", zone.Fill, zone.HoverInfo)
	}
	if len(zone.X) != 5 || zone.X[0] != zone.X[4] || zone.Y[0] != zone.Y[4] {
		t.Errorf("zone outline not closed: x=%v y=%v", zone.X, zone.Y)
	}

	out := fig.Data[1]
	if out.Name != "Outside Zone" || out.Marker.Symbol != "circle" {
		t.Errorf("outside trace name=%q symbol=%q", out.Name, out.Marker.Symbol)
	}
	if out.Text[0] != "Alabama" || out.X[0] != 80 || out.Y[0] != 5 {
		t.Errorf("outside trace data = %v/%v/%v", out.Text, out.X, out.Y)
	}

	in := fig.Data[2]
	if in.Name != "Inside Zone" || in.Marker.Symbol != "star" {
		t.Errorf("inside trace name=%q symbol=%q", in.Name, in.Marker.Symbol)
	}
	if in.HoverTemplate == "" || !strings.Contains(in.HoverTemplate, "%{text}") {
		t.Errorf("inside trace hovertemplate = %q", in.HoverTemplate)
	}
}

func TestBuildFigureEmptyBuckets(t *testing.T) {
	fig := buildFigure(nil, nil, 2025)
	if len(fig.Data) != 1 {
		t.Fatalf("got %d traces with no teams, want zone only", len(fig.Data))
	}

	fig = buildFigure([]Team{{Name: "Houston", AdjTempo: 68, AdjEM: 25}}, nil, 2025)
	if len(fig.Data) != 2 || fig.Data[1].Name != "Inside Zone" {
		t.Fatalf("inside-only figure traces = %d", len(fig.Data))
	}
}

func TestBuildFigureLayout(t *testing.T) {
	fig := buildFigure(nil, nil, 2025)
	l := fig.Layout
	if !strings.Contains(l.Title.Text, "2024-2025 Season") {
		t.Errorf("title = %q", l.Title.Text)
	}
	if l.XAxis.Title.Text != "Adjusted Tempo" || l.YAxis.Title.Text != "Adjusted Efficiency Margin" {
		t.Errorf("axis titles = %q / %q", l.XAxis.Title.Text, l.YAxis.Title.Text)
	}
	if l.Width != 1200 || l.Height != 800 {
		t.Errorf("size = %dx%d", l.Width, l.Height)
	}
}

func TestFigureJSONFieldNames(t *testing.T) {
	fig := buildFigure([]Team{{Name: "Houston", AdjTempo: 68, AdjEM: 25}}, nil, 2025)
	raw, err := json.Marshal(fig)
	if err != nil {
		t.Fatal(err)
	}
	// Plotly is picky about these keys.
	for _, key := range []string{`"hovertemplate"`, `"plot_bgcolor"`, `"showlegend"`, `"fillcolor"`, `"hovermode"`} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("figure JSON missing %s", key)
		}
	}
}

func TestBuildFigureDeterministic(t *testing.T) {
	inside := []Team{{Name: "Houston", AdjTempo: 68, AdjEM: 25}}
	outside := []Team{{Name: "Alabama", AdjTempo: 80, AdjEM: 5}}
	if !reflect.DeepEqual(buildFigure(inside, outside, 2025), buildFigure(inside, outside, 2025)) {
		t.Fatal("figure differs between identical runs")
	}
}
