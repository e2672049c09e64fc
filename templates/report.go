package templates

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

const plotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// ReportData feeds the standalone chart page.
type ReportData struct {
	Title  string
	Figure string // plotly figure JSON, already marshaled
}

// Report renders the interactive chart as a self-contained HTML page.
// plotly.js comes from the CDN; everything else is inline.
func Report(data ReportData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<!doctype html><html lang="en"><head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>`)
		buf.WriteString(templ.EscapeString(data.Title))
		buf.WriteString(`</title><script src="`)
		buf.WriteString(plotlyCDN)
		buf.WriteString(`"></script></head><body><div id="chart"></div><script>
            var figure = `)
		buf.WriteString(data.Figure)
		buf.WriteString(`;
            Plotly.newPlot('chart', figure.data, figure.layout, {responsive: true});
        </script></body></html>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}
