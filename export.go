package main

import (
	"context"
	"encoding/json"
	"os"

	"kenpom-viz/templates"
)

// writeHTML marshals the figure and renders the standalone page to path.
func writeHTML(fig Figure, title, path string) error {
	raw, err := json.Marshal(fig)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	page := templates.Report(templates.ReportData{Title: title, Figure: string(raw)})
	return page.Render(context.Background(), f)
}
