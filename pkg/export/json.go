package export

import (
	"encoding/json"
	"io"

	"github.com/macropower/aspect/pkg/screen"
)

type jsonReport struct {
	Fields map[string]string  `json:"fields"`
	Units  screen.UnitOptions `json:"units"`
	Screen screen.Info        `json:"screen"`
	Text   string             `json:"text"`
}

func newJSONReport(r *screen.Report) jsonReport {
	fields := map[string]string{}
	for _, f := range r.Fields() {
		fields[f.Key] = f.Value
	}

	return jsonReport{
		Screen: r.Info(),
		Units:  r.Units(),
		Fields: fields,
		Text:   r.String(),
	}
}

func writeJSON(w io.Writer, list bool, reports []*screen.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if !list {
		return enc.Encode(newJSONReport(reports[0])) //nolint:wrapcheck // Wrapped by the caller.
	}

	out := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, newJSONReport(r))
	}

	return enc.Encode(out) //nolint:wrapcheck // Wrapped by the caller.
}
