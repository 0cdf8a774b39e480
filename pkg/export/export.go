// Package export renders screen reports as text, JSON, CSV or SVG, and
// copies them to the system clipboard.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	xstrings "github.com/charmbracelet/x/exp/strings"

	"github.com/macropower/aspect/pkg/screen"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatSVG  Format = "svg"
)

var (
	AllFormats = []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatCSV),
		string(FormatSVG),
	}

	ErrUnknownFormat = errors.New("unknown format")
	ErrNoScreens     = errors.New("no valid screens")
)

// ParseFormat parses a format name, case insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(AllFormats, string(f)) {
		return f, nil
	}

	return "", fmt.Errorf("%w %q, %s are supported", ErrUnknownFormat, s, xstrings.EnglishJoin(slices.Clone(AllFormats), true))
}

// Exporter writes reports in one [Format].
type Exporter struct {
	format Format
	list   bool
}

// ExporterOpt configures an [Exporter].
type ExporterOpt func(*Exporter)

// AsList renders text as a list, even for a single report, and JSON as an
// array.
func AsList() ExporterOpt {
	return func(e *Exporter) {
		e.list = true
	}
}

func New(format Format, opts ...ExporterOpt) *Exporter {
	e := &Exporter{format: format}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Write renders reports to w.
func (e *Exporter) Write(w io.Writer, reports ...*screen.Report) error {
	if len(reports) == 0 {
		return ErrNoScreens
	}

	var err error

	switch e.format {
	case FormatText, "":
		_, err = io.WriteString(w, e.text(reports))
	case FormatJSON:
		err = writeJSON(w, e.list || len(reports) > 1, reports)
	case FormatCSV:
		err = writeCSV(w, reports)
	case FormatSVG:
		err = writeSVG(w, reports)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, e.format)
	}

	if err != nil {
		return fmt.Errorf("write %s: %w", e.format, err)
	}

	return nil
}

// String renders reports to a string.
func (e *Exporter) String(reports ...*screen.Report) (string, error) {
	b := &bytes.Buffer{}

	err := e.Write(b, reports...)
	if err != nil {
		return "", err
	}

	return b.String(), nil
}

func (e *Exporter) text(reports []*screen.Report) string {
	if e.list {
		return screen.FormatList(reports...)
	}

	entries := make([]string, 0, len(reports))
	for _, r := range reports {
		entries = append(entries, r.String()+"\n")
	}

	return strings.Join(entries, "\n")
}
