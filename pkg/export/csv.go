package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/macropower/aspect/pkg/screen"
)

var csvHeaders = []string{
	"width",
	"height",
	"pixel_count",
	"aspect_ratio",
	"ratio_name",
	"diagonal",
	"diagonal_unit",
	"dpi",
	"dot_pitch_mm",
	"size_width",
	"size_height",
	"size_unit",
}

func writeCSV(w io.Writer, reports []*screen.Report) error {
	cw := csv.NewWriter(w)

	err := cw.Write(csvHeaders)
	if err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, r := range reports {
		err := cw.Write(csvRow(r))
		if err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error() //nolint:wrapcheck // Wrapped by the caller.
}

func csvRow(r *screen.Report) []string {
	info := r.Info()
	units := r.Units()
	px := info.PixelCount()

	row := []string{
		strconv.FormatInt(px.Width, 10),
		strconv.FormatInt(px.Height, 10),
		screen.FormatFixed(px.Total, 0),
		screen.FormatFixed(info.Ratio(), 4),
		info.RatioName(),
	}

	// Metric columns are empty when there is no diagonal.
	m, ok := info.Metrics()
	if !ok {
		return append(row, "", "", "", "", "", "", "")
	}

	size := m.Size
	if units.SizeUnit == screen.UnitInch {
		size = screen.RectSize{
			Width:  screen.ToInches(size.Width),
			Height: screen.ToInches(size.Height),
		}
	}

	return append(row,
		screen.FormatFixed(screen.Convert(m.Diagonal, screen.UnitInch, units.DiagonalUnit), 2),
		units.DiagonalUnit.String(),
		screen.FormatFixed(m.DPI, 2),
		screen.FormatFixed(m.DotPitch, 4),
		screen.FormatFixed(size.Width, 2),
		screen.FormatFixed(size.Height, 2),
		units.SizeUnit.String(),
	)
}
