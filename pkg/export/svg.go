package export

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/macropower/aspect/pkg/screen"
)

const (
	svgMargin    = 20
	svgGap       = 30
	svgMaxHeight = 240
	svgLabelRoom = 40
)

type svgBox struct {
	report *screen.Report
	width  float64
	height float64
	scaled bool
}

// writeSVG draws the screens side by side, bottom aligned. Screens with a
// diagonal are drawn to a common physical scale; screens without one are
// outlined with a dashed line at the tallest height.
func writeSVG(w io.Writer, reports []*screen.Report) error {
	boxes := make([]svgBox, 0, len(reports))

	var maxCM float64
	for _, r := range reports {
		if m, ok := r.Info().Metrics(); ok {
			maxCM = max(maxCM, m.Size.Height)
		}
	}

	for _, r := range reports {
		info := r.Info()

		if m, ok := info.Metrics(); ok {
			k := svgMaxHeight / maxCM
			boxes = append(boxes, svgBox{
				report: r,
				width:  m.Size.Width * k,
				height: m.Size.Height * k,
				scaled: true,
			})

			continue
		}

		boxes = append(boxes, svgBox{
			report: r,
			width:  svgMaxHeight * info.Ratio(),
			height: svgMaxHeight,
		})
	}

	total := svgMargin
	for _, b := range boxes {
		total += int(b.width) + svgGap
	}

	total += svgMargin - svgGap
	height := svgMargin*2 + svgMaxHeight + svgLabelRoom

	b := &bytes.Buffer{}
	canvas := svg.New(b)
	canvas.Start(total, height)
	canvas.Title("Screens")
	canvas.Gstyle("font-family:sans-serif;font-size:12px")

	x := svgMargin
	bottom := svgMargin + svgMaxHeight

	for _, box := range boxes {
		bw, bh := int(box.width), int(box.height)

		style := "fill:#e8eef7;stroke:#1f4e8c;stroke-width:2"
		if !box.scaled {
			style = "fill:none;stroke:#888888;stroke-width:2;stroke-dasharray:6,4"
		}

		canvas.Rect(x, bottom-bh, bw, bh, style)
		canvas.Text(x+bw/2, bottom+16, svgLabel(box.report), "text-anchor:middle")
		canvas.Text(x+bw/2, bottom+32, box.report.Info().RatioName(), "text-anchor:middle;fill:#555555")

		x += bw + svgGap
	}

	canvas.Gend()
	canvas.End()

	_, err := b.WriteTo(w)

	return err //nolint:wrapcheck // Wrapped by the caller.
}

func svgLabel(r *screen.Report) string {
	px := r.Info().PixelCount()
	label := fmt.Sprintf("%d x %d", px.Width, px.Height)

	if d, ok := r.Fields().Get(screen.KeyDiagonal); ok {
		label += " @ " + d
	}

	return label
}
