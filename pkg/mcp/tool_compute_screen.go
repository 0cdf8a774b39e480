package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/screenlist"
)

// ComputeScreenParams defines parameters for the compute_screen tool.
type ComputeScreenParams struct {
	Width        screenlist.Input `json:"width"`
	Height       screenlist.Input `json:"height"`
	Diagonal     screenlist.Input `json:"diagonal,omitempty"`
	DiagonalUnit string           `json:"diagonalUnit,omitempty"`
	SizeUnit     string           `json:"sizeUnit,omitempty"`
	Rotate       bool             `json:"rotate,omitempty"`
}

// ComputeScreenResult contains the derived geometry of one screen.
type ComputeScreenResult struct {
	Metrics    *screen.DiagonalMetrics `json:"metrics,omitempty"`
	PixelCount *screen.PixelCount      `json:"pixelCount,omitempty"`
	Message    string                  `json:"message"`
	Text       string                  `json:"text,omitempty"`
	RatioName  string                  `json:"ratioName,omitempty"`
	Fields     []screen.Field          `json:"fields,omitempty"`
	Ratio      float64                 `json:"ratio,omitempty"`
	Valid      bool                    `json:"valid"`
}

func (s *Server) handleComputeScreen(
	_ context.Context,
	_ *mcp.ServerSession,
	params *mcp.CallToolParamsFor[ComputeScreenParams],
) (*mcp.CallToolResultFor[ComputeScreenResult], error) {
	args := params.Arguments

	units, err := s.unitOptions(args.DiagonalUnit, args.SizeUnit)
	if err != nil {
		return nil, err
	}

	opts := []screen.Opt{screen.WithDiagonalUnit(units.DiagonalUnit)}
	if args.Diagonal != "" {
		opts = append(opts, screen.WithDiagonalString(string(args.Diagonal)))
	}

	info, ok := screen.Parse(string(args.Width), string(args.Height), opts...)
	if !ok {
		return newComputeScreenResult(ComputeScreenResult{
			Message: fmt.Sprintf(
				"INVALID INPUT: %q x %q is not a screen. Width and height must be positive whole pixel counts.",
				args.Width, args.Height,
			),
		}), nil
	}

	if args.Rotate {
		info = info.Rotated()
	}

	report := screen.NewReport(info, units)
	pixels := info.PixelCount()

	result := ComputeScreenResult{
		Valid:      true,
		Message:    fmt.Sprintf("%d x %d, %s.", pixels.Width, pixels.Height, info.RatioName()),
		Text:       report.String(),
		Fields:     report.Fields(),
		PixelCount: &pixels,
		Ratio:      info.Ratio(),
		RatioName:  info.RatioName(),
	}
	if m, ok := info.Metrics(); ok {
		result.Metrics = &m
	}

	return newComputeScreenResult(result), nil
}

func (s *Server) unitOptions(diagonal, size string) (screen.UnitOptions, error) {
	units := s.units

	if diagonal != "" {
		u, err := screen.ParseUnit(diagonal)
		if err != nil {
			return units, fmt.Errorf("diagonalUnit: %w", err)
		}

		units.DiagonalUnit = u
	}

	if size != "" {
		u, err := screen.ParseUnit(size)
		if err != nil {
			return units, fmt.Errorf("sizeUnit: %w", err)
		}

		units.SizeUnit = u
	}

	return units, nil
}

func newComputeScreenResult(result ComputeScreenResult) *mcp.CallToolResultFor[ComputeScreenResult] {
	text := result.Message
	if result.Text != "" {
		text = result.Text
	}

	return &mcp.CallToolResultFor[ComputeScreenResult]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		StructuredContent: result,
	}
}
