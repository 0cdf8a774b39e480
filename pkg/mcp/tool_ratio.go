package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/screenlist"
)

// ErrMissingRatio is returned when neither a ratio nor both sides are given.
var ErrMissingRatio = errors.New("give a ratio, or a width and a height")

// NameAspectRatioParams defines parameters for the name_aspect_ratio tool.
type NameAspectRatioParams struct {
	Ratio  screenlist.Input `json:"ratio,omitempty"`
	Width  float64          `json:"width,omitempty"`
	Height float64          `json:"height,omitempty"`
}

// NameAspectRatioResult contains the name of a ratio.
type NameAspectRatioResult struct {
	Name    string  `json:"name"`
	Message string  `json:"message"`
	Ratio   float64 `json:"ratio"`
}

func (s *Server) handleNameAspectRatio(
	_ context.Context,
	_ *mcp.ServerSession,
	params *mcp.CallToolParamsFor[NameAspectRatioParams],
) (*mcp.CallToolResultFor[NameAspectRatioResult], error) {
	args := params.Arguments

	var (
		ratio float64
		err   error
	)

	switch {
	case args.Ratio != "":
		ratio, err = screen.ParseRatio(string(args.Ratio))
		if err != nil {
			return nil, fmt.Errorf("parse ratio: %w", err)
		}
	case args.Width != 0 || args.Height != 0:
		ratio = args.Width / args.Height
	default:
		return nil, ErrMissingRatio
	}

	ratioName, err := screen.RatioName(ratio)
	if err != nil {
		return nil, fmt.Errorf("name ratio: %w", err)
	}

	result := NameAspectRatioResult{
		Name:    ratioName,
		Ratio:   ratio,
		Message: screen.FormatFixed(ratio, 4) + ":1 is " + ratioName + ".",
	}

	return &mcp.CallToolResultFor[NameAspectRatioResult]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: result.Message},
		},
		StructuredContent: result,
	}, nil
}
