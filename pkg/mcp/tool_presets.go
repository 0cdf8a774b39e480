package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macropower/aspect/pkg/screen"
)

// SearchPresetsParams defines parameters for the search_presets tool.
type SearchPresetsParams struct {
	Query string `json:"query,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// PresetResult is one display found by search_presets.
type PresetResult struct {
	Name      string      `json:"name"`
	Unit      screen.Unit `json:"unit"`
	RatioName string      `json:"ratioName"`
	Tags      []string    `json:"tags,omitempty"`
	Width     int64       `json:"width"`
	Height    int64       `json:"height"`
	Diagonal  float64     `json:"diagonal,omitempty"`
	Score     int         `json:"score"`
}

// SearchPresetsResult contains the displays matching a query.
type SearchPresetsResult struct {
	Message string         `json:"message"`
	Presets []PresetResult `json:"presets,omitempty"`
	Count   int            `json:"count"`
}

func (s *Server) handleSearchPresets(
	_ context.Context,
	_ *mcp.ServerSession,
	params *mcp.CallToolParamsFor[SearchPresetsParams],
) (*mcp.CallToolResultFor[SearchPresetsResult], error) {
	args := params.Arguments

	limit := args.Limit
	if limit <= 0 {
		limit = maxPresets
	}

	matches := s.catalog.Search(args.Query)

	result := SearchPresetsResult{Count: len(matches)}
	lines := []string{}

	for _, m := range matches[:min(limit, len(matches))] {
		p := m.Preset

		pr := PresetResult{
			Name:     p.Name,
			Unit:     p.Unit,
			Tags:     p.Tags,
			Width:    p.Width,
			Height:   p.Height,
			Diagonal: p.Diagonal,
			Score:    m.Score,
		}
		if pr.Unit == "" {
			pr.Unit = screen.UnitInch
		}

		line := fmt.Sprintf("%s: %d x %d", p.Name, p.Width, p.Height)
		if info, ok := p.Info(); ok {
			pr.RatioName = info.RatioName()
			line += " " + pr.RatioName
		}
		if p.Diagonal > 0 {
			line += fmt.Sprintf(", %s%s", screen.FormatTrimmed(p.Diagonal, 6), pr.Unit.Suffix())
		}

		result.Presets = append(result.Presets, pr)
		lines = append(lines, line)
	}

	result.Message = fmt.Sprintf("Found %d presets.", result.Count)
	if len(matches) > limit {
		result.Message = fmt.Sprintf("Found %d presets, showing the first %d.", result.Count, limit)
	}

	return &mcp.CallToolResultFor[SearchPresetsResult]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: strings.Join(append([]string{result.Message}, lines...), "\n")},
		},
		StructuredContent: result,
	}, nil
}
