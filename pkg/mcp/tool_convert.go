package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/screenlist"
)

// ErrInvalidLength is returned for lengths that are not positive numbers.
var ErrInvalidLength = errors.New("length must be a positive number")

// ConvertLengthParams defines parameters for the convert_length tool.
type ConvertLengthParams struct {
	Value screenlist.Input `json:"value"`
	From  string           `json:"from"`
}

// ConvertLengthResult contains a converted length.
type ConvertLengthResult struct {
	Unit    screen.Unit `json:"unit"`
	Text    string      `json:"text"`
	Message string      `json:"message"`
	Value   float64     `json:"value"`
}

func (s *Server) handleConvertLength(
	_ context.Context,
	_ *mcp.ServerSession,
	params *mcp.CallToolParamsFor[ConvertLengthParams],
) (*mcp.CallToolResultFor[ConvertLengthResult], error) {
	args := params.Arguments

	from, err := screen.ParseUnit(args.From)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}

	v, ok := screen.ParseLength(string(args.Value))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLength, args.Value)
	}

	to := from.Other()
	converted := screen.Convert(v, from, to)

	result := ConvertLengthResult{
		Unit:  to,
		Value: converted,
		Text:  screen.FormatTrimmed(converted, 6) + to.Suffix(),
	}
	result.Message = fmt.Sprintf("%s%s is %s.", screen.FormatTrimmed(v, 6), from.Suffix(), result.Text)

	return &mcp.CallToolResultFor[ConvertLengthResult]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: result.Message},
		},
		StructuredContent: result,
	}, nil
}
