// Package mcp serves the screen engine as Model Context Protocol tools.
package mcp

import "github.com/modelcontextprotocol/go-sdk/jsonschema"

const (
	name         = "aspect"
	instructions = `MCP Server 'aspect' computes display geometry: pixel count, aspect ratio, DPI, dot pitch and physical size.

When to use these tools:
- Comparing monitors, laptops, TVs or phones by resolution and diagonal size
- Naming an aspect ratio (e.g. 16:9, 21.3:9) from a resolution or a number
- Converting a length between inches and centimeters

Workflow:
1. Use 'search_presets' to look up the resolution and diagonal of a well-known display
2. Use 'compute_screen' with a width, a height and optionally a diagonal
3. Report the fields from 'compute_screen' EXACTLY as returned; do not recompute them
`
)

// maxPresets caps search_presets results when no limit is given.
const maxPresets = 10

func newInputSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: description,
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "number"},
		},
	}
}

func newUnitSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: description,
		Enum:        []any{"in", "cm"},
	}
}
