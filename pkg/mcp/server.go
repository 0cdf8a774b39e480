package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/macropower/aspect/pkg/preset"
	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/version"
)

const tracerName = "github.com/macropower/aspect/pkg/mcp"

// Server serves the screen tools over MCP.
type Server struct {
	server   *mcp.Server
	catalog  *preset.Catalog
	tracer   trace.Tracer
	protocol io.Writer
	units    screen.UnitOptions
}

// ServerOpt configures a [Server].
type ServerOpt func(*Server)

// WithCatalog sets the presets searched by search_presets.
func WithCatalog(c *preset.Catalog) ServerOpt {
	return func(s *Server) {
		s.catalog = c
	}
}

// WithUnits sets the units used when a call does not name any.
func WithUnits(u screen.UnitOptions) ServerOpt {
	return func(s *Server) {
		s.units = u
	}
}

// WithTracer sets the tracer used for tool call spans.
func WithTracer(t trace.Tracer) ServerOpt {
	return func(s *Server) {
		s.tracer = t
	}
}

// WithProtocolLog writes every JSON-RPC message exchanged over stdio to w.
func WithProtocolLog(w io.Writer) ServerOpt {
	return func(s *Server) {
		s.protocol = w
	}
}

// NewServer creates a new [Server] with its tools registered.
func NewServer(opts ...ServerOpt) *Server {
	s := &Server{
		units: screen.DefaultUnitOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		s.catalog = preset.NewCatalog()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version.GetVersion(),
	}, &mcp.ServerOptions{
		Instructions: instructions,
	})

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "compute_screen",
		Description: "Compute the pixel count, aspect ratio and, when a diagonal is given, the DPI, dot pitch and " +
			"physical size of a screen. Inputs may be numbers or strings such as \"1920px\".",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"width":        newInputSchema("Horizontal resolution in pixels."),
				"height":       newInputSchema("Vertical resolution in pixels."),
				"diagonal":     newInputSchema("Visible diagonal size, in diagonalUnit."),
				"diagonalUnit": newUnitSchema("Unit of the diagonal. Defaults to in."),
				"sizeUnit":     newUnitSchema("Unit of the reported physical size. Defaults to cm."),
				"rotate": {
					Type:        "boolean",
					Description: "Swap width and height before computing.",
				},
			},
			Required: []string{"width", "height"},
		},
	}, WithTracing(s.tracer, s.handleComputeScreen))

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "name_aspect_ratio",
		Description: "Name an aspect ratio, e.g. 16:9 or 21.3:9. Give either a width and a height, or a ratio " +
			"as a number (1.78) or as two sides (\"16:10\").",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"width":  {Type: "number", Description: "Width in any unit."},
				"height": {Type: "number", Description: "Height in the same unit as width."},
				"ratio":  newInputSchema("Ratio as a number or as two sides."),
			},
		},
	}, WithTracing(s.tracer, s.handleNameAspectRatio))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert_length",
		Description: "Convert a length between inches and centimeters.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"value": newInputSchema("Length to convert."),
				"from":  newUnitSchema("Unit of value."),
			},
			Required: []string{"value", "from"},
		},
	}, WithTracing(s.tracer, s.handleConvertLength))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_presets",
		Description: "Fuzzy search well-known displays by name, resolution or tag. An empty query lists them all.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"query": {Type: "string", Description: "Search text, e.g. \"macbook\" or \"2560x1440\"."},
				"limit": {Type: "integer", Description: fmt.Sprintf("Maximum number of results. Defaults to %d.", maxPresets)},
			},
		},
	}, WithTracing(s.tracer, s.handleSearchPresets))
}

// Server returns the underlying MCP server.
func (s *Server) Server() *mcp.Server {
	return s.server
}

// Serve runs the server over stdin and stdout until ctx is done or the client
// disconnects.
func (s *Server) Serve(ctx context.Context) error {
	slog.InfoContext(ctx, "starting MCP server", slog.String("transport", "stdio"))

	var t mcp.Transport = mcp.NewStdioTransport()
	if s.protocol != nil {
		t = mcp.NewLoggingTransport(t, s.protocol)
	}

	err := s.server.Run(ctx, t)
	if err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}
