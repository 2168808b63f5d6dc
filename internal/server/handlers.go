package server

import (
	"encoding/json"
	"fmt"

	"github.com/ppmkit/ppmkit/internal/analyze"
	"github.com/ppmkit/ppmkit/internal/convert"
	"github.com/ppmkit/ppmkit/internal/pixbuf"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "ppm_load", "ppm_set_pixel").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// File Operations
	case "ppm_load":
		return s.handleLoad(args)
	case "ppm_create":
		return s.handleCreate(args)
	case "ppm_convert":
		return s.handleConvert(args)

	// Pixel Operations
	case "ppm_get_pixel":
		return s.handleGetPixel(args)
	case "ppm_set_pixel":
		return s.handleSetPixel(args)

	// Analysis Operations
	case "ppm_palette":
		return s.handlePalette(args)
	case "ppm_average_color":
		return s.handleAverageColor(args)

	// Transform Operations
	case "ppm_filter":
		return s.handleFilter(args)
	case "ppm_resize":
		return s.handleResize(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// colorValue is how tool results report a single color.
type colorValue struct {
	Hex string       `json:"hex"`
	RGB pixbuf.Color `json:"rgb"`
}

func toColorValue(c pixbuf.Color) colorValue {
	return colorValue{Hex: c.Hex(), RGB: c}
}

// === File Operation Handlers ===

type loadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleLoad(args json.RawMessage) (interface{}, error) {
	var a loadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return convert.LoadInfo(s.cache, a.Path)
}

type createArgs struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type createResult struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleCreate(args json.RawMessage) (interface{}, error) {
	var a createArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width < 0 || a.Height < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", a.Width, a.Height)
	}

	b := pixbuf.New(a.Width, a.Height)
	if err := convert.Save(b, a.Path); err != nil {
		return nil, err
	}
	s.cache.Store(a.Path, b)
	return &createResult{Path: a.Path, Width: a.Width, Height: a.Height}, nil
}

type convertArgs struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type convertResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

func (s *Server) handleConvert(args json.RawMessage) (interface{}, error) {
	var a convertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Source)
	if err != nil {
		return nil, err
	}
	if err := convert.Save(b, a.Destination); err != nil {
		return nil, err
	}
	s.cache.Store(a.Destination, b)
	return &convertResult{
		Source:      a.Source,
		Destination: a.Destination,
		Width:       b.Width(),
		Height:      b.Height(),
	}, nil
}

// === Pixel Operation Handlers ===

type getPixelArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type getPixelResult struct {
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Color colorValue `json:"color"`
}

func (s *Server) handleGetPixel(args json.RawMessage) (interface{}, error) {
	var a getPixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	c, err := b.At(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &getPixelResult{X: a.X, Y: a.Y, Color: toColorValue(c)}, nil
}

type setPixelArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
}

func (s *Server) handleSetPixel(args json.RawMessage) (interface{}, error) {
	var a setPixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	c := pixbuf.Color{R: a.R, G: a.G, B: a.B}
	if err := b.Set(a.X, a.Y, c); err != nil {
		return nil, err
	}
	if err := convert.Save(b, a.Path); err != nil {
		return nil, err
	}
	return &getPixelResult{X: a.X, Y: a.Y, Color: toColorValue(c)}, nil
}

// === Analysis Operation Handlers ===

type paletteArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

type paletteResult struct {
	Colors []analyze.PaletteEntry `json:"colors"`
}

func (s *Server) handlePalette(args json.RawMessage) (interface{}, error) {
	var a paletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return &paletteResult{Colors: analyze.Palette(b, a.Count)}, nil
}

func (s *Server) handleAverageColor(args json.RawMessage) (interface{}, error) {
	var a loadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return toColorValue(analyze.Average(b)), nil
}

// === Transform Operation Handlers ===

type filterArgs struct {
	Path        string  `json:"path"`
	Destination string  `json:"destination"`
	Filter      string  `json:"filter"`
	Radius      float64 `json:"radius"`
}

func (s *Server) handleFilter(args json.RawMessage) (interface{}, error) {
	var a filterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Radius == 0 {
		a.Radius = 3.0
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := analyze.Filter(b, a.Filter, a.Radius)
	if err != nil {
		return nil, err
	}
	if err := convert.Save(out, a.Destination); err != nil {
		return nil, err
	}
	s.cache.Store(a.Destination, out)
	return &convertResult{
		Source:      a.Path,
		Destination: a.Destination,
		Width:       out.Width(),
		Height:      out.Height(),
	}, nil
}

type resizeArgs struct {
	Path        string `json:"path"`
	Destination string `json:"destination"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

func (s *Server) handleResize(args json.RawMessage) (interface{}, error) {
	var a resizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := convert.Resize(b, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	if err := convert.Save(out, a.Destination); err != nil {
		return nil, err
	}
	s.cache.Store(a.Destination, out)
	return &convertResult{
		Source:      a.Path,
		Destination: a.Destination,
		Width:       out.Width(),
		Height:      out.Height(),
	}, nil
}
