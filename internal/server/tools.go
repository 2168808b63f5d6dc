package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// File Operations
		{
			Name:        "ppm_load",
			Description: "Load an image file (PPM, PNG, JPEG, GIF, BMP, TIFF, WebP) and return its dimensions, format, and size. Caches the decoded pixels for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "ppm_create",
			Description: "Create a new all-black image of the given dimensions and write it to disk. PPM destinations are written atomically.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Destination file path; format chosen by extension",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels (0 permitted for an empty image)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels (0 permitted for an empty image)",
					},
				},
				"required": []string{"path", "width", "height"},
			},
		},
		{
			Name:        "ppm_convert",
			Description: "Convert an image between formats. The destination format is chosen by file extension; converting to .ppm produces the ASCII P3 text format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": map[string]interface{}{
						"type":        "string",
						"description": "Path of the image to read",
					},
					"destination": map[string]interface{}{
						"type":        "string",
						"description": "Path to write; extension selects the output format",
					},
				},
				"required": []string{"source", "destination"},
			},
		},

		// Pixel Operations
		{
			Name:        "ppm_get_pixel",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "ppm_set_pixel",
			Description: "Overwrite the color at a specific pixel coordinate and save the file. PPM destinations are written atomically.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{"type": "integer", "description": "X coordinate (0-based)"},
					"y": map[string]interface{}{"type": "integer", "description": "Y coordinate (0-based)"},
					"r": map[string]interface{}{"type": "integer", "description": "Red channel (0-255)"},
					"g": map[string]interface{}{"type": "integer", "description": "Green channel (0-255)"},
					"b": map[string]interface{}{"type": "integer", "description": "Blue channel (0-255)"},
				},
				"required": []string{"path", "x", "y", "r", "g", "b"},
			},
		},

		// Analysis Operations
		{
			Name:        "ppm_palette",
			Description: "Extract the N most dominant colors of an image, merging perceptually similar shades.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of palette entries to return (default 5)",
						"default":     5,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "ppm_average_color",
			Description: "Compute the arithmetic mean color of all pixels in an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Transform Operations
		{
			Name:        "ppm_filter",
			Description: "Apply a filter (blur, grayscale, edges, invert) to an image and write the result to a new file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path of the image to read",
					},
					"destination": map[string]interface{}{
						"type":        "string",
						"description": "Path to write the filtered image to",
					},
					"filter": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"blur", "grayscale", "edges", "invert"},
						"description": "Filter to apply",
					},
					"radius": map[string]interface{}{
						"type":        "number",
						"description": "Radius for blur and edges (default 3.0)",
						"default":     3.0,
					},
				},
				"required": []string{"path", "destination", "filter"},
			},
		},
		{
			Name:        "ppm_resize",
			Description: "Resize an image with Lanczos resampling and write the result to a new file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path of the image to read",
					},
					"destination": map[string]interface{}{
						"type":        "string",
						"description": "Path to write the resized image to",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels",
					},
				},
				"required": []string{"path", "destination", "width", "height"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
