// Package server implements the MCP (Model Context Protocol) server for the
// PPM toolkit.
//
// This package provides a JSON-RPC 2.0 server that exposes pixel-buffer and
// codec operations through the MCP protocol, so MCP-compatible clients can
// inspect and manipulate images file by file.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// File Operations:
//   - ppm_load: Load an image and get metadata
//   - ppm_create: Create a blank image on disk
//   - ppm_convert: Convert an image between formats
//
// Pixel Operations:
//   - ppm_get_pixel: Read the color at a coordinate
//   - ppm_set_pixel: Overwrite the color at a coordinate and save
//
// Analysis Operations:
//   - ppm_palette: Extract the dominant colors
//   - ppm_average_color: Mean color of all pixels
//
// Transform Operations:
//   - ppm_filter: Blur, grayscale, edge-detect, or invert
//   - ppm_resize: Lanczos resize
//
// # Buffer Caching
//
// The server maintains an in-memory cache of decoded pixel buffers keyed by
// path, reused across tool calls. Tools that write (ppm_create,
// ppm_set_pixel, ppm_convert, ppm_filter, ppm_resize) update the cache so
// subsequent reads observe the written state. Writes to .ppm destinations
// are atomic: the file is staged to a sibling temp path and renamed into
// place only once complete.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
