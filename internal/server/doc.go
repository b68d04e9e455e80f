// Package server implements the MCP (Model Context Protocol) server for
// the niche analysis tools.
//
// This package provides a JSON-RPC 2.0 server that exposes raster
// comparison capabilities through the MCP protocol, so an MCP-compatible
// host can compute niche-overlap statistics and agreement maps over
// habitat-suitability rasters.
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
//   - raster_info: Load a raster and report shape, metadata, and statistics
//   - niche_overlap: Warren's I overlap statistic between two rasters
//   - niche_agreement_map: Three-class tolerance-banded agreement raster
//     plus class counts, written with the reference raster's spatial
//     metadata
//   - raster_render: Base64 PNG preview with a suitability ramp or
//     agreement palette
//
// # Raster Caching
//
// The server maintains an in-memory cache of loaded rasters. Grids are
// cached by path and reused across tool calls, avoiding redundant decode
// work when the same pair of rasters feeds several tools. The cache
// persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Precondition violations from the numeric core (shape mismatch, empty
// valid intersection, negative tolerance) surface here unchanged; the
// server never retries or degrades to a partial result.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
