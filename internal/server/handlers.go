package server

import (
	"encoding/json"
	"fmt"

	"github.com/ecomapper/niche-tools-mcp/internal/niche"
	"github.com/ecomapper/niche-tools-mcp/internal/raster"
	"github.com/ecomapper/niche-tools-mcp/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "raster_info", "niche_overlap").
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads rasters from cache as needed
//  4. Calls the appropriate raster/niche/render function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "raster_info":
		return s.handleRasterInfo(args)
	case "niche_overlap":
		return s.handleNicheOverlap(args)
	case "niche_agreement_map":
		return s.handleNicheAgreementMap(args)
	case "raster_render":
		return s.handleRasterRender(args)
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

// === Raster Information Handlers ===

type rasterInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleRasterInfo(args json.RawMessage) (interface{}, error) {
	var a rasterInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, sr, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return raster.Describe(g, sr), nil
}

// === Comparison Handlers ===

type nicheOverlapArgs struct {
	Raster1   string `json:"raster1"`
	Raster2   string `json:"raster2"`
	Normalize bool   `json:"normalize"`
}

// OverlapResult is the niche_overlap tool response.
type OverlapResult struct {
	// WarrensI is the overlap statistic, 0 (disjoint) to 1 (identical).
	WarrensI float64 `json:"warrens_i"`

	// OverlapPercent is WarrensI expressed as a percentage.
	OverlapPercent float64 `json:"overlap_percent"`

	// ComparedCells is the number of cells valid in both rasters.
	ComparedCells int `json:"compared_cells"`

	// Normalized records whether the inputs were normalized to
	// probability surfaces before comparison.
	Normalized bool `json:"normalized"`
}

func (s *Server) handleNicheOverlap(args json.RawMessage) (interface{}, error) {
	var a nicheOverlapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	g1, _, err := s.cache.Load(a.Raster1)
	if err != nil {
		return nil, err
	}
	g2, _, err := s.cache.Load(a.Raster2)
	if err != nil {
		return nil, err
	}

	if a.Normalize {
		if g1, err = niche.Normalize(g1); err != nil {
			return nil, fmt.Errorf("normalizing %s: %w", a.Raster1, err)
		}
		if g2, err = niche.Normalize(g2); err != nil {
			return nil, fmt.Errorf("normalizing %s: %w", a.Raster2, err)
		}
	}

	i, err := niche.WarrensI(g1, g2)
	if err != nil {
		return nil, err
	}

	return &OverlapResult{
		WarrensI:       i,
		OverlapPercent: i * 100,
		ComparedCells:  comparedCells(g1, g2),
		Normalized:     a.Normalize,
	}, nil
}

type nicheAgreementMapArgs struct {
	Raster1    string   `json:"raster1"`
	Raster2    string   `json:"raster2"`
	Tolerance  *float64 `json:"tolerance"`
	OutputPath string   `json:"output_path"`
	OutputCRS  string   `json:"output_crs"`
}

// AgreementResult is the niche_agreement_map tool response.
type AgreementResult struct {
	OutputPath string        `json:"output_path"`
	Tolerance  float64       `json:"tolerance"`
	Summary    niche.Summary `json:"summary"`
}

func (s *Server) handleNicheAgreementMap(args json.RawMessage) (interface{}, error) {
	var a nicheAgreementMapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return nil, fmt.Errorf("output_path is required")
	}
	tolerance := niche.DefaultTolerance
	if a.Tolerance != nil {
		tolerance = *a.Tolerance
	}

	ref, refSR, err := s.cache.Load(a.Raster1)
	if err != nil {
		return nil, err
	}
	cmp, _, err := s.cache.Load(a.Raster2)
	if err != nil {
		return nil, err
	}

	agreement, err := niche.AgreementMap(ref, cmp, tolerance)
	if err != nil {
		return nil, err
	}

	if err := raster.Write(a.OutputPath, agreement, refSR, raster.WriteOptions{CRS: a.OutputCRS}); err != nil {
		return nil, err
	}
	// A cached grid for the output path would mask the file just written.
	s.cache.Evict(a.OutputPath)

	return &AgreementResult{
		OutputPath: a.OutputPath,
		Tolerance:  tolerance,
		Summary:    niche.Summarize(agreement),
	}, nil
}

// === Visualization Handlers ===

type rasterRenderArgs struct {
	Path         string `json:"path"`
	Palette      string `json:"palette"`
	MaxDimension *int   `json:"max_dimension"`
}

func (s *Server) handleRasterRender(args json.RawMessage) (interface{}, error) {
	var a rasterRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	maxDim := 1024
	if a.MaxDimension != nil {
		maxDim = *a.MaxDimension
	}

	g, _, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	switch a.Palette {
	case "", "suitability":
		return render.Suitability(g, maxDim)
	case "agreement":
		return render.Agreement(g, maxDim)
	default:
		return nil, fmt.Errorf("unknown palette: %s", a.Palette)
	}
}

// comparedCells counts cells valid in both grids. Shapes are already
// known to match when this is called.
func comparedCells(a, b *raster.Grid) int {
	n := 0
	for row := 0; row < a.Rows(); row++ {
		for col := 0; col < a.Cols(); col++ {
			if !a.Missing(row, col) && !b.Missing(row, col) {
				n++
			}
		}
	}
	return n
}
