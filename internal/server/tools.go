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
		// Raster Information
		{
			Name:        "raster_info",
			Description: "Load a raster and return its shape, cell size, coordinate system presence, valid/nodata cell counts, and value statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the raster file (GeoTIFF, ESRI ASCII grid, or any GDAL-readable format)",
					},
				},
				"required": []string{"path"},
			},
		},

		// Comparison Operations
		{
			Name:        "niche_overlap",
			Description: "Compute Warren's I niche-overlap statistic between two aligned suitability rasters. Returns a value between 0 (disjoint) and 1 (identical). Both rasters must have the same shape; nodata cells in either raster are excluded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"raster1": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the first suitability raster",
					},
					"raster2": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the second suitability raster",
					},
					"normalize": map[string]interface{}{
						"type":        "boolean",
						"description": "Normalize each raster to sum to 1 over its valid cells before comparing. Use this when inputs are raw suitability scores rather than probability surfaces. Default false",
						"default":     false,
					},
				},
				"required": []string{"raster1", "raster2"},
			},
		},
		{
			Name:        "niche_agreement_map",
			Description: "Classify cell-by-cell agreement between a reference and a comparison raster into -1 (lower), 0 (same within tolerance), +1 (higher), write the classified raster to output_path with the reference raster's spatial metadata, and return the class counts.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"raster1": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the reference raster",
					},
					"raster2": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the comparison raster",
					},
					"tolerance": map[string]interface{}{
						"type":        "number",
						"description": "Absolute difference within which two cells count as the same. Must be >= 0. Default 0.05",
						"default":     0.05,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path for the classified output raster",
					},
					"output_crs": map[string]interface{}{
						"type":        "string",
						"description": "Optional coordinate system override for the output metadata, as 'EPSG:<code>' or WKT. Cell values are never reprojected",
					},
				},
				"required": []string{"raster1", "raster2", "output_path"},
			},
		},

		// Visualization
		{
			Name:        "raster_render",
			Description: "Render a raster as a base64 PNG preview. Use the 'suitability' palette for continuous surfaces and 'agreement' for -1/0/+1 agreement maps. Nodata cells are transparent.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the raster file",
					},
					"palette": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"suitability", "agreement"},
						"description": "Color scheme. Default 'suitability'",
						"default":     "suitability",
					},
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Bound on the longer edge of the preview in pixels. 0 keeps the native size. Default 1024",
						"default":     1024,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
