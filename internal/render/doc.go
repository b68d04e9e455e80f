// Package render turns grids into small PNG previews for tool output.
//
// Previews are diagnostic images, not cartography: suitability surfaces
// get a perceptual color ramp stretched over the grid's own value range,
// agreement maps get one fixed color per class, and missing cells are
// fully transparent in both. Results carry the PNG as base64 so they can
// travel inside a JSON tool response.
package render
