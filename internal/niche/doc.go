// Package niche implements the numeric core of the toolkit: niche-overlap
// and agreement statistics over pairs of aligned suitability rasters.
//
// All functions here are pure: they take grids, never mutate them, and
// either return a fresh result or a typed error. Grids taking part in one
// computation must share an identical shape; a mismatch is a usage error
// (ShapeMismatchError), never something the package tries to reconcile by
// resampling.
//
// Missing cells (NaN, see package raster) are excluded from every
// statistic. Warren's I is computed only over cells valid in both inputs,
// and the agreement map propagates missing cells from either input to the
// output.
package niche
