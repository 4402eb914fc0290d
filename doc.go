// Package raster is a minimal in-memory raster engine: it rasterizes lines
// onto a pixel surface and exports the result as a binary or plain text
// pixel-map.
//
// The engine is split over a few small packages:
//
//   - [github.com/BeatGlow/raster/pixel] holds the color value and surface.
//   - [github.com/BeatGlow/raster/geom] is the row-major matrix engine used
//     for point and edge batches.
//   - [github.com/BeatGlow/raster/draw] rasterizes lines, edge matrices and
//     simple shapes onto any plottable surface.
//   - [github.com/BeatGlow/raster/pnm] serializes a surface as a pixel-map.
//   - [github.com/BeatGlow/raster/framebuffer] blits a surface onto a Linux
//     framebuffer device.
//
// This package provides the Turtle, a stateful drawing cursor over a
// surface.
package raster
