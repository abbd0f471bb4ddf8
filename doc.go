// Package pyramid computes image pyramids of domain subdivisions.
//
// The geometry itself lives in package tile, which subdivides a
// height by width pixel domain into 2^level by 2^level regular tiles
// plus an optional half-offset lattice that covers the seams between
// them. This package computes whole pyramids of such subdivisions,
// one per level, and owns the logger shared by the module's packages.
//
// Package sbdimg renders subdivisions into images for debugging and
// cmd/sbdview is a small tool that writes those images to disk.
package pyramid
