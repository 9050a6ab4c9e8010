// Package layout implements the deterministic 3D warehouse layout engine.
//
// The engine turns a validated warehouse configuration into absolute
// positions and dimensions for every block, rack-floor cell, and pallet.
// It is decomposed into three stages:
//
//  1. Unit normalization: every user-supplied length is converted once to
//     canonical centimeters ([ToCentimeters]).
//  2. Space allocation: axis extents are divided among blocks, rows, racks,
//     and floors, honoring inter-element gaps ([Split], [RackWidth]).
//  3. Placement resolution: the block → row → column → floor grid is walked
//     to emit rack-floor cells and attach pallets by their 1-based indices.
//
// # Coordinate system
//
// All output geometry is in centimeters. The width axis (x) is centered on
// the warehouse midline, so blocks tile symmetrically around x=0. The length
// axis (y) is anchored at the front wall: rows tile front-to-back starting at
// the front wall gap. The height axis (z) starts at the floor. This
// asymmetry between axes is intentional - length is a directional
// "front-to-back" placement, not a symmetric one.
//
// # Purity
//
// [CreateLayout] is a pure function of its input: no I/O, no state across
// calls, identical output for identical configurations. It raises on the
// first detected error and never returns a partial layout.
package layout
