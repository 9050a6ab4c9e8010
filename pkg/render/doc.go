// Package render turns computed warehouse layouts into output artifacts.
//
// Two formats are supported:
//   - SVG: a top-down floor plan showing block envelopes, rack cells for one
//     selected floor, and pallet occupancy
//   - JSON: the layout geometry itself, for programmatic consumers
//
// Rendering is pure: the same layout and options always produce identical
// bytes, so artifacts can be cached or diffed.
package render
