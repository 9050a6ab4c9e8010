// Package warehouse defines the configuration schema and the computed layout
// document for Warevis.
//
// # Configuration
//
// [Config] is a strict, tagged schema for the warehouse description: the
// envelope [Dimensions], the block count and gap, and one [BlockConfig] per
// block carrying a [RackConfig] and placed [PalletConfig] entries. Numeric
// fields use [Quantity], which coerces null/empty/non-numeric JSON scalars to
// zero at intake. Structural validation ([Config.Validate]) runs once at the
// boundary before the layout engine is invoked.
//
// # Layout
//
// [Layout] is the output tree: Block → RackFloor → Pallet, with absolute
// center positions ([Point]) and sizes ([Extent]) in canonical centimeters.
// The format is designed for round-trip fidelity: compute → export →
// re-import produces identical results.
//
// Both types carry json and bson tags so the same structs serve file output,
// API responses, and MongoDB storage.
package warehouse
