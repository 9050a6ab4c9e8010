package render

import "github.com/palletlab/warevis/pkg/warehouse"

// RenderJSON serializes the layout geometry for programmatic consumers.
// The output is the same document the store persists and the API serves.
func RenderJSON(l warehouse.Layout) ([]byte, error) {
	return warehouse.MarshalLayout(l)
}
