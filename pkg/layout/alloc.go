package layout

import (
	"github.com/palletlab/warevis/pkg/errors"
)

// Split divides a total extent among n equal slots separated by a uniform
// gap. It returns the slot size and the center of the first slot when the
// tiling is centered on the origin: n slots of the returned size plus the
// intervening gaps exactly fill total.
//
// The what argument names the slot kind (e.g. "block width") for error
// messages. Split fails with INSUFFICIENT_SPACE when the space left per slot
// is zero or negative - callers never receive negative geometry to clamp.
func Split(what string, total float64, n int, gap float64) (size, start float64, err error) {
	if n < 1 {
		return 0, 0, errors.New(errors.ErrCodeMalformedConfig, "%s: slot count must be at least 1, got %d", what, n)
	}

	totalGaps := 0.0
	if n > 1 {
		totalGaps = gap * float64(n-1)
	}

	size = (total - totalGaps) / float64(n)
	if size <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInsufficientSpace,
			"%s is non-positive: %.2f cm total, %d slots, %.2f cm gaps", what, total, n, totalGaps)
	}

	start = -total/2 + size/2
	return size, start, nil
}

// RackWidth computes the uniform rack width for a row: the available width
// minus the row's consumed inter-rack gaps, divided by the racks per row.
// Gaps beyond the end of the gap list contribute 0.
func RackWidth(availWidth float64, gaps []float64, perRow int) (float64, error) {
	if perRow < 1 {
		return 0, errors.New(errors.ErrCodeMalformedConfig, "rack width: racks per row must be at least 1, got %d", perRow)
	}

	consumed := 0.0
	for i := 0; i < perRow-1; i++ {
		consumed += gapAt(gaps, i)
	}

	width := (availWidth - consumed) / float64(perRow)
	if width <= 0 {
		return 0, errors.New(errors.ErrCodeInsufficientSpace,
			"rack width is non-positive: %.2f cm available, %d racks per row, %.2f cm gaps",
			availWidth, perRow, consumed)
	}
	return width, nil
}

// gapAt returns the i-th inter-rack gap, or 0 when the list is shorter.
func gapAt(gaps []float64, i int) float64 {
	if i < 0 || i >= len(gaps) {
		return 0
	}
	return gaps[i]
}
