package terrain

import (
	"go.uber.org/zap"

	"github.com/dyfios/webverse-worldengine/internal/logger"
)

// Grid resolutions the engine mesh accepts: 2^k+1 for k = 5..12.
var canonicalResolutions = [...]int{33, 65, 129, 257, 513, 1025, 2049, 4097}

// MinResolution and MaxResolution bound the canonical resolution set.
const (
	MinResolution = 33
	MaxResolution = 4097
)

// SelectResolution maps a physical span (world units) to the smallest
// canonical grid resolution covering it. Spans below 1 and above the largest
// resolution are recovered with a warning rather than rejected: tiles keep
// working with a clamped grid.
func SelectResolution(span float32) int {
	if span < 1 {
		logger.Warn("tile span below minimum, using smallest grid",
			zap.Float32("span", span), zap.Int("resolution", MinResolution))
		return MinResolution
	}

	for _, n := range canonicalResolutions {
		if span <= float32(n) {
			return n
		}
	}

	logger.Warn("tile span above largest grid, clamping",
		zap.Float32("span", span), zap.Int("resolution", MaxResolution))
	return MaxResolution
}

// IsCanonicalResolution reports whether n is one of the supported grid sizes.
func IsCanonicalResolution(n int) bool {
	for _, c := range canonicalResolutions {
		if n == c {
			return true
		}
	}
	return false
}
