package terrain

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dyfios/webverse-worldengine/internal/logger"
)

// ErrInvalidArgument is returned when resample preconditions are violated:
// spans or height scale below 1, or input grid dimensions outside [1, 4097].
var ErrInvalidArgument = errors.New("invalid argument")

// HeightField owns one tile's authoritative elevation samples in absolute
// world units, at one of the canonical grid resolutions. The engine mesh
// stores a normalized, possibly lossy copy; this field is the sole source
// of truth for height queries.
type HeightField struct {
	resolution  int
	heightScale float32
	samples     []float32 // row-major, resolution×resolution, indexed [i*resolution+j]
}

// Resample quantizes an arbitrary input grid onto the canonical resolution
// selected for max(spanX, spanZ), producing a new HeightField. The input is
// never mutated; on validation failure no field is produced.
//
// Per output cell the two axis interpolations are computed independently
// (each against the lower bracketing index of the other axis) and combined
// as xInterp + zInterp/2. This is deliberately not bilinear interpolation:
// existing authored terrains depend on the exact output, so the formula is
// preserved bit-for-bit.
func Resample(input *Grid, spanX, spanZ, heightScale float32) (*HeightField, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: nil input grid", ErrInvalidArgument)
	}
	if spanX < 1 || spanZ < 1 {
		return nil, fmt.Errorf("%w: spans must be >= 1, got %g x %g", ErrInvalidArgument, spanX, spanZ)
	}
	if heightScale < 1 {
		return nil, fmt.Errorf("%w: height scale must be >= 1, got %g", ErrInvalidArgument, heightScale)
	}
	if input.Length() < 1 || input.Length() > MaxResolution ||
		input.Width() < 1 || input.Width() > MaxResolution {
		return nil, fmt.Errorf("%w: input grid is %dx%d, dimensions must be in [1, %d]",
			ErrInvalidArgument, input.Length(), input.Width(), MaxResolution)
	}

	span := spanX
	if spanZ > span {
		span = spanZ
	}
	n := SelectResolution(span)

	f := &HeightField{
		resolution:  n,
		heightScale: heightScale,
		samples:     make([]float32, n*n),
	}

	xRatio := float32(input.Length()) / float32(n)
	zRatio := float32(input.Width()) / float32(n)

	for i := 0; i < n; i++ {
		x0, x1, fx := bracket(float32(i)*xRatio, input.Length())
		for j := 0; j < n; j++ {
			z0, z1, fz := bracket(float32(j)*zRatio, input.Width())

			var v float32
			if fx == 0 && fz == 0 {
				// Output index maps exactly onto an input sample.
				v = input.At(x0, z0)
			} else {
				xInterp := lerp(input.At(x0, z0), input.At(x1, z0), fx)
				zInterp := lerp(input.At(x0, z0), input.At(x0, z1), fz)
				v = xInterp + zInterp/2
			}
			f.samples[i*n+j] = v
		}
	}

	return f, nil
}

// bracket returns the two source indices bracketing the fractional source
// coordinate s, and the blend fraction between them. When the clamped upper
// index coincides with the lower one there is nothing to blend and the
// fraction is zero.
func bracket(s float32, count int) (lower, upper int, frac float32) {
	lower = int(s)
	if lower > count-1 {
		lower = count - 1
	}
	frac = s - float32(lower)
	upper = lower + 1
	if upper > count-1 {
		upper = count - 1
	}
	if upper == lower {
		frac = 0
	}
	return lower, upper, frac
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Resolution returns the grid resolution N; samples form an N×N grid.
func (f *HeightField) Resolution() int { return f.resolution }

// HeightScale returns the vertical span the normalized [0,1] range maps to.
func (f *HeightField) HeightScale() float32 { return f.heightScale }

// HeightAt returns the absolute height at (i, j). Out-of-range indices are
// recovered with a warning and a zero sentinel: height queries come from
// runtime data and must not take down a running world.
func (f *HeightField) HeightAt(i, j int) float32 {
	if !f.inRange(i, j) {
		logger.Warn("height query out of range",
			zap.Int("i", i), zap.Int("j", j), zap.Int("resolution", f.resolution))
		return 0
	}
	return f.samples[i*f.resolution+j]
}

// SetHeight writes the absolute height at (i, j) and reports whether the
// write happened. Out-of-range indices are a warned no-op.
func (f *HeightField) SetHeight(i, j int, v float32) bool {
	if !f.inRange(i, j) {
		logger.Warn("height write out of range",
			zap.Int("i", i), zap.Int("j", j), zap.Int("resolution", f.resolution))
		return false
	}
	f.samples[i*f.resolution+j] = v
	return true
}

// Normalized returns the sample at (i, j) divided by the height scale, the
// representation the engine mesh stores.
func (f *HeightField) Normalized(i, j int) float32 {
	return f.HeightAt(i, j) / f.heightScale
}

func (f *HeightField) inRange(i, j int) bool {
	return i >= 0 && j >= 0 && i < f.resolution && j < f.resolution
}

// Rows returns a copy of the samples as nested slices indexed [i][j],
// for serialization. The result does not alias the field's storage.
func (f *HeightField) Rows() [][]float32 {
	rows := make([][]float32, f.resolution)
	for i := range rows {
		rows[i] = make([]float32, f.resolution)
		copy(rows[i], f.samples[i*f.resolution:(i+1)*f.resolution])
	}
	return rows
}
