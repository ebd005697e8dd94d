// SPDX-License-Identifier: EPL-2.0

package utils

// fullScale returns 2^(bitDepth-1), the magnitude of the most negative
// signed PCM value. Unknown depths are treated as 16-bit.
func fullScale(bitDepth int) float64 {
	if bitDepth <= 0 || bitDepth > 32 {
		bitDepth = 16
	}
	return float64(int64(1) << (bitDepth - 1))
}

// Clamp limits x to [-1, 1].
func Clamp(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

// PCMToFloat32 normalizes a signed integer sample of bitDepth bits to [-1, 1).
func PCMToFloat32(v int, bitDepth int) float32 {
	return float32(float64(v) / fullScale(bitDepth))
}

// Float32ToPCM converts x to a signed integer sample of bitDepth bits.
// x is clamped first; the positive peak is scaled to 2^(bitDepth-1)-1 so
// the result never overflows.
func Float32ToPCM(x float32, bitDepth int) int {
	return int(float64(Clamp(x)) * (fullScale(bitDepth) - 1))
}
