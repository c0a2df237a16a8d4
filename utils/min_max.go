// SPDX-License-Identifier: EPL-2.0

package utils

// MinMax scans a sample buffer and returns its smallest and largest values.
// An empty buffer reports (0, 0).
func MinMax(samples []float32) (min, max float32) {
	if len(samples) == 0 {
		return 0, 0
	}

	min, max = samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max
}
