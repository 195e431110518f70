package optimizer

// minMaxNormalize rescales values onto [0,1] using min-max normalization.
// When every value is equal the scale collapses and all candidates get 1.0,
// so an all-equal metric contributes its full weight to every score instead
// of dividing by zero.
func minMaxNormalize(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(values))
	if max == min {
		for i := range out {
			out[i] = 1.0
		}
		return out
	}

	span := max - min
	for i, v := range values {
		out[i] = (v - min) / span
	}
	return out
}
