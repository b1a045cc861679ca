package terrain

// TrafficLight maps a normalized height t to a green-to-red gradient.
// t is clamped to [0, 1]. Blue fades out as t rises.
func TrafficLight(t float32) (r, g, b float32) {
	t = clampf(t, 0, 1)
	if t < 0.5 {
		r = 0
		g = t * 2
	} else {
		r = (t - 0.5) * 2
		g = (1 - (t - 0.5)) * 2
	}
	b = 1 - t
	return r, g, b
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
