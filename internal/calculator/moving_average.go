package calculator

// MovingAverage computes a simple moving average over prices. The
// result has the same length as the input; entries before index
// window-1 are nil because no sentinel number is safe there (zero is a
// legitimate mean). A window larger than the input yields all nils.
func MovingAverage(prices []float64, window int) []*float64 {
	out := make([]*float64, len(prices))
	if window < 1 {
		return out
	}

	runningSum := 0.0
	for i, price := range prices {
		runningSum += price
		if i >= window {
			runningSum -= prices[i-window]
		}
		if i >= window-1 {
			mean := runningSum / float64(window)
			out[i] = &mean
		}
	}

	return out
}
