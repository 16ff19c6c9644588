// Package trend fits least-squares trend lines over recent samples, used to
// overlay a trend on the dashboard charts.
package trend

// Fit computes the ordinary least-squares line y = slope*i + intercept over
// the sample index i. With a single value the line is flat at that value;
// with no values both results are zero.
func Fit(values []float64) (slope, intercept float64) {
	n := float64(len(values))
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return 0, values[0]
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	return slope, intercept
}

// Line returns the fitted value for every sample index. Nil for empty input.
func Line(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	slope, intercept := Fit(values)
	out := make([]float64, len(values))
	for i := range values {
		out[i] = slope*float64(i) + intercept
	}

	return out
}
